package xslog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/garrettladley/earth/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorKind(kind fmt.Stringer) slog.Attr {
	const errorKindKey = "error_kind"
	return slog.String(errorKindKey, kind.String())
}

func RequestID(requestID string) slog.Attr {
	const requestIDKey = "request_id"
	return slog.String(requestIDKey, requestID)
}

func HTTPStatus(status int) slog.Attr {
	const statusKey = "status"
	return slog.Int(statusKey, status)
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Backoff(backoff time.Duration) slog.Attr {
	const backoffKey = "backoff"
	return slog.Duration(backoffKey, backoff)
}

func Attempt(attempt int) slog.Attr {
	const attemptKey = "attempt"
	return slog.Int(attemptKey, attempt)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Endpoint(path string) slog.Attr {
	const endpointKey = "endpoint"
	return slog.String(endpointKey, path)
}

func View(name string) slog.Attr {
	const viewKey = "view"
	return slog.String(viewKey, name)
}

func Generation(gen uint64) slog.Attr {
	const generationKey = "generation"
	return slog.Uint64(generationKey, gen)
}

func Field(id string) slog.Attr {
	const fieldKey = "field"
	return slog.String(fieldKey, id)
}

func Tab(name string) slog.Attr {
	const tabKey = "tab"
	return slog.String(tabKey, name)
}

func Email(email string) slog.Attr {
	const emailKey = "email"
	return slog.String(emailKey, email)
}

func Coordinates(lat, lon float64) slog.Attr {
	return slog.Group("coordinates",
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
	)
}
