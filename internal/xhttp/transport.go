package xhttp

import (
	"fmt"
	"net/http"

	"github.com/garrettladley/earth/internal/version"
)

type earthTransport struct {
	base http.RoundTripper
}

var _ http.RoundTripper = (*earthTransport)(nil)

func (t *earthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set(UserAgent, "earth/"+version.Get())
	req.Header.Set(version.Header, version.Get())
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform round trip: %w", err)
	}
	return resp, nil
}

// NewTransport returns an http.RoundTripper with standard earth headers.
func NewTransport() http.RoundTripper {
	return &earthTransport{base: http.DefaultTransport}
}
