package xhttp

import (
	"net/http"
)

const (
	Authorization = "Authorization"
	Accept        = "Accept"
	ContentType   = "Content-Type"
	UserAgent     = "User-Agent"
	XRequestID    = "X-Request-ID"
)

const (
	applicationJSON = "application/json"
	textHTML        = "text/html; charset=utf-8"
)

func SetRequestHeaderBearer(r *http.Request, token string) {
	r.Header.Set(Authorization, "Bearer "+token)
}

func SetRequestHeaderAcceptJSON(r *http.Request) {
	r.Header.Set(Accept, applicationJSON)
}

func SetRequestHeaderRequestID(r *http.Request, requestID string) {
	r.Header.Set(XRequestID, requestID)
}

func SetHeaderContentTypeTextHTML(w http.ResponseWriter) {
	w.Header().Set(ContentType, textHTML)
}
