package oauth

import "errors"

const (
	ParamState            = "state"
	ParamCode             = "code"
	ParamError            = "error"
	ParamErrorDescription = "error_description"
)

var (
	ErrNoToken      = errors.New("no token found - please sign in first")
	ErrTokenExpired = errors.New("token expired and no refresh token available")
	ErrInvalidState = errors.New("invalid state parameter")
	ErrMissingCode  = errors.New("missing authorization code")
	ErrNoEmail      = errors.New("identity provider returned no email")
)
