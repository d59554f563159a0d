package xerrors

import (
	"errors"
)

// Kind separates failures by how the console reacts to them.
type Kind uint

const (
	// KindAuth is shown to the user on a blocking error surface.
	KindAuth Kind = iota + 1
	// KindFetch is a background refresh failure: logged, prior values kept.
	KindFetch
	// KindMissingTarget is a patch or activation aimed at something that is
	// not mounted. Treated as a no-op.
	KindMissingTarget
	// KindSurface means the login/app surfaces never became available.
	KindSurface
)

func (k Kind) String() string {
	switch k {
	case KindAuth:
		return "auth"
	case KindFetch:
		return "fetch"
	case KindMissingTarget:
		return "missing_target"
	case KindSurface:
		return "surface"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func Auth(opts ...Option) *Error          { return newErr(KindAuth, opts) }
func Fetch(opts ...Option) *Error         { return newErr(KindFetch, opts) }
func MissingTarget(opts ...Option) *Error { return newErr(KindMissingTarget, opts) }
func Surface(opts ...Option) *Error       { return newErr(KindSurface, opts) }

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind, Message: kind.String() + " error"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func IsKind(err error, kind Kind) bool {
	e := As(err)
	return e != nil && e.Kind == kind
}
