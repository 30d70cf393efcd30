package graph

import (
	"workstack.io/tracker/internal/service"
)

// apiError carries a stable machine-readable code into the GraphQL error
// extensions, so clients can branch on extensions.code instead of parsing
// messages.
type apiError struct {
	code    service.Code
	message string
}

func (e *apiError) Error() string { return e.message }

func (e *apiError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": string(e.code)}
}

func invalidf(format string, args ...interface{}) error {
	return wrapErr(service.Invalid(format, args...))
}

// wrapErr translates service errors into extended GraphQL errors. Errors
// without a service code pass through untouched.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	if code := service.CodeOf(err); code != "" {
		return &apiError{code: code, message: err.Error()}
	}
	return err
}
