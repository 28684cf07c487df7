package constants

import "net/http"

// CodedError is a domain error carrying the HTTP status it should surface
// with. The api error handler unwraps to the first CodedError in the chain.
type CodedError struct {
	code    int
	message string
}

func NewCodedError(code int, message string) *CodedError {
	return &CodedError{code: code, message: message}
}

func (e *CodedError) Error() string { return e.message }

func (e *CodedError) Code() int { return e.code }

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "not found")
	ErrIndicatorNotFound = NewCodedError(http.StatusNotFound, "indicator not found")
	ErrInvalidAnswer     = NewCodedError(http.StatusBadRequest, "invalid answer")
	ErrMissingTenant     = NewCodedError(http.StatusBadRequest, "missing tenant id")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrTaxonomyEmpty     = NewCodedError(http.StatusServiceUnavailable, "taxonomy is not loaded")
)
