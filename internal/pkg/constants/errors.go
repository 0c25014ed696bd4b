package constants

import "net/http"

// CodedError is an error carrying the HTTP status code it should be
// reported with. The api error handler unwraps to the first CodedError
// in the chain.
type CodedError struct {
	code int
	msg  string
}

func NewCodedError(code int, msg string) *CodedError {
	return &CodedError{code: code, msg: msg}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

// ValidationError carries the field-level errors from the pre-rating
// validation pass.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return "rating input validation failed"
}

var (
	ErrDBNotFound        = NewCodedError(http.StatusNotFound, "record not found")
	ErrUnauthorized      = NewCodedError(http.StatusUnauthorized, "unauthorized")
	ErrMissingAuthCookie = NewCodedError(http.StatusUnauthorized, "missing auth cookie")
	ErrNoPayrollLines    = NewCodedError(http.StatusBadRequest, "at least one payroll classification is required")
	ErrRatingNotFound    = NewCodedError(http.StatusNotFound, "saved rating not found")
)
