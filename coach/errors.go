package coach

import "errors"

var (
	// ErrMissingCredential indicates the completion-service credential was
	// absent when a model call was needed.
	ErrMissingCredential = errors.New("missing completion credential")

	// ErrTimeout indicates the completion call exceeded its deadline.
	ErrTimeout = errors.New("completion request timed out")

	// ErrUpstream indicates the completion service call failed.
	ErrUpstream = errors.New("completion service error")

	// ErrEmptyCompletion indicates the model returned no usable text. Only
	// surfaced under the strict empty policy.
	ErrEmptyCompletion = errors.New("model returned empty text")
)

// ValidationError rejects a malformed request before any model call is made.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is a request-validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
