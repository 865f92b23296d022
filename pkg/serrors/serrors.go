package serrors

import "fmt"

// Error is a coded error shared across module boundaries. Code is stable and
// machine-readable, Message is human-readable, Hint is optional remediation
// text surfaced to operators.
type Error struct {
	Code    string
	Message string
	Hint    string
}

func NewError(code, message, hint string) *Error {
	return &Error{Code: code, Message: message, Hint: hint}
}

func (e *Error) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Hint)
}

// WithHint returns a copy of the error with the hint replaced.
func (e *Error) WithHint(hint string) *Error {
	return &Error{Code: e.Code, Message: e.Message, Hint: hint}
}

// Is matches coded errors by Code so sentinel comparisons survive wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}
