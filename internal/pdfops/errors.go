package pdfops

import (
	"errors"
	"fmt"
)

// Error kinds. Adapters map these to their transport: the HTTP layer turns
// them into 400/404/500 responses, the CLI into exit-1 messages.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrProcessing   = errors.New("processing failed")
)

type opError struct {
	kind  error
	msg   string
	cause error
}

func (e *opError) Error() string {
	switch {
	case e.msg == "":
		return e.cause.Error()
	case e.cause != nil:
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *opError) Is(target error) bool { return target == e.kind }

func (e *opError) Unwrap() error { return e.cause }

func invalidInput(format string, args ...interface{}) error {
	return &opError{kind: ErrInvalidInput, msg: fmt.Sprintf(format, args...)}
}

func notFound(msg string) error {
	return &opError{kind: ErrNotFound, msg: msg}
}

// processing wraps an underlying library failure. The message is passed
// through verbatim so callers see the real decode/encode error.
func processing(cause error) error {
	return &opError{kind: ErrProcessing, cause: cause}
}
