package model

import (
	"errors"
	"fmt"
)

// ValidationError is the single error kind raised by survey domain rules:
// missing surveys/questions/options, duplicate answers, invisible questions,
// malformed answers for a question type. Controllers map it to a client error;
// everything else is treated as an infrastructure failure.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
