package convolution

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput       = errors.New("convolution: empty input")
	ErrLengthMismatch   = errors.New("convolution: sequence length mismatch")
	ErrNegativePadding  = errors.New("convolution: negative zero padding")
	ErrNotLoaded        = errors.New("convolution: no sequences loaded")
	ErrSequenceComplete = errors.New("convolution: sequence complete")
	ErrInvalidValue     = errors.New("convolution: invalid integer")

	// ErrValueRange means a sample of the result does not fit in an int.
	ErrValueRange = fmt.Errorf("%w: result out of range", ErrInvalidValue)
)

// ParseError reports a token of an input signal that is not an integer.
type ParseError struct {
	Index int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	cause := e.Err
	if cause == nil {
		cause = ErrInvalidValue
	}
	return fmt.Sprintf("parse %q at position %d: %v", e.Token, e.Index, cause)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrInvalidValue.
func (e *ParseError) Is(target error) bool { return target == ErrInvalidValue }
