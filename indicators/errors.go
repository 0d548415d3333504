package indicators

import "errors"

var (
	// ErrEmptyData is returned when a required input has no elements.
	ErrEmptyData = errors.New("empty data")

	// ErrDataNotEnough is returned when an input is shorter than the
	// indicator's minimum length.
	ErrDataNotEnough = errors.New("data not enough")

	// ErrInvalidData is returned when an input violates a structural
	// precondition or would divide by zero.
	ErrInvalidData = errors.New("invalid data")
)
