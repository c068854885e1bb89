package jar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMinutes means the input has no leading integer or is not positive.
	ErrInvalidMinutes = errors.New("minutes must be a positive whole number")

	// ErrInsufficientBalance means Jar 1 holds fewer minutes than requested.
	ErrInsufficientBalance = errors.New("not enough time left in jar 1")

	// ErrIndexOutOfRange means an edit addressed a record that does not exist.
	ErrIndexOutOfRange = errors.New("history index out of range")

	// ErrInvalidEdit is returned for non-numeric edits when strict edits are on.
	ErrInvalidEdit = errors.New("edited value is not a number")
)

// TransferError is returned when a transfer is rejected.
type TransferError struct {
	Input string
	Err   error
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %q rejected: %v", e.Input, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}
