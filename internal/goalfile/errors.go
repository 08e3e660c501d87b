package goalfile

import "errors"

var (
	// ErrGoalFile wraps any failure to read or parse a goal file, letting
	// callers classify it as the "Input error" taxonomy class of spec §7.
	ErrGoalFile = errors.New("goalfile: could not read goal matrix")

	// ErrInvalidDigit is returned when a byte other than '0', '1', or
	// whitespace appears where a matrix entry was expected.
	ErrInvalidDigit = errors.New("goalfile: expected '0' or '1'")

	// ErrUnexpectedEOF is returned when the file runs out of digits before
	// n*n entries have been read.
	ErrUnexpectedEOF = errors.New("goalfile: unexpected end of file")
)
