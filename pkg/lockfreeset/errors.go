package lockfreeset

import "errors"

// Error classification. Implementations MAY wrap these with additional
// context; callers classify with errors.Is.
var (
	// ErrInvalidScale indicates a scale outside [MinScale, 63].
	ErrInvalidScale = errors.New("lockfreeset: invalid scale")

	// ErrZeroKey indicates an attempt to store or probe for the reserved
	// key 0.
	ErrZeroKey = errors.New("lockfreeset: key 0 is reserved")

	// ErrFull indicates the probe sequence exhausted the bucket count
	// without finding an empty slot or the key. This is the "capacity
	// error" of spec §7: it means the table's scale was sized too small
	// for the workload and must be grown by the caller (a fresh, larger
	// Set; this package never resizes in place).
	ErrFull = errors.New("lockfreeset: table full")

	// ErrClosed indicates use of a Set after Close.
	ErrClosed = errors.New("lockfreeset: closed")
)
