package conduct

import "errors"

var (
	// ErrInvalidTarget indicates a conduct with an empty device ID or
	// contact reached the publisher. These are hard failures: the
	// conduct is unroutable and is dropped.
	ErrInvalidTarget = errors.New("invalid conduct target")
)
