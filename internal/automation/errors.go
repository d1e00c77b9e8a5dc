package automation

import "errors"

var (
	// ErrProcessNotFound indicates a lookup matched no stored process.
	ErrProcessNotFound = errors.New("process not found")

	// ErrProcessExists indicates an insert collided with an existing
	// ID or alias.
	ErrProcessExists = errors.New("process already exists")

	// ErrInvalidProcess indicates a process missing required fields.
	ErrInvalidProcess = errors.New("invalid process")

	// ErrInvalidCondition indicates a condition expression the
	// evaluator cannot interpret.
	ErrInvalidCondition = errors.New("invalid condition")
)
