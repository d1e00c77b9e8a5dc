package zigbee

import "errors"

// Bridge errors. Matched with errors.Is; wrapped variants carry topic
// or device context.
var (
	// ErrNotStarted indicates an operation before Start completed.
	ErrNotStarted = errors.New("bridge not started")

	// ErrUnknownDevice indicates an outbound command addressed a
	// device the registry does not know.
	ErrUnknownDevice = errors.New("unknown device")

	// ErrUnknownContact indicates an outbound command addressed a
	// contact the device does not declare as an output.
	ErrUnknownContact = errors.New("unknown output contact")

	// ErrInvalidPayload indicates a message body that could not be
	// decoded as the expected JSON shape.
	ErrInvalidPayload = errors.New("invalid payload")
)
