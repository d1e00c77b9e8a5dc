package device

import "errors"

// Sentinel errors returned by the registry and state manager. Callers
// match with errors.Is; wrapped variants carry the offending identifier.
var (
	// ErrDeviceNotFound indicates a lookup by ID, alias, or address
	// matched no registered device.
	ErrDeviceNotFound = errors.New("device not found")

	// ErrAliasInUse indicates a registration attempt with an alias
	// already held by a different device.
	ErrAliasInUse = errors.New("device alias already in use")

	// ErrInvalidDevice indicates a device missing required fields
	// (ID or alias).
	ErrInvalidDevice = errors.New("invalid device")

	// ErrUnknownContact indicates a state operation addressed a
	// contact the device does not declare.
	ErrUnknownContact = errors.New("unknown contact")
)
