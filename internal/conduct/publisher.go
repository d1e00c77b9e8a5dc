package conduct

import (
	"context"
	"fmt"
)

// Sender writes a value to a device contact over the transport.
// Implemented by the gateway bridge.
type Sender interface {
	SendSet(ctx context.Context, deviceID, contact string, value any) error
}

// Publisher forwards conducts from the bus to a transport sender.
//
// Validation here is structural only: a conduct with an empty device ID
// or contact is unroutable and rejected outright. Whether the device
// actually exists is the sender's concern; an unknown device is an
// isolated per-conduct failure, not a reason to reject upfront.
type Publisher struct {
	sender Sender
	logger Logger
}

// NewPublisher creates a publisher forwarding to the given sender.
// Pass a nil logger to disable logging.
func NewPublisher(sender Sender, logger Logger) *Publisher {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Publisher{sender: sender, logger: logger}
}

// Handle implements the bus Handler contract.
//
// Returns:
//   - ErrInvalidTarget if the conduct's device ID or contact is empty
//   - the sender's error if transport delivery fails
func (p *Publisher) Handle(ctx context.Context, c Conduct) error {
	if c.Target.IsZero() {
		return fmt.Errorf("%w: device=%q contact=%q",
			ErrInvalidTarget, c.Target.DeviceID, c.Target.Contact)
	}

	if err := p.sender.SendSet(ctx, c.Target.DeviceID, c.Target.Contact, c.Value); err != nil {
		return fmt.Errorf("send conduct to %s: %w", c.Target.String(), err)
	}

	p.logger.Debug("conduct published",
		"target", c.Target.String(),
		"value", c.Value,
	)
	return nil
}
