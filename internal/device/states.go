package device

import (
	"context"
	"fmt"
	"sync"
)

// HistoryWriter records numeric state changes to a time-series store.
// Implementations must be non-blocking; the state manager calls this
// inline on the transport dispatch path.
type HistoryWriter interface {
	WriteStateChange(deviceID, contact string, value float64)
}

// Listener receives state-change notifications. Listeners are invoked
// sequentially on the caller's goroutine; a panicking listener is
// recovered and logged without disturbing its siblings.
type Listener func(ctx context.Context, target Target, value any)

// States holds the last reported value for every device contact and
// fans state changes out to subscribed listeners (the automation
// engine, history recording).
//
// Values are whatever the type mapper produced: bool, float64, or
// string. Safe for concurrent use.
type States struct {
	mu        sync.RWMutex
	registry  *Registry
	values    map[Target]any
	listeners []Listener
	history   HistoryWriter
	logger    Logger
}

// NewStates creates a state manager backed by the given registry.
// history may be nil to disable time-series recording; logger may be
// nil to disable logging.
func NewStates(registry *Registry, history HistoryWriter, logger Logger) *States {
	if logger == nil {
		logger = noopLogger{}
	}
	return &States{
		registry: registry,
		values:   make(map[Target]any),
		history:  history,
		logger:   logger,
	}
}

// Subscribe registers a listener for state changes. Must be called
// during startup, before messages flow; it is not synchronised against
// Set.
func (s *States) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// Set records a new value for the target and notifies listeners.
//
// The target must name a registered device and one of its declared
// input contacts.
//
// Returns:
//   - ErrDeviceNotFound if the device is not registered
//   - ErrUnknownContact if the device declares no such input
func (s *States) Set(ctx context.Context, target Target, value any) error {
	d, err := s.registry.GetByID(target.DeviceID)
	if err != nil {
		return err
	}
	if _, ok := d.InputContact(target.Contact); !ok {
		return fmt.Errorf("%w: %q on device %s", ErrUnknownContact, target.Contact, d.ID)
	}

	s.mu.Lock()
	s.values[target] = value
	s.mu.Unlock()

	s.logger.Debug("state updated",
		"device_id", target.DeviceID,
		"contact", target.Contact,
		"value", value,
	)

	s.recordHistory(target, value)

	for _, l := range s.listeners {
		s.notify(ctx, l, target, value)
	}
	return nil
}

// Get returns the last recorded value for the target, or false if no
// value has been reported yet.
func (s *States) Get(target Target) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[target]
	return v, ok
}

// recordHistory writes numeric-representable values to the history
// store. Booleans are recorded as 0/1; strings are not recorded.
func (s *States) recordHistory(target Target, value any) {
	if s.history == nil {
		return
	}
	switch v := value.(type) {
	case float64:
		s.history.WriteStateChange(target.DeviceID, target.Contact, v)
	case bool:
		n := 0.0
		if v {
			n = 1.0
		}
		s.history.WriteStateChange(target.DeviceID, target.Contact, n)
	}
}

func (s *States) notify(ctx context.Context, l Listener, target Target, value any) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("state listener panicked",
				"target", target.String(),
				"panic", r,
			)
		}
	}()
	l(ctx, target, value)
}
