package zigbee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/nerrad567/slate-logic-core/internal/device"
	"github.com/nerrad567/slate-logic-core/internal/infrastructure/mqtt"
)

// Logger abstracts structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

// MQTTClient is the transport surface the bridge needs. Satisfied by
// *mqtt.Client; narrowed to an interface for mocking.
type MQTTClient interface {
	Publish(topic string, payload []byte, qos byte, retained bool) error
	Subscribe(topic string, qos byte, handler mqtt.MessageHandler) error
	IsConnected() bool
}

// DeviceRegistry is the catalogue surface the bridge needs.
// Satisfied by *device.Registry.
type DeviceRegistry interface {
	Register(d *device.Device) error
	Replace(d *device.Device) error
	GetByID(id string) (*device.Device, error)
	GetByAlias(alias string) (*device.Device, error)
	GetByAddress(address string) (*device.Device, error)
}

// StateWriter ingests decoded state reports. Satisfied by
// *device.States.
type StateWriter interface {
	Set(ctx context.Context, target device.Target, value any) error
}

// Config holds bridge settings.
type Config struct {
	// BaseTopic is the gateway's topic namespace (e.g. "zigbee2mqtt").
	BaseTopic string

	// QoS for all bridge publishes and the namespace subscription.
	QoS byte

	// PermitJoin controls whether the gateway accepts new device
	// pairing. Announced on startup; defaults to false so the network
	// stays closed unless an operator opens it.
	PermitJoin bool
}

// Bridge translates between the gateway's topic namespace and the
// internal device abstraction.
//
// Inbound: device state reports are decoded, typed, and written to the
// state manager; the gateway's device-list snapshots drive discovery.
// Outbound: SendSet publishes command payloads, SendGet publishes read
// requests.
//
// Thread safety: the transport delivers each message on its own
// goroutine; all shared state behind the bridge (registry, states) is
// internally synchronised, and the bridge itself holds no mutable
// per-message state beyond the started flag.
type Bridge struct {
	cfg      Config
	topics   mqtt.Topics
	client   MQTTClient
	registry DeviceRegistry
	states   StateWriter
	logger   Logger

	mu      sync.Mutex
	started bool
}

// New creates a bridge for the given gateway namespace. Pass a nil
// logger to disable logging.
func New(cfg Config, client MQTTClient, registry DeviceRegistry, states StateWriter, logger Logger) *Bridge {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Bridge{
		cfg:      cfg,
		topics:   mqtt.Topics{Base: cfg.BaseTopic},
		client:   client,
		registry: registry,
		states:   states,
		logger:   logger,
	}
}

// Start subscribes to the gateway namespace and announces bridge
// control defaults: a device-list request so discovery runs against the
// current network, and the permit-join setting.
func (b *Bridge) Start(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return nil
	}

	if err := b.client.Subscribe(b.topics.All(), b.cfg.QoS, b.handleMessage); err != nil {
		return fmt.Errorf("subscribe %s: %w", b.topics.All(), err)
	}

	if err := b.client.Publish(b.topics.BridgeDevicesGet(), nil, b.cfg.QoS, false); err != nil {
		return fmt.Errorf("request device list: %w", err)
	}

	permit := "false"
	if b.cfg.PermitJoin {
		permit = "true"
	}
	if err := b.client.Publish(b.topics.BridgePermitJoin(), []byte(permit), b.cfg.QoS, false); err != nil {
		return fmt.Errorf("announce permit_join: %w", err)
	}

	b.started = true
	b.logger.Info("gateway bridge started",
		"base_topic", b.cfg.BaseTopic,
		"permit_join", permit,
	)
	return nil
}

// handleMessage routes one inbound message from the gateway namespace.
//
// The gateway's logging channel is noisy and structurally unlike device
// traffic, so it is filtered before any parsing. Topics that resolve to
// no registered alias (our own command echoes, other bridge channels)
// are dropped at debug level, never treated as errors.
func (b *Bridge) handleMessage(topic string, payload []byte) error {
	if strings.HasPrefix(topic, b.topics.BridgeLoggingPrefix()) {
		return nil
	}

	if topic == b.topics.BridgeDevices() {
		return b.HandleDeviceList(context.Background(), payload)
	}

	alias, ok := b.topics.DeviceAlias(topic)
	if !ok {
		return nil
	}

	dev, err := b.registry.GetByAlias(alias)
	if err != nil {
		b.logger.Debug("message for unknown alias dropped", "topic", topic)
		return nil
	}

	return b.handleStateReport(context.Background(), dev, payload)
}

// handleStateReport decodes a flat JSON state report and writes each
// recognised field to the state manager.
//
// Numbers are decoded with json.Number so their wire text reaches the
// type coercion untouched. Fields not matching a declared input are
// ignored; per-field write failures are logged and do not abort the
// remaining fields.
func (b *Bridge) handleStateReport(ctx context.Context, dev *device.Device, payload []byte) error {
	if len(dev.Inputs()) == 0 {
		b.logger.Debug("state report for device with no inputs dropped",
			"device_id", dev.ID,
			"alias", dev.Alias,
		)
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(payload))
	dec.UseNumber()
	var fields map[string]any
	if err := dec.Decode(&fields); err != nil {
		return fmt.Errorf("%w: state report for %s: %v", ErrInvalidPayload, dev.Alias, err)
	}

	for name, raw := range fields {
		contact, ok := dev.InputContact(name)
		if !ok {
			continue
		}

		text, ok := fieldText(raw)
		if !ok {
			b.logger.Debug("non-scalar field ignored",
				"alias", dev.Alias,
				"field", name,
			)
			continue
		}

		target := device.NewTarget(dev.ID, contact.Name)
		value := WireToTyped(contact.Type, text)
		if err := b.states.Set(ctx, target, value); err != nil {
			b.logger.Warn("state update failed",
				"target", target.String(),
				"error", err,
			)
		}
	}
	return nil
}

// fieldText renders a decoded JSON field as wire text. Scalars only;
// nested objects, arrays, and nulls report false.
func fieldText(v any) (string, bool) {
	switch x := v.(type) {
	case json.Number:
		return x.String(), true
	case string:
		return x, true
	case bool:
		if x {
			return "true", true
		}
		return "false", true
	default:
		return "", false
	}
}

// SendSet publishes a command writing value to one of the device's
// output contacts.
//
// Returns:
//   - ErrUnknownDevice if the device is not registered
//   - ErrUnknownContact if the device declares no such output
//   - mqtt publish errors
func (b *Bridge) SendSet(ctx context.Context, deviceID, contact string, value any) error {
	dev, err := b.registry.GetByID(deviceID)
	if err != nil {
		b.logger.Warn("command for unknown device abandoned", "device_id", deviceID)
		return fmt.Errorf("%w: %s", ErrUnknownDevice, deviceID)
	}

	if _, ok := dev.OutputContact(contact); !ok {
		return fmt.Errorf("%w: %q on device %s", ErrUnknownContact, contact, dev.Alias)
	}

	payload := typedToWire(value)
	topic := b.topics.DeviceSet(dev.Alias, contact)
	if err := b.client.Publish(topic, []byte(payload), b.cfg.QoS, false); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}

	b.logger.Debug("command sent",
		"alias", dev.Alias,
		"contact", contact,
		"payload", payload,
	)
	return nil
}

// SendGet publishes a read request for one contact. The gateway
// answers on the device's state topic like any other report.
func (b *Bridge) SendGet(ctx context.Context, alias, contact string) error {
	payload, err := json.Marshal(map[string]string{contact: ""})
	if err != nil {
		return fmt.Errorf("encode read request: %w", err)
	}

	topic := b.topics.DeviceGet(alias)
	if err := b.client.Publish(topic, payload, b.cfg.QoS, false); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
