package device

import "time"

// DataType classifies the values a contact carries.
// Unknown vendor types map to TypeUnsupported and are dropped during
// capability inference.
type DataType string

// DataType constants.
const (
	TypeBoolean     DataType = "boolean"
	TypeNumeric     DataType = "numeric"
	TypeString      DataType = "string"
	TypeUnsupported DataType = "unsupported"
)

// EndpointMain is the default endpoint name. Devices discovered from the
// gateway expose all their contacts on this single endpoint.
const EndpointMain = "main"

// Target identifies one addressable point on one device: a device plus
// one of its contacts. It is an immutable value type; equality is by
// field.
type Target struct {
	DeviceID string `json:"device_id"`
	Contact  string `json:"contact"`
}

// NewTarget creates a Target for the given device and contact.
func NewTarget(deviceID, contact string) Target {
	return Target{DeviceID: deviceID, Contact: contact}
}

// WithContact returns a copy of the target addressing a different
// contact on the same device.
func (t Target) WithContact(contact string) Target {
	t.Contact = contact
	return t
}

// IsZero reports whether either field of the target is unset.
func (t Target) IsZero() bool {
	return t.DeviceID == "" || t.Contact == ""
}

// String renders the target for logging.
func (t Target) String() string {
	return t.DeviceID + ":" + t.Contact
}

// Contact declares one input or output channel on a device endpoint.
//
// ReadOnly is only meaningful for inputs: a readonly input is one the
// device reports on its own and cannot be queried with a read request.
type Contact struct {
	Name     string   `json:"name"`
	Type     DataType `json:"type"`
	ReadOnly bool     `json:"readonly,omitempty"`
}

// Endpoint is a named grouping of contacts on a device.
// Contact order is the order the capabilities were encountered during
// inference; duplicates from distinct vendor features are preserved.
type Endpoint struct {
	Name    string    `json:"name"`
	Inputs  []Contact `json:"inputs"`
	Outputs []Contact `json:"outputs"`
}

// Device represents one physical device known to the system.
//
// Alias is the topic-namespace-derived identifier used for transport
// addressing; it is unique and is the sole key for topic-based lookup.
// Address is the vendor hardware address the gateway reports (e.g. the
// IEEE address of a Zigbee radio).
//
// The device catalogue is not persisted: devices are registered from
// gateway discovery snapshots at runtime.
type Device struct {
	ID           string     `json:"id"`
	Alias        string     `json:"alias"`
	Address      string     `json:"address"`
	Model        string     `json:"model,omitempty"`
	Manufacturer string     `json:"manufacturer,omitempty"`
	Endpoints    []Endpoint `json:"endpoints"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Copy creates an independent copy of the Device. Endpoint and contact
// slices are cloned so modifications to the copy do not affect the
// original. This is essential for registry cache isolation.
func (d *Device) Copy() *Device {
	if d == nil {
		return nil
	}

	cpy := *d
	if d.Endpoints != nil {
		cpy.Endpoints = make([]Endpoint, len(d.Endpoints))
		for i, ep := range d.Endpoints {
			epCpy := ep
			if ep.Inputs != nil {
				epCpy.Inputs = make([]Contact, len(ep.Inputs))
				copy(epCpy.Inputs, ep.Inputs)
			}
			if ep.Outputs != nil {
				epCpy.Outputs = make([]Contact, len(ep.Outputs))
				copy(epCpy.Outputs, ep.Outputs)
			}
			cpy.Endpoints[i] = epCpy
		}
	}
	return &cpy
}

// InputContact returns the first declared input contact with the given
// name, searching endpoints in order.
func (d *Device) InputContact(name string) (Contact, bool) {
	for _, ep := range d.Endpoints {
		for _, c := range ep.Inputs {
			if c.Name == name {
				return c, true
			}
		}
	}
	return Contact{}, false
}

// OutputContact returns the first declared output contact with the
// given name, searching endpoints in order.
func (d *Device) OutputContact(name string) (Contact, bool) {
	for _, ep := range d.Endpoints {
		for _, c := range ep.Outputs {
			if c.Name == name {
				return c, true
			}
		}
	}
	return Contact{}, false
}

// Inputs returns all declared input contacts across endpoints,
// preserving endpoint and declaration order.
func (d *Device) Inputs() []Contact {
	var inputs []Contact
	for _, ep := range d.Endpoints {
		inputs = append(inputs, ep.Inputs...)
	}
	return inputs
}
