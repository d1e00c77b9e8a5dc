package zigbee

// AccessMode is the gateway's capability access bitmask.
//
// The gateway publishes a three-bit mask per exposed property:
// bit 0 set means the device publishes the value on its own, bit 1
// means the value can be written, bit 2 means the value can be read
// on request. Classification code never touches the raw integer; it
// goes through the named helpers.
type AccessMode int

const (
	accessPublished   AccessMode = 1 // device reports the value itself
	accessSettable    AccessMode = 2 // value can be written
	accessRequestable AccessMode = 4 // value can be queried with a /get
)

// Readable reports whether the device publishes this value unprompted.
func (a AccessMode) Readable() bool { return a&accessPublished != 0 }

// Writable reports whether the value accepts writes.
func (a AccessMode) Writable() bool { return a&accessSettable != 0 }

// Requestable reports whether the value answers explicit read requests.
func (a AccessMode) Requestable() bool { return a&accessRequestable != 0 }

// Expose is one capability node from a device definition. Composite
// nodes (type "light", "switch", ...) carry their real capabilities in
// Features; leaf nodes carry Property/Type/Access directly.
type Expose struct {
	Type     string     `json:"type"`
	Property string     `json:"property"`
	Access   AccessMode `json:"access"`
	Features []Expose   `json:"features,omitempty"`
}

// Definition is the vendor model description attached to a discovered
// device.
type Definition struct {
	Model   string   `json:"model"`
	Vendor  string   `json:"vendor"`
	Exposes []Expose `json:"exposes"`
}

// BridgeDevice is one entry in the gateway's device list snapshot.
//
// Definition is a pointer: gateway infrastructure entries (the
// coordinator itself) publish no definition and register with no
// capabilities.
type BridgeDevice struct {
	IEEEAddress  string      `json:"ieee_address"`
	FriendlyName string      `json:"friendly_name"`
	Definition   *Definition `json:"definition"`
}
