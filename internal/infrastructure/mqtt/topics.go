package mqtt

import (
	"fmt"
	"strings"
)

// TopicPrefixSystem is the base for Core's own status topics.
// Distinct from the gateway namespace: the gateway's topics are
// configured per deployment, Core's status topic is fixed.
const TopicPrefixSystem = "slatelogic/system"

// Topics provides builders for the gateway topic namespace.
// Base is the configured namespace prefix the Zigbee gateway publishes
// under (bridge.base_topic, e.g. "zigbee2mqtt"). Using these helpers
// ensures consistent topic naming across the codebase.
//
//	topics := mqtt.Topics{Base: "zigbee2mqtt"}
//	topics.DeviceSet("lamp1", "state") // "zigbee2mqtt/lamp1/set/state"
type Topics struct {
	Base string
}

// All returns the wildcard pattern covering the entire gateway namespace.
//
// Pattern: <base>/#
func (t Topics) All() string {
	return t.Base + "/#"
}

// DeviceState returns the topic a device publishes its state on.
//
// Example: zigbee2mqtt/lamp1
func (t Topics) DeviceState(alias string) string {
	return fmt.Sprintf("%s/%s", t.Base, alias)
}

// DeviceSet returns the topic for commanding a single device contact.
//
// Example: zigbee2mqtt/lamp1/set/state
func (t Topics) DeviceSet(alias, contact string) string {
	return fmt.Sprintf("%s/%s/set/%s", t.Base, alias, contact)
}

// DeviceGet returns the topic for requesting a device's current values.
// The payload names the contacts to read: {"state": ""}.
//
// Example: zigbee2mqtt/lamp1/get
func (t Topics) DeviceGet(alias string) string {
	return fmt.Sprintf("%s/%s/get", t.Base, alias)
}

// BridgeDevices returns the topic the gateway publishes its full device
// list on. The payload is a JSON array of device descriptions.
//
// Example: zigbee2mqtt/bridge/devices
func (t Topics) BridgeDevices() string {
	return fmt.Sprintf("%s/bridge/devices", t.Base)
}

// BridgeDevicesGet returns the topic for requesting the device list.
// Published with an empty payload.
//
// Example: zigbee2mqtt/bridge/config/devices/get
func (t Topics) BridgeDevicesGet() string {
	return fmt.Sprintf("%s/bridge/config/devices/get", t.Base)
}

// BridgePermitJoin returns the topic controlling whether new devices may
// pair with the network. Payload is "true" or "false".
//
// Example: zigbee2mqtt/bridge/config/permit_join
func (t Topics) BridgePermitJoin() string {
	return fmt.Sprintf("%s/bridge/config/permit_join", t.Base)
}

// BridgeLoggingPrefix returns the prefix of the gateway's diagnostic
// logging sub-channel. Messages under this prefix carry gateway log
// lines and are ignored before any parsing.
//
// Example: zigbee2mqtt/bridge/logging
func (t Topics) BridgeLoggingPrefix() string {
	return fmt.Sprintf("%s/bridge/logging", t.Base)
}

// DeviceAlias extracts the device alias from an inbound topic by
// stripping the namespace prefix. Returns false when the topic is not
// under the namespace at all.
//
// The remainder may contain further segments (e.g. our own "/set/..."
// publishes echoed back by the broker); those never match a registered
// alias and fall through the caller's unknown-device path.
func (t Topics) DeviceAlias(topic string) (string, bool) {
	prefix := t.Base + "/"
	if !strings.HasPrefix(topic, prefix) {
		return "", false
	}
	return strings.TrimPrefix(topic, prefix), true
}

// SystemStatus returns Core's own status topic, used for the LWT and
// online/offline announcements.
//
// Example: slatelogic/system/status
func (Topics) SystemStatus() string {
	return fmt.Sprintf("%s/status", TopicPrefixSystem)
}
