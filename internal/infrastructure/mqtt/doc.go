// Package mqtt provides the MQTT transport client for Slate Logic Core.
//
// This package wraps eclipse/paho.mqtt.golang with:
//   - Connection management and automatic reconnection
//   - Subscription tracking and restoration after reconnect
//   - Last Will and Testament for offline detection
//   - Panic recovery around every message handler
//   - Topic builders for the gateway namespace and Core status topics
//
// # Topic Layout
//
// The Zigbee gateway publishes under a configurable namespace
// (bridge.base_topic, default "zigbee2mqtt"):
//
//	<base>/<alias>                        device state (JSON field map)
//	<base>/<alias>/set/<contact>          command to one device contact
//	<base>/<alias>/get                    read request ({"<contact>": ""})
//	<base>/bridge/devices                 full device list snapshot
//	<base>/bridge/config/devices/get      request the device list
//	<base>/bridge/config/permit_join      pairing control
//	<base>/bridge/logging...              gateway diagnostics (ignored)
//
// Core's own status lives under the fixed slatelogic/system prefix.
//
// # Thread Safety
//
// All Client methods are safe for concurrent use. Message handlers are
// invoked on separate goroutines by paho; handler errors and panics are
// caught and logged, never propagated into the delivery loop.
package mqtt
