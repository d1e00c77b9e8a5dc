// Package zigbee bridges a zigbee2mqtt gateway namespace to the
// internal device abstraction.
//
// # Architecture
//
//	                       <ns>/#
//	┌──────────┐  subscribe  ┌──────────────────────────────┐
//	│ MQTT     │────────────▶│ Bridge                       │
//	│ broker   │             │                              │
//	│          │             │  <ns>/bridge/logging*  drop  │
//	│          │             │  <ns>/bridge/devices ──▶ discovery
//	│          │             │  <ns>/<alias> ─────────▶ state decode
//	│          │◀────────────│                              │
//	└──────────┘  publish    │  SendSet  <ns>/<alias>/set/<contact>
//	                         │  SendGet  <ns>/<alias>/get   │
//	                         └──────────────────────────────┘
//
// Discovery consumes the gateway's full device-list snapshots: each
// entry's expose tree is flattened into typed input/output contacts on
// a single "main" endpoint. Devices are keyed by hardware address for
// reconciliation, so a renamed or re-flashed device keeps its internal
// identity across snapshots.
//
// State reports are flat JSON objects. Each field matching a declared
// input is coerced to the contact's declared type; text that does not
// fit the type passes through unchanged rather than failing, so a
// misbehaving device still surfaces its raw values.
//
// On startup the bridge requests a device list and announces
// permit_join=false, keeping the network closed to new pairings unless
// an operator opens it.
package zigbee
