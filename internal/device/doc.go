// Package device provides the internal device abstraction: the
// catalogue of known devices, their endpoints and typed contacts, and
// the live state of every contact.
//
// # Architecture
//
//	┌──────────────┐  discovery   ┌──────────────┐
//	│ Gateway      │─────────────▶│ Registry     │
//	│ bridge       │              │ (catalogue)  │
//	└──────┬───────┘              └──────┬───────┘
//	       │ state reports               │ contact lookup
//	       ▼                             ▼
//	┌──────────────┐   notify    ┌──────────────┐
//	│ States       │────────────▶│ Listeners    │
//	│ (last values)│             │ (automation) │
//	└──────┬───────┘             └──────────────┘
//	       │ numeric values
//	       ▼
//	┌──────────────┐
//	│ HistoryWriter│
//	└──────────────┘
//
// The Registry is the single source of truth for device identity. It is
// keyed three ways: internal ID (stable across rediscovery), alias (the
// gateway topic key), and hardware address (the reconciliation key when
// a device reappears under a new alias).
//
// States holds the last value reported for each (device, contact)
// target and fans changes out to listeners in subscription order.
// Listener failures are isolated; one misbehaving consumer never blocks
// state ingestion.
//
// Devices are not persisted. The catalogue rebuilds from the gateway's
// discovery snapshot on every startup.
package device
