package zigbee

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nerrad567/slate-logic-core/internal/device"
)

// HandleDeviceList processes a full device-list snapshot from the
// gateway.
//
// Each entry is handled in isolation: a malformed or conflicting record
// is logged and skipped, never aborting the rest of the snapshot. Known
// devices (matched by hardware address) are reconciled in place,
// keeping their identity; unknown devices are registered fresh. Either
// way a read request is issued for every pollable input so current
// values arrive without waiting for the device to report.
func (b *Bridge) HandleDeviceList(ctx context.Context, payload []byte) error {
	var entries []BridgeDevice
	if err := json.Unmarshal(payload, &entries); err != nil {
		return fmt.Errorf("%w: device list: %v", ErrInvalidPayload, err)
	}

	b.logger.Info("device list received", "count", len(entries))

	for _, entry := range entries {
		if entry.IEEEAddress == "" {
			b.logger.Warn("device entry without hardware address skipped",
				"friendly_name", entry.FriendlyName,
			)
			continue
		}

		if existing, err := b.registry.GetByAddress(entry.IEEEAddress); err == nil {
			b.reconcileDevice(ctx, existing, entry)
			continue
		}

		b.registerDevice(ctx, entry)
	}
	return nil
}

// registerDevice builds and registers a new device from a snapshot
// entry, then requests initial values for its pollable inputs.
func (b *Bridge) registerDevice(ctx context.Context, entry BridgeDevice) {
	alias := entry.FriendlyName
	if alias == "" {
		alias = entry.IEEEAddress
	}

	dev := &device.Device{
		ID:        uuid.New().String(),
		Alias:     alias,
		Address:   entry.IEEEAddress,
		CreatedAt: time.Now().UTC(),
	}
	applyDefinition(dev, entry.Definition, b.logger)

	if err := b.registry.Register(dev); err != nil {
		b.logger.Error("device registration failed",
			"alias", alias,
			"address", entry.IEEEAddress,
			"error", err,
		)
		return
	}

	b.refreshInputs(ctx, dev)
}

// reconcileDevice refreshes a known device's metadata and capabilities
// from a fresh snapshot entry. Identity (ID, alias) is preserved so
// automation definitions referencing the device stay valid.
func (b *Bridge) reconcileDevice(ctx context.Context, existing *device.Device, entry BridgeDevice) {
	before := contactCount(existing)

	updated := existing.Copy()
	updated.Model = ""
	updated.Manufacturer = ""
	updated.Endpoints = nil
	applyDefinition(updated, entry.Definition, b.logger)

	if after := contactCount(updated); after != before {
		b.logger.Info("device capabilities changed",
			"device_id", updated.ID,
			"alias", updated.Alias,
			"contacts_before", before,
			"contacts_after", after,
		)
	}

	if err := b.registry.Replace(updated); err != nil {
		b.logger.Error("device reconciliation failed",
			"device_id", existing.ID,
			"error", err,
		)
		return
	}

	b.refreshInputs(ctx, updated)
}

// applyDefinition fills model metadata and the main endpoint from a
// vendor definition. Entries without a definition (the coordinator
// itself) keep an empty endpoint list.
func applyDefinition(dev *device.Device, def *Definition, logger Logger) {
	if def == nil {
		return
	}

	dev.Model = def.Model
	dev.Manufacturer = def.Vendor

	inputs, outputs := InferContacts(def.Exposes, logger)
	if len(inputs) == 0 && len(outputs) == 0 {
		return
	}
	dev.Endpoints = []device.Endpoint{{
		Name:    device.EndpointMain,
		Inputs:  inputs,
		Outputs: outputs,
	}}
}

// refreshInputs issues one read request per pollable input contact.
// ReadOnly inputs self-report and cannot be queried.
func (b *Bridge) refreshInputs(ctx context.Context, dev *device.Device) {
	for _, c := range dev.Inputs() {
		if c.ReadOnly {
			continue
		}
		if err := b.SendGet(ctx, dev.Alias, c.Name); err != nil {
			b.logger.Warn("read request failed",
				"alias", dev.Alias,
				"contact", c.Name,
				"error", err,
			)
		}
	}
}

func contactCount(dev *device.Device) int {
	n := 0
	for _, ep := range dev.Endpoints {
		n += len(ep.Inputs) + len(ep.Outputs)
	}
	return n
}
