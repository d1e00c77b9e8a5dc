// Package influxdb provides the optional state-history writer for
// Slate Logic Core.
//
// When enabled, numeric and boolean device state changes are recorded
// as device_state points (tags: device_id, contact) so dashboards can
// chart device behaviour over time. Writes are batched and
// non-blocking; a write failure never affects state processing.
//
// The integration is disabled by default. Connect returns ErrDisabled
// when influxdb.enabled is false, and callers run without history.
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if errors.Is(err, influxdb.ErrDisabled) {
//	    client = nil // state manager treats nil history as a no-op
//	}
package influxdb
