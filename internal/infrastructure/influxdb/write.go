package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// WriteStateChange records a single device state change.
//
// This is the primary method for recording device telemetry. Only
// numeric and boolean values are recorded; booleans are stored as 0/1
// so they can be graphed alongside numeric series. Other value kinds
// are skipped by the caller.
//
// The write is non-blocking; data is batched and sent asynchronously.
//
// Parameters:
//   - deviceID: Unique identifier for the device
//   - contact: The contact name the value arrived on (e.g., "temperature")
//   - value: The numeric value to record
//
// Example:
//
//	client.WriteStateChange("b2f61c3e", "temperature", 21.5)
func (c *Client) WriteStateChange(deviceID, contact string, value float64) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(
		"device_state",
		map[string]string{
			"device_id": deviceID,
			"contact":   contact,
		},
		map[string]interface{}{
			"value": value,
		},
		time.Now(),
	)

	c.writeAPI.WritePoint(point)
}

// WritePoint writes a custom point with full control over tags and fields.
//
// Use this for measurements that don't fit WriteStateChange.
//
// Parameters:
//   - measurement: The measurement name (table)
//   - tags: Key-value pairs for indexing (low cardinality)
//   - fields: Key-value pairs for the actual data
func (c *Client) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	if !c.IsConnected() {
		return
	}

	point := write.NewPoint(measurement, tags, fields, time.Now())
	c.writeAPI.WritePoint(point)
}
