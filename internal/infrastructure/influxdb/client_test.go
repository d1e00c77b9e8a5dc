package influxdb

import (
	"context"
	"errors"
	"testing"

	"github.com/nerrad567/slate-logic-core/internal/infrastructure/config"
)

func TestConnect_Disabled(t *testing.T) {
	_, err := Connect(config.InfluxDBConfig{Enabled: false})
	if !errors.Is(err, ErrDisabled) {
		t.Errorf("Connect() error = %v, want ErrDisabled", err)
	}
}

func TestClient_ZeroValue(t *testing.T) {
	// A zero-value client (never connected) must be safe to use:
	// writes are dropped, Flush and Close are no-ops.
	c := &Client{}

	if c.IsConnected() {
		t.Error("zero-value client reports connected")
	}

	c.WriteStateChange("dev-1", "temperature", 21.5)
	c.WritePoint("custom", map[string]string{"k": "v"}, map[string]interface{}{"f": 1})
	c.Flush()

	if err := c.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	if err := c.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}
}
