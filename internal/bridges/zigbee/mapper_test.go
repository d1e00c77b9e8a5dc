package zigbee

import (
	"testing"

	"github.com/nerrad567/slate-logic-core/internal/device"
)

func TestCapabilityType(t *testing.T) {
	tests := []struct {
		vendor string
		want   device.DataType
	}{
		{"binary", device.TypeBoolean},
		{"numeric", device.TypeNumeric},
		{"enum", device.TypeString},
		{"composite", device.TypeUnsupported},
		{"list", device.TypeUnsupported},
		{"", device.TypeUnsupported},
	}
	for _, tt := range tests {
		if got := CapabilityType(tt.vendor); got != tt.want {
			t.Errorf("CapabilityType(%q) = %v, want %v", tt.vendor, got, tt.want)
		}
	}
}

func TestWireToTyped_Boolean(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"true", true},
		{"TRUE", true},
		{"on", true},
		{"ON", true},
		{"false", false},
		{"False", false},
		{"off", false},
		{"OFF", false},
		// Unrecognised text passes through unchanged.
		{"toggle", "toggle"},
		{"1", "1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := WireToTyped(device.TypeBoolean, tt.raw); got != tt.want {
			t.Errorf("WireToTyped(boolean, %q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestWireToTyped_Numeric(t *testing.T) {
	tests := []struct {
		raw  string
		want any
	}{
		{"42", 42.0},
		{"-3.5", -3.5},
		{"0", 0.0},
		{"1e3", 1000.0},
		// Unparsable text passes through unchanged.
		{"warm", "warm"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := WireToTyped(device.TypeNumeric, tt.raw); got != tt.want {
			t.Errorf("WireToTyped(numeric, %q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestWireToTyped_String(t *testing.T) {
	// String and unsupported types never coerce.
	if got := WireToTyped(device.TypeString, "true"); got != "true" {
		t.Errorf("string type coerced: %v", got)
	}
	if got := WireToTyped(device.TypeUnsupported, "42"); got != "42" {
		t.Errorf("unsupported type coerced: %v", got)
	}
}

func TestTypedToWire(t *testing.T) {
	tests := []struct {
		value any
		want  string
	}{
		{true, "ON"},
		{false, "OFF"},
		{"true", "ON"},
		{"TRUE", "ON"},
		{"false", "OFF"},
		{"toggle", "toggle"},
		{42.0, "42"},
		{22.5, "22.5"},
		{"auto", "auto"},
	}
	for _, tt := range tests {
		if got := typedToWire(tt.value); got != tt.want {
			t.Errorf("typedToWire(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
