package zigbee

import (
	"testing"

	"github.com/nerrad567/slate-logic-core/internal/device"
)

func TestAccessMode(t *testing.T) {
	tests := []struct {
		access      AccessMode
		readable    bool
		writable    bool
		requestable bool
	}{
		{0, false, false, false},
		{1, true, false, false},
		{2, false, true, false},
		{4, false, false, true},
		{3, true, true, false},
		{5, true, false, true},
		{7, true, true, true},
	}
	for _, tt := range tests {
		if got := tt.access.Readable(); got != tt.readable {
			t.Errorf("access %d Readable = %v, want %v", tt.access, got, tt.readable)
		}
		if got := tt.access.Writable(); got != tt.writable {
			t.Errorf("access %d Writable = %v, want %v", tt.access, got, tt.writable)
		}
		if got := tt.access.Requestable(); got != tt.requestable {
			t.Errorf("access %d Requestable = %v, want %v", tt.access, got, tt.requestable)
		}
	}
}

func TestInferContacts_Leaf(t *testing.T) {
	exposes := []Expose{
		{Type: "binary", Property: "state", Access: 7},
		{Type: "numeric", Property: "power", Access: 1},
	}

	inputs, outputs := InferContacts(exposes, nil)

	if len(inputs) != 2 {
		t.Fatalf("expected 2 inputs, got %d", len(inputs))
	}
	if inputs[0].Name != "state" || inputs[0].Type != device.TypeBoolean || !inputs[0].ReadOnly {
		t.Errorf("unexpected first input: %+v", inputs[0])
	}
	if inputs[1].Name != "power" || inputs[1].Type != device.TypeNumeric || !inputs[1].ReadOnly {
		t.Errorf("unexpected second input: %+v", inputs[1])
	}

	if len(outputs) != 1 {
		t.Fatalf("expected 1 output, got %d", len(outputs))
	}
	if outputs[0].Name != "state" || outputs[0].Type != device.TypeBoolean {
		t.Errorf("unexpected output: %+v", outputs[0])
	}
}

func TestInferContacts_CompositeFlattening(t *testing.T) {
	// A "light" composite carries its contacts in Features; the parent
	// node itself has no property and contributes nothing.
	exposes := []Expose{
		{
			Type: "light",
			Features: []Expose{
				{Type: "binary", Property: "state", Access: 7},
				{Type: "numeric", Property: "brightness", Access: 7},
			},
		},
	}

	inputs, outputs := InferContacts(exposes, nil)

	if len(inputs) != 2 || len(outputs) != 2 {
		t.Fatalf("expected 2 inputs and 2 outputs, got %d and %d", len(inputs), len(outputs))
	}
	if inputs[0].Name != "state" || inputs[1].Name != "brightness" {
		t.Errorf("feature order not preserved: %+v", inputs)
	}
}

func TestInferContacts_GrandchildrenNotRecursed(t *testing.T) {
	exposes := []Expose{
		{
			Type: "light",
			Features: []Expose{
				{
					Type:     "composite",
					Property: "color",
					Access:   7,
					Features: []Expose{
						{Type: "numeric", Property: "hue", Access: 7},
					},
				},
			},
		},
	}

	inputs, outputs := InferContacts(exposes, nil)

	// "color" is composite (unsupported type) and "hue" is two levels
	// deep; neither becomes a contact.
	if len(inputs) != 0 || len(outputs) != 0 {
		t.Errorf("expected no contacts, got %d inputs %d outputs", len(inputs), len(outputs))
	}
}

func TestInferContacts_SkipsIncompleteNodes(t *testing.T) {
	exposes := []Expose{
		{Type: "binary", Access: 7},          // no property
		{Property: "mystery", Access: 7},     // no type
		{Type: "list", Property: "schedule", Access: 7}, // unsupported
		{Type: "enum", Property: "effect", Access: 2},
	}

	inputs, outputs := InferContacts(exposes, nil)

	if len(inputs) != 0 {
		t.Errorf("expected no inputs, got %+v", inputs)
	}
	if len(outputs) != 1 || outputs[0].Name != "effect" || outputs[0].Type != device.TypeString {
		t.Errorf("expected single enum output, got %+v", outputs)
	}
}

func TestInferContacts_RequestableOnlyInput(t *testing.T) {
	exposes := []Expose{
		{Type: "numeric", Property: "position", Access: 4},
	}

	inputs, _ := InferContacts(exposes, nil)

	if len(inputs) != 1 {
		t.Fatalf("expected 1 input, got %d", len(inputs))
	}
	// Requestable but not published: pollable, so not readonly.
	if inputs[0].ReadOnly {
		t.Error("requestable-only input marked readonly")
	}
}

func TestInferContacts_Empty(t *testing.T) {
	inputs, outputs := InferContacts(nil, nil)
	if len(inputs) != 0 || len(outputs) != 0 {
		t.Error("expected no contacts from empty exposes")
	}
}
