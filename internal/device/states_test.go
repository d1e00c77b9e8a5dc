package device

import (
	"context"
	"errors"
	"sync"
	"testing"
)

// ─── Mock Dependencies ───────────────────────────────────────────────

type mockHistoryWriter struct {
	mu     sync.Mutex
	writes []historyWrite
}

type historyWrite struct {
	deviceID string
	contact  string
	value    float64
}

func (m *mockHistoryWriter) WriteStateChange(deviceID, contact string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = append(m.writes, historyWrite{deviceID, contact, value})
}

func (m *mockHistoryWriter) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.writes)
}

func newTestStates(t *testing.T, history HistoryWriter) *States {
	t.Helper()

	r := NewRegistry(nil)
	if err := r.Register(testDevice("dev-1", "kitchen_plug", "0x0011")); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	return NewStates(r, history, nil)
}

// ─── Tests ───────────────────────────────────────────────────────────

func TestStates_SetAndGet(t *testing.T) {
	s := newTestStates(t, nil)
	target := NewTarget("dev-1", "state")

	if err := s.Set(context.Background(), target, true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok := s.Get(target)
	if !ok {
		t.Fatal("expected value after Set")
	}
	if v != true {
		t.Errorf("expected true, got %v", v)
	}
}

func TestStates_Get_Unset(t *testing.T) {
	s := newTestStates(t, nil)

	if _, ok := s.Get(NewTarget("dev-1", "state")); ok {
		t.Error("expected no value before Set")
	}
}

func TestStates_Set_UnknownDevice(t *testing.T) {
	s := newTestStates(t, nil)

	err := s.Set(context.Background(), NewTarget("missing", "state"), true)
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("expected ErrDeviceNotFound, got %v", err)
	}
}

func TestStates_Set_UnknownContact(t *testing.T) {
	s := newTestStates(t, nil)

	err := s.Set(context.Background(), NewTarget("dev-1", "nonexistent"), true)
	if !errors.Is(err, ErrUnknownContact) {
		t.Errorf("expected ErrUnknownContact, got %v", err)
	}
}

func TestStates_NotifiesListeners(t *testing.T) {
	s := newTestStates(t, nil)

	var got []Target
	s.Subscribe(func(_ context.Context, target Target, _ any) {
		got = append(got, target)
	})
	s.Subscribe(func(_ context.Context, target Target, _ any) {
		got = append(got, target)
	})

	target := NewTarget("dev-1", "power")
	if err := s.Set(context.Background(), target, 42.5); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(got))
	}
	if got[0] != target || got[1] != target {
		t.Errorf("listeners received wrong target: %v", got)
	}
}

func TestStates_ListenerPanicIsolated(t *testing.T) {
	s := newTestStates(t, nil)

	var survived bool
	s.Subscribe(func(context.Context, Target, any) {
		panic("boom")
	})
	s.Subscribe(func(context.Context, Target, any) {
		survived = true
	})

	if err := s.Set(context.Background(), NewTarget("dev-1", "state"), false); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if !survived {
		t.Error("second listener not invoked after first panicked")
	}
}

func TestStates_HistoryRecording(t *testing.T) {
	history := &mockHistoryWriter{}
	s := newTestStates(t, history)
	ctx := context.Background()

	// Numeric values write through directly.
	if err := s.Set(ctx, NewTarget("dev-1", "power"), 12.3); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// Booleans are recorded as 0/1.
	if err := s.Set(ctx, NewTarget("dev-1", "state"), true); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	// Strings are not recorded.
	if err := s.Set(ctx, NewTarget("dev-1", "state"), "toggle"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	if history.count() != 2 {
		t.Fatalf("expected 2 history writes, got %d", history.count())
	}
	if history.writes[0].value != 12.3 {
		t.Errorf("expected 12.3, got %v", history.writes[0].value)
	}
	if history.writes[1].value != 1.0 {
		t.Errorf("expected boolean true recorded as 1, got %v", history.writes[1].value)
	}
}

func TestTarget_Helpers(t *testing.T) {
	target := NewTarget("dev-1", "state")

	if target.IsZero() {
		t.Error("populated target reported zero")
	}
	if !(Target{}).IsZero() {
		t.Error("empty target not reported zero")
	}
	if got := target.WithContact("power"); got.Contact != "power" || got.DeviceID != "dev-1" {
		t.Errorf("WithContact produced %v", got)
	}
	if target.String() != "dev-1:state" {
		t.Errorf("unexpected String: %q", target.String())
	}
}
