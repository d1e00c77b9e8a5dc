package conduct

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/nerrad567/slate-logic-core/internal/device"
)

// ─── Mock Dependencies ───────────────────────────────────────────────

type mockSender struct {
	mu    sync.Mutex
	sends []sentValue
	err   error
}

type sentValue struct {
	deviceID string
	contact  string
	value    any
}

func (m *mockSender) SendSet(_ context.Context, deviceID, contact string, value any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sends = append(m.sends, sentValue{deviceID, contact, value})
	return nil
}

// ─── Bus Tests ───────────────────────────────────────────────────────

func TestBus_PublishBatch_Order(t *testing.T) {
	bus := NewBus(nil)

	var got []Conduct
	bus.Subscribe(func(_ context.Context, c Conduct) error {
		got = append(got, c)
		return nil
	})

	batch := []Conduct{
		{Target: device.NewTarget("dev-1", "state"), Value: true},
		{Target: device.NewTarget("dev-2", "brightness"), Value: 128.0},
		{Target: device.NewTarget("dev-1", "state"), Value: false},
	}
	bus.PublishBatch(context.Background(), batch)

	if len(got) != 3 {
		t.Fatalf("expected 3 conducts delivered, got %d", len(got))
	}
	for i := range batch {
		if got[i] != batch[i] {
			t.Errorf("conduct %d out of order: got %+v want %+v", i, got[i], batch[i])
		}
	}
}

func TestBus_PublishBatch_Empty(t *testing.T) {
	bus := NewBus(nil)

	called := false
	bus.Subscribe(func(context.Context, Conduct) error {
		called = true
		return nil
	})

	bus.PublishBatch(context.Background(), nil)
	if called {
		t.Error("handler invoked for empty batch")
	}
}

func TestBus_HandlerErrorIsolated(t *testing.T) {
	bus := NewBus(nil)

	var delivered int
	bus.Subscribe(func(context.Context, Conduct) error {
		return errors.New("transport down")
	})
	bus.Subscribe(func(context.Context, Conduct) error {
		delivered++
		return nil
	})

	bus.PublishBatch(context.Background(), []Conduct{
		{Target: device.NewTarget("dev-1", "state"), Value: true},
		{Target: device.NewTarget("dev-2", "state"), Value: false},
	})

	if delivered != 2 {
		t.Errorf("expected second handler to receive all conducts, got %d", delivered)
	}
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewBus(nil)

	var first, second int
	bus.Subscribe(func(context.Context, Conduct) error { first++; return nil })
	bus.Subscribe(func(context.Context, Conduct) error { second++; return nil })

	bus.PublishBatch(context.Background(), []Conduct{
		{Target: device.NewTarget("dev-1", "state"), Value: true},
	})

	if first != 1 || second != 1 {
		t.Errorf("expected both handlers invoked once, got %d and %d", first, second)
	}
}

// ─── Publisher Tests ─────────────────────────────────────────────────

func TestPublisher_Forward(t *testing.T) {
	sender := &mockSender{}
	p := NewPublisher(sender, nil)

	c := Conduct{Target: device.NewTarget("dev-1", "state"), Value: true}
	if err := p.Handle(context.Background(), c); err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	if len(sender.sends) != 1 {
		t.Fatalf("expected 1 send, got %d", len(sender.sends))
	}
	sent := sender.sends[0]
	if sent.deviceID != "dev-1" || sent.contact != "state" || sent.value != true {
		t.Errorf("unexpected send: %+v", sent)
	}
}

func TestPublisher_RejectsEmptyTarget(t *testing.T) {
	sender := &mockSender{}
	p := NewPublisher(sender, nil)
	ctx := context.Background()

	cases := []Conduct{
		{Target: device.Target{DeviceID: "", Contact: "state"}, Value: true},
		{Target: device.Target{DeviceID: "dev-1", Contact: ""}, Value: true},
		{Target: device.Target{}, Value: true},
	}
	for _, c := range cases {
		if err := p.Handle(ctx, c); !errors.Is(err, ErrInvalidTarget) {
			t.Errorf("target %+v: expected ErrInvalidTarget, got %v", c.Target, err)
		}
	}
	if len(sender.sends) != 0 {
		t.Errorf("invalid conducts reached the sender: %d sends", len(sender.sends))
	}
}

func TestPublisher_SenderError(t *testing.T) {
	wantErr := errors.New("device not found")
	p := NewPublisher(&mockSender{err: wantErr}, nil)

	c := Conduct{Target: device.NewTarget("dev-1", "state"), Value: true}
	if err := p.Handle(context.Background(), c); !errors.Is(err, wantErr) {
		t.Errorf("expected sender error propagated, got %v", err)
	}
}
