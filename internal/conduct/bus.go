package conduct

import (
	"context"
	"sync"
)

// Logger abstracts structured logging.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any) {}
func (noopLogger) Info(msg string, args ...any)  {}
func (noopLogger) Warn(msg string, args ...any)  {}
func (noopLogger) Error(msg string, args ...any) {}

// Handler consumes conducts from the bus. An error from a handler is
// logged and the dispatch continues; handlers never abort a batch.
type Handler func(ctx context.Context, c Conduct) error

// Bus is the in-process conduct channel between the automation engine
// and the transport publishers. Dispatch is synchronous and ordered:
// each conduct in a batch is delivered to every subscribed handler, in
// batch order, before the next conduct is dispatched.
//
// Safe for concurrent use.
type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	logger   Logger
}

// NewBus creates an empty conduct bus. Pass nil to disable logging.
func NewBus(logger Logger) *Bus {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Bus{logger: logger}
}

// Subscribe registers a handler for published conducts.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// PublishBatch dispatches the batch to all subscribed handlers.
// Handler errors are logged per conduct and never stop the batch.
// Publishing an empty batch is valid and dispatches nothing.
func (b *Bus) PublishBatch(ctx context.Context, batch []Conduct) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	if len(batch) == 0 {
		b.logger.Debug("conduct batch empty, nothing to dispatch")
		return
	}

	b.logger.Debug("dispatching conduct batch", "count", len(batch))

	for _, c := range batch {
		for _, h := range handlers {
			if err := h(ctx, c); err != nil {
				b.logger.Error("conduct handler failed",
					"target", c.Target.String(),
					"error", err,
				)
			}
		}
	}
}
