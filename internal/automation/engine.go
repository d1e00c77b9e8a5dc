package automation

import (
	"context"

	"github.com/nerrad567/slate-logic-core/internal/conduct"
	"github.com/nerrad567/slate-logic-core/internal/device"
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

// ConductBus receives the engine's aggregated conduct batches.
// Satisfied by *conduct.Bus.
type ConductBus interface {
	PublishBatch(ctx context.Context, batch []conduct.Conduct)
}

// Engine drives the trigger → condition → conduct pipeline. It
// subscribes to device state changes and, for each change, evaluates
// every process triggered by the changed target.
//
// Process evaluation is isolated: one failing condition never stops its
// siblings. Conducts from all passing processes aggregate into a single
// ordered batch per state change.
type Engine struct {
	repo      Repository
	evaluator Evaluator
	bus       ConductBus
	logger    Logger
}

// NewEngine creates an automation engine. Pass a nil logger to disable
// logging.
func NewEngine(repo Repository, evaluator Evaluator, bus ConductBus, logger Logger) *Engine {
	if logger == nil {
		logger = noopLogger{}
	}
	return &Engine{
		repo:      repo,
		evaluator: evaluator,
		bus:       bus,
		logger:    logger,
	}
}

// OnStateChange is the device state listener. Wire it with
// States.Subscribe at startup.
//
// The value itself is not consulted here: any change to a trigger
// target fires its processes, and the condition decides whether the
// conducts run.
func (e *Engine) OnStateChange(ctx context.Context, target device.Target, _ any) {
	processes, err := e.repo.GetStateTriggered(ctx)
	if err != nil {
		e.logger.Error("fetching triggered processes failed", "error", err)
		return
	}

	triggered := make([]Process, 0, len(processes))
	for _, p := range processes {
		if p.Disabled {
			continue
		}
		if p.TriggeredBy(target) {
			triggered = append(triggered, p)
		}
	}

	if len(triggered) == 0 {
		e.logger.Debug("no processes triggered", "target", target.String())
		return
	}

	var batch []conduct.Conduct
	for _, p := range triggered {
		met, err := e.evaluator.IsConditionMet(ctx, p.Condition)
		if err != nil {
			e.logger.Warn("condition evaluation failed",
				"process", p.Alias,
				"condition", p.Condition,
				"error", err,
			)
			continue
		}
		if !met {
			e.logger.Debug("condition not met", "process", p.Alias)
			continue
		}
		batch = append(batch, p.Conducts...)
	}

	e.logger.Debug("state change evaluated",
		"target", target.String(),
		"processes", len(triggered),
		"conducts", len(batch),
	)

	// The batch is published even when empty: evaluated-but-idle is a
	// distinct outcome from nothing-triggered.
	e.bus.PublishBatch(ctx, batch)
}
