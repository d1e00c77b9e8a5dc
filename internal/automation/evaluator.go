package automation

import (
	"context"
	"fmt"
	"strings"
)

// Evaluator decides whether a process condition holds. Conditions are
// opaque expression strings; the engine treats evaluation failures as
// per-process faults and moves on.
type Evaluator interface {
	IsConditionMet(ctx context.Context, condition string) (bool, error)
}

// LiteralEvaluator evaluates literal boolean conditions: an empty
// condition always holds, "true" holds, "false" does not. Anything
// else is rejected with ErrInvalidCondition.
//
// It exists so processes work end to end before a richer expression
// grammar lands; real deployments are expected to swap it out.
type LiteralEvaluator struct{}

// IsConditionMet implements Evaluator.
func (LiteralEvaluator) IsConditionMet(_ context.Context, condition string) (bool, error) {
	switch strings.TrimSpace(condition) {
	case "", "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidCondition, condition)
	}
}
