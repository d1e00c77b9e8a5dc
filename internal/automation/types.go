package automation

import (
	"time"

	"github.com/nerrad567/slate-logic-core/internal/conduct"
	"github.com/nerrad567/slate-logic-core/internal/device"
)

// Process is one automation definition: when any trigger target
// changes, evaluate the condition, and if it holds, emit the conducts.
//
// Triggers and Conducts are ordered; conduct order is preserved through
// dispatch so multi-step actions execute predictably.
type Process struct {
	ID        string            `json:"id"`
	Alias     string            `json:"alias"`
	Disabled  bool              `json:"disabled"`
	Condition string            `json:"condition,omitempty"`
	Triggers  []device.Target   `json:"triggers"`
	Conducts  []conduct.Conduct `json:"conducts"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// TriggeredBy reports whether the process lists the target as a
// trigger. Matching is literal field equality.
func (p *Process) TriggeredBy(target device.Target) bool {
	for _, t := range p.Triggers {
		if t == target {
			return true
		}
	}
	return false
}
