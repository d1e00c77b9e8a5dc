package conduct

import (
	"github.com/nerrad567/slate-logic-core/internal/device"
)

// Conduct is one commanded state change: write Value to Target.
//
// Value carries whatever the automation definition specified: bool,
// float64, or string. Encoding for the wire happens at the transport
// adapter, not here.
type Conduct struct {
	Target device.Target `json:"target"`
	Value  any           `json:"value"`
}
