package zigbee

import (
	"github.com/nerrad567/slate-logic-core/internal/device"
)

// InferContacts derives input and output contacts from a definition's
// expose tree.
//
// The tree is flattened one level deep: each top-level node is
// considered alongside its immediate features as siblings. Composite
// nodes ("light", "switch") carry no Property of their own and fall out
// naturally; their features provide the contacts. Deeper nesting is not
// recursed.
//
// Classification per node:
//   - no Property or no Type → skipped silently (structural node)
//   - unsupported capability type → skipped with a warning
//   - readable or requestable access → input; ReadOnly mirrors the
//     published bit (a self-reporting value cannot be polled on demand)
//   - writable access → output
//
// A node with both readable and writable access yields both an input
// and an output. Encounter order is preserved and duplicates are kept.
func InferContacts(exposes []Expose, logger Logger) (inputs, outputs []device.Contact) {
	if logger == nil {
		logger = noopLogger{}
	}

	for _, node := range exposes {
		flattened := append([]Expose{node}, node.Features...)
		for _, exp := range flattened {
			if exp.Property == "" || exp.Type == "" {
				continue
			}

			dt := CapabilityType(exp.Type)
			if dt == device.TypeUnsupported {
				logger.Warn("skipping unsupported capability",
					"property", exp.Property,
					"type", exp.Type,
				)
				continue
			}

			if exp.Access.Readable() || exp.Access.Requestable() {
				inputs = append(inputs, device.Contact{
					Name:     exp.Property,
					Type:     dt,
					ReadOnly: exp.Access.Readable(),
				})
			}
			if exp.Access.Writable() {
				outputs = append(outputs, device.Contact{
					Name: exp.Property,
					Type: dt,
				})
			}
		}
	}
	return inputs, outputs
}
