// Package automation implements the trigger → condition → conduct
// pipeline.
//
//	┌──────────────┐ state change ┌────────┐ GetStateTriggered ┌────────────┐
//	│ device.States│─────────────▶│ Engine │──────────────────▶│ Repository │
//	└──────────────┘              │        │                   │ (SQLite)   │
//	                              │        │                   └────────────┘
//	                              │        │ IsConditionMet    ┌────────────┐
//	                              │        │──────────────────▶│ Evaluator  │
//	                              │        │                   └────────────┘
//	                              └───┬────┘
//	                                  │ PublishBatch
//	                                  ▼
//	                          ┌─────────────┐
//	                          │ conduct.Bus │
//	                          └─────────────┘
//
// A Process names trigger targets, an opaque condition expression, and
// an ordered conduct list. When any trigger target changes, the engine
// evaluates the condition and, if it holds, appends the conducts to the
// batch for that state change. Evaluation order follows repository
// retrieval order, so the batch is deterministic for a given store.
//
// Failures stay local: a broken condition logs a warning and skips that
// process only; a repository fault logs an error and skips the whole
// state change.
package automation
