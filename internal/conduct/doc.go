// Package conduct carries commanded state changes from the automation
// engine out to device transports.
//
//	┌────────────┐  PublishBatch  ┌─────┐  Handle   ┌───────────┐
//	│ Automation │───────────────▶│ Bus │──────────▶│ Publisher │
//	│ engine     │                └─────┘           └─────┬─────┘
//	└────────────┘                                        │ SendSet
//	                                                      ▼
//	                                               ┌───────────┐
//	                                               │ Gateway   │
//	                                               │ bridge    │
//	                                               └───────────┘
//
// The Bus decouples producers from transports: the engine publishes one
// ordered batch per state change and every subscribed handler sees
// every conduct. Handler failures are logged and isolated so one dead
// transport never blocks the others.
package conduct
