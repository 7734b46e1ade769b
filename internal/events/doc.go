// Package events provides the observability event model and event bus for
// the strategy pipeline.
//
// The pipeline publishes lifecycle events (pipeline.started, stage.started,
// stage.completed, ...) as each analysis stage runs. Consumers such as a
// progress UI or a log sink subscribe with optional filters. Publishing is
// non-blocking: a slow subscriber has events dropped for it rather than
// stalling the pipeline.
package events
