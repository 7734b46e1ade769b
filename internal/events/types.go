package events

import (
	"time"

	"github.com/CodeMasters-AiFactory/Stargate-sub019/internal/types"
)

// EventType identifies the category and nature of an event emitted by the
// strategy pipeline.
type EventType string

// Pipeline lifecycle events.
// These track a full pipeline run from invocation to result.
const (
	EventPipelineStarted   EventType = "pipeline.started"
	EventPipelineCompleted EventType = "pipeline.completed"
	EventPipelineFailed    EventType = "pipeline.failed"
)

// Stage lifecycle events.
// These track individual analysis stages within a run. The presentation
// layer subscribes to these for progress feedback instead of the legacy
// simulated-delay logging.
const (
	EventStageStarted   EventType = "stage.started"
	EventStageCompleted EventType = "stage.completed"
	EventStageDegraded  EventType = "stage.degraded"
)

// String returns the string representation of the event type.
func (t EventType) String() string {
	return string(t)
}

// Stage names used in stage lifecycle events.
const (
	StagePlanner     = "planner"
	StageResearcher  = "researcher"
	StageRecommender = "recommender"
	StageJudge       = "judge"
	StageExecutioner = "executioner"
)

// Event represents a single observability event in the strategy pipeline.
// Events are JSON-serializable and carry enough context for filtering
// and progress display.
type Event struct {
	// Type identifies the category and nature of the event
	Type EventType `json:"type"`

	// Timestamp records when the event occurred
	Timestamp time.Time `json:"timestamp"`

	// RunID associates the event with a pipeline run
	RunID types.ID `json:"run_id,omitempty"`

	// Stage is the stage name for stage.* events (empty for pipeline.* events)
	Stage string `json:"stage,omitempty"`

	// Message is a short human-readable description
	Message string `json:"message,omitempty"`

	// Data carries event-specific payload fields (scores, durations, flags)
	Data map[string]any `json:"data,omitempty"`
}

// NewEvent creates an event stamped with the current time.
func NewEvent(eventType EventType, runID types.ID, stage string) Event {
	return Event{
		Type:      eventType,
		Timestamp: time.Now(),
		RunID:     runID,
		Stage:     stage,
	}
}

// Filter defines criteria for selecting events in a subscription.
// Zero-value fields match everything.
type Filter struct {
	// Types restricts the subscription to the listed event types.
	Types []EventType

	// RunID restricts the subscription to a single pipeline run.
	RunID types.ID

	// Stage restricts the subscription to a single stage name.
	Stage string
}

// Matches determines if the given event satisfies this filter's criteria.
func (f *Filter) Matches(event Event) bool {
	if len(f.Types) > 0 {
		found := false
		for _, t := range f.Types {
			if event.Type == t {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if !f.RunID.IsZero() && event.RunID != f.RunID {
		return false
	}

	if f.Stage != "" && event.Stage != f.Stage {
		return false
	}

	return true
}
