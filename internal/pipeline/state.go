package pipeline

import "log/slog"

// Identifies the orchestrator's position in a run.
type State string

// Run states, in normal order of occurrence. Failed is absorbing: any
// failure during building, packaging, or archiving lands there and the run
// ends.
const (
	StateIdle      State = "idle"
	StateCleaning  State = "cleaning"
	StateBuilding  State = "building"
	StatePackaging State = "packaging"
	StateArchiving State = "archiving"
	StateDone      State = "done"
	StateFailed    State = "failed"
)

// Moves the pipeline to the given state.
func (p *pipeline) transition(next State) {
	slog.Debug("state", "from", p.state, "to", next)
	p.state = next
	p.report.State = next
}
