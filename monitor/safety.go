package monitor

import "github.com/csimtl/csimtl/mtl"

// SafetyCondition uniquely identifies an MTL formula expressing a named
// safety property (hazard or unsafe control action), giving the monitor's
// formula set documented provenance instead of bare mtl.Node values.
type SafetyCondition struct {
	UID       string
	Condition mtl.Node
}

// UCACause classifies why an UnsafeControlAction is unsafe, per STPA's
// standard four causal categories.
type UCACause int

const (
	// Providing marks a control action that causes a hazard when given.
	Providing UCACause = iota
	// NotProviding marks a control action that causes a hazard when
	// withheld.
	NotProviding
	// Duration marks a control action applied for too long or too short a
	// duration.
	Duration
	// Scheduling marks a control action given too early, too late, or out
	// of sequence.
	Scheduling
)

// String renders the cause for diagnostics.
func (c UCACause) String() string {
	switch c {
	case Providing:
		return "providing"
	case NotProviding:
		return "not-providing"
	case Duration:
		return "duration"
	case Scheduling:
		return "scheduling"
	default:
		return "unknown"
	}
}

// UnsafeControlAction is an STPA unsafe-control-action definition: a named
// safety condition with a human-readable description and, optionally, its
// causal category.
type UnsafeControlAction struct {
	SafetyCondition
	Description string
	Cause       UCACause
	HasCause    bool
}

// Hazard is an STPA hazard definition: a named safety condition with a
// human-readable description.
type Hazard struct {
	SafetyCondition
	Description string
}
