package component

import "github.com/jakecoffman/cp"

type BehaviorMode int

const (
	BehaviorIdle BehaviorMode = iota
	BehaviorWandering
	BehaviorAttacking
)

func (m BehaviorMode) String() string {
	switch m {
	case BehaviorIdle:
		return "idle"
	case BehaviorWandering:
		return "wandering"
	case BehaviorAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// Wander is the payload of BehaviorWandering. Points are on the XZ plane.
type Wander struct {
	From cp.Vector
	To   cp.Vector
}

// Attack is the payload of BehaviorAttacking. Both timers count down in
// seconds; a Cooldown of zero means the beam may hit.
type Attack struct {
	Remaining float64
	Cooldown  float64
}

// Behavior holds exactly one enemy mode. Only the payload of the current mode
// is meaningful; switching modes zeroes the others.
type Behavior struct {
	Mode   BehaviorMode
	Wander Wander
	Attack Attack
}

func (b *Behavior) SetIdle() {
	*b = Behavior{Mode: BehaviorIdle}
}

func (b *Behavior) SetWandering(from, to cp.Vector) {
	*b = Behavior{Mode: BehaviorWandering, Wander: Wander{From: from, To: to}}
}

func (b *Behavior) SetAttacking(duration float64) {
	*b = Behavior{Mode: BehaviorAttacking, Attack: Attack{Remaining: duration}}
}

var BehaviorComponent = NewComponent[Behavior]()
