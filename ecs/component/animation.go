package component

const (
	MarkerImpact   = "impact"
	MarkerFinished = "finished"
)

// AttackClip is the player's hammer swing timeline. While Playing, Elapsed
// advances and the impact marker fires once when it crosses ImpactAt*Duration.
type AttackClip struct {
	Duration float64
	ImpactAt float64
	Elapsed  float64
	Playing  bool
	Impacted bool
}

// Start rewinds the clip. It reports false if the clip is already playing.
func (c *AttackClip) Start() bool {
	if c.Playing {
		return false
	}
	c.Elapsed = 0
	c.Impacted = false
	c.Playing = true
	return true
}

// AnimationMarker is the payload of an ecs.EventAnimation event.
type AnimationMarker struct {
	Owner uint64
	Name  string
}

var AttackClipComponent = NewComponent[AttackClip]()
