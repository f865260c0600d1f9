package component

// HammerSmack is the short-lived effect left where the hammer lands. Percent
// runs from 0 to 1 over the effect's TTL.
type HammerSmack struct {
	Radius  float64
	Percent float64
}

var HammerSmackComponent = NewComponent[HammerSmack]()
