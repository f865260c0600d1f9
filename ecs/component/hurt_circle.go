package component

// HurtCircle is the disc on the arena floor that attacks test against.
type HurtCircle struct {
	Radius float64
}

var HurtCircleComponent = NewComponent[HurtCircle]()
