package component

// HealthBar mirrors an owner's Health for presentation.
type HealthBar struct {
	Owner   uint64 // ecs.Entity, not owned
	Total   float64
	Current float64
	Last    float64
	// OffsetY lifts the bar above the owner.
	OffsetY float64
}

// Fraction returns the current and trailing fill in [0, 1].
func (b HealthBar) Fraction() (current, last float64) {
	if b.Total <= 0 {
		return 0, 0
	}
	return clampUnit(b.Current / b.Total), clampUnit(b.Last / b.Total)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

var HealthBarComponent = NewComponent[HealthBar]()
