package component

// Emerge plays the spawn-in: scale grows from FromScale to 1 over
// ScaleDuration and the body rises from BaseY-Drop to BaseY over
// RiseDuration. Wandering waits until it is removed.
type Emerge struct {
	Elapsed       float64
	ScaleDuration float64
	RiseDuration  float64
	FromScale     float64
	BaseY         float64
	Drop          float64
}

// Done reports whether both tracks have finished.
func (e Emerge) Done() bool {
	return e.Elapsed >= e.ScaleDuration && e.Elapsed >= e.RiseDuration
}

var EmergeComponent = NewComponent[Emerge]()
