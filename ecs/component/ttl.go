package component

// TTL queues its entity for removal once Remaining seconds have elapsed. Total
// is kept so effects can derive their progress.
type TTL struct {
	Remaining float64
	Total     float64
}

// Progress returns how much of the lifetime has passed, in [0, 1].
func (t TTL) Progress() float64 {
	if t.Total <= 0 {
		return 1
	}
	p := 1 - t.Remaining/t.Total
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

var TTLComponent = NewComponent[TTL]()
