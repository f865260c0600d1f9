package component

// Health tracks vitality. Current is only changed by damage and is not clamped.
// Last trails Current for the display.
type Health struct {
	Total   float64
	Current float64
	Last    float64
}

// NewHealth returns a full record.
func NewHealth(total float64) *Health {
	return &Health{Total: total, Current: total, Last: total}
}

var HealthComponent = NewComponent[Health]()
