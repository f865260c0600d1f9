package component

// Damage is the payload of an ecs.EventDamage event. Entities are carried as
// raw ecs.Entity values.
type Damage struct {
	Attacker uint64
	Receiver uint64
	Strength float64
}
