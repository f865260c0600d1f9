package component

// SpawnCircle telegraphs an enemy. When its TTL runs out the enemy appears at
// the circle's transform.
type SpawnCircle struct {
	Kind   EnemyKind
	Radius float64
}

var SpawnCircleComponent = NewComponent[SpawnCircle]()
