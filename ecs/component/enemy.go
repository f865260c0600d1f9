package component

type EnemyKind string

const (
	KindEyeball     EnemyKind = "eyeball"
	KindFlockSphere EnemyKind = "flock_sphere"
)

// EnemyParams are the tuning values an enemy was spawned with. Hot reloading a
// spec does not touch enemies that already exist.
type EnemyParams struct {
	MoveSpeed  float64
	FacingRate float64
	// AttackRange limits how close the player must be on arrival. Zero or less
	// means the enemy attacks whether or not a player is near.
	AttackRange    float64
	AttackDuration float64
	// FaceTarget snaps the yaw toward the player when an attack starts.
	FaceTarget   bool
	SpinRate     float64
	BeamLength   float64
	BeamStrength float64
	BeamCooldown float64
}

type Enemy struct {
	Kind   EnemyKind
	Params EnemyParams
}

var EnemyComponent = NewComponent[Enemy]()
