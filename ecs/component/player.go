package component

type Player struct {
	MoveSpeed float64
	// CameraYaw rotates screen-space input onto the arena floor.
	CameraYaw float64
	// Reach is how far in front of the player a hammer smack lands.
	Reach float64
}

var PlayerComponent = NewComponent[Player]()
