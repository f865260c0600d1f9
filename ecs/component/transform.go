package component

import "github.com/milk9111/hammerjam/common"

// Transform places an entity in the arena. Yaw is measured on the XZ plane and
// accumulates freely; it is never wrapped.
type Transform struct {
	Position common.Vec3
	Yaw      float64
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()
