package system

import (
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
)

// HitFreezeSystem turns freeze requests into a countdown. The arena asks Hold
// before each tick; a longer request extends a running freeze, a shorter one
// does not cut it.
type HitFreezeSystem struct {
	remaining int
}

func NewHitFreezeSystem() *HitFreezeSystem {
	return &HitFreezeSystem{}
}

func (s *HitFreezeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.HitFreezeRequestComponent.Kind(), func(e ecs.Entity, req *component.HitFreezeRequest) {
		s.remaining = max(s.remaining, req.Frames)
		ecs.Remove(w, e, component.HitFreezeRequestComponent.Kind())
	})
}

// Hold consumes one frozen tick. It reports false once the freeze is over.
func (s *HitFreezeSystem) Hold() bool {
	if s.remaining <= 0 {
		return false
	}
	s.remaining--
	return true
}
