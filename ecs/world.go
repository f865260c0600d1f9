package ecs

import "github.com/milk9111/hammerjam/ecs/component"

// World owns entities, component stores, the frame event queue and the
// pending-removal queue.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*SparseSet
	events   EventQueue

	removals   []Entity
	removalSet map[Entity]struct{}

	dt      float64
	elapsed float64
	tick    uint64
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{
		stores:     make(map[component.ComponentID]*SparseSet),
		removalSet: make(map[Entity]struct{}),
	}
}

// CreateEntity allocates a new entity.
func CreateEntity(w *World) Entity {
	if w == nil {
		return 0
	}
	return w.entities.create()
}

// DestroyEntity removes an entity and all of its components immediately.
// Systems should prefer QueueRemoval so handles stay valid for the rest of the
// frame.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	id := int(e.id())
	for _, s := range w.stores {
		s.Remove(id)
	}
	return w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func IsAlive(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	return w.entities.isAlive(e)
}

// Entities returns every live entity.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// QueueRemoval marks e for destruction at the end of the current frame.
// Queuing the same entity twice is a no-op.
func QueueRemoval(w *World, e Entity) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	if w.removalSet == nil {
		w.removalSet = make(map[Entity]struct{})
	}
	if _, ok := w.removalSet[e]; ok {
		return
	}
	w.removalSet[e] = struct{}{}
	w.removals = append(w.removals, e)
}

// RemovalQueued reports whether e is waiting for the end-of-frame flush.
func RemovalQueued(w *World, e Entity) bool {
	if w == nil {
		return false
	}
	_, ok := w.removalSet[e]
	return ok
}

// Emit pushes an event onto the frame queue.
func Emit(w *World, evt Event) {
	if w == nil {
		return
	}
	w.events.Push(evt)
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Advance moves the world clock forward by dt seconds. Call it once before each
// scheduler update.
func (w *World) Advance(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.elapsed += dt
	w.tick++
}

// Delta returns the duration of the current tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// Elapsed returns the total simulated time in seconds.
func (w *World) Elapsed() float64 {
	if w == nil {
		return 0
	}
	return w.elapsed
}

// Tick returns the number of ticks advanced so far.
func (w *World) Tick() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// EndFrame destroys every queued entity and drops undrained events.
func (w *World) EndFrame() {
	if w == nil {
		return
	}
	w.flushRemovals()
	w.events.flush()
}

func (w *World) flushRemovals() {
	for _, e := range w.removals {
		DestroyEntity(w, e)
	}
	w.removals = w.removals[:0]
	clear(w.removalSet)
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	if w == nil {
		return nil
	}
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]*SparseSet)
	}
	s := &SparseSet{}
	w.stores[id] = s
	return s
}
