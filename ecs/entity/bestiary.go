package entity

import (
	"fmt"
	"sync"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/prefabs"
)

// Bestiary spawns enemies from the current set of enemy prefabs. Specs may be
// replaced while running; enemies already spawned keep their values.
type Bestiary struct {
	mu    sync.RWMutex
	specs map[component.EnemyKind]*prefabs.EnemySpec
}

func NewBestiary(specs map[string]*prefabs.EnemySpec) *Bestiary {
	b := &Bestiary{}
	b.Replace(specs)
	return b
}

// Replace swaps in a new spec set.
func (b *Bestiary) Replace(specs map[string]*prefabs.EnemySpec) {
	next := make(map[component.EnemyKind]*prefabs.EnemySpec, len(specs))
	for kind, spec := range specs {
		if spec != nil {
			next[component.EnemyKind(kind)] = spec
		}
	}
	b.mu.Lock()
	b.specs = next
	b.mu.Unlock()
}

// Spec returns the prefab for kind.
func (b *Bestiary) Spec(kind component.EnemyKind) (*prefabs.EnemySpec, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	spec, ok := b.specs[kind]
	return spec, ok
}

// Knows reports whether kind has a prefab.
func (b *Bestiary) Knows(kind component.EnemyKind) bool {
	_, ok := b.Spec(kind)
	return ok
}

func (b *Bestiary) SpawnEnemy(w *ecs.World, kind component.EnemyKind, at cp.Vector) (ecs.Entity, error) {
	spec, ok := b.Spec(kind)
	if !ok {
		return 0, fmt.Errorf("bestiary: unknown enemy kind %q", kind)
	}
	return NewEnemy(w, spec, at)
}
