// Package director runs the spawn script that decides which enemies enter the
// arena and where.
package director

import (
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/ecs/entity"
	"github.com/milk9111/hammerjam/nav"
)

var ErrUnknownKind = errors.New("director: unknown enemy kind")

// randPointTries bounds how often rand_point resamples before it gives up and
// returns undefined.
const randPointTries = 8

type Config struct {
	Interval    float64
	SpawnDelay  float64
	SpawnRadius float64
	MaxAlive    int
}

// KindChecker reports whether an enemy kind can be spawned.
type KindChecker interface {
	Knows(kind component.EnemyKind) bool
}

// Director runs its script once per interval. Scripts queue spawns through
// spawn(kind, x, z); each spawn becomes a spawn circle.
type Director struct {
	cfg      Config
	rng      *rand.Rand
	kinds    KindChecker
	compiled *tengo.Compiled

	timer float64
	wave  int

	// set only while the script runs
	world   *ecs.World
	spawned int
}

func New(script []byte, cfg Config, rng *rand.Rand, kinds KindChecker) (*Director, error) {
	if rng == nil {
		return nil, fmt.Errorf("director: nil rng")
	}
	d := &Director{cfg: cfg, rng: rng, kinds: kinds}
	if err := d.Reload(script); err != nil {
		return nil, err
	}
	return d, nil
}

// Reload compiles a new script. On error the previous script stays active.
func (d *Director) Reload(script []byte) error {
	s := tengo.NewScript(script)
	s.SetImports(stdlib.GetModuleMap("math", "rand", "times", "fmt"))

	globals := map[string]any{
		"wave":      0,
		"elapsed":   0.0,
		"max_alive": 0,
	}
	for name, v := range globals {
		if err := s.Add(name, v); err != nil {
			return fmt.Errorf("director: add %s: %w", name, err)
		}
	}
	for name, fn := range d.builtins() {
		if err := s.Add(name, fn); err != nil {
			return fmt.Errorf("director: add %s: %w", name, err)
		}
	}

	compiled, err := s.Compile()
	if err != nil {
		return fmt.Errorf("director: compile: %w", err)
	}
	d.compiled = compiled
	return nil
}

// Wave returns how many times the script has run.
func (d *Director) Wave() int {
	return d.wave
}

func (d *Director) Update(w *ecs.World) {
	if w == nil || d.compiled == nil || d.cfg.Interval <= 0 {
		return
	}
	if sb := scoreboardOver(w); sb {
		return
	}
	d.timer += w.Delta()
	for d.timer >= d.cfg.Interval {
		d.timer -= d.cfg.Interval
		if _, err := d.Run(w); err != nil {
			log.Printf("director: wave=%d: %v", d.wave, err)
		}
	}
}

// Run executes the script once against w and returns how many spawns it
// queued.
func (d *Director) Run(w *ecs.World) (int, error) {
	d.world = w
	d.spawned = 0
	defer func() { d.world = nil }()

	vars := map[string]any{
		"wave":      d.wave,
		"elapsed":   w.Elapsed(),
		"max_alive": d.cfg.MaxAlive,
	}
	for name, v := range vars {
		if err := d.compiled.Set(name, v); err != nil {
			return 0, fmt.Errorf("set %s: %w", name, err)
		}
	}
	d.wave++
	if err := d.compiled.Run(); err != nil {
		return d.spawned, err
	}
	return d.spawned, nil
}

func (d *Director) builtins() map[string]*tengo.UserFunction {
	return map[string]*tengo.UserFunction{
		"spawn":      {Name: "spawn", Value: d.spawn},
		"rand_point": {Name: "rand_point", Value: d.randPoint},
		"alive":      {Name: "alive", Value: d.alive},
		"chance":     {Name: "chance", Value: d.chance},
	}
}

func (d *Director) spawn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	kind, ok := tengo.ToString(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "kind", Expected: "string", Found: args[0].TypeName()}
	}
	x, okX := tengo.ToFloat64(args[1])
	z, okZ := tengo.ToFloat64(args[2])
	if !okX || !okZ {
		return nil, tengo.ErrInvalidArgumentType{Name: "position", Expected: "float", Found: args[1].TypeName()}
	}
	if d.world == nil {
		return tengo.FalseValue, nil
	}

	ek := component.EnemyKind(strings.TrimSpace(kind))
	if d.kinds != nil && !d.kinds.Knows(ek) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	if _, err := entity.NewSpawnCircle(d.world, ek, cp.Vector{X: x, Y: z}, d.cfg.SpawnDelay, d.cfg.SpawnRadius); err != nil {
		return nil, err
	}
	d.spawned++
	return tengo.TrueValue, nil
}

// randPoint returns undefined when no walkable sample turns up, so scripts
// skip that spawn.
func (d *Director) randPoint(args ...tengo.Object) (tengo.Object, error) {
	mesh := d.mesh()
	if mesh == nil {
		return tengo.UndefinedValue, nil
	}
	for i := 0; i < randPointTries; i++ {
		p := mesh.SamplePoint(d.rng)
		if mesh.Contains(p) {
			return &tengo.Array{Value: []tengo.Object{&tengo.Float{Value: p.X}, &tengo.Float{Value: p.Y}}}, nil
		}
	}
	return tengo.UndefinedValue, nil
}

func (d *Director) alive(args ...tengo.Object) (tengo.Object, error) {
	kind := ""
	if len(args) > 0 {
		kind, _ = tengo.ToString(args[0])
	}
	if d.world == nil {
		return &tengo.Int{Value: 0}, nil
	}
	n := 0
	ecs.ForEach(d.world, component.EnemyComponent.Kind(), func(_ ecs.Entity, e *component.Enemy) {
		if kind == "" || string(e.Kind) == kind {
			n++
		}
	})
	ecs.ForEach(d.world, component.SpawnCircleComponent.Kind(), func(_ ecs.Entity, sc *component.SpawnCircle) {
		if kind == "" || string(sc.Kind) == kind {
			n++
		}
	})
	return &tengo.Int{Value: int64(n)}, nil
}

func (d *Director) chance(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	p, ok := tengo.ToFloat64(args[0])
	if !ok {
		return nil, tengo.ErrInvalidArgumentType{Name: "p", Expected: "float", Found: args[0].TypeName()}
	}
	if d.rng.Float64() < p {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

func (d *Director) mesh() *nav.Mesh {
	if d.world == nil {
		return nil
	}
	var mesh *nav.Mesh
	ecs.ForEach(d.world, component.NavMeshComponent.Kind(), func(_ ecs.Entity, nm *component.NavMesh) {
		if mesh == nil {
			mesh = nm.Mesh
		}
	})
	return mesh
}

func scoreboardOver(w *ecs.World) bool {
	e, ok := ecs.First(w, component.ScoreboardComponent.Kind())
	if !ok {
		return false
	}
	sb, ok := ecs.Get(w, e, component.ScoreboardComponent.Kind())
	return ok && sb.Over
}
