// Package arena assembles the world, the systems and the spawn director into
// one fixed-step simulation that every front end drives.
package arena

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/hammerjam/director"
	"github.com/milk9111/hammerjam/ecs"
	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/milk9111/hammerjam/ecs/entity"
	"github.com/milk9111/hammerjam/ecs/system"
	"github.com/milk9111/hammerjam/nav"
	"github.com/milk9111/hammerjam/prefabs"
)

// TickRate is the number of fixed steps per second.
const TickRate = 60

type Config struct {
	Seed int64
	// CarriedHealth starts the player with this much health when positive.
	CarriedHealth float64
	Input         system.InputSource
}

type Sim struct {
	World *ecs.World
	Specs Specs

	sched    *ecs.Scheduler
	rng      *rand.Rand
	bestiary *entity.Bestiary
	director *director.Director
	smack    *system.SmackSystem
	damage   *system.DamageSystem
	freeze   *system.HitFreezeSystem

	arena  ecs.Entity
	player ecs.Entity
}

// New builds a ready-to-step simulation.
func New(specs Specs, cfg Config) (*Sim, error) {
	if specs.Arena == nil || specs.Player == nil || specs.Smack == nil {
		return nil, fmt.Errorf("arena: incomplete specs")
	}

	s := &Sim{
		World:    ecs.NewWorld(),
		Specs:    specs,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		bestiary: entity.NewBestiary(specs.Enemies),
	}

	var err error
	if s.arena, err = entity.NewArena(s.World, specs.Arena); err != nil {
		return nil, err
	}
	spawn := cp.Vector{X: specs.Arena.PlayerSpawn.X, Y: specs.Arena.PlayerSpawn.Z}
	if s.player, err = entity.NewPlayer(s.World, specs.Player, spawn, cfg.CarriedHealth); err != nil {
		return nil, err
	}

	dc := specs.Arena.Director
	s.director, err = director.New(specs.Script, director.Config{
		Interval:    dc.Interval,
		SpawnDelay:  dc.SpawnDelay,
		SpawnRadius: dc.SpawnRadius,
		MaxAlive:    dc.MaxAlive,
	}, s.rng, s.bestiary)
	if err != nil {
		return nil, err
	}

	s.smack = system.NewSmackSystem(specs.Smack)
	s.damage = system.NewDamageSystem()
	s.freeze = system.NewHitFreezeSystem()

	s.sched = ecs.NewScheduler(
		system.NewInputSystem(cfg.Input),
		system.NewPlayerControllerSystem(),
		system.NewAnimationSystem(),
		s.smack,
		s.freeze,
		system.NewTTLSystem(),
		system.NewSpawnCircleSystem(s.bestiary),
		system.NewEmergeSystem(),
		s.director,
		system.NewWanderSystem(s.rng),
		system.NewMovementSystem(s.rng),
		system.NewSpinAttackSystem(),
		s.damage,
		system.NewHealthSystem(),
		system.NewReaperSystem(),
		system.NewScoreboardSystem(),
		system.NewWhiteFlashSystem(),
		system.NewHealthBarSystem(),
	)
	return s, nil
}

// Step advances the simulation by dt seconds. Ticks that fall inside a hit
// freeze are swallowed.
func (s *Sim) Step(dt float64) {
	if s.freeze.Hold() {
		return
	}
	s.World.Advance(dt)
	s.sched.Update(s.World)
}

// Observe registers a callback for every applied damage event.
func (s *Sim) Observe(o system.DamageObserver) {
	s.damage.Observe(o)
}

// Player returns the player entity.
func (s *Sim) Player() ecs.Entity {
	return s.player
}

// PlayerHealth returns the player's current health.
func (s *Sim) PlayerHealth() float64 {
	if h, ok := ecs.Get(s.World, s.player, component.HealthComponent.Kind()); ok {
		return h.Current
	}
	return 0
}

// Mesh returns the arena's walkable surface.
func (s *Sim) Mesh() *nav.Mesh {
	if m, ok := ecs.Get(s.World, s.arena, component.NavMeshComponent.Kind()); ok {
		return m.Mesh
	}
	return nil
}

// Score returns a copy of the run record.
func (s *Sim) Score() component.Scoreboard {
	if sb, ok := ecs.Get(s.World, s.arena, component.ScoreboardComponent.Kind()); ok {
		return *sb
	}
	return component.Scoreboard{}
}

// Over reports whether the run has ended.
func (s *Sim) Over() bool {
	return s.Score().Over
}

// SpawnEnemy places an enemy immediately, skipping the spawn circle.
func (s *Sim) SpawnEnemy(kind component.EnemyKind, at cp.Vector) (ecs.Entity, error) {
	return s.bestiary.SpawnEnemy(s.World, kind, at)
}

// Reload re-reads the prefab or script a watcher reported. Enemies already in
// the arena keep their values.
func (s *Sim) Reload(name string) error {
	base := prefabs.BaseName(name)
	if prefabs.IsScript(base) {
		data, err := prefabs.LoadScript(base)
		if err != nil {
			return fmt.Errorf("arena: reload %s: %w", base, err)
		}
		if err := s.director.Reload(data); err != nil {
			return err
		}
		s.Specs.Script = data
		log.Printf("arena: reloaded director script %s", base)
		return nil
	}

	switch base {
	case "hammer_smack.yaml":
		spec, err := prefabs.LoadHammerSmackSpec()
		if err != nil {
			return err
		}
		s.smack.SetSpec(spec)
		s.Specs.Smack = spec
	default:
		for _, file := range prefabs.EnemySpecFiles {
			if file != base {
				continue
			}
			specs, err := prefabs.LoadEnemySpecs()
			if err != nil {
				return err
			}
			s.bestiary.Replace(specs)
			s.Specs.Enemies = specs
			log.Printf("arena: reloaded enemy prefabs after %s changed", base)
			return nil
		}
		return nil
	}
	log.Printf("arena: reloaded %s", base)
	return nil
}
