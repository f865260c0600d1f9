package arena

import (
	"fmt"

	"github.com/milk9111/hammerjam/prefabs"
)

// Specs is everything a Sim is built from.
type Specs struct {
	Arena   *prefabs.ArenaSpec
	Player  *prefabs.PlayerSpec
	Smack   *prefabs.HammerSmackSpec
	Enemies map[string]*prefabs.EnemySpec
	Script  []byte
}

// LoadSpecs reads the prefabs for an arena, disk copies first.
func LoadSpecs(arenaFile string) (Specs, error) {
	if arenaFile == "" {
		arenaFile = "arena.yaml"
	}
	var specs Specs
	var err error
	if specs.Arena, err = prefabs.LoadArenaSpec(arenaFile); err != nil {
		return Specs{}, err
	}
	if specs.Player, err = prefabs.LoadPlayerSpec(); err != nil {
		return Specs{}, err
	}
	if specs.Smack, err = prefabs.LoadHammerSmackSpec(); err != nil {
		return Specs{}, err
	}
	if specs.Enemies, err = prefabs.LoadEnemySpecs(); err != nil {
		return Specs{}, err
	}
	if specs.Script, err = prefabs.LoadScript(specs.Arena.Director.Script); err != nil {
		return Specs{}, fmt.Errorf("arena: load director script %s: %w", specs.Arena.Director.Script, err)
	}
	return specs, nil
}
