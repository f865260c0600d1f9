// Package save persists the run record between sessions.
package save

import (
	"fmt"
	"log"

	"github.com/milk9111/hammerjam/ecs/component"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordObject   = "runs"
	recordProperty = "record"
)

// Record is what survives between runs.
type Record struct {
	BestSurvival float64 `yaml:"best_survival"`
	TotalKills   int     `yaml:"total_kills"`
	Runs         int     `yaml:"runs"`
	// CarriedHealth seeds the next run's player. Zero means use the prefab.
	CarriedHealth float64 `yaml:"carried_health"`
}

// Store keeps the record in memory and mirrors it to gdata. A nil manager
// leaves the store memory-only.
type Store struct {
	manager *gdata.Manager
	record  Record
}

// Open opens the platform save directory for app. On failure the store still
// works in memory and the error is returned for logging.
func Open(app string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{AppName: app})
	if err != nil {
		return NewStore(nil), fmt.Errorf("save: open %s: %w", app, err)
	}
	return NewStore(m), nil
}

func NewStore(m *gdata.Manager) *Store {
	s := &Store{manager: m}
	if err := s.Load(); err != nil {
		log.Printf("save: %v (starting fresh)", err)
	}
	return s
}

// Load replaces the in-memory record with the stored one. A missing record
// resets to zero.
func (s *Store) Load() error {
	s.record = Record{}
	if s.manager == nil || !s.manager.ObjectPropExists(recordObject, recordProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(recordObject, recordProperty)
	if err != nil {
		return fmt.Errorf("load record: %w", err)
	}
	var rec Record
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("decode record: %w", err)
	}
	s.record = rec
	return nil
}

func (s *Store) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.record)
	if err != nil {
		return fmt.Errorf("save: encode record: %w", err)
	}
	if err := s.manager.SaveObjectProp(recordObject, recordProperty, data); err != nil {
		return fmt.Errorf("save: write record: %w", err)
	}
	return nil
}

func (s *Store) Record() Record {
	return s.record
}

// Finish folds a finished or abandoned run into the record. A run that ended
// with the player dead carries nothing over.
func (s *Store) Finish(score component.Scoreboard, playerHealth float64) Record {
	s.record.Runs++
	s.record.TotalKills += score.Kills
	if score.Survived > s.record.BestSurvival {
		s.record.BestSurvival = score.Survived
	}
	if score.Over || playerHealth <= 0 {
		s.record.CarriedHealth = 0
	} else {
		s.record.CarriedHealth = playerHealth
	}
	return s.record
}

// Reset clears the record and writes the empty record back.
func (s *Store) Reset() error {
	s.record = Record{}
	return s.Save()
}
