package prefabs

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}
	return DecodeSpec[T](filename, data)
}

// DecodeSpec decodes data strictly. Keys T does not declare are
// errors, so a misspelled field never silently decodes as zero.
func DecodeSpec[T any](filename string, data []byte) (T, error) {
	var spec T
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		var zero T
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}
	return spec, nil
}

// ErrInvalidSpec marks a prefab that decoded but cannot drive the arena.
var ErrInvalidSpec = errors.New("invalid spec")

func invalid(filename, format string, args ...any) error {
	return fmt.Errorf("prefabs: %s: %w: %s", filename, ErrInvalidSpec, fmt.Sprintf(format, args...))
}

// PointSpec is a point on the arena floor.
type PointSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type ArenaSpec struct {
	Name string `yaml:"name"`
	// Walkable is a convex outline of the floor enemies may walk on.
	Walkable []PointSpec `yaml:"walkable"`
	// Sampling is the outline wander destinations are drawn from. Empty means
	// the walkable outline.
	Sampling    []PointSpec  `yaml:"sampling"`
	PlayerSpawn PointSpec    `yaml:"player_spawn"`
	Director    DirectorSpec `yaml:"director"`
	Floor       *YAMLColor   `yaml:"floor_color"`
}

type DirectorSpec struct {
	Script      string  `yaml:"script"`
	Interval    float64 `yaml:"interval"`
	SpawnDelay  float64 `yaml:"spawn_delay"`
	SpawnRadius float64 `yaml:"spawn_radius"`
	MaxAlive    int     `yaml:"max_alive"`
}

func LoadArenaSpec(filename string) (*ArenaSpec, error) {
	spec, err := LoadSpec[ArenaSpec](filename)
	if err != nil {
		return nil, err
	}
	if len(spec.Walkable) < 3 {
		return nil, invalid(filename, "walkable outline needs at least 3 points")
	}
	if spec.Director.Interval <= 0 {
		spec.Director.Interval = 5
	}
	return &spec, nil
}

type EmergeSpec struct {
	ScaleDuration float64 `yaml:"scale_duration"`
	RiseDuration  float64 `yaml:"rise_duration"`
	FromScale     float64 `yaml:"from_scale"`
	Drop          float64 `yaml:"drop"`
}

type PlayerSpec struct {
	Name            string         `yaml:"name"`
	Health          float64        `yaml:"health"`
	MoveSpeed       float64        `yaml:"move_speed"`
	CameraYaw       float64        `yaml:"camera_yaw"`
	Reach           float64        `yaml:"reach"`
	HurtRadius      float64        `yaml:"hurt_radius"`
	HealthBarOffset float64        `yaml:"health_bar_offset"`
	AttackClip      AttackClipSpec `yaml:"attack_clip"`
	Emerge          EmergeSpec     `yaml:"emerge"`
	Color           *YAMLColor     `yaml:"color"`
}

type AttackClipSpec struct {
	Duration float64 `yaml:"duration"`
	ImpactAt float64 `yaml:"impact_at"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate("player.yaml"); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *PlayerSpec) Validate(filename string) error {
	switch {
	case s.Health <= 0:
		return invalid(filename, "health must be positive, got %v", s.Health)
	case s.MoveSpeed < 0:
		return invalid(filename, "move_speed must not be negative, got %v", s.MoveSpeed)
	case s.AttackClip.Duration <= 0:
		return invalid(filename, "attack_clip.duration must be positive, got %v", s.AttackClip.Duration)
	case s.AttackClip.ImpactAt <= 0 || s.AttackClip.ImpactAt > 1:
		return invalid(filename, "attack_clip.impact_at must be in (0,1], got %v", s.AttackClip.ImpactAt)
	}
	return nil
}

type BeamSpec struct {
	Length   float64 `yaml:"length"`
	Strength float64 `yaml:"strength"`
	Cooldown float64 `yaml:"cooldown"`
}

type EnemySpec struct {
	Name            string     `yaml:"name"`
	Kind            string     `yaml:"kind"`
	Health          float64    `yaml:"health"`
	HurtRadius      float64    `yaml:"hurt_radius"`
	SpawnHeight     float64    `yaml:"spawn_height"`
	HealthBarOffset float64    `yaml:"health_bar_offset"`
	MoveSpeed       float64    `yaml:"move_speed"`
	FacingRate      float64    `yaml:"facing_rate"`
	AttackRange     float64    `yaml:"attack_range"`
	AttackDuration  float64    `yaml:"attack_duration"`
	FaceTarget      bool       `yaml:"face_target"`
	SpinRate        float64    `yaml:"spin_rate"`
	Beam            BeamSpec   `yaml:"beam"`
	Emerge          EmergeSpec `yaml:"emerge"`
	Color           *YAMLColor `yaml:"color"`
}

func LoadEnemySpec(filename string) (*EnemySpec, error) {
	spec, err := LoadSpec[EnemySpec](filename)
	if err != nil {
		return nil, err
	}
	if err := spec.Validate(filename); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *EnemySpec) Validate(filename string) error {
	switch {
	case s.Kind == "":
		return invalid(filename, "missing kind")
	case s.Health <= 0:
		return invalid(filename, "health must be positive, got %v", s.Health)
	case s.HurtRadius <= 0:
		return invalid(filename, "hurt_radius must be positive, got %v", s.HurtRadius)
	case s.MoveSpeed <= 0:
		return invalid(filename, "move_speed must be positive, got %v", s.MoveSpeed)
	case s.AttackRange < 0:
		return invalid(filename, "attack_range must not be negative, got %v", s.AttackRange)
	case s.AttackDuration <= 0:
		return invalid(filename, "attack_duration must be positive, got %v", s.AttackDuration)
	case s.Beam.Length <= 0:
		return invalid(filename, "beam.length must be positive, got %v", s.Beam.Length)
	case s.Beam.Cooldown < 0:
		return invalid(filename, "beam.cooldown must not be negative, got %v", s.Beam.Cooldown)
	}
	return nil
}

// EnemySpecFiles maps enemy kinds to their prefab files.
var EnemySpecFiles = map[string]string{
	"eyeball":      "eyeball.yaml",
	"flock_sphere": "flock_sphere.yaml",
}

// LoadEnemySpecs loads every known enemy prefab keyed by kind.
func LoadEnemySpecs() (map[string]*EnemySpec, error) {
	out := make(map[string]*EnemySpec, len(EnemySpecFiles))
	for kind, file := range EnemySpecFiles {
		spec, err := LoadEnemySpec(file)
		if err != nil {
			return nil, err
		}
		if spec.Kind != kind {
			return nil, fmt.Errorf("prefabs: %s declares kind %q, want %q", file, spec.Kind, kind)
		}
		out[kind] = spec
	}
	return out, nil
}

type HammerSmackSpec struct {
	Name     string     `yaml:"name"`
	Radius   float64    `yaml:"radius"`
	Lifetime float64    `yaml:"lifetime"`
	Strength float64    `yaml:"strength"`
	Color    *YAMLColor `yaml:"color"`
	// FreezeFrames pauses the arena for this many ticks when a smack lands.
	FreezeFrames int `yaml:"freeze_frames"`
	// FlashFrames is how long a smacked enemy blinks.
	FlashFrames int `yaml:"flash_frames"`
}

func LoadHammerSmackSpec() (*HammerSmackSpec, error) {
	spec, err := LoadSpec[HammerSmackSpec]("hammer_smack.yaml")
	if err != nil {
		return nil, err
	}
	if err := spec.Validate("hammer_smack.yaml"); err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *HammerSmackSpec) Validate(filename string) error {
	switch {
	case s.Radius <= 0:
		return invalid(filename, "radius must be positive, got %v", s.Radius)
	case s.Lifetime <= 0:
		return invalid(filename, "lifetime must be positive, got %v", s.Lifetime)
	case s.FreezeFrames < 0 || s.FlashFrames < 0:
		return invalid(filename, "freeze_frames and flash_frames must not be negative")
	}
	return nil
}

type YAMLColor struct {
	color.Color
}

// Or returns the wrapped color, or fallback when c is unset.
func (c *YAMLColor) Or(fallback color.Color) color.Color {
	if c == nil || c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
