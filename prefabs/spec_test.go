package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedSpecsLoad(t *testing.T) {
	arena, err := LoadArenaSpec("arena.yaml")
	if err != nil {
		t.Fatalf("LoadArenaSpec: %v", err)
	}
	if len(arena.Walkable) < 3 || arena.Director.Script == "" {
		t.Fatalf("unexpected arena spec %+v", arena)
	}

	player, err := LoadPlayerSpec()
	if err != nil {
		t.Fatalf("LoadPlayerSpec: %v", err)
	}
	if player.Health != 50 || player.AttackClip.Duration <= 0 {
		t.Fatalf("unexpected player spec %+v", player)
	}

	smack, err := LoadHammerSmackSpec()
	if err != nil {
		t.Fatalf("LoadHammerSmackSpec: %v", err)
	}
	if smack.Radius != 1.5 || smack.Strength != 20 || smack.Lifetime != 0.1 {
		t.Fatalf("unexpected smack spec %+v", smack)
	}

	enemies, err := LoadEnemySpecs()
	if err != nil {
		t.Fatalf("LoadEnemySpecs: %v", err)
	}
	cases := []struct {
		kind     string
		rng      float64
		duration float64
	}{
		{"eyeball", 3, 2},
		{"flock_sphere", 0, 5},
	}
	for _, c := range cases {
		t.Run(c.kind, func(t *testing.T) {
			spec, ok := enemies[c.kind]
			if !ok {
				t.Fatalf("missing %s", c.kind)
			}
			if spec.AttackRange != c.rng || spec.AttackDuration != c.duration {
				t.Fatalf("range=%v duration=%v", spec.AttackRange, spec.AttackDuration)
			}
			if spec.Beam.Length != 2 || spec.Beam.Strength != 5 || spec.Beam.Cooldown != 0.2 {
				t.Fatalf("unexpected beam %+v", spec.Beam)
			}
		})
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"director.tengo", "scripts/director.tengo", "prefabs/scripts/director.tengo"} {
		if _, err := LoadScript(name); err != nil {
			t.Fatalf("LoadScript(%q): %v", name, err)
		}
	}
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{`"#ff8000"`, color.NRGBA{R: 0xff, G: 0x80, A: 0xff}, false},
		{`"10203040"`, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, false},
		{`"#fff"`, color.NRGBA{}, true},
		{`[1, 2]`, color.NRGBA{}, true},
	}
	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			var got YAMLColor
			err := yaml.Unmarshal([]byte(c.in), &got)
			if c.wantErr {
				if err == nil {
					t.Fatalf("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.Color != c.want {
				t.Fatalf("got %v, want %v", got.Color, c.want)
			}
		})
	}

	var unset *YAMLColor
	if unset.Or(color.White) != color.White {
		t.Fatalf("nil color should fall back")
	}
}

func TestLoadAcceptsPrefixedNames(t *testing.T) {
	plain, err := Load("arena.yaml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	prefixed, err := Load("prefabs/arena.yaml")
	if err != nil {
		t.Fatalf("Load prefixed: %v", err)
	}
	if string(plain) != string(prefixed) {
		t.Fatalf("prefixed name loaded different bytes")
	}
	if _, err := Load("missing.yaml"); err == nil {
		t.Fatalf("expected an error for a missing prefab")
	}
}

const eyeballYAML = `
kind: eyeball
health: %v
hurt_radius: 0.5
move_speed: 1.0
attack_duration: 2.0
beam: {length: 2.0, strength: 5.0, cooldown: 0.2}
`

func TestEnemySpecValidation(t *testing.T) {
	base, err := DecodeSpec[EnemySpec]("eyeball.yaml", []byte(fmt.Sprintf(eyeballYAML, 30)))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	cases := []struct {
		name    string
		mut     func(*EnemySpec)
		invalid bool
	}{
		{"valid", func(*EnemySpec) {}, false},
		{"no_kind", func(s *EnemySpec) { s.Kind = "" }, true},
		{"zero_health", func(s *EnemySpec) { s.Health = 0 }, true},
		{"zero_hurt_radius", func(s *EnemySpec) { s.HurtRadius = 0 }, true},
		{"zero_move_speed", func(s *EnemySpec) { s.MoveSpeed = 0 }, true},
		{"negative_range", func(s *EnemySpec) { s.AttackRange = -1 }, true},
		{"zero_attack_duration", func(s *EnemySpec) { s.AttackDuration = 0 }, true},
		{"zero_beam_length", func(s *EnemySpec) { s.Beam.Length = 0 }, true},
		{"negative_cooldown", func(s *EnemySpec) { s.Beam.Cooldown = -1 }, true},
		{"no_cooldown", func(s *EnemySpec) { s.Beam.Cooldown = 0 }, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := base
			c.mut(&spec)
			err := spec.Validate("eyeball.yaml")
			if c.invalid != errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("invalid=%v, got err %v", c.invalid, err)
			}
		})
	}
}

func TestDecodeSpecRejectsUnknownKeys(t *testing.T) {
	_, err := DecodeSpec[EnemySpec]("eyeball.yaml", []byte("kind: eyeball\nhealth: 0\nmoveSpeed: 1.0\n"))
	if err == nil {
		t.Fatalf("expected the misspelled moveSpeed key to fail decoding")
	}
}

func TestPlayerAndSmackSpecValidation(t *testing.T) {
	player := func(mut func(*PlayerSpec)) PlayerSpec {
		p := PlayerSpec{Health: 50, MoveSpeed: 1.8, AttackClip: AttackClipSpec{Duration: 0.8, ImpactAt: 0.45}}
		mut(&p)
		return p
	}
	smack := func(mut func(*HammerSmackSpec)) HammerSmackSpec {
		s := HammerSmackSpec{Radius: 1.5, Lifetime: 0.1, Strength: 20}
		mut(&s)
		return s
	}
	cases := []struct {
		name    string
		spec    interface{ Validate(string) error }
		invalid bool
	}{
		{"player_valid", ptr(player(func(*PlayerSpec) {})), false},
		{"player_impact_at_end", ptr(player(func(p *PlayerSpec) { p.AttackClip.ImpactAt = 1 })), false},
		{"player_zero_health", ptr(player(func(p *PlayerSpec) { p.Health = 0 })), true},
		{"player_zero_clip", ptr(player(func(p *PlayerSpec) { p.AttackClip.Duration = 0 })), true},
		{"player_zero_impact", ptr(player(func(p *PlayerSpec) { p.AttackClip.ImpactAt = 0 })), true},
		{"player_late_impact", ptr(player(func(p *PlayerSpec) { p.AttackClip.ImpactAt = 1.2 })), true},
		{"smack_valid", ptr(smack(func(*HammerSmackSpec) {})), false},
		{"smack_zero_radius", ptr(smack(func(s *HammerSmackSpec) { s.Radius = 0 })), true},
		{"smack_zero_lifetime", ptr(smack(func(s *HammerSmackSpec) { s.Lifetime = 0 })), true},
		{"smack_negative_freeze", ptr(smack(func(s *HammerSmackSpec) { s.FreezeFrames = -1 })), true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.spec.Validate("test.yaml")
			if c.invalid != errors.Is(err, ErrInvalidSpec) {
				t.Fatalf("invalid=%v, got err %v", c.invalid, err)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }

func TestLoadEnemySpecRejectsDiskOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.MkdirAll(Dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(Dir, "eyeball.yaml"), []byte(fmt.Sprintf(eyeballYAML, 0)), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadEnemySpecs(); !errors.Is(err, ErrInvalidSpec) {
		t.Fatalf("expected an invalid spec error, got %v", err)
	}
}
