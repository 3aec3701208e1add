package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/milk9111/ledgeclimb/character"
	"github.com/milk9111/ledgeclimb/montage"
	"github.com/milk9111/ledgeclimb/physics"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type CharacterSpec struct {
	Name         string       `yaml:"name"`
	ClimbMontage string       `yaml:"climb_montage"`
	Abilities    []string     `yaml:"abilities"`
	Movement     MovementSpec `yaml:"movement"`
	Climb        ClimbSpec    `yaml:"climb"`
	Probe        ProbeSpec    `yaml:"probe"`
	Lerp         LerpSpec     `yaml:"lerp"`
	Motor        MotorSpec    `yaml:"motor"`
}

// Tuning fields are pointers so an unset field keeps its default while an
// explicit zero or negative value is honored.
type MovementSpec struct {
	WalkSpeed   *float64 `yaml:"walk_speed"`
	SprintSpeed *float64 `yaml:"sprint_speed"`
}

type ClimbSpec struct {
	MaxHorizontalGrabDistance *float64 `yaml:"max_horizontal_grab_distance"`
	MaxClimbHeight            *float64 `yaml:"max_climb_height"`
	ClimbForwardOffset        *float64 `yaml:"climb_forward_offset"`
	ClimbStartHeightOffset    *float64 `yaml:"climb_start_height_offset"`
	ClimbStartSideOffset      *float64 `yaml:"climb_start_side_offset"`
	ClimbHeightOffset         *float64 `yaml:"climb_height_offset"`
}

type ProbeSpec struct {
	WallHeight *float64 `yaml:"wall_height"`
	WallReach  *float64 `yaml:"wall_reach"`
	LedgeRise  *float64 `yaml:"ledge_rise"`
	LedgeDrop  *float64 `yaml:"ledge_drop"`
	GrabHeight *float64 `yaml:"grab_height"`
}

type LerpSpec struct {
	Duration *float64 `yaml:"duration"`
	Curve    string   `yaml:"curve"`
}

type MotorSpec struct {
	Gravity       float64 `yaml:"gravity"`
	JumpZVelocity float64 `yaml:"jump_z_velocity"`
	AirControl    float64 `yaml:"air_control"`
	HalfHeight    float64 `yaml:"half_height"`
	Radius        float64 `yaml:"radius"`
	GroundSnap    float64 `yaml:"ground_snap"`
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`
}

func LoadCharacterSpec() (*CharacterSpec, error) {
	spec, err := LoadSpec[CharacterSpec]("character.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Config converts the spec into a character archetype. Unset fields keep the
// defaults so partial specs stay usable.
func (s *CharacterSpec) Config() (character.Config, error) {
	cfg := character.DefaultConfig()
	if s == nil {
		return cfg, nil
	}

	setFloat(&cfg.Movement.WalkSpeed, s.Movement.WalkSpeed)
	setFloat(&cfg.Movement.SprintSpeed, s.Movement.SprintSpeed)

	setFloat(&cfg.Climb.MaxHorizontalGrabDistance, s.Climb.MaxHorizontalGrabDistance)
	setFloat(&cfg.Climb.MaxClimbHeight, s.Climb.MaxClimbHeight)
	setFloat(&cfg.Climb.ClimbForwardOffset, s.Climb.ClimbForwardOffset)
	setFloat(&cfg.Climb.ClimbStartHeightOffset, s.Climb.ClimbStartHeightOffset)
	setFloat(&cfg.Climb.ClimbStartSideOffset, s.Climb.ClimbStartSideOffset)
	setFloat(&cfg.Climb.ClimbHeightOffset, s.Climb.ClimbHeightOffset)

	setFloat(&cfg.Probe.WallHeight, s.Probe.WallHeight)
	setFloat(&cfg.Probe.WallReach, s.Probe.WallReach)
	setFloat(&cfg.Probe.LedgeRise, s.Probe.LedgeRise)
	setFloat(&cfg.Probe.LedgeDrop, s.Probe.LedgeDrop)
	setFloat(&cfg.Probe.GrabHeight, s.Probe.GrabHeight)

	setFloat(&cfg.LerpDuration, s.Lerp.Duration)

	if name := strings.TrimSpace(s.ClimbMontage); name != "" {
		cfg.ClimbMontage = name
	}

	if err := validateConfig(cfg); err != nil {
		return cfg, fmt.Errorf("prefabs: %s: %w", s.Name, err)
	}

	curve, ok := character.NamedCurve(s.Lerp.Curve)
	if !ok {
		return cfg, fmt.Errorf("prefabs: %s: unknown lerp curve %q", s.Name, s.Lerp.Curve)
	}
	cfg.Curve = curve

	return cfg, nil
}

// validateConfig rejects tuning that has no meaning. Offsets and ray heights
// are signed and left alone.
func validateConfig(cfg character.Config) error {
	positive := []struct {
		name string
		v    float64
	}{
		{"walk_speed", cfg.Movement.WalkSpeed},
		{"sprint_speed", cfg.Movement.SprintSpeed},
	}
	for _, f := range positive {
		if f.v <= 0 {
			return fmt.Errorf("%s must be positive, got %v", f.name, f.v)
		}
	}

	nonNegative := []struct {
		name string
		v    float64
	}{
		{"max_horizontal_grab_distance", cfg.Climb.MaxHorizontalGrabDistance},
		{"max_climb_height", cfg.Climb.MaxClimbHeight},
		{"wall_reach", cfg.Probe.WallReach},
		{"ledge_drop", cfg.Probe.LedgeDrop},
		{"lerp duration", cfg.LerpDuration},
	}
	for _, f := range nonNegative {
		if f.v < 0 {
			return fmt.Errorf("negative %s %v", f.name, f.v)
		}
	}

	if cfg.Movement.SprintSpeed < cfg.Movement.WalkSpeed {
		return fmt.Errorf("sprint_speed %v below walk_speed %v", cfg.Movement.SprintSpeed, cfg.Movement.WalkSpeed)
	}
	return nil
}

func (s *CharacterSpec) MotorParams() physics.MotorParams {
	params := physics.DefaultMotorParams()
	if s == nil {
		return params
	}
	setPositive(&params.Gravity, s.Motor.Gravity)
	setPositive(&params.JumpZVelocity, s.Motor.JumpZVelocity)
	setPositive(&params.AirControl, s.Motor.AirControl)
	setPositive(&params.HalfHeight, s.Motor.HalfHeight)
	setPositive(&params.Radius, s.Motor.Radius)
	setPositive(&params.GroundSnap, s.Motor.GroundSnap)
	setPositive(&params.MaxFallSpeed, s.Motor.MaxFallSpeed)
	return params
}

// StartingAbilities returns the abilities the archetype spawns with.
// Unknown names are reported as an error.
func (s *CharacterSpec) StartingAbilities() ([]character.AbilityKind, error) {
	if s == nil {
		return nil, nil
	}
	out := make([]character.AbilityKind, 0, len(s.Abilities))
	for _, name := range s.Abilities {
		kind := character.ParseAbilityKind(name)
		if kind == character.AbilityUnknown {
			return nil, fmt.Errorf("prefabs: %s: unknown ability %q", s.Name, name)
		}
		out = append(out, kind)
	}
	return out, nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

type MontagesSpec struct {
	Rate     *float64           `yaml:"rate"`
	Montages map[string]float64 `yaml:"montages"`
}

func LoadMontagesSpec() (*MontagesSpec, error) {
	spec, err := LoadSpec[MontagesSpec]("montages.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// PlaybackRate is the speed montages play at. Unset plays at normal speed.
func (s *MontagesSpec) PlaybackRate() (float64, error) {
	if s == nil || s.Rate == nil {
		return 1, nil
	}
	if *s.Rate <= 0 {
		return 0, fmt.Errorf("prefabs: montage rate must be positive, got %v", *s.Rate)
	}
	return *s.Rate, nil
}

func (s *MontagesSpec) Library() montage.Library {
	lib := montage.Library{}
	if s == nil {
		return lib
	}
	for name, length := range s.Montages {
		lib[name] = length
	}
	return lib
}

type LevelSpec struct {
	Name     string        `yaml:"name"`
	Spawn    PointSpec     `yaml:"spawn"`
	Boxes    []BoxSpec     `yaml:"boxes"`
	Triggers []TriggerSpec `yaml:"triggers"`
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Z float64 `yaml:"z"`
}

type BoxSpec struct {
	Name  string     `yaml:"name"`
	MinX  float64    `yaml:"min_x"`
	MinZ  float64    `yaml:"min_z"`
	MaxX  float64    `yaml:"max_x"`
	MaxZ  float64    `yaml:"max_z"`
	Color *YAMLColor `yaml:"color"`
}

type TriggerSpec struct {
	Name  string  `yaml:"name"`
	Event string  `yaml:"event"`
	MinX  float64 `yaml:"min_x"`
	MinZ  float64 `yaml:"min_z"`
	MaxX  float64 `yaml:"max_x"`
	MaxZ  float64 `yaml:"max_z"`
}

func LoadLevelSpec(filename string) (*LevelSpec, error) {
	spec, err := LoadSpec[LevelSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *LevelSpec) SpawnPoint() mgl64.Vec3 {
	if s == nil {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{s.Spawn.X, 0, s.Spawn.Z}
}

// Build adds the level geometry to world.
func (s *LevelSpec) Build(world *physics.World) error {
	if s == nil || world == nil {
		return fmt.Errorf("prefabs: nil level or world")
	}
	for i, b := range s.Boxes {
		if b.MaxX <= b.MinX || b.MaxZ <= b.MinZ {
			return fmt.Errorf("prefabs: level %s: box %d (%s) is degenerate", s.Name, i, b.Name)
		}
		world.AddBox(physics.Box{MinX: b.MinX, MinZ: b.MinZ, MaxX: b.MaxX, MaxZ: b.MaxZ})
	}
	for i, t := range s.Triggers {
		if strings.TrimSpace(t.Event) == "" {
			return fmt.Errorf("prefabs: level %s: trigger %d (%s) has no event", s.Name, i, t.Name)
		}
	}
	return nil
}

// BoxColor returns the configured color of a box or fallback.
func (b BoxSpec) BoxColor(fallback color.Color) color.Color {
	if b.Color == nil || b.Color.Color == nil {
		return fallback
	}
	return b.Color.Color
}

// YAMLColor accepts #rrggbb, #rrggbbaa or an SVG color name.
type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(strings.TrimSpace(value.Value))]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
