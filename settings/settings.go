package settings

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/drape/cloth"
	"github.com/oomph-ac/drape/wind"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be configured for a simulation run.
type Settings struct {
	Cloth struct {
		Columns, Rows int
		Spacing       float64
		ParticleMass  float64
		Drag          float64
		// Origin is the position of the top left particle.
		Origin  []float64
		Gravity []float64
		// Pins lists particles to lock in addition to the four corners.
		Pins []Pin
	}
	Simulation struct {
		// TickRate is the number of steps per simulated second.
		TickRate            int
		Iterations          int
		RelaxationStiffness float64
		// Solver is either "relaxation" or "spring".
		Solver string
		// Integrator is either "verlet" or "leapfrog".
		Integrator string
	}
	Stiffness struct {
		Structural, Shear, Bending float64
	}
	Wind struct {
		Preset string
		Gust   struct {
			Enabled   bool
			Amplitude float64
			Frequency float64
			Seed      int64
		}
	}
	Debug struct {
		Verbose   bool
		StatsView bool
		StatsAddr string
	}
}

// Pin is a grid coordinate.
type Pin struct {
	Column, Row int
}

// DefaultSettings returns the default settings: a 20x20 cloth stepped 60 times a second with
// position relaxation in a calm wind.
func DefaultSettings() Settings {
	s := Settings{}
	s.Cloth.Columns = 20
	s.Cloth.Rows = 20
	s.Cloth.Spacing = cloth.DefaultSpacing
	s.Cloth.ParticleMass = cloth.DefaultParticleMass
	s.Cloth.Drag = 0.05
	s.Cloth.Origin = append([]float64(nil), cloth.DefaultOrigin[:]...)
	s.Cloth.Gravity = append([]float64(nil), cloth.DefaultGravity[:]...)

	s.Simulation.TickRate = 60
	s.Simulation.Iterations = cloth.DefaultIterations
	s.Simulation.RelaxationStiffness = 1
	s.Simulation.Solver = cloth.SolverRelaxation.String()
	s.Simulation.Integrator = cloth.IntegratorVerlet.String()

	s.Stiffness.Structural = cloth.StructuralStiffness
	s.Stiffness.Shear = cloth.ShearStiffness
	s.Stiffness.Bending = cloth.BendingStiffness

	s.Wind.Preset = "calm"
	s.Wind.Gust.Amplitude = 0.15
	s.Wind.Gust.Frequency = 0.5
	s.Wind.Gust.Seed = 1

	s.Debug.StatsAddr = "localhost:8080"
	return s
}

// Load reads the settings at path. If the file does not exist it is created with the default
// settings. Missing values are filled with defaults and the completed settings are written back.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := Save(path, DefaultSettings()); err != nil {
			return Settings{}, err
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	var s Settings
	if err := toml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	s.fillDefaults()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	if err := Save(path, s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Save writes s to path as TOML.
func Save(path string, s Settings) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings: %w", err)
	}
	return nil
}

func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	if s.Cloth.Columns == 0 {
		s.Cloth.Columns = def.Cloth.Columns
	}
	if s.Cloth.Rows == 0 {
		s.Cloth.Rows = def.Cloth.Rows
	}
	if s.Cloth.Spacing == 0 {
		s.Cloth.Spacing = def.Cloth.Spacing
	}
	if s.Cloth.ParticleMass == 0 {
		s.Cloth.ParticleMass = def.Cloth.ParticleMass
	}
	if s.Cloth.Origin == nil {
		s.Cloth.Origin = def.Cloth.Origin
	}
	if s.Cloth.Gravity == nil {
		s.Cloth.Gravity = def.Cloth.Gravity
	}
	if s.Simulation.TickRate == 0 {
		s.Simulation.TickRate = def.Simulation.TickRate
	}
	if s.Simulation.Iterations == 0 {
		s.Simulation.Iterations = def.Simulation.Iterations
	}
	if s.Simulation.RelaxationStiffness == 0 {
		s.Simulation.RelaxationStiffness = def.Simulation.RelaxationStiffness
	}
	if s.Simulation.Solver == "" {
		s.Simulation.Solver = def.Simulation.Solver
	}
	if s.Simulation.Integrator == "" {
		s.Simulation.Integrator = def.Simulation.Integrator
	}
	if s.Stiffness.Structural == 0 && s.Stiffness.Shear == 0 && s.Stiffness.Bending == 0 {
		s.Stiffness = def.Stiffness
	}
	if s.Wind.Preset == "" {
		s.Wind.Preset = def.Wind.Preset
	}
	if s.Wind.Gust.Frequency == 0 {
		s.Wind.Gust.Frequency = def.Wind.Gust.Frequency
	}
	if s.Debug.StatsAddr == "" {
		s.Debug.StatsAddr = def.Debug.StatsAddr
	}
}

// Validate checks every value that cannot be checked by building the cloth itself.
func (s Settings) Validate() error {
	if len(s.Cloth.Origin) != 3 {
		return fmt.Errorf("cloth origin must have 3 components, got %d", len(s.Cloth.Origin))
	}
	if len(s.Cloth.Gravity) != 3 {
		return fmt.Errorf("cloth gravity must have 3 components, got %d", len(s.Cloth.Gravity))
	}
	if s.Simulation.TickRate < 1 {
		return fmt.Errorf("tick rate must be positive, got %d", s.Simulation.TickRate)
	}
	if _, err := s.SolverMode(); err != nil {
		return err
	}
	if _, err := s.Integrator(); err != nil {
		return err
	}
	if _, err := wind.Preset(s.Wind.Preset); err != nil {
		return err
	}
	if _, err := s.ClothConfig(); err != nil {
		return err
	}
	return nil
}

// TickSeconds returns the length of one simulation step in seconds.
func (s Settings) TickSeconds() float64 {
	return 1 / float64(s.Simulation.TickRate)
}

// SolverMode returns the configured constraint solver.
func (s Settings) SolverMode() (cloth.SolverMode, error) {
	switch strings.ToLower(s.Simulation.Solver) {
	case cloth.SolverRelaxation.String():
		return cloth.SolverRelaxation, nil
	case cloth.SolverSpring.String():
		return cloth.SolverSpring, nil
	}
	return 0, fmt.Errorf("unknown solver %q", s.Simulation.Solver)
}

// Integrator returns the configured integrator.
func (s Settings) Integrator() (cloth.Integrator, error) {
	switch strings.ToLower(s.Simulation.Integrator) {
	case cloth.IntegratorVerlet.String():
		return cloth.IntegratorVerlet, nil
	case cloth.IntegratorLeapfrog.String():
		return cloth.IntegratorLeapfrog, nil
	}
	return 0, fmt.Errorf("unknown integrator %q", s.Simulation.Integrator)
}

// ClothConfig converts the settings into a cloth configuration and validates it.
func (s Settings) ClothConfig() (cloth.Config, error) {
	integrator, err := s.Integrator()
	if err != nil {
		return cloth.Config{}, err
	}
	cfg := cloth.Config{
		Columns:             s.Cloth.Columns,
		Rows:                s.Cloth.Rows,
		Spacing:             s.Cloth.Spacing,
		Origin:              vec3(s.Cloth.Origin),
		ParticleMass:        s.Cloth.ParticleMass,
		DragCoefficient:     s.Cloth.Drag,
		Gravity:             vec3(s.Cloth.Gravity),
		Iterations:          s.Simulation.Iterations,
		RelaxationStiffness: s.Simulation.RelaxationStiffness,
		Integrator:          integrator,
		Stiffness: cloth.Stiffness{
			Structural: s.Stiffness.Structural,
			Shear:      s.Stiffness.Shear,
			Bending:    s.Stiffness.Bending,
		},
	}
	for _, pin := range s.Cloth.Pins {
		cfg.Pins = append(cfg.Pins, cloth.Pin{Column: pin.Column, Row: pin.Row})
	}
	if err := cfg.Validate(); err != nil {
		return cloth.Config{}, err
	}
	return cfg, nil
}

// WindSource returns the configured wind: a gust around the preset if gusts are enabled, or the
// preset itself otherwise.
func (s Settings) WindSource() (wind.Source, error) {
	base, err := wind.Preset(s.Wind.Preset)
	if err != nil {
		return nil, err
	}
	if !s.Wind.Gust.Enabled {
		return base, nil
	}
	g := s.Wind.Gust
	return wind.NewGust(mgl64.Vec3(base), g.Amplitude, g.Frequency, g.Seed), nil
}

func vec3(v []float64) mgl64.Vec3 {
	var out mgl64.Vec3
	copy(out[:], v)
	return out
}
