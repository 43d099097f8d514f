package scene

import (
	"fmt"
	"sync"
	"time"

	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/drape/cloth"
	"github.com/oomph-ac/drape/omath"
	"github.com/oomph-ac/drape/wind"
	"github.com/oomph-ac/drape/worker"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// FrameWindow is the number of recent step durations kept for timing statistics.
const FrameWindow = 120

type entry struct {
	cloth *cloth.Cloth
	wind  wind.Source
}

// Scene owns a set of named cloths and steps them together. Independent cloths are updated
// concurrently on the worker pool, but a single cloth is only ever touched by one goroutine.
type Scene struct {
	log  *logrus.Logger
	pool *worker.Pool

	mu      sync.Mutex
	entries *orderedmap.OrderedMap[string, entry]
	// owners maps every registered cloth to its name.
	owners  map[*cloth.Cloth]string
	elapsed float64
	frames  *omath.SampleWindow

	steps      atomic.Uint64
	clothSteps atomic.Uint64
}

// Stats is a snapshot of the scene's counters and frame timings.
type Stats struct {
	Steps      uint64
	ClothSteps uint64
	// Time is the simulated time in seconds.
	Time float64

	FrameMean   time.Duration
	FrameStdDev time.Duration
}

// New creates an empty scene. If pool is nil, cloths are updated on the calling goroutine.
func New(log *logrus.Logger, pool *worker.Pool) *Scene {
	if log == nil {
		log = logrus.New()
	}
	return &Scene{
		log:     log,
		pool:    pool,
		entries: orderedmap.NewOrderedMap[string, entry](),
		owners:  make(map[*cloth.Cloth]string),
		frames:  omath.NewSampleWindow(FrameWindow),
	}
}

// Add registers c under name, driven by the given wind source. A nil source is calm. A cloth may
// only be registered once.
func (s *Scene) Add(name string, c *cloth.Cloth, src wind.Source) error {
	if c == nil {
		return fmt.Errorf("add %q: nil cloth", name)
	}
	if src == nil {
		src = wind.Calm
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entries.Get(name); ok {
		return fmt.Errorf("add %q: a cloth with this name already exists", name)
	}
	if owner, ok := s.owners[c]; ok {
		return fmt.Errorf("add %q: cloth is already registered as %q", name, owner)
	}
	s.entries.Set(name, entry{cloth: c, wind: src})
	s.owners[c] = name
	s.log.WithField("cloth", name).Debugf("added %dx%d cloth", c.Columns(), c.Rows())
	return nil
}

// Create builds a cloth from cfg and adds it under name. Construction diagnostics are logged at
// debug level.
func (s *Scene) Create(name string, cfg cloth.Config, src wind.Source) (*cloth.Cloth, error) {
	cfg.Debugf = s.log.WithField("cloth", name).Debugf
	c, err := cloth.NewFromConfig(cfg)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	if err := s.Add(name, c, src); err != nil {
		return nil, err
	}
	return c, nil
}

// Remove removes the named cloth, reporting whether it was present.
func (s *Scene) Remove(name string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Get(name)
	if !ok {
		return false
	}
	delete(s.owners, e.cloth)
	return s.entries.Delete(name)
}

// Cloth returns the named cloth.
func (s *Scene) Cloth(name string) (*cloth.Cloth, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Get(name)
	return e.cloth, ok
}

// SetWind replaces the wind source driving the named cloth.
func (s *Scene) SetWind(name string, src wind.Source) error {
	if src == nil {
		src = wind.Calm
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Get(name)
	if !ok {
		return fmt.Errorf("set wind: no cloth named %q", name)
	}
	e.wind = src
	s.entries.Set(name, e)
	return nil
}

// Names returns the names of every cloth in the order they were added.
func (s *Scene) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Keys()
}

// Len returns the number of cloths in the scene.
func (s *Scene) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries.Len()
}

// Step advances every cloth by dt seconds. Each wind source is sampled at the current scene
// time before any cloth is updated, and Step returns once every cloth has been updated.
func (s *Scene) Step(dt float64, mode cloth.SolverMode) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	var wg sync.WaitGroup
	n := 0
	for el := s.entries.Front(); el != nil; el = el.Next() {
		c := el.Value.cloth
		c.SetWindForce(el.Value.wind.Wind(s.elapsed))
		n++

		if s.pool == nil {
			c.Update(dt, mode)
			continue
		}
		wg.Add(1)
		s.pool.Submit(func() {
			defer wg.Done()
			c.Update(dt, mode)
		})
	}
	wg.Wait()

	s.elapsed += dt
	s.frames.Push(time.Since(start).Seconds())
	s.steps.Inc()
	s.clothSteps.Add(uint64(n))
}

// Validate checks every cloth for non-finite state, returning the first failure.
func (s *Scene) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for el := s.entries.Front(); el != nil; el = el.Next() {
		if err := el.Value.cloth.Validate(); err != nil {
			return fmt.Errorf("cloth %q: %w", el.Key, err)
		}
	}
	return nil
}

// Steps returns the number of completed calls to Step. It is safe to call concurrently with Step.
func (s *Scene) Steps() uint64 {
	return s.steps.Load()
}

// Stats returns the scene's counters and the timing of recent steps.
func (s *Scene) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Steps:       s.steps.Load(),
		ClothSteps:  s.clothSteps.Load(),
		Time:        s.elapsed,
		FrameMean:   seconds(s.frames.Mean()),
		FrameStdDev: seconds(s.frames.StandardDeviation()),
	}
}

// LogStats logs the current statistics at info level.
func (s *Scene) LogStats() {
	st := s.Stats()
	s.log.WithFields(logrus.Fields{
		"steps":       st.Steps,
		"cloth_steps": st.ClothSteps,
		"time":        fmt.Sprintf("%.2fs", st.Time),
		"frame_mean":  st.FrameMean,
		"frame_std":   st.FrameStdDev,
	}).Info("scene stats")
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
