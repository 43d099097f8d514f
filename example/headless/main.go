package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/drape/scene"
	"github.com/oomph-ac/drape/settings"
	"github.com/oomph-ac/drape/worker"
	"github.com/sirupsen/logrus"
)

// The following program runs the configured cloth headlessly for a number of simulated seconds
// and reports how long the steps took.
func main() {
	path, seconds := "settings.toml", 10.0
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if len(os.Args) > 2 {
		v, err := strconv.ParseFloat(os.Args[2], 64)
		if err != nil || v <= 0 {
			fmt.Println("Usage: ./headless [settings.toml] [seconds]")
			return
		}
		seconds = v
	}

	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{ForceColors: true}

	s, err := settings.Load(path)
	if err != nil {
		log.Fatalf("load settings: %v", err)
	}
	if s.Debug.Verbose {
		log.Level = logrus.DebugLevel
	}

	if dsn := os.Getenv("SENTRY_DSN"); dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
			log.Fatalf("sentry init: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" || s.Debug.StatsView {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr(s.Debug.StatsAddr))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
		log.Infof("statsview listening on http://%s/debug/statsview", s.Debug.StatsAddr)
	}

	if err := run(log, s, seconds); err != nil {
		log.Errorf("simulation failed: %v", err)
		os.Exit(1)
	}
}

func run(log *logrus.Logger, s settings.Settings, seconds float64) error {
	cfg, err := s.ClothConfig()
	if err != nil {
		return err
	}
	src, err := s.WindSource()
	if err != nil {
		return err
	}
	mode, err := s.SolverMode()
	if err != nil {
		return err
	}

	pool := worker.NewPool(0)
	defer pool.Close()

	sc := scene.New(log, pool)
	c, err := sc.Create("cloth", cfg, src)
	if err != nil {
		return err
	}

	dt := s.TickSeconds()
	steps := int(seconds * float64(s.Simulation.TickRate))
	log.Infof("simulating %dx%d cloth for %d steps (%s solver, %s integrator, %s wind)",
		c.Columns(), c.Rows(), steps, mode, c.Integrator(), s.Wind.Preset)

	start := time.Now()
	for i := range steps {
		sc.Step(dt, mode)
		if (i+1)%s.Simulation.TickRate == 0 {
			sc.LogStats()
		}
	}
	if err := sc.Validate(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"wall":       time.Since(start),
		"checksum":   fmt.Sprintf("%016x", c.Checksum()),
		"max_strain": fmt.Sprintf("%.4f", c.MaxStrain()),
	}).Info("simulation finished")
	return nil
}
