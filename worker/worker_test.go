package worker

import (
	"sync"
	"testing"

	"go.uber.org/atomic"
)

func TestPoolRunsEveryJob(t *testing.T) {
	p := NewPool(4)
	defer p.Close()

	var (
		count atomic.Int64
		wg    sync.WaitGroup
	)
	for range 100 {
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			count.Inc()
		})
	}
	wg.Wait()
	if count.Load() != 100 {
		t.Fatalf("ran %d jobs, want 100", count.Load())
	}
}

func TestPoolSurvivesPanic(t *testing.T) {
	p := NewPool(1)
	defer p.Close()

	var wg sync.WaitGroup
	wg.Add(2)
	p.Submit(func() {
		defer wg.Done()
		panic("job failed")
	})
	var ran atomic.Bool
	p.Submit(func() {
		defer wg.Done()
		ran.Store(true)
	})
	wg.Wait()
	if !ran.Load() {
		t.Fatalf("job after a panic did not run")
	}
}

func TestCloseDrainsQueue(t *testing.T) {
	p := NewPool(2)
	var count atomic.Int64
	for range 10 {
		p.Submit(func() { count.Inc() })
	}
	p.Close()
	p.Close()
	if count.Load() != 10 {
		t.Fatalf("ran %d jobs before close returned, want 10", count.Load())
	}
}
