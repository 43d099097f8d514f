package worker

import (
	"runtime"
	"sync"

	"github.com/getsentry/sentry-go"
)

// Pool runs submitted jobs on a fixed number of goroutines. A job that panics is reported to sentry
// and the goroutine keeps serving the queue.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

// NewPool starts a pool of n workers. If n is less than one, one worker is started per CPU.
func NewPool(n int) *Pool {
	if n < 1 {
		n = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), n)}
	p.wg.Add(n)
	for range n {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for f := range p.queue {
		p.run(f)
	}
}

func (p *Pool) run(f func()) {
	defer sentry.Recover()
	f()
}

// Submit queues f to be run by one of the workers. It is meant for functions that may be CPU
// intensive. Submit must not be called after Close.
func (p *Pool) Submit(f func()) {
	p.queue <- f
}

// Close stops accepting jobs and waits for the queued ones to finish.
func (p *Pool) Close() {
	p.once.Do(func() {
		close(p.queue)
	})
	p.wg.Wait()
}
