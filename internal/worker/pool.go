package worker

import (
	"sync"

	"github.com/veripay/partner-gateway/internal/metrics"
)

type task func()

// Pool drains audit tasks off the request path. Bounded queue; Submit
// blocks if the sink cannot keep up rather than dropping records.
type Pool struct {
	wg   sync.WaitGroup
	jobs chan task
}

func NewPool(n int) *Pool {
	p := &Pool{jobs: make(chan task, 1024)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job()
				metrics.WorkerQueueDepth.Dec()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) {
	metrics.WorkerQueueDepth.Inc()
	p.jobs <- f
}

func (p *Pool) Stop() { close(p.jobs); p.wg.Wait() }
