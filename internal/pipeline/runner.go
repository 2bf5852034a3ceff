package pipeline

import (
	"context"
	"sync"

	"github.com/ironsheep/simdtag-go/internal/binimage"
)

// job is one unit of work submitted to a Runner. job values are pooled
// so steady-state submission doesn't allocate an envelope per frame.
type job struct {
	ctx    context.Context
	gray   *binimage.GrayImage
	result chan jobResult
}

type jobResult struct {
	result *Result
	err    error
}

// Runner is a bounded worker pool over Pipeline.Run, built the same way
// the teacher's ImageCache guards shared state: an RWMutex-protected
// registry of recorded results plus long-lived per-worker state, so a
// stream of frames doesn't pay per-frame goroutine and Pipeline setup
// cost.
type Runner struct {
	jobs    chan *job
	jobPool sync.Pool

	mu      sync.RWMutex
	handles map[uint64]jobResult
	nextID  uint64

	wg sync.WaitGroup
}

// NewRunner starts a Runner with the given worker count, each worker
// owning one long-lived Pipeline built from cfg.
func NewRunner(cfg Config, workers int) (*Runner, error) {
	if workers <= 0 {
		workers = 1
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Runner{
		jobs:    make(chan *job, workers),
		handles: make(map[uint64]jobResult),
	}
	r.jobPool.New = func() interface{} { return &job{result: make(chan jobResult, 1)} }

	for i := 0; i < workers; i++ {
		p, err := New(cfg)
		if err != nil {
			return nil, err
		}
		r.wg.Add(1)
		go r.worker(p)
	}
	return r, nil
}

func (r *Runner) worker(p *Pipeline) {
	defer r.wg.Done()
	for j := range r.jobs {
		res, err := p.Run(j.ctx, j.gray)
		j.result <- jobResult{result: res, err: err}
	}
}

// Submit runs gray through the pool and blocks until a worker has
// processed it or ctx is cancelled.
func (r *Runner) Submit(ctx context.Context, gray *binimage.GrayImage) (*Result, error) {
	j := r.jobPool.Get().(*job)
	j.ctx, j.gray = ctx, gray

	select {
	case r.jobs <- j:
	case <-ctx.Done():
		// Never hit r.jobs, so no worker goroutine has seen j; safe to
		// recycle immediately.
		r.jobPool.Put(j)
		return nil, ctx.Err()
	}

	select {
	case res := <-j.result:
		r.jobPool.Put(j)
		return res.result, res.err
	case <-ctx.Done():
		// The worker already has j and is still running p.Run(j.ctx,
		// j.gray); it will write to j.result once that finishes. Putting
		// j back to the pool here would let a concurrent Submit hand the
		// same envelope to another worker while this one is still using
		// it, corrupting j.ctx/j.gray and racing on j.result. Drop j
		// instead of recycling it; jobPool.New supplies a fresh one.
		return nil, ctx.Err()
	}
}

// Record stores a job's outcome under a fresh handle id, for callers
// that submit work from one goroutine and collect results from another.
func (r *Runner) Record(res *Result, err error) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	id := r.nextID
	r.handles[id] = jobResult{result: res, err: err}
	return id
}

// Lookup retrieves a previously Recorded outcome by handle id.
func (r *Runner) Lookup(id uint64) (*Result, error, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	jr, ok := r.handles[id]
	if !ok {
		return nil, nil, false
	}
	return jr.result, jr.err, true
}

// Evict removes a stored handle, freeing its Result for garbage
// collection.
func (r *Runner) Evict(id uint64) {
	r.mu.Lock()
	delete(r.handles, id)
	r.mu.Unlock()
}

// Close stops accepting new jobs and waits for in-flight workers to
// drain.
func (r *Runner) Close() {
	close(r.jobs)
	r.wg.Wait()
}
