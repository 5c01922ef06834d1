package audio

import (
	"context"
	"sync"
	"time"
)

// flusher runs one speech job at a time. Starting a job cancels the
// previous one, which kills its synthesis request or player process.
type flusher struct {
	mu      sync.Mutex
	root    context.Context
	stopAll context.CancelFunc
	cancel  context.CancelFunc
	timeout time.Duration
	wg      sync.WaitGroup
}

func newFlusher(timeout time.Duration) *flusher {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	root, stopAll := context.WithCancel(context.Background())
	return &flusher{root: root, stopAll: stopAll, timeout: timeout}
}

// run cancels the running job and starts job in the background
func (f *flusher) run(job func(ctx context.Context)) {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
	}
	ctx, cancel := context.WithTimeout(f.root, f.timeout)
	f.cancel = cancel
	f.wg.Add(1)
	f.mu.Unlock()

	go func() {
		defer f.wg.Done()
		defer cancel()
		job(ctx)
	}()
}

// stop cancels every job and waits for them to return
func (f *flusher) stop() {
	f.mu.Lock()
	f.stopAll()
	f.mu.Unlock()
	f.wg.Wait()
}
