package service

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestNewWorkerPool_DefaultWorkers(t *testing.T) {
	pool := NewWorkerPool(0)
	if pool.workers <= 0 {
		t.Errorf("Expected positive worker count, got %d", pool.workers)
	}
}

func TestWorkerPool_SubmitAndWait(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	var counter int64
	for i := 0; i < 10; i++ {
		pool.Submit(func() {
			atomic.AddInt64(&counter, 1)
		})
	}
	pool.Wait()

	if got := atomic.LoadInt64(&counter); got != 10 {
		t.Errorf("counter = %d, want 10", got)
	}
}

func TestWorkerPool_ConcurrentJobs(t *testing.T) {
	pool := NewWorkerPool(2)
	pool.Start()
	defer pool.Close()

	// Two blocking jobs must be able to run at the same time
	started := make(chan struct{}, 2)
	release := make(chan struct{})

	for i := 0; i < 2; i++ {
		pool.Submit(func() {
			started <- struct{}{}
			<-release
		})
	}

	for i := 0; i < 2; i++ {
		select {
		case <-started:
		case <-time.After(2 * time.Second):
			t.Fatal("jobs did not run concurrently")
		}
	}
	close(release)
	pool.Wait()
}

func TestWorkerPool_StartIdempotent(t *testing.T) {
	pool := NewWorkerPool(1)
	pool.Start()
	pool.Start()
	defer pool.Close()

	done := make(chan struct{})
	pool.Submit(func() { close(done) })

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job never ran")
	}
}
