package service

import (
	"runtime"
	"sync"
)

// WorkerPool runs extraction jobs concurrently. The text and code passes
// over one image share no state, so they can run in parallel; each caller
// coordinates completion of its own jobs with done callbacks or wait groups.
type WorkerPool struct {
	workers   int
	jobQueue  chan func()
	wg        sync.WaitGroup
	startOnce sync.Once
	closeOnce sync.Once
}

// NewWorkerPool creates a pool with the specified number of workers; zero or
// negative means one worker per CPU
func NewWorkerPool(workers int) *WorkerPool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &WorkerPool{
		workers:  workers,
		jobQueue: make(chan func(), workers*2),
	}
}

// Start launches the workers; safe to call more than once
func (wp *WorkerPool) Start() {
	wp.startOnce.Do(func() {
		for i := 0; i < wp.workers; i++ {
			go wp.worker()
		}
	})
}

func (wp *WorkerPool) worker() {
	for job := range wp.jobQueue {
		job()
		wp.wg.Done()
	}
}

// Submit adds a job to the queue
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.jobQueue <- job
}

// Wait blocks until every submitted job has completed
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Close shuts down the pool; pending jobs still drain
func (wp *WorkerPool) Close() {
	wp.closeOnce.Do(func() {
		close(wp.jobQueue)
	})
}
