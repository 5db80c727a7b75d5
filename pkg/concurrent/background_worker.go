package concurrent

import (
	"context"
	"sync"
)

type JobFunc[T any, G any] func(job T) G

// ResultFunc receives every finished job. It is called from worker goroutines.
type ResultFunc[T any, G any] func(job T, result G)

// BackgroundWorker runs jobFunc on a fixed number of goroutines.
type BackgroundWorker[T any, G any] struct {
	workers   int
	msgC      chan T
	waitGroup sync.WaitGroup
	jobFunc   JobFunc[T, G]
	onResult  ResultFunc[T, G]
}

func NewBackgroundWorker[T any, G any](workers, buffer int, jobFunc JobFunc[T, G], onResult ResultFunc[T, G]) *BackgroundWorker[T, G] {
	if workers < 1 {
		workers = 1
	}
	return &BackgroundWorker[T, G]{
		workers:  workers,
		msgC:     make(chan T, buffer),
		jobFunc:  jobFunc,
		onResult: onResult,
	}
}

// TriggerProcessing queues a job. It blocks while the buffer is full and gives up
// when ctx is done.
func (bw *BackgroundWorker[T, G]) TriggerProcessing(ctx context.Context, jobData T) error {
	select {
	case bw.msgC <- jobData:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Start launches the workers. Jobs still queued after ctx is done are dropped.
func (bw *BackgroundWorker[T, G]) Start(ctx context.Context) {
	bw.waitGroup.Add(bw.workers)
	for i := 0; i < bw.workers; i++ {
		go func() {
			defer bw.waitGroup.Done()
			for jobData := range bw.msgC {
				if ctx.Err() != nil {
					continue
				}
				res := bw.jobFunc(jobData)
				if bw.onResult != nil {
					bw.onResult(jobData, res)
				}
			}
		}()
	}
}

// Close stops accepting jobs and waits for the workers to drain the queue.
func (bw *BackgroundWorker[T, G]) Close() {
	close(bw.msgC)
	bw.waitGroup.Wait()
}
