package presentation

import "context"

// semaphore bounds the number of pipelines running at once
type semaphore struct {
	ch chan struct{}
}

func newSemaphore(capacity int) *semaphore {
	if capacity < 1 {
		capacity = 1
	}
	return &semaphore{ch: make(chan struct{}, capacity)}
}

func (s *semaphore) acquire(ctx context.Context) error {
	select {
	case s.ch <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *semaphore) release() {
	<-s.ch
}

// acquireSlot takes a pipeline slot and tracks it in the in-flight gauge.
func (s *implService) acquireSlot(ctx context.Context) (func(), error) {
	if err := s.sem.acquire(ctx); err != nil {
		return nil, err
	}
	s.metrics.PipelineStarted()
	return func() {
		s.metrics.PipelineFinished()
		s.sem.release()
	}, nil
}
