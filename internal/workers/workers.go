package workers

// Worker is the interface implemented by any background worker.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// Workers runs a set of workers one after another in registration order.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers into a single runnable aggregate.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
