package service

import (
	"context"
	"sync"
	"time"

	"github.com/anaszait/tadabbur/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls
// syncService.FullSync on a ticker. The job is idle until Start is
// called.
func NewClientSyncJob(syncService ClientSyncService, log *logger.Logger) ClientSyncJob {
	if log == nil {
		log = logger.Nop()
	}
	return &clientSyncJob{syncService: syncService, logger: log}
}

// Start implements [ClientSyncJob]. It stops any previously running job,
// then launches a background goroutine that calls FullSync every
// interval. If interval is zero or negative it defaults to 5 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				// a failed round is retried on the next tick; the client
				// keeps working off the cache meanwhile
				if err := j.syncService.FullSync(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background sync round failed")
				}
			}
		}
	}()
}

// Stop implements [ClientSyncJob]. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running.
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
