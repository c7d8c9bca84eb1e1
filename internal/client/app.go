package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/anaszait/tadabbur/internal/config"
	"github.com/anaszait/tadabbur/internal/logger"
	"github.com/anaszait/tadabbur/internal/service"
	"github.com/anaszait/tadabbur/internal/store"
	"github.com/anaszait/tadabbur/internal/tui"
	"github.com/anaszait/tadabbur/internal/workers"
)

type App struct {
	services     *service.ClientServices
	tui          *tui.TUI
	syncInterval time.Duration
	logger       *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, cfg config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, errors.New("client app is missing services or ui")
	}

	return &App{
		services:     services,
		tui:          ui,
		syncInterval: cfg.SyncInterval,
		logger:       logger,
	}, nil
}

// Run implements [Client]. It restores a persisted session or walks the
// user through the login flow, performs an initial sync, starts the
// background workers, and hands control to the main TUI loop. Signing
// out restarts the whole flow.
func (a *App) Run() error {
	ctx := context.Background()

	session, err := a.services.AuthService.RestoreSession(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		session, err = a.tui.LoginFlow(ctx)
		if err != nil {
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		}
	}

	a.logger.Info().Str("email", session.Email).Msg("signed in")

	// First sync is best-effort: the cached notes are usable offline.
	if err = a.services.SyncService.FullSync(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("initial sync failed, continuing offline")
	}

	background := workers.NewWorkers(newSyncWorker(ctx, a.services.SyncJob, a.syncInterval))
	background.Run()
	defer a.services.SyncJob.Stop()

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.AuthService.Logout(ctx); err != nil {
			return fmt.Errorf("logout: %w", err)
		}
		a.services.SyncJob.Stop()
		return a.Run()
	}

	return nil
}

// syncWorker adapts the periodic sync job to the [workers.Worker]
// contract.
type syncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	interval time.Duration
}

func newSyncWorker(ctx context.Context, job service.ClientSyncJob, interval time.Duration) *syncWorker {
	return &syncWorker{ctx: ctx, job: job, interval: interval}
}

func (w *syncWorker) Run() {
	w.job.Start(w.ctx, w.interval)
}
