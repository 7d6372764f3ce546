package worker

import (
	"context"
	"sync"
	"time"

	"github.com/jigardalal/siteninja-backend-sub001/internal/repository"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

// ExpiryWorker periodically deactivates API keys whose expiry has
// passed. Expired keys stay listed (inactive) for auditability; only
// the active flag changes.
type ExpiryWorker struct {
	repository    repository.Repository
	logger        *logger.Logger
	sweepInterval time.Duration
	shutdownChan  chan struct{}
	waitGroup     sync.WaitGroup
}

func NewExpiryWorker(
	repository repository.Repository,
	logger *logger.Logger,
	sweepInterval time.Duration,
) *ExpiryWorker {
	return &ExpiryWorker{
		repository:    repository,
		logger:        logger,
		sweepInterval: sweepInterval,
		shutdownChan:  make(chan struct{}),
	}
}

func (w *ExpiryWorker) Start() {
	w.logger.Info("Starting API key expiry worker...")

	w.waitGroup.Add(1)
	go w.run()
}

func (w *ExpiryWorker) Stop() {
	w.logger.Info("Stopping API key expiry worker...")
	close(w.shutdownChan)
	w.waitGroup.Wait()
	w.logger.Info("API key expiry worker stopped")
}

func (w *ExpiryWorker) run() {
	defer w.waitGroup.Done()

	ticker := time.NewTicker(w.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.shutdownChan:
			return
		case <-ticker.C:
			if err := w.sweep(context.Background()); err != nil {
				w.logger.Errorf("API key expiry sweep failed: %v", err)
			}
		}
	}
}

func (w *ExpiryWorker) sweep(ctx context.Context) error {
	deactivated, err := w.repository.APIKey().DeactivateExpired(ctx, time.Now())
	if err != nil {
		return err
	}

	if deactivated > 0 {
		w.logger.Infof("Deactivated %d expired API keys", deactivated)
	}

	return nil
}
