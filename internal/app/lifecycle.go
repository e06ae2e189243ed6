package app

import (
	"context"
	"sync"

	"ccplot-gui/internal/granule"
	"ccplot-gui/internal/gui"
	"ccplot-gui/internal/logger"
)

// Lifecycle runs the shutdown sequence exactly once: cancel the
// application context (which kills any in-flight ccplot subprocess),
// then release GUI and repository state.
type Lifecycle struct {
	cancel     context.CancelFunc
	guiManager *gui.Manager
	repository *granule.Repository
	logger     logger.Logger

	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(cancel context.CancelFunc, gm *gui.Manager, repo *granule.Repository, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cancel:     cancel,
		guiManager: gm,
		repository: repo,
		logger:     log,
	}
}

func (l *Lifecycle) Shutdown() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.isShutdown {
		return
	}
	l.isShutdown = true

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)

	l.cancel()

	if l.guiManager != nil {
		l.guiManager.Shutdown()
		l.logger.Debug("Lifecycle", "GUI manager shutdown completed", nil)
	}

	if l.repository != nil {
		l.repository.Clear()
		l.logger.Debug("Lifecycle", "repository cleared", nil)
	}

	l.logger.Info("Lifecycle", "shutdown sequence completed", nil)
}
