package api

import (
	"time"

	"go.uber.org/zap"
)

const sessionPruneInterval = time.Hour

// PruneSessions deletes stored sessions whose auth cookie can no longer be valid,
// once at start and then every interval until stop is closed.
func (handler *Handler) PruneSessions(stop <-chan struct{}, interval time.Duration) {
	if interval <= 0 {
		interval = sessionPruneInterval
	}
	handler.pruneExpiredSessions(time.Now())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-ticker.C:
			handler.pruneExpiredSessions(now)
		}
	}
}

func (handler *Handler) pruneExpiredSessions(now time.Time) int64 {
	handler.ensureDependencies()
	removed, err := handler.repositories.Sessions.DeleteUpdatedBefore(now.Add(-authTokenTTL))
	if err != nil {
		handler.logger.Warn("prune sessions failed", zap.Error(err))
		return 0
	}
	if removed > 0 {
		handler.logger.Info("pruned expired sessions", zap.Int64("removed", removed))
	}
	return removed
}
