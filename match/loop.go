package match

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Run ticks the match at the configured rate until ctx is cancelled.
// Input goroutines should use Queue while Run is active.
func (m *Match) Run(ctx context.Context) error {
	rate := m.cfg.Combat.TickRate
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	m.logger.Info("match loop started", zap.Int("tick_rate", rate))

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("match loop stopped", zap.Uint64("ticks", m.Ticks()))
			return nil
		case <-ticker.C:
			m.Tick()
		}
	}
}
