// Package worker hosts the background sweep that keeps every plant's stored
// state current between player visits.
package worker

import (
	"context"
	"log/slog"
	"time"

	"botany/config"
	"botany/internal/delivery"
	"botany/internal/usecase"

	"go.uber.org/fx"
)

type sweepWorker struct {
	cfg    *config.Config
	logger *slog.Logger
	uc     usecase.SweepUsecase
	stop   chan struct{}
}

// ServerParams holds dependencies for the sweep worker
type ServerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	Sweep  usecase.SweepUsecase
}

// NewServer creates the periodic sweep worker.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &sweepWorker{
		cfg:    params.Cfg,
		logger: params.Logger,
		uc:     params.Sweep,
		stop:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			close(srv.stop)

			return nil
		},
	})

	return srv, nil
}

// Serve runs the sweep on the configured interval until stopped. One pass
// runs immediately on startup so a long-idle deployment catches up.
func (s *sweepWorker) Serve(ctx context.Context) error {
	interval := s.cfg.Game.SweepInterval
	s.logger.Info("Starting sweep worker", slog.Duration("interval", interval))

	s.run(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.stop:
			s.logger.Info("Shutting down sweep worker")

			return nil
		case <-ticker.C:
			s.run(ctx)
		}
	}
}

func (s *sweepWorker) run(ctx context.Context) {
	start := time.Now()
	count, err := s.uc.RefreshAll(ctx)
	if err != nil {
		s.logger.Error("Sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Info("Sweep completed",
		slog.Int("plants", count),
		slog.Duration("elapsed", time.Since(start)),
	)
}
