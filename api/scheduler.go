package api

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-tracker/internal/logging"
)

const recomputeTimeout = 10 * time.Minute

type balanceRecomputer interface {
	RecomputeBalances(ctx context.Context, accountID *uuid.UUID) (int, error)
}

// Scheduler runs the periodic full balance recompute.
type Scheduler struct {
	cron   *cron.Cron
	logger *logrus.Logger
}

// NewScheduler registers the recompute job on schedule, a standard five
// field cron expression. Overlapping runs are skipped.
func NewScheduler(schedule string, accounts balanceRecomputer, logger *logrus.Logger) (*Scheduler, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.PrintfLogger(logger))))
	_, err := c.AddFunc(schedule, func() {
		recomputeAll(accounts, logger)
	})
	if err != nil {
		return nil, fmt.Errorf("schedule balance recompute: %w", err)
	}
	return &Scheduler{cron: c, logger: logger}, nil
}

func (s *Scheduler) Start() {
	s.logger.Info("Scheduler.Start")
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Scheduler.Stop")
}

func recomputeAll(accounts balanceRecomputer, logger *logrus.Logger) {
	logData := logging.NewLogData(logger)
	ctx, cancel := context.WithTimeout(logging.WithLogData(context.Background(), logData), recomputeTimeout)
	defer cancel()

	endTimer := logData.AddTiming("recomputeMs")
	count, err := accounts.RecomputeBalances(ctx, nil)
	endTimer()
	if err != nil {
		logData.Log().WithError(err).Error("Scheduler.recomputeBalances.Error")
		return
	}
	logData.AddData("accounts", count)
	logData.Log().Info("Scheduler.recomputeBalances.Complete")
}
