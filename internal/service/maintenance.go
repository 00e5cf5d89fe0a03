package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

type SubmissionRepository interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// MaintenanceService runs the background job that prunes expired
// submission tokens from the idempotency ledger.
type MaintenanceService struct {
	submissionRepo SubmissionRepository
	ttl            time.Duration
	scheduler      gocron.Scheduler
}

func NewMaintenanceService(submissionRepo SubmissionRepository, ttl time.Duration) *MaintenanceService {
	return &MaintenanceService{
		submissionRepo: submissionRepo,
		ttl:            ttl,
	}
}

func (s *MaintenanceService) Start() error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return fmt.Errorf("gocron.NewScheduler -> %w", err)
	}
	s.scheduler = scheduler

	_, err = scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(s.pruneSubmissions),
	)
	if err != nil {
		return fmt.Errorf("scheduler.NewJob -> %w", err)
	}

	scheduler.Start()

	return nil
}

func (s *MaintenanceService) Stop() error {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Shutdown()
}

func (s *MaintenanceService) pruneSubmissions() {
	cutoff := time.Now().Add(-s.ttl)

	deleted, err := s.submissionRepo.DeleteOlderThan(context.Background(), cutoff)
	if err != nil {
		zap.L().Error("failed to prune submission tokens", zap.Error(err))
		return
	}

	if deleted > 0 {
		zap.L().Info("pruned expired submission tokens", zap.Int64("count", deleted))
	}
}
