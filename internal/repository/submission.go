package repository

import (
	"context"
	"fmt"
	"time"
)

type SubmissionDAO interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type SubmissionRepository struct {
	dao SubmissionDAO
}

func NewSubmissionRepository(dao SubmissionDAO) *SubmissionRepository {
	return &SubmissionRepository{
		dao: dao,
	}
}

func (r *SubmissionRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	deleted, err := r.dao.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("r.dao.DeleteOlderThan -> %w", err)
	}

	return deleted, nil
}
