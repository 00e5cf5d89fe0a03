package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateSubmission means the client replayed a submission token,
// typically a double click. The first write already went through.
var ErrDuplicateSubmission = errors.New("submission already processed")

// Submission is the idempotency ledger: one row per accepted form
// submission token. Rows are pruned once they are older than the TTL.
type Submission struct {
	ID        uint      `gorm:"primaryKey"`
	Token     string    `gorm:"unique;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// claimSubmission records the token inside the caller's transaction.
// An empty token means the client opted out of deduplication.
func claimSubmission(tx *gorm.DB, token string) error {
	if token == "" {
		return nil
	}

	result := tx.Create(&Submission{Token: token})
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return ErrDuplicateSubmission
		}

		return result.Error
	}

	return nil
}

type SubmissionDAO struct {
	db *gorm.DB
}

func NewSubmissionDAO(db *gorm.DB) *SubmissionDAO {
	return &SubmissionDAO{
		db: db,
	}
}

// DeleteOlderThan prunes expired tokens and returns how many went away.
func (d *SubmissionDAO) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	result := d.db.WithContext(ctx).Where("created_at < ?", cutoff).Delete(&Submission{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
