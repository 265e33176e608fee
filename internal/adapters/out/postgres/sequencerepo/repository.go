// Package sequencerepo persists named monotonic counters used for order
// number allocation.
package sequencerepo

import (
	"context"

	"marketplace/internal/adapters/out/postgres/pgerrors"

	"gorm.io/gorm"
)

// CounterDTO represents one named counter row.
type CounterDTO struct {
	Name     string `gorm:"primaryKey"`
	Sequence int64
}

// TableName overrides GORM's default naming convention to use "sequence_counters".
func (CounterDTO) TableName() string {
	return "sequence_counters"
}

// GormSequenceRepository implements ports.SequenceRepository using GORM.
// It binds to the base connection, never a transaction: a rollback of the
// surrounding order write must not hand the allocated number back.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GORM sequence repository.
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// NextValue atomically increments the named counter and returns the new
// value, creating the counter at 1 on first use. The upsert runs as a single
// statement, so concurrent callers always receive distinct values.
func (r *GormSequenceRepository) NextValue(ctx context.Context, counterName string) (int64, error) {
	var sequence int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO sequence_counters (name, sequence)
		VALUES (?, 1)
		ON CONFLICT (name) DO UPDATE
		SET sequence = sequence_counters.sequence + 1
		RETURNING sequence
	`, counterName).Scan(&sequence).Error
	if err != nil {
		return 0, pgerrors.Classify("next sequence value", err)
	}

	return sequence, nil
}
