package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReportRepository aggregates strictly over pre-computed distinct id sets.
// Summing over a joined row set would double-count rows for accounts that
// qualify through more than one relation, so every aggregate here takes the
// id set produced by the visibility queries.
type ReportRepository interface {
	RemainingByDuration(ctx context.Context, purchaseIDs []uuid.UUID) (map[int]int, error)
	TrainerMinutes(ctx context.Context, sessionIDs []uuid.UUID, start, end time.Time) ([]TrainerMinutesRow, error)
	TotalCostOwned(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (float64, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// ---------- Row helpers ----------

type TrainerMinutesRow struct {
	Trainer      string `gorm:"column:trainer"`
	TotalMinutes int64  `gorm:"column:total_minutes"`
}

type durationRemainingRow struct {
	DurationMinutes int   `gorm:"column:duration_minutes"`
	Remaining       int64 `gorm:"column:remaining"`
}

// ---------- Aggregates ----------

func (r *reportRepository) RemainingByDuration(ctx context.Context, purchaseIDs []uuid.UUID) (map[int]int, error) {
	var rows []durationRemainingRow
	err := r.db.WithContext(ctx).
		Table("purchases").
		Select("duration_minutes, SUM(sessions_remaining) AS remaining").
		Where("id IN ?", idsOrNone(purchaseIDs)).
		Group("duration_minutes").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[int]int, len(rows))
	for _, row := range rows {
		out[row.DurationMinutes] = int(row.Remaining)
	}
	return out, nil
}

func (r *reportRepository) TrainerMinutes(ctx context.Context, sessionIDs []uuid.UUID, start, end time.Time) ([]TrainerMinutesRow, error) {
	var rows []TrainerMinutesRow
	// Display prefers the structured trainer when set, falling back to the
	// legacy free-text name.
	q := r.db.WithContext(ctx).
		Table("sessions s").
		Select("COALESCE(t.name, s.trainer) AS trainer, SUM(s.duration_minutes) AS total_minutes").
		Joins("LEFT JOIN trainers t ON t.id = s.trainer_id").
		Where("s.id IN ?", idsOrNone(sessionIDs))
	if !start.IsZero() {
		q = q.Where("s.session_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("s.session_date <= ?", end)
	}
	err := q.Group("COALESCE(t.name, s.trainer)").
		Order("total_minutes DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// TotalCostOwned sums owned purchases only: cost is owner-attributed, so a
// partner's report never includes someone else's money.
func (r *reportRepository) TotalCostOwned(ctx context.Context, ownerID uuid.UUID, start, end time.Time) (float64, error) {
	var total *float64
	q := r.db.WithContext(ctx).
		Table("purchases").
		Select("SUM(cost)").
		Where("owner_id = ?", ownerID)
	if !start.IsZero() {
		q = q.Where("purchase_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("purchase_date <= ?", end)
	}
	if err := q.Scan(&total).Error; err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}

// idsOrNone keeps "IN ?" well-formed when the visible set is empty.
func idsOrNone(ids []uuid.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return []uuid.UUID{uuid.Nil}
	}
	return ids
}
