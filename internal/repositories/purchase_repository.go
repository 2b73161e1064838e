package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymtrack/internal/models/db_models"
	"gymtrack/pkg/utils"
)

type PurchaseRepository interface {
	Insert(ctx context.Context, purchase *db_models.Purchase) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error)
	Update(ctx context.Context, purchase *db_models.Purchase) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountSessions(ctx context.Context, purchaseID uuid.UUID) (int64, error)

	// FindConsumableIDs returns, oldest purchase first, the ids the account may
	// draw a session of the given duration from: owned or partnered purchases
	// with sessions remaining.
	FindConsumableIDs(ctx context.Context, accountID uuid.UUID, durationMinutes int) ([]uuid.UUID, error)

	// Consume decrements the counter by one under a compare-and-swap guard and
	// reports whether the purchase is now exhausted. Must run inside the same
	// transaction that persists the session row.
	Consume(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error)

	// Restore gives one session back, capped at total_sessions.
	Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error

	// VisibleIDs is the de-duplicated set of purchases the account may read:
	// owner or linked partner.
	VisibleIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	HistoryVisible(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]db_models.Purchase, error)

	// LinkPartner retroactively attaches an account to every purchase whose
	// partner email matches and is not linked yet. The NULL guard makes the
	// call idempotent. Returns how many rows were linked.
	LinkPartner(ctx context.Context, email string, accountID uuid.UUID) (int64, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Insert(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(purchase).Error
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Purchase, error) {
	var purchase db_models.Purchase
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("PartnerAccount").
		First(&purchase, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *db_models.Purchase) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) CountSessions(ctx context.Context, purchaseID uuid.UUID) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Session{}).
		Where("purchase_id = ?", purchaseID).
		Count(&n).Error
	return n, err
}

func (r *purchaseRepository) FindConsumableIDs(ctx context.Context, accountID uuid.UUID, durationMinutes int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("duration_minutes = ? AND sessions_remaining > 0", durationMinutes).
		Where("owner_id = ? OR partner_account_id = ?", accountID, accountID).
		Order("purchase_date ASC").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *purchaseRepository) Consume(ctx context.Context, tx *gorm.DB, id uuid.UUID) (bool, error) {
	// Re-check the counter at decrement time: sessions_remaining > 0 in the
	// WHERE clause is what loses the race cleanly when two requests target the
	// same last session.
	res := tx.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("id = ? AND sessions_remaining > 0", id).
		Update("sessions_remaining", gorm.Expr("sessions_remaining - 1"))
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, utils.ErrAlreadyExhausted
	}

	var purchase db_models.Purchase
	if err := tx.WithContext(ctx).First(&purchase, "id = ?", id).Error; err != nil {
		return false, err
	}
	if purchase.SessionsRemaining < 0 || purchase.SessionsRemaining > purchase.TotalSessions {
		return false, utils.ErrInvariantViolation
	}
	return purchase.SessionsRemaining == 0, nil
}

func (r *purchaseRepository) Restore(ctx context.Context, tx *gorm.DB, id uuid.UUID) error {
	// Capped at total_sessions. Zero rows affected means the cap was hit,
	// which is tolerated rather than overflowing the entitlement.
	return tx.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("id = ? AND sessions_remaining < total_sessions", id).
		Update("sessions_remaining", gorm.Expr("sessions_remaining + 1")).Error
}

func (r *purchaseRepository) VisibleIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Distinct("id").
		Where("owner_id = ? OR partner_account_id = ?", accountID, accountID).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *purchaseRepository) HistoryVisible(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]db_models.Purchase, error) {
	q := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("PartnerAccount").
		Where("owner_id = ? OR partner_account_id = ?", accountID, accountID)
	if !start.IsZero() {
		q = q.Where("purchase_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("purchase_date <= ?", end)
	}

	var purchases []db_models.Purchase
	err := q.Order("purchase_date DESC").Find(&purchases).Error
	if err != nil {
		return nil, err
	}
	return purchases, nil
}

func (r *purchaseRepository) LinkPartner(ctx context.Context, email string, accountID uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Purchase{}).
		Where("partner_email = ? AND partner_account_id IS NULL", email).
		Update("partner_account_id", accountID)
	return res.RowsAffected, res.Error
}
