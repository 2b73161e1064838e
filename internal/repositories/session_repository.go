package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymtrack/internal/models/db_models"
)

type SessionRepository interface {
	InsertTx(ctx context.Context, tx *gorm.DB, session *db_models.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error)
	Update(ctx context.Context, session *db_models.Session) error
	DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error)

	// VisibleIDs is the de-duplicated set of sessions the account may read,
	// computed before any aggregate runs over it. A user qualifying through
	// several relations at once still yields each id exactly once.
	VisibleIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	HistoryVisible(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]db_models.Session, error)
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) InsertTx(ctx context.Context, tx *gorm.DB, session *db_models.Session) error {
	return tx.WithContext(ctx).Omit(clause.Associations).Create(session).Error
}

func (r *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Session, error) {
	var session db_models.Session
	err := r.db.WithContext(ctx).
		Preload("Purchase").
		Preload("Purchase.Owner").
		Preload("Purchase.PartnerAccount").
		Preload("CreatedBy").
		Preload("PartnerAccount").
		Preload("TrainerRef").
		First(&session, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

func (r *sessionRepository) Update(ctx context.Context, session *db_models.Session) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(session).Error
}

func (r *sessionRepository) DeleteTx(ctx context.Context, tx *gorm.DB, id uuid.UUID) (int64, error) {
	res := tx.WithContext(ctx).Delete(&db_models.Session{}, "id = ?", id)
	return res.RowsAffected, res.Error
}

// visibleSessionFilter covers the three ways an account reaches a session:
// as its creator, as its explicit per-session partner, or, when no explicit
// partner was recorded, through a purchase the account owns or partners on.
func visibleSessionFilter(q *gorm.DB, accountID uuid.UUID) *gorm.DB {
	return q.
		Joins("JOIN purchases p ON p.id = sessions.purchase_id").
		Where(
			"sessions.created_by_id = ? OR sessions.partner_account_id = ? OR (sessions.partner_account_id IS NULL AND (p.owner_id = ? OR p.partner_account_id = ?))",
			accountID, accountID, accountID, accountID,
		)
}

func (r *sessionRepository) VisibleIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	q := r.db.WithContext(ctx).
		Model(&db_models.Session{}).
		Distinct("sessions.id")
	err := visibleSessionFilter(q, accountID).
		Pluck("sessions.id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *sessionRepository) HistoryVisible(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]db_models.Session, error) {
	ids, err := r.VisibleIDs(ctx, accountID)
	if err != nil {
		return nil, err
	}

	q := r.db.WithContext(ctx).
		Preload("Purchase").
		Preload("Purchase.Owner").
		Preload("Purchase.PartnerAccount").
		Preload("CreatedBy").
		Preload("PartnerAccount").
		Preload("TrainerRef").
		Where("id IN ?", idsOrNone(ids))
	if !start.IsZero() {
		q = q.Where("session_date >= ?", start)
	}
	if !end.IsZero() {
		q = q.Where("session_date <= ?", end)
	}

	var sessions []db_models.Session
	err = q.Order("session_date DESC").Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
