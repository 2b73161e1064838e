package services

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/config"
	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/metrics"
	"gymtrack/pkg/utils"
)

type SessionServiceInterface interface {
	LogSession(ctx context.Context, accountID uuid.UUID, req request_models.CreateSessionRequest) (response_models.SessionResponse, error)
	History(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.SessionResponse, error)
	UpdateSession(ctx context.Context, accountID, sessionID uuid.UUID, req request_models.UpdateSessionRequest) (response_models.SessionResponse, error)
	DeleteSession(ctx context.Context, accountID, sessionID uuid.UUID) error
}

type SessionService struct {
	db           *gorm.DB
	cfg          *config.Config
	sessionRepo  repositories.SessionRepository
	purchaseRepo repositories.PurchaseRepository
	accountRepo  repositories.AccountRepository
	trainerRepo  repositories.TrainerRepository
}

func NewSessionService(
	db *gorm.DB,
	cfg *config.Config,
	sessionRepo repositories.SessionRepository,
	purchaseRepo repositories.PurchaseRepository,
	accountRepo repositories.AccountRepository,
	trainerRepo repositories.TrainerRepository,
) SessionServiceInterface {
	return &SessionService{
		db:           db,
		cfg:          cfg,
		sessionRepo:  sessionRepo,
		purchaseRepo: purchaseRepo,
		accountRepo:  accountRepo,
		trainerRepo:  trainerRepo,
	}
}

// LogSession is the single-transition write path: validate, resolve partner,
// pick the oldest matching purchase, consume, persist. Consume and the session
// insert share one transaction so a crash cannot leave the counter and the
// session set disagreeing.
func (s *SessionService) LogSession(ctx context.Context, accountID uuid.UUID, req request_models.CreateSessionRequest) (response_models.SessionResponse, error) {
	if !s.cfg.DurationConfigured(req.DurationMinutes) {
		return response_models.SessionResponse{}, utils.ErrInvalidDuration
	}

	session := &db_models.Session{
		CreatedByID:     accountID,
		DurationMinutes: req.DurationMinutes,
		Trainer:         req.Trainer,
		SessionDate:     time.Now().UTC(),
	}
	if req.SessionDate != nil {
		session.SessionDate = req.SessionDate.UTC()
	}

	if req.TrainerID != nil && *req.TrainerID != "" {
		trainerID, err := uuid.Parse(*req.TrainerID)
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrRecordNotFound
		}
		trainer, err := s.trainerRepo.FindByID(ctx, trainerID)
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrDatabaseError
		}
		if trainer == nil {
			return response_models.SessionResponse{}, utils.ErrRecordNotFound
		}
		session.TrainerID = &trainer.ID
	}

	// An explicit per-session partner overrides the purchase's partner for
	// this one event. Resolution only looks up existing accounts; an email
	// with no account is the normal unresolved case, not an error.
	if req.PartnerEmail != nil && *req.PartnerEmail != "" {
		partner, err := s.accountRepo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(*req.PartnerEmail)))
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrDatabaseError
		}
		if partner != nil && partner.ID != accountID {
			session.PartnerAccountID = &partner.ID
		}
	}

	candidates, err := s.purchaseRepo.FindConsumableIDs(ctx, accountID, req.DurationMinutes)
	if err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}

	exhausted := false
	logged := false
	for _, purchaseID := range candidates {
		txErr := s.db.Transaction(func(tx *gorm.DB) error {
			ex, err := s.purchaseRepo.Consume(ctx, tx, purchaseID)
			if err != nil {
				return err
			}
			session.PurchaseID = purchaseID
			if err := s.sessionRepo.InsertTx(ctx, tx, session); err != nil {
				return err
			}
			exhausted = ex
			return nil
		})
		if txErr == nil {
			logged = true
			break
		}
		if errors.Is(txErr, utils.ErrAlreadyExhausted) {
			// A concurrent consumer beat us to this purchase; try the next
			// FIFO candidate.
			continue
		}
		if errors.Is(txErr, utils.ErrInvariantViolation) {
			return response_models.SessionResponse{}, txErr
		}
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	if !logged {
		return response_models.SessionResponse{}, utils.ErrNoAvailablePurchase
	}

	metrics.SessionsLogged.WithLabelValues(strconv.Itoa(req.DurationMinutes)).Inc()
	if exhausted {
		metrics.PurchasesExhausted.Inc()
	}

	created, err := s.sessionRepo.FindByID(ctx, session.ID)
	if err != nil || created == nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	resp := AnnotateSession(created, accountID)
	resp.PurchaseExhausted = exhausted
	return resp, nil
}

func (s *SessionService) History(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.SessionResponse, error) {
	sessions, err := s.sessionRepo.HistoryVisible(ctx, accountID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, AnnotateSession(&sessions[i], accountID))
	}
	return out, nil
}

func (s *SessionService) UpdateSession(ctx context.Context, accountID, sessionID uuid.UUID, req request_models.UpdateSessionRequest) (response_models.SessionResponse, error) {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	if session == nil {
		return response_models.SessionResponse{}, utils.ErrRecordNotFound
	}
	if session.CreatedByID != accountID {
		return response_models.SessionResponse{}, utils.ErrNotOwner
	}

	if req.SessionDate != nil {
		session.SessionDate = req.SessionDate.UTC()
	}
	// A session's duration is bound to its purchase; edits may only restate
	// the same value.
	if req.DurationMinutes != nil && *req.DurationMinutes != session.Purchase.DurationMinutes {
		return response_models.SessionResponse{}, utils.ErrInvalidDuration
	}
	if req.Trainer != nil {
		session.Trainer = *req.Trainer
		session.TrainerID = nil
		session.TrainerRef = nil
	}
	if req.TrainerID != nil && *req.TrainerID != "" {
		trainerID, err := uuid.Parse(*req.TrainerID)
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrRecordNotFound
		}
		trainer, err := s.trainerRepo.FindByID(ctx, trainerID)
		if err != nil {
			return response_models.SessionResponse{}, utils.ErrDatabaseError
		}
		if trainer == nil {
			return response_models.SessionResponse{}, utils.ErrRecordNotFound
		}
		session.TrainerID = &trainer.ID
		session.TrainerRef = trainer
	}

	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return response_models.SessionResponse{}, utils.ErrDatabaseError
	}
	return AnnotateSession(session, accountID), nil
}

// DeleteSession restores exactly one unit to the purchase and removes the row
// as a single transaction. Deleting the same session twice fails on the second
// run because the row is already gone.
func (s *SessionService) DeleteSession(ctx context.Context, accountID, sessionID uuid.UUID) error {
	session, err := s.sessionRepo.FindByID(ctx, sessionID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if session == nil {
		return utils.ErrRecordNotFound
	}
	if session.CreatedByID != accountID {
		return utils.ErrNotOwner
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		deleted, err := s.sessionRepo.DeleteTx(ctx, tx, sessionID)
		if err != nil {
			return err
		}
		if deleted == 0 {
			return utils.ErrRecordNotFound
		}
		return s.purchaseRepo.Restore(ctx, tx, session.PurchaseID)
	})
	if txErr != nil {
		if errors.Is(txErr, utils.ErrRecordNotFound) {
			return txErr
		}
		return utils.ErrDatabaseError
	}
	return nil
}
