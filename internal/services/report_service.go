package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

type ReportServiceInterface interface {
	Summary(ctx context.Context, accountID uuid.UUID) (response_models.Summary, error)
	TrainerReport(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.TrainerReportRow, error)
	CostReport(ctx context.Context, accountID uuid.UUID, start, end time.Time) (response_models.CostReport, error)
}

type ReportService struct {
	reportRepo   repositories.ReportRepository
	purchaseRepo repositories.PurchaseRepository
	sessionRepo  repositories.SessionRepository
}

func NewReportService(
	reportRepo repositories.ReportRepository,
	purchaseRepo repositories.PurchaseRepository,
	sessionRepo repositories.SessionRepository,
) ReportServiceInterface {
	return &ReportService{
		reportRepo:   reportRepo,
		purchaseRepo: purchaseRepo,
		sessionRepo:  sessionRepo,
	}
}

// Summary reports duration -> remaining sessions over the purchases the
// account can see, so a linked partner watches the same balance drain as the
// buyer does.
func (s *ReportService) Summary(ctx context.Context, accountID uuid.UUID) (response_models.Summary, error) {
	ids, err := s.purchaseRepo.VisibleIDs(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	summary, err := s.reportRepo.RemainingByDuration(ctx, ids)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return summary, nil
}

func (s *ReportService) TrainerReport(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.TrainerReportRow, error) {
	ids, err := s.sessionRepo.VisibleIDs(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	rows, err := s.reportRepo.TrainerMinutes(ctx, ids, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TrainerReportRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.TrainerReportRow{
			Trainer:      row.Trainer,
			TotalMinutes: row.TotalMinutes,
		})
	}
	return out, nil
}

// CostReport only counts purchases the account owns: spend is attributed to
// the buyer, never to a partner reading the same history.
func (s *ReportService) CostReport(ctx context.Context, accountID uuid.UUID, start, end time.Time) (response_models.CostReport, error) {
	total, err := s.reportRepo.TotalCostOwned(ctx, accountID, start, end)
	if err != nil {
		return response_models.CostReport{}, utils.ErrDatabaseError
	}
	return response_models.CostReport{TotalCost: total}, nil
}
