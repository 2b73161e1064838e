package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/metrics"
	"gymtrack/pkg/utils"
)

const defaultTotalSessions = 10

type PurchaseServiceInterface interface {
	CreatePurchase(ctx context.Context, ownerID uuid.UUID, req request_models.CreatePurchaseRequest) (response_models.PurchaseResponse, error)
	History(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.PurchaseResponse, error)
	UpdatePurchase(ctx context.Context, accountID, purchaseID uuid.UUID, req request_models.UpdatePurchaseRequest) (response_models.PurchaseResponse, error)
	DeletePurchase(ctx context.Context, accountID, purchaseID uuid.UUID) error
}

type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	packageRepo  repositories.PackageRepository
	accountRepo  repositories.AccountRepository
}

func NewPurchaseService(
	purchaseRepo repositories.PurchaseRepository,
	packageRepo repositories.PackageRepository,
	accountRepo repositories.AccountRepository,
) PurchaseServiceInterface {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		packageRepo:  packageRepo,
		accountRepo:  accountRepo,
	}
}

func (s *PurchaseService) CreatePurchase(ctx context.Context, ownerID uuid.UUID, req request_models.CreatePurchaseRequest) (response_models.PurchaseResponse, error) {
	purchase := &db_models.Purchase{
		OwnerID:      ownerID,
		PurchaseDate: time.Now().UTC(),
	}
	if req.PurchaseDate != nil {
		purchase.PurchaseDate = req.PurchaseDate.UTC()
	}

	if req.PackageID != nil {
		pkgID, err := uuid.Parse(*req.PackageID)
		if err != nil {
			return response_models.PurchaseResponse{}, utils.ErrRecordNotFound
		}
		pkg, err := s.packageRepo.FindByID(ctx, pkgID)
		if err != nil {
			return response_models.PurchaseResponse{}, utils.ErrDatabaseError
		}
		// Deactivated packages are not selectable for new purchases.
		if pkg == nil || !pkg.IsActive {
			return response_models.PurchaseResponse{}, utils.ErrRecordNotFound
		}
		purchase.PackageID = &pkg.ID
		purchase.DurationMinutes = pkg.DurationMinutes
		purchase.NumPeople = pkg.NumPeople
		purchase.TotalSessions = pkg.TotalSessions
		purchase.Cost = pkg.PricePerSession * float64(pkg.TotalSessions)
	} else {
		if req.DurationMinutes <= 0 {
			return response_models.PurchaseResponse{}, utils.ErrInvalidDuration
		}
		purchase.DurationMinutes = req.DurationMinutes
		purchase.NumPeople = req.NumPeople
		purchase.TotalSessions = req.TotalSessions
		purchase.Cost = req.Cost
		if purchase.TotalSessions <= 0 {
			purchase.TotalSessions = defaultTotalSessions
		}
		if purchase.NumPeople <= 0 {
			purchase.NumPeople = 1
		}
	}
	purchase.SessionsRemaining = purchase.TotalSessions

	if req.PartnerEmail != nil && *req.PartnerEmail != "" {
		email := strings.ToLower(strings.TrimSpace(*req.PartnerEmail))
		purchase.PartnerEmail = &email
		if purchase.NumPeople < 2 {
			purchase.NumPeople = 2
		}
		// Resolve immediately when the partner already has an account; an
		// unresolved email just waits for auto-linking.
		partner, err := s.accountRepo.FindByEmail(ctx, email)
		if err != nil {
			return response_models.PurchaseResponse{}, utils.ErrDatabaseError
		}
		if partner != nil {
			purchase.PartnerAccountID = &partner.ID
		}
	}

	if err := s.purchaseRepo.Insert(ctx, purchase); err != nil {
		return response_models.PurchaseResponse{}, utils.ErrDatabaseError
	}
	metrics.PurchasesCreated.Inc()

	created, err := s.purchaseRepo.FindByID(ctx, purchase.ID)
	if err != nil || created == nil {
		return response_models.PurchaseResponse{}, utils.ErrDatabaseError
	}
	return AnnotatePurchase(created, ownerID), nil
}

func (s *PurchaseService) History(ctx context.Context, accountID uuid.UUID, start, end time.Time) ([]response_models.PurchaseResponse, error) {
	purchases, err := s.purchaseRepo.HistoryVisible(ctx, accountID, start, end)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		out = append(out, AnnotatePurchase(&purchases[i], accountID))
	}
	return out, nil
}

func (s *PurchaseService) UpdatePurchase(ctx context.Context, accountID, purchaseID uuid.UUID, req request_models.UpdatePurchaseRequest) (response_models.PurchaseResponse, error) {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return response_models.PurchaseResponse{}, utils.ErrDatabaseError
	}
	if purchase == nil {
		return response_models.PurchaseResponse{}, utils.ErrRecordNotFound
	}
	if purchase.OwnerID != accountID {
		return response_models.PurchaseResponse{}, utils.ErrNotOwner
	}

	if req.Cost != nil {
		purchase.Cost = *req.Cost
	}
	if req.PurchaseDate != nil {
		purchase.PurchaseDate = req.PurchaseDate.UTC()
	}
	if req.NumPeople != nil && *req.NumPeople >= 1 {
		purchase.NumPeople = *req.NumPeople
	}

	if err := s.purchaseRepo.Update(ctx, purchase); err != nil {
		return response_models.PurchaseResponse{}, utils.ErrDatabaseError
	}
	return AnnotatePurchase(purchase, accountID), nil
}

func (s *PurchaseService) DeletePurchase(ctx context.Context, accountID, purchaseID uuid.UUID) error {
	purchase, err := s.purchaseRepo.FindByID(ctx, purchaseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if purchase == nil {
		return utils.ErrRecordNotFound
	}
	if purchase.OwnerID != accountID {
		return utils.ErrNotOwner
	}

	// Sessions reference their purchase forever; deleting underneath them
	// would orphan the consumption history.
	n, err := s.purchaseRepo.CountSessions(ctx, purchaseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n > 0 {
		return utils.ErrPurchaseInUse
	}

	if err := s.purchaseRepo.Delete(ctx, purchaseID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
