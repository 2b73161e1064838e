package services

import (
	"context"

	"github.com/google/uuid"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/utils"
)

// CatalogService is the admin surface for packages and trainers. Delete is
// soft only: deactivated rows disappear from pickers but stay referenced by
// existing purchases and sessions.
type CatalogServiceInterface interface {
	CreatePackage(ctx context.Context, req request_models.PackageRequest) (response_models.PackageResponse, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, req request_models.PackageRequest) (response_models.PackageResponse, error)
	DeactivatePackage(ctx context.Context, id uuid.UUID) error
	ListPackages(ctx context.Context, includeInactive bool) ([]response_models.PackageResponse, error)

	CreateTrainer(ctx context.Context, req request_models.TrainerRequest) (response_models.TrainerResponse, error)
	UpdateTrainer(ctx context.Context, id uuid.UUID, req request_models.TrainerRequest) (response_models.TrainerResponse, error)
	DeactivateTrainer(ctx context.Context, id uuid.UUID) error
	ListTrainers(ctx context.Context, includeInactive bool) ([]response_models.TrainerResponse, error)
}

type CatalogService struct {
	packageRepo repositories.PackageRepository
	trainerRepo repositories.TrainerRepository
}

func NewCatalogService(packageRepo repositories.PackageRepository, trainerRepo repositories.TrainerRepository) CatalogServiceInterface {
	return &CatalogService{
		packageRepo: packageRepo,
		trainerRepo: trainerRepo,
	}
}

func packageResponse(pkg *db_models.Package) response_models.PackageResponse {
	return response_models.PackageResponse{
		ID:              pkg.ID.String(),
		Name:            pkg.Name,
		DurationMinutes: pkg.DurationMinutes,
		NumPeople:       pkg.NumPeople,
		TotalSessions:   pkg.TotalSessions,
		PricePerSession: pkg.PricePerSession,
		IsActive:        pkg.IsActive,
	}
}

func trainerResponse(trainer *db_models.Trainer) response_models.TrainerResponse {
	return response_models.TrainerResponse{
		ID:       trainer.ID.String(),
		Name:     trainer.Name,
		IsActive: trainer.IsActive,
	}
}

func (s *CatalogService) CreatePackage(ctx context.Context, req request_models.PackageRequest) (response_models.PackageResponse, error) {
	pkg := &db_models.Package{
		Name:            req.Name,
		DurationMinutes: req.DurationMinutes,
		NumPeople:       req.NumPeople,
		TotalSessions:   req.TotalSessions,
		PricePerSession: req.PricePerSession,
		IsActive:        true,
	}
	if err := s.packageRepo.Insert(ctx, pkg); err != nil {
		return response_models.PackageResponse{}, utils.ErrDatabaseError
	}
	return packageResponse(pkg), nil
}

func (s *CatalogService) UpdatePackage(ctx context.Context, id uuid.UUID, req request_models.PackageRequest) (response_models.PackageResponse, error) {
	pkg, err := s.packageRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.PackageResponse{}, utils.ErrDatabaseError
	}
	if pkg == nil {
		return response_models.PackageResponse{}, utils.ErrRecordNotFound
	}

	pkg.Name = req.Name
	pkg.DurationMinutes = req.DurationMinutes
	pkg.NumPeople = req.NumPeople
	pkg.TotalSessions = req.TotalSessions
	pkg.PricePerSession = req.PricePerSession

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return response_models.PackageResponse{}, utils.ErrDatabaseError
	}
	return packageResponse(pkg), nil
}

func (s *CatalogService) DeactivatePackage(ctx context.Context, id uuid.UUID) error {
	n, err := s.packageRepo.Deactivate(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n == 0 {
		return utils.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService) ListPackages(ctx context.Context, includeInactive bool) ([]response_models.PackageResponse, error) {
	var (
		pkgs []db_models.Package
		err  error
	)
	if includeInactive {
		pkgs, err = s.packageRepo.ListAll(ctx)
	} else {
		pkgs, err = s.packageRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.PackageResponse, 0, len(pkgs))
	for i := range pkgs {
		out = append(out, packageResponse(&pkgs[i]))
	}
	return out, nil
}

func (s *CatalogService) CreateTrainer(ctx context.Context, req request_models.TrainerRequest) (response_models.TrainerResponse, error) {
	trainer := &db_models.Trainer{
		Name:     req.Name,
		IsActive: true,
	}
	if err := s.trainerRepo.Insert(ctx, trainer); err != nil {
		return response_models.TrainerResponse{}, utils.ErrDatabaseError
	}
	return trainerResponse(trainer), nil
}

func (s *CatalogService) UpdateTrainer(ctx context.Context, id uuid.UUID, req request_models.TrainerRequest) (response_models.TrainerResponse, error) {
	trainer, err := s.trainerRepo.FindByID(ctx, id)
	if err != nil {
		return response_models.TrainerResponse{}, utils.ErrDatabaseError
	}
	if trainer == nil {
		return response_models.TrainerResponse{}, utils.ErrRecordNotFound
	}

	trainer.Name = req.Name
	if err := s.trainerRepo.Update(ctx, trainer); err != nil {
		return response_models.TrainerResponse{}, utils.ErrDatabaseError
	}
	return trainerResponse(trainer), nil
}

func (s *CatalogService) DeactivateTrainer(ctx context.Context, id uuid.UUID) error {
	n, err := s.trainerRepo.Deactivate(ctx, id)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if n == 0 {
		return utils.ErrRecordNotFound
	}
	return nil
}

func (s *CatalogService) ListTrainers(ctx context.Context, includeInactive bool) ([]response_models.TrainerResponse, error) {
	var (
		trainers []db_models.Trainer
		err      error
	)
	if includeInactive {
		trainers, err = s.trainerRepo.ListAll(ctx)
	} else {
		trainers, err = s.trainerRepo.ListActive(ctx)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TrainerResponse, 0, len(trainers))
	for i := range trainers {
		out = append(out, trainerResponse(&trainers[i]))
	}
	return out, nil
}
