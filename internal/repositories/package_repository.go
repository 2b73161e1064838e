package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type PackageRepository interface {
	Insert(ctx context.Context, pkg *db_models.Package) error
	Update(ctx context.Context, pkg *db_models.Package) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error)
	ListActive(ctx context.Context) ([]db_models.Package, error)
	ListAll(ctx context.Context) ([]db_models.Package, error)

	// Deactivate is the only delete: rows stay for purchases that copied them.
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)
}

type packageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Insert(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) Update(ctx context.Context, pkg *db_models.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Package, error) {
	var pkg db_models.Package
	err := r.db.WithContext(ctx).First(&pkg, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) ListActive(ctx context.Context) ([]db_models.Package, error) {
	var pkgs []db_models.Package
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("duration_minutes ASC, name ASC").
		Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) ListAll(ctx context.Context) ([]db_models.Package, error) {
	var pkgs []db_models.Package
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&pkgs).Error
	if err != nil {
		return nil, err
	}
	return pkgs, nil
}

func (r *packageRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Package{}).
		Where("id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
