package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gymtrack/internal/models/db_models"
)

type TrainerRepository interface {
	Insert(ctx context.Context, trainer *db_models.Trainer) error
	Update(ctx context.Context, trainer *db_models.Trainer) error
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error)
	ListActive(ctx context.Context) ([]db_models.Trainer, error)
	ListAll(ctx context.Context) ([]db_models.Trainer, error)
	Deactivate(ctx context.Context, id uuid.UUID) (int64, error)
}

type trainerRepository struct {
	db *gorm.DB
}

func NewTrainerRepository(db *gorm.DB) TrainerRepository {
	return &trainerRepository{db: db}
}

func (r *trainerRepository) Insert(ctx context.Context, trainer *db_models.Trainer) error {
	return r.db.WithContext(ctx).Create(trainer).Error
}

func (r *trainerRepository) Update(ctx context.Context, trainer *db_models.Trainer) error {
	return r.db.WithContext(ctx).Save(trainer).Error
}

func (r *trainerRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.Trainer, error) {
	var trainer db_models.Trainer
	err := r.db.WithContext(ctx).First(&trainer, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trainer, nil
}

func (r *trainerRepository) ListActive(ctx context.Context) ([]db_models.Trainer, error) {
	var trainers []db_models.Trainer
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *trainerRepository) ListAll(ctx context.Context) ([]db_models.Trainer, error) {
	var trainers []db_models.Trainer
	err := r.db.WithContext(ctx).Order("name ASC").Find(&trainers).Error
	if err != nil {
		return nil, err
	}
	return trainers, nil
}

func (r *trainerRepository) Deactivate(ctx context.Context, id uuid.UUID) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&db_models.Trainer{}).
		Where("id = ?", id).
		Update("is_active", false)
	return res.RowsAffected, res.Error
}
