package repositories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gymtrack/internal/models/db_models"
)

type AccountRepository interface {
	Insert(ctx context.Context, account *db_models.Account) error
	Update(ctx context.Context, account *db_models.Account) error
	FindByID(ctx context.Context, id string) (*db_models.Account, error)
	FindBySubject(ctx context.Context, sub string) (*db_models.Account, error)
	FindByEmail(ctx context.Context, email string) (*db_models.Account, error)
	ListAll(ctx context.Context) ([]db_models.Account, error)
}

type accountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

func (a *accountRepository) Insert(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Create(account).Error
}

func (a *accountRepository) Update(ctx context.Context, account *db_models.Account) error {
	return a.db.WithContext(ctx).Omit(clause.Associations).Save(account).Error
}

func (a *accountRepository) FindByID(ctx context.Context, id string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) FindBySubject(ctx context.Context, sub string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "google_sub = ?", sub).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

// FindByEmail is the linking-service lookup: it only ever reads, never
// creates, and matches case-insensitively because emails are stored lowered.
func (a *accountRepository) FindByEmail(ctx context.Context, email string) (*db_models.Account, error) {
	var account db_models.Account
	err := a.db.WithContext(ctx).First(&account, "email = ?", strings.ToLower(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &account, nil
}

func (a *accountRepository) ListAll(ctx context.Context) ([]db_models.Account, error) {
	var accounts []db_models.Account
	err := a.db.WithContext(ctx).Order("created_at ASC").Find(&accounts).Error
	if err != nil {
		return nil, err
	}
	return accounts, nil
}
