package services

import (
	"context"
	"log"
	"time"

	"gorm.io/datatypes"

	"gymtrack/internal/config"
	"gymtrack/internal/infra"
	"gymtrack/internal/models/db_models"
	"gymtrack/internal/repositories"
	"gymtrack/pkg/metrics"
	"gymtrack/pkg/utils"
)

type AccountServiceInterface interface {
	// LoginWithIdentity upserts the account matching the federated subject and
	// retroactively links any purchases waiting on this email.
	LoginWithIdentity(ctx context.Context, identity *infra.Identity) (*db_models.Account, error)
	GetAccount(ctx context.Context, id string) (*db_models.Account, error)

	// ResolvePartner returns the account behind an email, or nil. It never
	// creates one: an unresolved partner email is the expected default path.
	ResolvePartner(ctx context.Context, email string) (*db_models.Account, error)
}

type AccountService struct {
	cfg          *config.Config
	accountRepo  repositories.AccountRepository
	purchaseRepo repositories.PurchaseRepository
}

func NewAccountService(cfg *config.Config, accountRepo repositories.AccountRepository, purchaseRepo repositories.PurchaseRepository) AccountServiceInterface {
	return &AccountService{
		cfg:          cfg,
		accountRepo:  accountRepo,
		purchaseRepo: purchaseRepo,
	}
}

func (a *AccountService) LoginWithIdentity(ctx context.Context, identity *infra.Identity) (*db_models.Account, error) {
	if !a.cfg.EmailAllowed(identity.Email) {
		return nil, utils.ErrEmailNotAllowed
	}

	account, err := a.accountRepo.FindBySubject(ctx, identity.Subject)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	now := time.Now().Unix()
	if account != nil {
		if !account.IsActive {
			return nil, utils.ErrAccountInactive
		}
		// Keep existing values when the provider omits them.
		if identity.Email != "" {
			account.Email = identity.Email
		}
		account.EmailVerified = identity.EmailVerified
		if identity.FullName != "" {
			account.FullName = identity.FullName
		}
		if identity.AvatarURL != "" {
			account.AvatarURL = identity.AvatarURL
		}
		account.LastLoginAt = now
		if len(identity.RawClaims) > 0 {
			account.RawClaims = datatypes.JSON(identity.RawClaims)
		}
		if err := a.accountRepo.Update(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		account = &db_models.Account{
			GoogleSub:     identity.Subject,
			Email:         identity.Email,
			EmailVerified: identity.EmailVerified,
			FullName:      identity.FullName,
			AvatarURL:     identity.AvatarURL,
			Role:          db_models.RoleClient,
			IsActive:      true,
			LastLoginAt:   now,
		}
		if len(identity.RawClaims) > 0 {
			account.RawClaims = datatypes.JSON(identity.RawClaims)
		}
		if err := a.accountRepo.Insert(ctx, account); err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	if account.Email != "" {
		// Safe to re-run: the partner_account_id IS NULL guard leaves rows
		// linked on a previous login untouched.
		linked, err := a.purchaseRepo.LinkPartner(ctx, account.Email, account.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if linked > 0 {
			metrics.PartnersLinked.Add(float64(linked))
			log.Printf("auto-linked %d purchase(s) to %s", linked, account.Email)
		}
	}

	return account, nil
}

func (a *AccountService) GetAccount(ctx context.Context, id string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if account == nil || !account.IsActive {
		return nil, utils.ErrAccountNotFound
	}
	return account, nil
}

func (a *AccountService) ResolvePartner(ctx context.Context, email string) (*db_models.Account, error) {
	account, err := a.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return account, nil
}
