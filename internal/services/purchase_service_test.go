package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gymtrack/internal/models/db_models"
	"gymtrack/internal/models/request_models"
	"gymtrack/pkg/utils"
)

func TestCreatePurchaseDefaults(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")

	resp, err := f.purchases.CreatePurchase(ctx, owner.ID, request_models.CreatePurchaseRequest{
		DurationMinutes: 45,
		Cost:            400,
	})
	require.NoError(t, err)
	require.Equal(t, 10, resp.TotalSessions)
	require.Equal(t, 10, resp.SessionsRemaining)
	require.Equal(t, 1, resp.NumPeople)
	require.True(t, resp.IsOwner)
}

func TestCreatePurchaseWithPartnerEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")

	email := "  Partner@Example.com "
	resp, err := f.purchases.CreatePurchase(ctx, owner.ID, request_models.CreatePurchaseRequest{
		DurationMinutes: 45,
		TotalSessions:   12,
		Cost:            600,
		PartnerEmail:    &email,
	})
	require.NoError(t, err)
	require.Equal(t, "partner@example.com", resp.PartnerEmail)
	// A partner implies at least two people even when the client says one.
	require.Equal(t, 2, resp.NumPeople)
	require.Equal(t, "Partner", resp.PartnerName)

	var stored db_models.Purchase
	require.NoError(t, f.db.First(&stored, "id = ?", resp.ID).Error)
	require.NotNil(t, stored.PartnerAccountID)
	require.Equal(t, partner.ID, *stored.PartnerAccountID)
}

func TestCreatePurchasePartnerEmailWithoutAccountStaysUnlinked(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")

	email := "future@example.com"
	resp, err := f.purchases.CreatePurchase(ctx, owner.ID, request_models.CreatePurchaseRequest{
		DurationMinutes: 45,
		Cost:            500,
		PartnerEmail:    &email,
	})
	require.NoError(t, err)

	var stored db_models.Purchase
	require.NoError(t, f.db.First(&stored, "id = ?", resp.ID).Error)
	require.Nil(t, stored.PartnerAccountID)
	require.NotNil(t, stored.PartnerEmail)
	require.Equal(t, "future@example.com", *stored.PartnerEmail)
}

func TestCreatePurchaseFromPackage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	pkg, err := f.catalog.CreatePackage(ctx, request_models.PackageRequest{
		Name:            "Duo 45",
		DurationMinutes: 45,
		NumPeople:       2,
		TotalSessions:   10,
		PricePerSession: 55,
	})
	require.NoError(t, err)

	resp, err := f.purchases.CreatePurchase(ctx, owner.ID, request_models.CreatePurchaseRequest{
		PackageID: &pkg.ID,
	})
	require.NoError(t, err)
	require.Equal(t, 45, resp.DurationMinutes)
	require.Equal(t, 2, resp.NumPeople)
	require.Equal(t, 10, resp.TotalSessions)
	require.InDelta(t, 550, resp.Cost, 0.001)
}

func TestCreatePurchaseFromDeactivatedPackageFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	pkg, err := f.catalog.CreatePackage(ctx, request_models.PackageRequest{
		Name:            "Retired",
		DurationMinutes: 30,
		NumPeople:       1,
		TotalSessions:   8,
		PricePerSession: 40,
	})
	require.NoError(t, err)
	require.NoError(t, f.catalog.DeactivatePackage(ctx, uuid.MustParse(pkg.ID)))

	_, err = f.purchases.CreatePurchase(ctx, owner.ID, request_models.CreatePurchaseRequest{PackageID: &pkg.ID})
	require.ErrorIs(t, err, utils.ErrRecordNotFound)
}

func TestPurchaseHistoryHidesCostFromPartner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")
	f.sharedPurchase(t, owner.ID, "partner@example.com", &partner.ID, 45, 10, 500)

	ownerView, err := f.purchases.History(ctx, owner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, ownerView, 1)
	require.True(t, ownerView[0].IsOwner)
	require.InDelta(t, 500, ownerView[0].Cost, 0.001)

	partnerView, err := f.purchases.History(ctx, partner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, partnerView, 1)
	require.False(t, partnerView[0].IsOwner)
	require.Zero(t, partnerView[0].Cost)
	require.Equal(t, "Owner", partnerView[0].PartnerName)

	// The projection never touches the stored cost.
	var stored db_models.Purchase
	require.NoError(t, f.db.First(&stored, "id = ?", ownerView[0].ID).Error)
	require.InDelta(t, 500, stored.Cost, 0.001)
}

func TestUpdatePurchaseOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")
	purchase := f.sharedPurchase(t, owner.ID, "partner@example.com", &partner.ID, 45, 10, 500)

	cost := 550.0
	_, err := f.purchases.UpdatePurchase(ctx, partner.ID, purchase.ID, request_models.UpdatePurchaseRequest{Cost: &cost})
	require.ErrorIs(t, err, utils.ErrNotOwner)

	updated, err := f.purchases.UpdatePurchase(ctx, owner.ID, purchase.ID, request_models.UpdatePurchaseRequest{Cost: &cost})
	require.NoError(t, err)
	require.InDelta(t, 550, updated.Cost, 0.001)
}

func TestDeletePurchaseBlockedWhileSessionsExist(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	purchase := f.purchase(t, owner.ID, 45, 10, 400)

	resp, err := f.sessions.LogSession(ctx, owner.ID, request_models.CreateSessionRequest{DurationMinutes: 45})
	require.NoError(t, err)

	err = f.purchases.DeletePurchase(ctx, owner.ID, purchase.ID)
	require.ErrorIs(t, err, utils.ErrPurchaseInUse)

	require.NoError(t, f.sessions.DeleteSession(ctx, owner.ID, uuid.MustParse(resp.ID)))
	require.NoError(t, f.purchases.DeletePurchase(ctx, owner.ID, purchase.ID))

	gone, err := f.purchaseRepo.FindByID(ctx, purchase.ID)
	require.NoError(t, err)
	require.Nil(t, gone)
}
