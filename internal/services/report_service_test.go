package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"gymtrack/internal/models/request_models"
	"gymtrack/internal/models/response_models"
)

func TestSummaryGroupsRemainingByDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	f.purchase(t, owner.ID, 45, 10, 400)
	f.purchase(t, owner.ID, 45, 5, 200)
	f.purchase(t, owner.ID, 30, 8, 240)

	_, err := f.sessions.LogSession(ctx, owner.ID, request_models.CreateSessionRequest{DurationMinutes: 45})
	require.NoError(t, err)

	summary, err := f.reports.Summary(ctx, owner.ID)
	require.NoError(t, err)
	require.Equal(t, response_models.Summary{45: 14, 30: 8}, summary)
}

func TestSummaryIsSharedBetweenOwnerAndPartner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")
	f.sharedPurchase(t, owner.ID, "partner@example.com", &partner.ID, 45, 10, 500)

	_, err := f.sessions.LogSession(ctx, partner.ID, request_models.CreateSessionRequest{DurationMinutes: 45})
	require.NoError(t, err)

	ownerSummary, err := f.reports.Summary(ctx, owner.ID)
	require.NoError(t, err)
	partnerSummary, err := f.reports.Summary(ctx, partner.ID)
	require.NoError(t, err)

	require.Equal(t, response_models.Summary{45: 9}, ownerSummary)
	require.Equal(t, ownerSummary, partnerSummary)
}

func TestSummaryEmptyWithoutPurchases(t *testing.T) {
	f := newFixture(t)
	lonely := f.account(t, "lonely@example.com", "Lonely")

	summary, err := f.reports.Summary(context.Background(), lonely.ID)
	require.NoError(t, err)
	require.Empty(t, summary)
}

func TestCostReportAttributesCostToOwnerOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")
	f.sharedPurchase(t, owner.ID, "partner@example.com", &partner.ID, 45, 10, 500)
	f.purchase(t, owner.ID, 30, 10, 100)

	ownerCost, err := f.reports.CostReport(ctx, owner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.InDelta(t, 600, ownerCost.TotalCost, 0.001)

	// The partner sees the shared purchase but is never billed for it.
	partnerCost, err := f.reports.CostReport(ctx, partner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Zero(t, partnerCost.TotalCost)
}

func TestCostReportHonorsDateRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	january := f.purchase(t, owner.ID, 45, 10, 400)
	february := f.purchase(t, owner.ID, 45, 10, 150)
	require.NoError(t, f.db.Model(january).Update("purchase_date", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)).Error)
	require.NoError(t, f.db.Model(february).Update("purchase_date", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)).Error)

	cost, err := f.reports.CostReport(ctx, owner.ID,
		time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.InDelta(t, 150, cost.TotalCost, 0.001)
}

func TestTrainerReportAggregatesMinutes(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	f.purchase(t, owner.ID, 45, 10, 400)
	f.purchase(t, owner.ID, 30, 10, 240)

	for i := 0; i < 2; i++ {
		_, err := f.sessions.LogSession(ctx, owner.ID, request_models.CreateSessionRequest{
			DurationMinutes: 45,
			Trainer:         "Rachel",
		})
		require.NoError(t, err)
	}
	_, err := f.sessions.LogSession(ctx, owner.ID, request_models.CreateSessionRequest{
		DurationMinutes: 30,
		Trainer:         "Marcus",
	})
	require.NoError(t, err)

	rows, err := f.reports.TrainerReport(ctx, owner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)

	byTrainer := map[string]int64{}
	for _, row := range rows {
		byTrainer[row.Trainer] = row.TotalMinutes
	}
	require.Equal(t, map[string]int64{"Rachel": 90, "Marcus": 30}, byTrainer)
}

func TestTrainerReportCountsSharedSessionOnceForEachViewer(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	owner := f.account(t, "owner@example.com", "Owner")
	partner := f.account(t, "partner@example.com", "Partner")
	f.sharedPurchase(t, owner.ID, "partner@example.com", &partner.ID, 45, 10, 500)

	_, err := f.sessions.LogSession(ctx, owner.ID, request_models.CreateSessionRequest{
		DurationMinutes: 45,
		Trainer:         "Rachel",
	})
	require.NoError(t, err)

	ownerRows, err := f.reports.TrainerReport(ctx, owner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, ownerRows, 1)
	require.EqualValues(t, 45, ownerRows[0].TotalMinutes)

	partnerRows, err := f.reports.TrainerReport(ctx, partner.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Equal(t, ownerRows, partnerRows)
}
