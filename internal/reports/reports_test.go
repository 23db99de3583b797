package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/reports"
	"realestatedb/internal/seed"
)

// setupSeeded loads the demo portfolio: three properties, four leases
// (one auto-expired), three payments (one late) and a split ownership
// on the second property.
func setupSeeded(t *testing.T) *reports.Reports {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	assert.NoError(t, db.AutoMigrate(models.Ordered()...))
	assert.NoError(t, seed.Run(db))
	return reports.New(db)
}

func TestActiveLeases(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.ActiveLeases(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, "1204 Bluff Springs Rd", rows[0].Address)
	assert.Equal(t, "Noah", rows[0].TenantFirstName)
}

func TestOpenMaintenance(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.OpenMaintenance(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	names := map[string]string{}
	for _, row := range rows {
		names[row.Description] = row.AssigneeName()
	}
	assert.Equal(t, "Unassigned", names["Water heater pilot light keeps going out"])
	assert.Equal(t, "Marcus Boone", names["HVAC filter replacement and duct inspection"])
}

func TestFinancialSummary(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.FinancialSummary(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "5800.00", rows[0].RentCollected.StringFixed(2))
	assert.Equal(t, "0.00", rows[0].MaintenanceCost.StringFixed(2))
	assert.Equal(t, "5800.00", rows[0].Net.StringFixed(2))

	assert.Equal(t, "2000.00", rows[1].RentCollected.StringFixed(2))
	assert.Equal(t, "830.00", rows[1].MaintenanceCost.StringFixed(2))
	assert.Equal(t, "1170.00", rows[1].Net.StringFixed(2))

	assert.Equal(t, "0.00", rows[2].Net.StringFixed(2))
}

func TestExpectedVsReceived(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.ExpectedVsReceived(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	first := rows[0]
	assert.Equal(t, uint(1), first.PropertyID)
	assert.Equal(t, "5800.00", first.Received.StringFixed(2))
	assert.True(t, first.Expected.GreaterThanOrEqual(first.Received))
	assert.True(t, first.Shortfall.Equal(first.Expected.Sub(first.Received)))
}

func TestOwnerPayoutsSplitStake(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.OwnerPayouts(context.Background(), 2)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "Alice", rows[0].FirstName)
	assert.Equal(t, "1800.00", rows[0].Payout.StringFixed(2))
	assert.Equal(t, "Bruno", rows[1].FirstName)
	assert.Equal(t, "1200.00", rows[1].Payout.StringFixed(2))
}

func TestPayoutRanking(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.PayoutRanking(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	assert.Equal(t, "Carmen", rows[0].FirstName)
	assert.Equal(t, 1, rows[0].PayoutRank)
	assert.Equal(t, "2900.00", rows[0].Payout.StringFixed(2))
	assert.Equal(t, "49.15", rows[0].ContributionPct.StringFixed(2))

	assert.Equal(t, "Alice", rows[1].FirstName)
	assert.Equal(t, "30.51", rows[1].ContributionPct.StringFixed(2))
	assert.Equal(t, "Bruno", rows[2].FirstName)
	assert.Equal(t, "20.34", rows[2].ContributionPct.StringFixed(2))
}

func TestOldestOpenRequests(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.OldestOpenRequests(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, uint(1), rows[0].PropertyID)
	assert.Equal(t, 1, rows[0].OpenCount)
	assert.Equal(t, "Water heater pilot light keeps going out", rows[0].OldestDescription)
}

func TestOccupancyRates(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.OccupancyRates(context.Background())
	assert.NoError(t, err)

	byProperty := map[uint]int{}
	for _, row := range rows {
		byProperty[row.PropertyID] = row.LeasedDays
		assert.LessOrEqual(t, row.LeasedDays, 365)
		assert.True(t, row.OccupancyPct.IsPositive())
	}
	// Property 1 leased ~3 months back, property 2 ~6 months back.
	assert.Greater(t, byProperty[1], 80)
	assert.Less(t, byProperty[1], 100)
	assert.Greater(t, byProperty[2], 170)
	assert.Less(t, byProperty[2], 190)
}

func TestRollingMaintenanceCosts(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.RollingMaintenanceCosts(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, "650.00", rows[0].Cost.StringFixed(2))
	assert.Equal(t, "650.00", rows[0].RollingAvgCost.StringFixed(2))
	assert.Equal(t, "180.00", rows[1].Cost.StringFixed(2))
	assert.Equal(t, "415.00", rows[1].RollingAvgCost.StringFixed(2))
}

func TestTenantRenewalRates(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.TenantRenewalRates(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// Theo holds two leases, so one of them counts as a renewal.
	assert.Equal(t, uint(3), rows[0].TenantID)
	assert.Equal(t, 2, rows[0].LeaseCount)
	assert.Equal(t, 1, rows[0].Renewals)
	assert.Equal(t, "50.00", rows[0].RenewalRate.StringFixed(2))
	assert.Equal(t, "0.00", rows[1].RenewalRate.StringFixed(2))
}

func TestRentYields(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.RentYields(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 3)

	// 2900 x 12 / 375000 annualizes to 9.28%.
	assert.Equal(t, "1204 Bluff Springs Rd", rows[0].Address)
	assert.Equal(t, "9.28", rows[0].YieldPct.StringFixed(2))
}

func TestRentQuartiles(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.RentQuartiles(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 4)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Quartile)
	}
	assert.Equal(t, "1000.00", rows[0].MonthlyRent.StringFixed(2))
	assert.Equal(t, "4200.00", rows[3].MonthlyRent.StringFixed(2))
}

func TestTenantPaymentRunningTotals(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.TenantPaymentRunningTotals(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "2900.00", rows[0].RunningTotal.StringFixed(2))
	assert.Equal(t, "5800.00", rows[1].RunningTotal.StringFixed(2))
}

func TestYearOverYearRentGrowth(t *testing.T) {
	r := setupSeeded(t)
	rows, err := r.YearOverYearRentGrowth(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 4)
	// With fewer than 13 leases per property there is no prior period.
	for _, row := range rows {
		assert.False(t, row.PriorRent.Valid)
		assert.False(t, row.GrowthPct.Valid)
	}
}

func TestLeaseOverlaps(t *testing.T) {
	r := setupSeeded(t)
	ctx := context.Background()
	today := time.Now()

	rows, err := r.LeaseOverlaps(ctx, 2, today.AddDate(0, 0, 1), today.AddDate(0, 2, 0), false)
	assert.NoError(t, err)
	assert.Len(t, rows, 1)

	// The commercial property's only lease is expired.
	rows, err = r.LeaseOverlaps(ctx, 3, today.AddDate(-2, 0, 0), today, true)
	assert.NoError(t, err)
	assert.Empty(t, rows)
}
