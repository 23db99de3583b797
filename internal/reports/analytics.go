package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"realestatedb/internal/models"
)

// PayoutRankingRow ranks an owner by total payout across all properties
// and reports their contribution share of the overall payout pool.
type PayoutRankingRow struct {
	OwnerID         uint            `gorm:"column:owner_id"`
	FirstName       string          `gorm:"column:first_name"`
	LastName        string          `gorm:"column:last_name"`
	Payout          decimal.Decimal `gorm:"column:payout"`
	PayoutRank      int             `gorm:"column:payout_rank"`
	ContributionPct decimal.Decimal `gorm:"column:contribution_pct"`
}

func (r *Reports) PayoutRanking(ctx context.Context) ([]PayoutRankingRow, error) {
	var rows []PayoutRankingRow
	err := r.db.WithContext(ctx).Raw(`
		WITH payouts AS (
			SELECT o.id AS owner_id, o.first_name, o.last_name,
			       SUM(COALESCE(rent.total_rent, 0) * po.ownership_percentage / 100) AS payout
			FROM property_owners po
			JOIN owners o ON o.id = po.owner_id
			LEFT JOIN (
				SELECT property_id, SUM(monthly_rent) AS total_rent
				FROM leases
				WHERE status = ?
				GROUP BY property_id
			) rent ON rent.property_id = po.property_id
			GROUP BY o.id, o.first_name, o.last_name
		)
		SELECT owner_id, first_name, last_name, payout,
		       RANK() OVER (ORDER BY payout DESC) AS payout_rank,
		       CASE WHEN SUM(payout) OVER () = 0 THEN 0
		            ELSE ROUND(payout * 100.0 / SUM(payout) OVER (), 2)
		       END AS contribution_pct
		FROM payouts
		ORDER BY payout_rank, owner_id`, models.LeaseStatusActive).Scan(&rows).Error
	return rows, err
}

// OldestOpenRequestRow is the longest-waiting open request per property.
type OldestOpenRequestRow struct {
	PropertyID        uint
	Address           string
	OldestDescription string
	OldestRequestDate time.Time
	OpenCount         int
}

func (r *Reports) OldestOpenRequests(ctx context.Context) ([]OldestOpenRequestRow, error) {
	type requestRow struct {
		PropertyID  uint      `gorm:"column:property_id"`
		Address     string    `gorm:"column:address"`
		Description string    `gorm:"column:description"`
		RequestDate time.Time `gorm:"column:request_date"`
	}
	var requests []requestRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.property_id, p.address, m.description, m.request_date
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE m.status = ?
		ORDER BY m.request_date, m.id`, models.RequestStatusOpen).Scan(&requests).Error
	if err != nil {
		return nil, err
	}

	byProperty := make(map[uint]*OldestOpenRequestRow)
	var order []uint
	for _, req := range requests {
		row, ok := byProperty[req.PropertyID]
		if !ok {
			row = &OldestOpenRequestRow{
				PropertyID:        req.PropertyID,
				Address:           req.Address,
				OldestDescription: req.Description,
				OldestRequestDate: req.RequestDate,
			}
			byProperty[req.PropertyID] = row
			order = append(order, req.PropertyID)
		}
		row.OpenCount++
	}

	rows := make([]OldestOpenRequestRow, 0, len(order))
	for _, id := range order {
		rows = append(rows, *byProperty[id])
	}
	return rows, nil
}

// OccupancyRow is a property's leased share of the trailing 365 days.
type OccupancyRow struct {
	PropertyID   uint
	Address      string
	LeasedDays   int
	OccupancyPct decimal.Decimal
}

// OccupancyRates computes leased days over the trailing 365-day window
// divided by 365, per property.
func (r *Reports) OccupancyRates(ctx context.Context) ([]OccupancyRow, error) {
	type leaseRow struct {
		PropertyID uint      `gorm:"column:property_id"`
		Address    string    `gorm:"column:address"`
		StartDate  time.Time `gorm:"column:start_date"`
		EndDate    time.Time `gorm:"column:end_date"`
	}
	var leases []leaseRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.property_id, p.address, l.start_date, l.end_date
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		ORDER BY l.property_id, l.start_date`).Scan(&leases).Error
	if err != nil {
		return nil, err
	}

	windowEnd := time.Now()
	windowStart := windowEnd.AddDate(0, 0, -365)

	byProperty := make(map[uint]*OccupancyRow)
	var order []uint
	for _, l := range leases {
		days := overlapDays(l.StartDate, l.EndDate, windowStart, windowEnd)
		if days == 0 {
			continue
		}
		row, ok := byProperty[l.PropertyID]
		if !ok {
			row = &OccupancyRow{PropertyID: l.PropertyID, Address: l.Address}
			byProperty[l.PropertyID] = row
			order = append(order, l.PropertyID)
		}
		row.LeasedDays += days
	}

	rows := make([]OccupancyRow, 0, len(order))
	for _, id := range order {
		row := byProperty[id]
		if row.LeasedDays > 365 {
			row.LeasedDays = 365
		}
		row.OccupancyPct = decimal.NewFromInt(int64(row.LeasedDays)).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(365)).
			Round(2)
		rows = append(rows, *row)
	}
	return rows, nil
}

// RollingMaintenanceCostRow carries a request's cost and the 3-point
// moving average for its property, oldest first.
type RollingMaintenanceCostRow struct {
	PropertyID     uint            `gorm:"column:property_id"`
	Address        string          `gorm:"column:address"`
	RequestID      uint            `gorm:"column:request_id"`
	RequestDate    time.Time       `gorm:"column:request_date"`
	Cost           decimal.Decimal `gorm:"column:cost"`
	RollingAvgCost decimal.Decimal `gorm:"column:rolling_avg_cost"`
}

func (r *Reports) RollingMaintenanceCosts(ctx context.Context) ([]RollingMaintenanceCostRow, error) {
	var rows []RollingMaintenanceCostRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.property_id, p.address, m.id AS request_id, m.request_date, m.cost,
		       ROUND(AVG(m.cost) OVER (
		           PARTITION BY m.property_id
		           ORDER BY m.request_date, m.id
		           ROWS BETWEEN 2 PRECEDING AND CURRENT ROW
		       ), 2) AS rolling_avg_cost
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		WHERE m.cost IS NOT NULL
		ORDER BY m.property_id, m.request_date, m.id`).Scan(&rows).Error
	return rows, err
}

// RenewalRateRow is a tenant's share of leases beyond their first.
type RenewalRateRow struct {
	TenantID    uint            `gorm:"column:tenant_id"`
	FirstName   string          `gorm:"column:first_name"`
	LastName    string          `gorm:"column:last_name"`
	LeaseCount  int             `gorm:"column:lease_count"`
	Renewals    int             `gorm:"column:renewals"`
	RenewalRate decimal.Decimal `gorm:"column:renewal_rate"`
}

func (r *Reports) TenantRenewalRates(ctx context.Context) ([]RenewalRateRow, error) {
	var rows []RenewalRateRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT t.id AS tenant_id, t.first_name, t.last_name,
		       COUNT(l.id) AS lease_count,
		       COUNT(l.id) - 1 AS renewals,
		       ROUND((COUNT(l.id) - 1) * 100.0 / COUNT(l.id), 2) AS renewal_rate
		FROM tenants t
		JOIN leases l ON l.tenant_id = t.id
		GROUP BY t.id, t.first_name, t.last_name
		ORDER BY renewal_rate DESC, t.id`).Scan(&rows).Error
	return rows, err
}

// RentYieldRow is annualized rent over purchase price for an active lease.
type RentYieldRow struct {
	LeaseID       uint            `gorm:"column:lease_id"`
	PropertyID    uint            `gorm:"column:property_id"`
	Address       string          `gorm:"column:address"`
	MonthlyRent   decimal.Decimal `gorm:"column:monthly_rent"`
	PurchasePrice decimal.Decimal `gorm:"column:purchase_price"`
	YieldPct      decimal.Decimal `gorm:"column:yield_pct"`
}

func (r *Reports) RentYields(ctx context.Context) ([]RentYieldRow, error) {
	var rows []RentYieldRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id AS lease_id, l.property_id, p.address, l.monthly_rent, p.purchase_price,
		       ROUND(l.monthly_rent * 12 * 100.0 / p.purchase_price, 2) AS yield_pct
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		WHERE l.status = ? AND p.purchase_price > 0
		ORDER BY yield_pct DESC, l.id`, models.LeaseStatusActive).Scan(&rows).Error
	return rows, err
}

// RentQuartileRow buckets a lease's rent into quartiles across all leases.
type RentQuartileRow struct {
	LeaseID     uint            `gorm:"column:lease_id"`
	PropertyID  uint            `gorm:"column:property_id"`
	Address     string          `gorm:"column:address"`
	MonthlyRent decimal.Decimal `gorm:"column:monthly_rent"`
	Quartile    int             `gorm:"column:quartile"`
}

func (r *Reports) RentQuartiles(ctx context.Context) ([]RentQuartileRow, error) {
	var rows []RentQuartileRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id AS lease_id, l.property_id, p.address, l.monthly_rent,
		       NTILE(4) OVER (ORDER BY l.monthly_rent) AS quartile
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		ORDER BY l.monthly_rent, l.id`).Scan(&rows).Error
	return rows, err
}

// RunningTotalRow accumulates a tenant's payments over time.
type RunningTotalRow struct {
	PaymentID    uint            `gorm:"column:payment_id"`
	PaymentDate  time.Time       `gorm:"column:payment_date"`
	Amount       decimal.Decimal `gorm:"column:amount"`
	RunningTotal decimal.Decimal `gorm:"column:running_total"`
}

func (r *Reports) TenantPaymentRunningTotals(ctx context.Context, tenantID uint) ([]RunningTotalRow, error) {
	var rows []RunningTotalRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT pm.id AS payment_id, pm.payment_date, pm.amount,
		       SUM(pm.amount) OVER (ORDER BY pm.payment_date, pm.id) AS running_total
		FROM payments pm
		JOIN leases l ON l.id = pm.lease_id
		WHERE l.tenant_id = ?
		ORDER BY pm.payment_date, pm.id`, tenantID).Scan(&rows).Error
	return rows, err
}

// YearOverYearRow compares a lease's rent to the rent 12 lease periods
// prior for the same property.
type YearOverYearRow struct {
	LeaseID     uint                `gorm:"column:lease_id"`
	PropertyID  uint                `gorm:"column:property_id"`
	Address     string              `gorm:"column:address"`
	StartDate   time.Time           `gorm:"column:start_date"`
	MonthlyRent decimal.Decimal     `gorm:"column:monthly_rent"`
	PriorRent   decimal.NullDecimal `gorm:"column:prior_rent"`
	GrowthPct   decimal.NullDecimal `gorm:"column:growth_pct"`
}

func (r *Reports) YearOverYearRentGrowth(ctx context.Context) ([]YearOverYearRow, error) {
	var rows []YearOverYearRow
	err := r.db.WithContext(ctx).Raw(`
		WITH ordered AS (
			SELECT id, property_id, start_date, monthly_rent,
			       LAG(monthly_rent, 12) OVER (
			           PARTITION BY property_id ORDER BY start_date, id
			       ) AS prior_rent
			FROM leases
		)
		SELECT o.id AS lease_id, o.property_id, p.address, o.start_date, o.monthly_rent, o.prior_rent,
		       CASE WHEN o.prior_rent IS NULL OR o.prior_rent = 0 THEN NULL
		            ELSE ROUND((o.monthly_rent - o.prior_rent) * 100.0 / o.prior_rent, 2)
		       END AS growth_pct
		FROM ordered o
		JOIN properties p ON p.id = o.property_id
		ORDER BY o.property_id, o.start_date, o.id`).Scan(&rows).Error
	return rows, err
}

// overlapDays counts whole days where [start,end] intersects [winStart,winEnd].
func overlapDays(start, end, winStart, winEnd time.Time) int {
	if start.Before(winStart) {
		start = winStart
	}
	if end.After(winEnd) {
		end = winEnd
	}
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}
