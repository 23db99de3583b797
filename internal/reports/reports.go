package reports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
)

// Reports runs the read-only derived queries. All methods are pure
// aggregations over current table state; none mutate data.
type Reports struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Reports {
	return &Reports{db: db}
}

// ActiveLeaseRow joins an active lease with its tenant and property.
type ActiveLeaseRow struct {
	LeaseID         uint            `gorm:"column:lease_id"`
	Address         string          `gorm:"column:address"`
	City            string          `gorm:"column:city"`
	TenantFirstName string          `gorm:"column:tenant_first_name"`
	TenantLastName  string          `gorm:"column:tenant_last_name"`
	StartDate       time.Time       `gorm:"column:start_date"`
	EndDate         time.Time       `gorm:"column:end_date"`
	MonthlyRent     decimal.Decimal `gorm:"column:monthly_rent"`
	DueDay          int             `gorm:"column:due_day"`
}

func (r *Reports) ActiveLeases(ctx context.Context) ([]ActiveLeaseRow, error) {
	var rows []ActiveLeaseRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id AS lease_id, p.address, p.city,
		       t.first_name AS tenant_first_name, t.last_name AS tenant_last_name,
		       l.start_date, l.end_date, l.monthly_rent, l.due_day
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		JOIN tenants t ON t.id = l.tenant_id
		WHERE l.status = ?
		ORDER BY l.id`, models.LeaseStatusActive).Scan(&rows).Error
	return rows, err
}

// OpenMaintenanceRow is an unfinished request with its assignee, if any.
type OpenMaintenanceRow struct {
	RequestID         uint                 `gorm:"column:request_id"`
	Address           string               `gorm:"column:address"`
	Description       string               `gorm:"column:description"`
	RequestDate       time.Time            `gorm:"column:request_date"`
	Status            models.RequestStatus `gorm:"column:status"`
	AssigneeFirstName *string              `gorm:"column:assignee_first_name"`
	AssigneeLastName  *string              `gorm:"column:assignee_last_name"`
}

// AssigneeName renders the assigned employee or "Unassigned".
func (row OpenMaintenanceRow) AssigneeName() string {
	if row.AssigneeFirstName == nil {
		return "Unassigned"
	}
	name := *row.AssigneeFirstName
	if row.AssigneeLastName != nil {
		name += " " + *row.AssigneeLastName
	}
	return name
}

func (r *Reports) OpenMaintenance(ctx context.Context) ([]OpenMaintenanceRow, error) {
	var rows []OpenMaintenanceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT m.id AS request_id, p.address, m.description, m.request_date, m.status,
		       e.first_name AS assignee_first_name, e.last_name AS assignee_last_name
		FROM maintenance_requests m
		JOIN properties p ON p.id = m.property_id
		LEFT JOIN employees e ON e.id = m.employee_id
		WHERE m.status <> ?
		ORDER BY m.request_date, m.id`, models.RequestStatusCompleted).Scan(&rows).Error
	return rows, err
}

// FinancialSummaryRow compares rent collected against maintenance spend
// per property, both defaulting to zero when no rows exist.
type FinancialSummaryRow struct {
	PropertyID      uint            `gorm:"column:property_id"`
	Address         string          `gorm:"column:address"`
	City            string          `gorm:"column:city"`
	State           string          `gorm:"column:state"`
	RentCollected   decimal.Decimal `gorm:"column:rent_collected"`
	MaintenanceCost decimal.Decimal `gorm:"column:maintenance_cost"`
	Net             decimal.Decimal `gorm:"column:net"`
}

func (r *Reports) FinancialSummary(ctx context.Context) ([]FinancialSummaryRow, error) {
	var rows []FinancialSummaryRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id AS property_id, p.address, p.city, p.state,
		       COALESCE(pay.total_collected, 0) AS rent_collected,
		       COALESCE(mnt.total_cost, 0) AS maintenance_cost,
		       COALESCE(pay.total_collected, 0) - COALESCE(mnt.total_cost, 0) AS net
		FROM properties p
		LEFT JOIN (
			SELECT l.property_id, SUM(pm.amount) AS total_collected
			FROM payments pm
			JOIN leases l ON l.id = pm.lease_id
			GROUP BY l.property_id
		) pay ON pay.property_id = p.id
		LEFT JOIN (
			SELECT property_id, SUM(cost) AS total_cost
			FROM maintenance_requests
			GROUP BY property_id
		) mnt ON mnt.property_id = p.id
		ORDER BY p.id`).Scan(&rows).Error
	return rows, err
}

// ExpectedVsReceivedRow compares the rent an active lease should have
// produced since its start against the payments actually recorded.
type ExpectedVsReceivedRow struct {
	PropertyID uint
	Address    string
	Expected   decimal.Decimal
	Received   decimal.Decimal
	Shortfall  decimal.Decimal
}

// ExpectedVsReceived reports per property. Expected rent counts one
// month of rent per calendar month elapsed from the lease start through
// today, capped at the lease end.
func (r *Reports) ExpectedVsReceived(ctx context.Context) ([]ExpectedVsReceivedRow, error) {
	type leaseRow struct {
		ID          uint            `gorm:"column:id"`
		PropertyID  uint            `gorm:"column:property_id"`
		Address     string          `gorm:"column:address"`
		StartDate   time.Time       `gorm:"column:start_date"`
		EndDate     time.Time       `gorm:"column:end_date"`
		MonthlyRent decimal.Decimal `gorm:"column:monthly_rent"`
		Received    decimal.Decimal `gorm:"column:received"`
	}
	var leases []leaseRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT l.id, l.property_id, p.address, l.start_date, l.end_date, l.monthly_rent,
		       COALESCE(pay.received, 0) AS received
		FROM leases l
		JOIN properties p ON p.id = l.property_id
		LEFT JOIN (
			SELECT lease_id, SUM(amount) AS received
			FROM payments
			GROUP BY lease_id
		) pay ON pay.lease_id = l.id
		WHERE l.status = ?
		ORDER BY l.property_id, l.id`, models.LeaseStatusActive).Scan(&leases).Error
	if err != nil {
		return nil, err
	}

	now := time.Now()
	byProperty := make(map[uint]*ExpectedVsReceivedRow)
	var order []uint
	for _, l := range leases {
		months := monthsElapsed(l.StartDate, minTime(now, l.EndDate))
		expected := l.MonthlyRent.Mul(decimal.NewFromInt(int64(months)))
		row, ok := byProperty[l.PropertyID]
		if !ok {
			row = &ExpectedVsReceivedRow{PropertyID: l.PropertyID, Address: l.Address}
			byProperty[l.PropertyID] = row
			order = append(order, l.PropertyID)
		}
		row.Expected = row.Expected.Add(expected)
		row.Received = row.Received.Add(l.Received)
	}

	rows := make([]ExpectedVsReceivedRow, 0, len(order))
	for _, id := range order {
		row := byProperty[id]
		row.Shortfall = row.Expected.Sub(row.Received)
		rows = append(rows, *row)
	}
	return rows, nil
}

// LeaseOverlaps probes for existing leases on a property whose date
// range intersects the candidate range. Read-only counterpart of the
// insert-time overlap guard.
func (r *Reports) LeaseOverlaps(ctx context.Context, propertyID uint, start, end time.Time, activeOnly bool) ([]models.Lease, error) {
	q := r.db.WithContext(ctx).
		Where("property_id = ? AND start_date <= ? AND end_date >= ?", propertyID, end, start)
	if activeOnly {
		q = q.Where("status = ?", models.LeaseStatusActive)
	}
	var rows []models.Lease
	err := q.Order("start_date").Find(&rows).Error
	return rows, err
}

// OwnerPayoutRow is one co-owner's share of a property's active rent.
type OwnerPayoutRow struct {
	OwnerID             uint            `gorm:"column:owner_id"`
	FirstName           string          `gorm:"column:first_name"`
	LastName            string          `gorm:"column:last_name"`
	OwnershipPercentage decimal.Decimal `gorm:"column:ownership_percentage"`
	Payout              decimal.Decimal `gorm:"column:payout"`
}

// OwnerPayouts computes monthly_rent x ownership_percentage across the
// property's active leases, one row per co-owner.
func (r *Reports) OwnerPayouts(ctx context.Context, propertyID uint) ([]OwnerPayoutRow, error) {
	var rows []OwnerPayoutRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT o.id AS owner_id, o.first_name, o.last_name, po.ownership_percentage,
		       COALESCE(rent.total_rent, 0) * po.ownership_percentage / 100 AS payout
		FROM property_owners po
		JOIN owners o ON o.id = po.owner_id
		LEFT JOIN (
			SELECT property_id, SUM(monthly_rent) AS total_rent
			FROM leases
			WHERE status = ?
			GROUP BY property_id
		) rent ON rent.property_id = po.property_id
		WHERE po.property_id = ?
		ORDER BY payout DESC, o.id`, models.LeaseStatusActive, propertyID).Scan(&rows).Error
	return rows, err
}

// monthsElapsed counts calendar months from start through now,
// inclusive of the starting month.
func monthsElapsed(start, now time.Time) int {
	if now.Before(start) {
		return 0
	}
	months := (now.Year()-start.Year())*12 + int(now.Month()) - int(start.Month()) + 1
	if months < 0 {
		return 0
	}
	return months
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
