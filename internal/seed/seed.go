package seed

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"realestatedb/internal/models"
)

// ErrAlreadySeeded is returned when sample data is already present.
var ErrAlreadySeeded = errors.New("database already contains properties; refusing to seed twice")

// Run inserts the fixed sample rows used for demonstrations and tests.
// Everything goes in one transaction so a partial seed never persists.
// Model hooks fire as usual, so the late sample payment produces its
// audit row and lease statuses are recomputed on the way in.
func Run(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrAlreadySeeded
	}

	return db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)

		employees := []models.Employee{
			{FirstName: "Dana", LastName: "Whitfield", Email: "dana.whitfield@example.com", Phone: "512-555-0143", Role: models.EmployeeRolePropertyManager, HireDate: today.AddDate(-4, 0, 0)},
			{FirstName: "Marcus", LastName: "Boone", Email: "marcus.boone@example.com", Phone: "512-555-0178", Role: models.EmployeeRoleMaintenanceStaff, HireDate: today.AddDate(-2, -3, 0)},
			{FirstName: "Priya", LastName: "Raman", Email: "priya.raman@example.com", Phone: "512-555-0102", Role: models.EmployeeRoleAccountant, HireDate: today.AddDate(-1, 0, 0)},
		}
		if err := tx.Create(&employees).Error; err != nil {
			return err
		}

		owners := []models.Owner{
			{FirstName: "Alice", LastName: "Granger", Email: "alice.granger@example.com", Phone: "512-555-0110", MailingAddress: "77 Commodore Ln, Austin, TX 78701"},
			{FirstName: "Bruno", LastName: "Kessler", Email: "bruno.kessler@example.com", Phone: "512-555-0121", MailingAddress: "901 Shoal Creek Blvd, Austin, TX 78701"},
			{FirstName: "Carmen", LastName: "Ortiz", Email: "carmen.ortiz@example.com", Phone: "512-555-0134", MailingAddress: "15 Red River St, Austin, TX 78702"},
		}
		if err := tx.Create(&owners).Error; err != nil {
			return err
		}

		tenants := []models.Tenant{
			{FirstName: "Noah", LastName: "Ellery", Email: "noah.ellery@example.com", Phone: "512-555-0150", Employer: "Lakeline Analytics", EmergencyContact: "512-555-0151"},
			{FirstName: "Mia", LastName: "Sandoval", Email: "mia.sandoval@example.com", Phone: "512-555-0162", Employer: "Bluebonnet Health", EmergencyContact: "512-555-0163"},
			{FirstName: "Theo", LastName: "Park", Email: "theo.park@example.com", Phone: "512-555-0174", Employer: "Hill Country Media", EmergencyContact: "512-555-0175"},
		}
		if err := tx.Create(&tenants).Error; err != nil {
			return err
		}

		properties := []models.Property{
			{
				Address: "1204 Bluff Springs Rd", City: "Austin", State: "TX", ZipCode: "78744",
				PropertyType: models.PropertyTypeSingleFamily, SquareFeet: 2150, YearBuilt: 2004,
				PurchaseDate:  today.AddDate(-3, 0, 0),
				PurchasePrice: decimal.RequireFromString("375000.00"),
			},
			{
				Address: "480 Mueller Commons", City: "Austin", State: "TX", ZipCode: "78723",
				PropertyType: models.PropertyTypeApartment, SquareFeet: 1650, YearBuilt: 2012,
				PurchaseDate:  today.AddDate(-5, 0, 0),
				PurchasePrice: decimal.RequireFromString("510000.00"),
			},
			{
				Address: "2200 Guadalupe St", City: "Austin", State: "TX", ZipCode: "78705",
				PropertyType: models.PropertyTypeCommercial, SquareFeet: 5400, YearBuilt: 1998,
				PurchaseDate:  today.AddDate(-8, 0, 0),
				PurchasePrice: decimal.RequireFromString("1250000.00"),
			},
		}
		if err := tx.Create(&properties).Error; err != nil {
			return err
		}

		ownerships := []models.PropertyOwner{
			{PropertyID: properties[0].ID, OwnerID: owners[2].ID, OwnershipPercentage: decimal.RequireFromString("100.00")},
			{PropertyID: properties[1].ID, OwnerID: owners[0].ID, OwnershipPercentage: decimal.RequireFromString("60.00")},
			{PropertyID: properties[1].ID, OwnerID: owners[1].ID, OwnershipPercentage: decimal.RequireFromString("40.00")},
		}
		if err := tx.Create(&ownerships).Error; err != nil {
			return err
		}

		// One active single-family lease plus two concurrent active unit
		// leases on the co-owned building; created one at a time so the
		// overlap guard sees each insert.
		leases := []models.Lease{
			{
				PropertyID: properties[0].ID, TenantID: tenants[0].ID,
				StartDate: today.AddDate(0, -3, 0), EndDate: today.AddDate(0, 9, 0),
				MonthlyRent:     decimal.RequireFromString("2900.00"),
				SecurityDeposit: decimal.NullDecimal{Decimal: decimal.RequireFromString("2900.00"), Valid: true},
				Status:          models.LeaseStatusActive, DueDay: 1,
			},
			{
				PropertyID: properties[1].ID, TenantID: tenants[1].ID,
				StartDate: today.AddDate(0, -6, 0), EndDate: today.AddDate(0, 6, 0),
				MonthlyRent: decimal.RequireFromString("2000.00"),
				Status:      models.LeaseStatusActive, DueDay: 1,
			},
			{
				PropertyID: properties[1].ID, TenantID: tenants[2].ID,
				StartDate: today.AddDate(0, 7, 0), EndDate: today.AddDate(1, 7, 0),
				MonthlyRent: decimal.RequireFromString("1000.00"),
				Status:      models.LeaseStatusActive, DueDay: 5,
			},
			{
				PropertyID: properties[2].ID, TenantID: tenants[2].ID,
				StartDate: today.AddDate(-2, 0, 0), EndDate: today.AddDate(-1, 0, 0),
				MonthlyRent: decimal.RequireFromString("4200.00"),
				Status:      models.LeaseStatusActive, DueDay: 1,
			},
		}
		for i := range leases {
			if err := tx.Create(&leases[i]).Error; err != nil {
				return err
			}
		}

		requests := []models.MaintenanceRequest{
			{
				PropertyID: properties[0].ID, TenantID: &tenants[0].ID,
				Description: "Water heater pilot light keeps going out",
				RequestDate: today.AddDate(0, -1, 0), Status: models.RequestStatusOpen,
			},
			{
				PropertyID: properties[1].ID, TenantID: &tenants[1].ID, EmployeeID: &employees[1].ID,
				Description: "HVAC filter replacement and duct inspection",
				RequestDate: today.AddDate(0, 0, -10), Status: models.RequestStatusInProgress,
				Cost: decimal.NullDecimal{Decimal: decimal.RequireFromString("180.00"), Valid: true},
			},
			{
				PropertyID: properties[1].ID, EmployeeID: &employees[1].ID,
				Description:    "Repaint hallway after move-out",
				RequestDate:    today.AddDate(0, -2, 0), Status: models.RequestStatusCompleted,
				CompletionDate: timePtr(today.AddDate(0, -1, -15)),
				Cost:           decimal.NullDecimal{Decimal: decimal.RequireFromString("650.00"), Valid: true},
			},
		}
		if err := tx.Create(&requests).Error; err != nil {
			return err
		}

		// First payment lands on the due day; the second is mid-month
		// against a due day of 1, so the audit hook records a late fee.
		payments := []models.Payment{
			{
				LeaseID: leases[0].ID, TenantID: &tenants[0].ID,
				Amount:      decimal.RequireFromString("2900.00"),
				PaymentDate: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -2, 0),
				Method:      models.PaymentMethodBankTransfer, ReceivedBy: &employees[2].ID,
			},
			{
				LeaseID: leases[0].ID, TenantID: &tenants[0].ID,
				Amount:      decimal.RequireFromString("2900.00"),
				PaymentDate: time.Date(today.Year(), today.Month(), 15, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0),
				Method:      models.PaymentMethodCheck, ReceivedBy: &employees[2].ID,
			},
			{
				LeaseID: leases[1].ID, TenantID: &tenants[1].ID,
				Amount:      decimal.RequireFromString("2000.00"),
				PaymentDate: time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.Local).AddDate(0, -1, 0),
				Method:      models.PaymentMethodCreditCard,
			},
		}
		for i := range payments {
			if err := tx.Create(&payments[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func timePtr(ts time.Time) *time.Time {
	return &ts
}
