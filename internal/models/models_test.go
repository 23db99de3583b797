package models_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realestatedb/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	assert.NoError(t, db.AutoMigrate(models.Ordered()...))
	return db
}

func createProperty(t *testing.T, db *gorm.DB) *models.Property {
	p := &models.Property{
		Address:       "1204 Bluff Springs Rd",
		City:          "Austin",
		State:         "TX",
		ZipCode:       "78744",
		PropertyType:  models.PropertyTypeSingleFamily,
		PurchasePrice: decimal.RequireFromString("375000.00"),
	}
	assert.NoError(t, db.Create(p).Error)
	return p
}

func createTenant(t *testing.T, db *gorm.DB, n int) *models.Tenant {
	tn := &models.Tenant{
		FirstName: "Noah",
		LastName:  "Ellery",
		Email:     fmt.Sprintf("tenant%d@example.com", n),
	}
	assert.NoError(t, db.Create(tn).Error)
	return tn
}

func createLease(t *testing.T, db *gorm.DB, propertyID, tenantID uint, start, end time.Time, dueDay int) *models.Lease {
	l := &models.Lease{
		PropertyID:  propertyID,
		TenantID:    tenantID,
		StartDate:   start,
		EndDate:     end,
		MonthlyRent: decimal.RequireFromString("2900.00"),
		Status:      models.LeaseStatusActive,
		DueDay:      dueDay,
	}
	assert.NoError(t, db.Create(l).Error)
	return l
}

func TestLeaseOverlapRejected(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	tn2 := createTenant(t, db, 2)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	createLease(t, db, p.ID, tn.ID, start, start.AddDate(1, 0, 0), 1)

	overlapping := &models.Lease{
		PropertyID:  p.ID,
		TenantID:    tn2.ID,
		StartDate:   start.AddDate(0, 6, 0),
		EndDate:     start.AddDate(1, 6, 0),
		MonthlyRent: decimal.RequireFromString("3000.00"),
		Status:      models.LeaseStatusActive,
		DueDay:      1,
	}
	err := db.Create(overlapping).Error
	assert.ErrorIs(t, err, models.ErrLeaseOverlap)

	// Nothing was persisted for the rejected lease.
	var count int64
	assert.NoError(t, db.Model(&models.Lease{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLeaseStartingAfterExistingEndIsAccepted(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	createLease(t, db, p.ID, tn.ID, start, end, 1)
	createLease(t, db, p.ID, tn.ID, end.AddDate(0, 0, 1), end.AddDate(1, 0, 1), 1)
}

func TestLeaseAutoExpiresOnCreate(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)

	past := time.Now().AddDate(-2, 0, 0)
	l := createLease(t, db, p.ID, tn.ID, past, past.AddDate(1, 0, 0), 1)
	assert.Equal(t, models.LeaseStatusExpired, l.Status)

	var stored models.Lease
	assert.NoError(t, db.First(&stored, l.ID).Error)
	assert.Equal(t, models.LeaseStatusExpired, stored.Status)
}

func TestLeaseAutoExpiresOnSave(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)

	now := time.Now()
	l := createLease(t, db, p.ID, tn.ID, now.AddDate(0, -1, 0), now.AddDate(1, 0, 0), 1)
	assert.Equal(t, models.LeaseStatusActive, l.Status)

	l.EndDate = now.AddDate(0, 0, -1)
	assert.NoError(t, db.Save(l).Error)
	assert.Equal(t, models.LeaseStatusExpired, l.Status)
}

func TestLatePaymentCreatesAudit(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, tn.ID, start, start.AddDate(2, 0, 0), 1)

	payment := &models.Payment{
		LeaseID:     l.ID,
		TenantID:    &tn.ID,
		Amount:      decimal.RequireFromString("2900.00"),
		PaymentDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Method:      models.PaymentMethodCheck,
	}
	assert.NoError(t, db.Create(payment).Error)

	var audits []models.PaymentAudit
	assert.NoError(t, db.Where("payment_id = ?", payment.ID).Find(&audits).Error)
	assert.Len(t, audits, 1)
	assert.Equal(t, "290.00", audits[0].LateFee.StringFixed(2))
}

func TestOnTimePaymentHasNoAudit(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, tn.ID, start, start.AddDate(2, 0, 0), 5)

	payment := &models.Payment{
		LeaseID:     l.ID,
		Amount:      decimal.RequireFromString("2900.00"),
		PaymentDate: time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC),
		Method:      models.PaymentMethodBankTransfer,
	}
	assert.NoError(t, db.Create(payment).Error)

	var count int64
	assert.NoError(t, db.Model(&models.PaymentAudit{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestDueDayClampsToShortMonth(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, tn.ID, start, start.AddDate(2, 0, 0), 31)

	// February has no 31st; the due date clamps to the 28th, so a
	// payment on the 28th is still on time.
	payment := &models.Payment{
		LeaseID:     l.ID,
		Amount:      decimal.RequireFromString("2900.00"),
		PaymentDate: time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC),
		Method:      models.PaymentMethodCash,
	}
	assert.NoError(t, db.Create(payment).Error)

	var count int64
	assert.NoError(t, db.Model(&models.PaymentAudit{}).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestPropertyDeleteCascades(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, tn.ID, start, start.AddDate(1, 0, 0), 1)

	owner := &models.Owner{FirstName: "Carmen", LastName: "Ortiz", Email: "carmen@example.com"}
	assert.NoError(t, db.Create(owner).Error)
	assert.NoError(t, db.Create(&models.PropertyOwner{
		PropertyID: p.ID, OwnerID: owner.ID,
		OwnershipPercentage: decimal.RequireFromString("100.00"),
	}).Error)
	assert.NoError(t, db.Create(&models.MaintenanceRequest{
		PropertyID: p.ID, Description: "Leaky faucet", RequestDate: start, Status: models.RequestStatusOpen,
	}).Error)
	assert.NoError(t, db.Create(&models.Payment{
		LeaseID: l.ID, Amount: decimal.RequireFromString("2900.00"),
		PaymentDate: start, Method: models.PaymentMethodCash,
	}).Error)

	assert.NoError(t, db.Delete(&models.Property{}, p.ID).Error)

	for _, probe := range []struct {
		name  string
		model interface{}
	}{
		{"leases", &models.Lease{}},
		{"payments", &models.Payment{}},
		{"maintenance requests", &models.MaintenanceRequest{}},
		{"ownerships", &models.PropertyOwner{}},
	} {
		var count int64
		assert.NoError(t, db.Model(probe.model).Count(&count).Error)
		assert.Equal(t, int64(0), count, "expected no %s after property delete", probe.name)
	}
}

func TestTenantDeleteCascadesLeasesKeepsRequests(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	createLease(t, db, p.ID, tn.ID, start, start.AddDate(1, 0, 0), 1)

	req := &models.MaintenanceRequest{
		PropertyID: p.ID, TenantID: &tn.ID,
		Description: "Broken window", RequestDate: start, Status: models.RequestStatusOpen,
	}
	assert.NoError(t, db.Create(req).Error)

	assert.NoError(t, db.Delete(&models.Tenant{}, tn.ID).Error)

	var leaseCount int64
	assert.NoError(t, db.Model(&models.Lease{}).Count(&leaseCount).Error)
	assert.Equal(t, int64(0), leaseCount)

	var stored models.MaintenanceRequest
	assert.NoError(t, db.First(&stored, req.ID).Error)
	assert.Nil(t, stored.TenantID)
}

func TestTenantDeleteUnlinksPayments(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	leaseholder := createTenant(t, db, 1)
	payer := createTenant(t, db, 2)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, leaseholder.ID, start, start.AddDate(1, 0, 0), 1)

	// The payer is not the leaseholder, so the payment must survive the
	// payer's deletion with its tenant reference cleared.
	payment := &models.Payment{
		LeaseID: l.ID, TenantID: &payer.ID,
		Amount:      decimal.RequireFromString("2900.00"),
		PaymentDate: start, Method: models.PaymentMethodCash,
	}
	assert.NoError(t, db.Create(payment).Error)

	assert.NoError(t, db.Delete(&models.Tenant{}, payer.ID).Error)

	var stored models.Payment
	assert.NoError(t, db.First(&stored, payment.ID).Error)
	assert.Nil(t, stored.TenantID)
}

func TestEmployeeDeleteUnlinksReferences(t *testing.T) {
	db := setupTestDB(t)
	p := createProperty(t, db)
	tn := createTenant(t, db, 1)
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := createLease(t, db, p.ID, tn.ID, start, start.AddDate(1, 0, 0), 1)

	e := &models.Employee{
		FirstName: "Marcus", LastName: "Boone", Email: "marcus@example.com",
		Role: models.EmployeeRoleMaintenanceStaff,
	}
	assert.NoError(t, db.Create(e).Error)

	req := &models.MaintenanceRequest{
		PropertyID: p.ID, EmployeeID: &e.ID,
		Description: "Repaint hallway", RequestDate: start, Status: models.RequestStatusInProgress,
	}
	assert.NoError(t, db.Create(req).Error)
	payment := &models.Payment{
		LeaseID: l.ID, Amount: decimal.RequireFromString("2900.00"),
		PaymentDate: start, Method: models.PaymentMethodCheck, ReceivedBy: &e.ID,
	}
	assert.NoError(t, db.Create(payment).Error)

	assert.NoError(t, db.Delete(&models.Employee{}, e.ID).Error)

	var storedReq models.MaintenanceRequest
	assert.NoError(t, db.First(&storedReq, req.ID).Error)
	assert.Nil(t, storedReq.EmployeeID)

	var storedPayment models.Payment
	assert.NoError(t, db.First(&storedPayment, payment.ID).Error)
	assert.Nil(t, storedPayment.ReceivedBy)
}

func TestEnumValues(t *testing.T) {
	assert.True(t, models.PropertyTypeSingleFamily.Valid())
	assert.False(t, models.PropertyType("Castle").Valid())
	assert.True(t, models.LeaseStatusTerminated.Valid())
	assert.False(t, models.LeaseStatus("Paused").Valid())
	assert.True(t, models.RequestStatusInProgress.Valid())
	assert.True(t, models.PaymentMethodCreditCard.Valid())
	assert.False(t, models.PaymentMethod("Barter").Valid())
	assert.True(t, models.EmployeeRolePropertyManager.Valid())
	assert.Contains(t, models.LeaseStatusValues(), models.LeaseStatusActive)
}
