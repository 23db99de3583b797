package store_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/store"
	"realestatedb/internal/validate"
)

func setupStore(t *testing.T) *store.Store {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)
	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	assert.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	assert.NoError(t, db.AutoMigrate(models.Ordered()...))
	return store.New(db, nil)
}

func sampleProperty() *models.Property {
	return &models.Property{
		Address:       "480 Mueller Commons",
		City:          "Austin",
		State:         "TX",
		ZipCode:       "78723",
		PropertyType:  models.PropertyTypeApartment,
		SquareFeet:    1650,
		YearBuilt:     2012,
		PurchasePrice: decimal.RequireFromString("510000.00"),
	}
}

func TestPropertyRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	assert.NotZero(t, p.ID)

	got, err := s.GetProperty(ctx, p.ID)
	assert.NoError(t, err)
	assert.Equal(t, "480 Mueller Commons", got.Address)
	assert.True(t, got.PurchasePrice.Equal(decimal.RequireFromString("510000.00")))

	updated, err := s.UpdateProperty(ctx, p.ID, map[string]string{
		"city":       "Round Rock",
		"year_built": "2014",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Round Rock", updated.City)
	assert.Equal(t, 2014, updated.YearBuilt)

	assert.NoError(t, s.DeleteProperty(ctx, p.ID))
	_, err = s.GetProperty(ctx, p.ID)
	var notFound *store.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestPropertyValidation(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	bad := sampleProperty()
	bad.ZipCode = "not-a-zip"
	err := s.CreateProperty(ctx, bad)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "ZipCode", fieldErr.Field)

	bad = sampleProperty()
	bad.PropertyType = "Castle"
	err = s.CreateProperty(ctx, bad)
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "property_type", fieldErr.Field)
}

func TestOwnerDuplicateEmail(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	first := &models.Owner{FirstName: "Alice", LastName: "Granger", Email: "alice@example.com"}
	assert.NoError(t, s.CreateOwner(ctx, first))

	dup := &models.Owner{FirstName: "Alicia", LastName: "Granger", Email: "alice@example.com"}
	err := s.CreateOwner(ctx, dup)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)
}

func TestOwnerDeleteBlockedByStake(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	o := &models.Owner{FirstName: "Bruno", LastName: "Kessler", Email: "bruno@example.com"}
	assert.NoError(t, s.CreateOwner(ctx, o))
	assert.NoError(t, s.CreatePropertyOwner(ctx, &models.PropertyOwner{
		PropertyID: p.ID, OwnerID: o.ID,
		OwnershipPercentage: decimal.RequireFromString("40.00"),
	}))

	err := s.DeleteOwner(ctx, o.ID)
	var refErr *store.ReferenceError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "property ownership", refErr.Relation)

	assert.NoError(t, s.DeletePropertyOwner(ctx, p.ID, o.ID))
	assert.NoError(t, s.DeleteOwner(ctx, o.ID))
}

func TestLeaseCreateRequiresReferences(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	l := &models.Lease{
		PropertyID:  99,
		TenantID:    99,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.RequireFromString("2000.00"),
		DueDay:      1,
	}
	err := s.CreateLease(ctx, l)
	var refErr *store.ReferenceError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "property", refErr.Relation)
}

func TestLeaseUpdatePastEndForcesExpired(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	tn := &models.Tenant{FirstName: "Mia", LastName: "Sandoval", Email: "mia@example.com"}
	assert.NoError(t, s.CreateTenant(ctx, tn))

	now := time.Now()
	l := &models.Lease{
		PropertyID:  p.ID,
		TenantID:    tn.ID,
		StartDate:   now.AddDate(0, -6, 0),
		EndDate:     now.AddDate(0, 6, 0),
		MonthlyRent: decimal.RequireFromString("2000.00"),
		DueDay:      1,
	}
	assert.NoError(t, s.CreateLease(ctx, l))
	assert.Equal(t, models.LeaseStatusActive, l.Status)

	yesterday := now.AddDate(0, 0, -1).Format(validate.DateFormat)
	updated, err := s.UpdateLease(ctx, l.ID, map[string]string{"end_date": yesterday})
	assert.NoError(t, err)
	assert.Equal(t, models.LeaseStatusExpired, updated.Status)
}

func TestLeaseUpdateChecksReferencesInTransaction(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	tn := &models.Tenant{FirstName: "Noah", LastName: "Ellery", Email: "noah@example.com"}
	assert.NoError(t, s.CreateTenant(ctx, tn))

	l := &models.Lease{
		PropertyID:  p.ID,
		TenantID:    tn.ID,
		StartDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC),
		MonthlyRent: decimal.RequireFromString("2000.00"),
		DueDay:      1,
	}
	assert.NoError(t, s.CreateLease(ctx, l))

	// A missing tenant fails the pre-check and rolls the update back.
	_, err := s.UpdateLease(ctx, l.ID, map[string]string{"tenant_id": "99"})
	var refErr *store.ReferenceError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "tenant", refErr.Relation)

	kept, err := s.GetLease(ctx, l.ID)
	assert.NoError(t, err)
	assert.Equal(t, tn.ID, kept.TenantID)

	other := &models.Tenant{FirstName: "Mia", LastName: "Sandoval", Email: "mia.s@example.com"}
	assert.NoError(t, s.CreateTenant(ctx, other))
	updated, err := s.UpdateLease(ctx, l.ID, map[string]string{"tenant_id": fmt.Sprintf("%d", other.ID)})
	assert.NoError(t, err)
	assert.Equal(t, other.ID, updated.TenantID)
}

func TestLeaseOverlapClassifiedAsDomainError(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	tn := &models.Tenant{FirstName: "Theo", LastName: "Park", Email: "theo@example.com"}
	assert.NoError(t, s.CreateTenant(ctx, tn))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l := &models.Lease{
		PropertyID: p.ID, TenantID: tn.ID,
		StartDate: start, EndDate: start.AddDate(1, 0, 0),
		MonthlyRent: decimal.RequireFromString("2000.00"), DueDay: 1,
	}
	assert.NoError(t, s.CreateLease(ctx, l))

	clash := &models.Lease{
		PropertyID: p.ID, TenantID: tn.ID,
		StartDate: start.AddDate(0, 3, 0), EndDate: start.AddDate(1, 3, 0),
		MonthlyRent: decimal.RequireFromString("2100.00"), DueDay: 1,
	}
	err := s.CreateLease(ctx, clash)
	var domainErr *store.DomainError
	assert.ErrorAs(t, err, &domainErr)
}

func TestUpdateUnknownFieldRejected(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	_, err := s.UpdateProperty(ctx, p.ID, map[string]string{"color": "blue"})
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "color", fieldErr.Field)
}

func TestListPaginationAndFilters(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		p := sampleProperty()
		p.Address = fmt.Sprintf("%d Main St", i+1)
		if i%2 == 0 {
			p.City = "Dallas"
		}
		assert.NoError(t, s.CreateProperty(ctx, p))
	}

	page2, err := s.ListProperties(ctx, store.ListOptions{Page: 2, PageSize: 5})
	assert.NoError(t, err)
	assert.Len(t, page2, 5)
	assert.Equal(t, uint(6), page2[0].ID)

	austin, err := s.ListProperties(ctx, store.ListOptions{Filters: map[string]string{"city": "Austin"}})
	assert.NoError(t, err)
	assert.Len(t, austin, 6)

	_, err = s.ListProperties(ctx, store.ListOptions{Filters: map[string]string{"color": "blue"}})
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "color", fieldErr.Field)
}

func TestDeleteMissingRowIsNotFound(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	var notFound *store.NotFoundError
	assert.ErrorAs(t, s.DeleteProperty(ctx, 42), &notFound)
	assert.ErrorAs(t, s.DeleteLease(ctx, 42), &notFound)
	assert.ErrorAs(t, s.DeletePayment(ctx, 42), &notFound)
	assert.ErrorAs(t, s.DeletePropertyOwner(ctx, 42, 7), &notFound)
}

func TestPaymentRejectsNonPositiveAmount(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := &models.Payment{
		LeaseID:     1,
		Amount:      decimal.Zero,
		PaymentDate: time.Now(),
		Method:      models.PaymentMethodCash,
	}
	err := s.CreatePayment(ctx, p)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "amount", fieldErr.Field)
}

func TestOwnershipPercentageBounds(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	o := &models.Owner{FirstName: "Carmen", LastName: "Ortiz", Email: "carmen@example.com"}
	assert.NoError(t, s.CreateOwner(ctx, o))

	err := s.CreatePropertyOwner(ctx, &models.PropertyOwner{
		PropertyID: p.ID, OwnerID: o.ID,
		OwnershipPercentage: decimal.RequireFromString("140.00"),
	})
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "ownership_percentage", fieldErr.Field)

	assert.NoError(t, s.CreatePropertyOwner(ctx, &models.PropertyOwner{
		PropertyID: p.ID, OwnerID: o.ID,
		OwnershipPercentage: decimal.RequireFromString("60.00"),
	}))

	po, err := s.UpdateOwnershipPercentage(ctx, p.ID, o.ID, decimal.RequireFromString("75.00"))
	assert.NoError(t, err)
	assert.Equal(t, "75.00", po.OwnershipPercentage.StringFixed(2))
}

func TestDuplicateOwnershipPairRejected(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	p := sampleProperty()
	assert.NoError(t, s.CreateProperty(ctx, p))
	o := &models.Owner{FirstName: "Carmen", LastName: "Ortiz", Email: "carmen.o@example.com"}
	assert.NoError(t, s.CreateOwner(ctx, o))

	stake := &models.PropertyOwner{
		PropertyID: p.ID, OwnerID: o.ID,
		OwnershipPercentage: decimal.RequireFromString("50.00"),
	}
	assert.NoError(t, s.CreatePropertyOwner(ctx, stake))

	dup := &models.PropertyOwner{
		PropertyID: p.ID, OwnerID: o.ID,
		OwnershipPercentage: decimal.RequireFromString("25.00"),
	}
	err := s.CreatePropertyOwner(ctx, dup)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "owner_id", fieldErr.Field)
}
