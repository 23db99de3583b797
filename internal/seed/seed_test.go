package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/seed"
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

func TestRunPopulatesPortfolio(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, seed.Run(db))

	counts := map[string]int64{}
	for name, model := range map[string]interface{}{
		"employees":  &models.Employee{},
		"owners":     &models.Owner{},
		"tenants":    &models.Tenant{},
		"properties": &models.Property{},
		"leases":     &models.Lease{},
		"requests":   &models.MaintenanceRequest{},
		"payments":   &models.Payment{},
		"ownerships": &models.PropertyOwner{},
	} {
		var n int64
		assert.NoError(t, db.Model(model).Count(&n).Error)
		counts[name] = n
	}
	assert.Equal(t, int64(3), counts["employees"])
	assert.Equal(t, int64(3), counts["owners"])
	assert.Equal(t, int64(3), counts["tenants"])
	assert.Equal(t, int64(3), counts["properties"])
	assert.Equal(t, int64(4), counts["leases"])
	assert.Equal(t, int64(3), counts["requests"])
	assert.Equal(t, int64(3), counts["payments"])
	assert.Equal(t, int64(3), counts["ownerships"])
}

func TestRunFiresHooks(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, seed.Run(db))

	// The mid-month payment against a due day of 1 leaves an audit row.
	var audits []models.PaymentAudit
	assert.NoError(t, db.Find(&audits).Error)
	assert.Len(t, audits, 1)
	assert.Equal(t, "290.00", audits[0].LateFee.StringFixed(2))

	// The lease that ended a year ago was expired on the way in.
	var expired int64
	assert.NoError(t, db.Model(&models.Lease{}).
		Where("status = ?", models.LeaseStatusExpired).Count(&expired).Error)
	assert.Equal(t, int64(1), expired)
}

func TestRunRefusesSecondSeed(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, seed.Run(db))
	assert.ErrorIs(t, seed.Run(db), seed.ErrAlreadySeeded)
}
