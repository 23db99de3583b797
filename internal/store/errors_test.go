package store

import (
	"database/sql/driver"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func TestClassify(t *testing.T) {
	err := classify("tenant", "7", gorm.ErrRecordNotFound)
	var notFound *NotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, "tenant 7 not found", notFound.Error())

	err = classify("owner", "", gorm.ErrDuplicatedKey)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "email", fieldErr.Field)

	err = classify("property owner", "", gorm.ErrDuplicatedKey)
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "owner_id", fieldErr.Field)

	err = classify("payment", "", gorm.ErrForeignKeyViolated)
	var refErr *ReferenceError
	assert.ErrorAs(t, err, &refErr)

	err = classify("lease", "", models.ErrLeaseOverlap)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)

	err = classify("property", "", driver.ErrBadConn)
	var connErr *ConnectivityError
	assert.ErrorAs(t, err, &connErr)
	assert.ErrorIs(t, connErr, driver.ErrBadConn)

	err = classify("property", "", &net.OpError{Op: "dial", Err: errors.New("connection refused")})
	assert.ErrorAs(t, err, &connErr)

	plain := errors.New("unrecognized")
	assert.Equal(t, plain, classify("property", "", plain))
	assert.NoError(t, classify("property", "", nil))
}
