package store

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

// NotFoundError reports an update or delete aimed at a nonexistent row.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// ReferenceError reports an operation blocked by referential integrity:
// an insert naming a missing related row, or a delete blocked by
// dependent rows. Relation names the specific blocking relationship.
type ReferenceError struct {
	Entity   string
	Relation string
	Reason   string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s blocked by %s: %s", e.Entity, e.Relation, e.Reason)
}

// DomainError reports a business-rule rejection, such as a lease date
// overlap, distinctly from a raw constraint violation.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return e.Reason
}

// ConnectivityError reports that storage could not be reached or
// authenticated to. Fatal for the current operation only.
type ConnectivityError struct {
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("database unreachable: %v", e.Err)
}

func (e *ConnectivityError) Unwrap() error {
	return e.Err
}

// classify converts storage-raised errors into the typed kinds the
// command layer reports on. Unrecognized errors pass through unchanged.
func classify(entity string, id string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return &NotFoundError{Entity: entity, ID: id}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return duplicateKeyError(entity)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ReferenceError{Entity: entity, Relation: "foreign key", Reason: "referenced row does not exist"}
	case errors.Is(err, models.ErrLeaseOverlap):
		return &DomainError{Reason: models.ErrLeaseOverlap.Error()}
	case isConnectivity(err):
		return &ConnectivityError{Err: err}
	}
	return err
}

// duplicateKeyError names the unique column that was violated. Email is
// the only unique index on the person entities; the ownership join is
// keyed by its property-owner pair.
func duplicateKeyError(entity string) error {
	if entity == "property owner" {
		return &validate.FieldError{Field: "owner_id", Reason: "owner already holds a stake in this property"}
	}
	return &validate.FieldError{Field: "email", Reason: "already in use"}
}

func isConnectivity(err error) bool {
	if errors.Is(err, driver.ErrBadConn) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
