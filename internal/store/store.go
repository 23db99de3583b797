package store

import (
	"context"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"realestatedb/internal/logging"
	"realestatedb/internal/validate"
)

// DefaultPageSize bounds list output when no page size is requested.
const DefaultPageSize = 10

// Store executes CRUD operations against the shared database handle.
// Each method maps one operation to one statement (plus the hooks that
// statement fires), validated before anything reaches storage.
type Store struct {
	db  *gorm.DB
	val *validate.Validator
	log *logrus.Logger
}

// New wraps a database handle. The logger may be nil in tests.
func New(db *gorm.DB, log *logrus.Logger) *Store {
	return &Store{db: db, val: validate.New(), log: log}
}

// DB exposes the underlying handle for read-only report queries.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// ListOptions selects a page of rows with optional equality filters.
type ListOptions struct {
	Page     int
	PageSize int
	Filters  map[string]string
}

func (o ListOptions) limits() (limit, offset int) {
	size := o.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := o.Page
	if page <= 0 {
		page = 1
	}
	return size, (page - 1) * size
}

// query builds a filtered, paginated query. Filter columns are checked
// against the entity's allowed set so no untrusted input reaches the
// statement text; values are always bound as parameters.
func (s *Store) query(ctx context.Context, model interface{}, opts ListOptions, allowed map[string]bool) (*gorm.DB, error) {
	q := s.db.WithContext(ctx).Model(model)
	for column, value := range opts.Filters {
		if !allowed[column] {
			return nil, &validate.FieldError{Field: column, Reason: "unknown filter column"}
		}
		q = q.Where(fmt.Sprintf("%s = ?", column), value)
	}
	limit, offset := opts.limits()
	return q.Limit(limit).Offset(offset), nil
}

// fail logs the failed operation with its input and returns the
// classified error.
func (s *Store) fail(operation, entity, id string, input any, err error) error {
	classified := classify(entity, id, err)
	logging.LogError(s.log, operation, input, classified)
	return classified
}

// requireRef verifies that a referenced row exists before an insert or
// update names it, so the caller sees the blocking relationship instead
// of a raw constraint violation. The db handle is passed in so checks
// made inside a transaction read the transaction's snapshot.
func (s *Store) requireRef(ctx context.Context, db *gorm.DB, model interface{}, entity, relation string, id uint) error {
	var count int64
	err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return classify(entity, formatID(id), err)
	}
	if count == 0 {
		return &ReferenceError{
			Entity:   entity,
			Relation: relation,
			Reason:   fmt.Sprintf("%s %d does not exist", relation, id),
		}
	}
	return nil
}

func formatID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
