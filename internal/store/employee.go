package store

import (
	"context"

	"gorm.io/gorm"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

var employeeFilterColumns = map[string]bool{
	"first_name": true,
	"last_name":  true,
	"email":      true,
	"role":       true,
}

func (s *Store) CreateEmployee(ctx context.Context, e *models.Employee) error {
	if !e.Role.Valid() {
		return s.fail("employee.create", "employee", "", e,
			&validate.FieldError{Field: "role", Reason: "must be one of the known employee roles"})
	}
	if err := s.val.Struct(e); err != nil {
		return s.fail("employee.create", "employee", "", e, err)
	}
	if err := s.db.WithContext(ctx).Create(e).Error; err != nil {
		return s.fail("employee.create", "employee", "", e, err)
	}
	return nil
}

func (s *Store) GetEmployee(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, s.fail("employee.get", "employee", formatID(id), id, err)
	}
	return &e, nil
}

func (s *Store) ListEmployees(ctx context.Context, opts ListOptions) ([]models.Employee, error) {
	q, err := s.query(ctx, &models.Employee{}, opts, employeeFilterColumns)
	if err != nil {
		return nil, s.fail("employee.list", "employee", "", opts.Filters, err)
	}
	var rows []models.Employee
	if err := q.Order("id").Find(&rows).Error; err != nil {
		return nil, s.fail("employee.list", "employee", "", opts.Filters, err)
	}
	return rows, nil
}

func (s *Store) UpdateEmployee(ctx context.Context, id uint, fields map[string]string) (*models.Employee, error) {
	var e models.Employee
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&e, id).Error; err != nil {
			return err
		}
		for field, value := range fields {
			if err := applyEmployeeField(&e, field, value); err != nil {
				return err
			}
		}
		if !e.Role.Valid() {
			return &validate.FieldError{Field: "role", Reason: "must be one of the known employee roles"}
		}
		if err := s.val.Struct(&e); err != nil {
			return err
		}
		return tx.Save(&e).Error
	})
	if err != nil {
		return nil, s.fail("employee.update", "employee", formatID(id), fields, err)
	}
	return &e, nil
}

// DeleteEmployee removes the employee row; maintenance and payment
// references are nulled by the schema, never cascaded.
func (s *Store) DeleteEmployee(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Employee{}, id)
	if res.Error != nil {
		return s.fail("employee.delete", "employee", formatID(id), id, res.Error)
	}
	if res.RowsAffected == 0 {
		return s.fail("employee.delete", "employee", formatID(id), id, gorm.ErrRecordNotFound)
	}
	return nil
}

func applyEmployeeField(e *models.Employee, field, value string) error {
	switch field {
	case "first_name":
		e.FirstName = value
	case "last_name":
		e.LastName = value
	case "email":
		e.Email = value
	case "phone":
		e.Phone = value
	case "role":
		e.Role = models.EmployeeRole(value)
	case "hire_date":
		ts, err := validate.ParseDate(field, value)
		if err != nil {
			return err
		}
		e.HireDate = ts
	default:
		return &validate.FieldError{Field: field, Reason: "unknown employee field"}
	}
	return nil
}
