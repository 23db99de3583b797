package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"realestatedb/internal/models"
	"realestatedb/internal/validate"
)

func validOwner() *models.Owner {
	return &models.Owner{
		FirstName: "Alice",
		LastName:  "Granger",
		Email:     "alice.granger@example.com",
		Phone:     "512-555-0110",
	}
}

func TestStructAcceptsValidOwner(t *testing.T) {
	assert.NoError(t, validate.New().Struct(validOwner()))
}

func TestStructRejectsBadEmail(t *testing.T) {
	o := validOwner()
	o.Email = "not-an-email"
	err := validate.New().Struct(o)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Email", fieldErr.Field)
	assert.Equal(t, "malformed email address", fieldErr.Reason)
}

func TestStructRejectsBadPhone(t *testing.T) {
	o := validOwner()
	o.Phone = "123"
	err := validate.New().Struct(o)
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Phone", fieldErr.Field)
}

func TestStructAllowsEmptyPhone(t *testing.T) {
	o := validOwner()
	o.Phone = ""
	assert.NoError(t, validate.New().Struct(o))
}

func TestZipCodeFormats(t *testing.T) {
	v := validate.New()
	p := &models.Property{
		Address:      "2200 Guadalupe St",
		City:         "Austin",
		State:        "TX",
		ZipCode:      "78705",
		PropertyType: models.PropertyTypeCommercial,
	}
	assert.NoError(t, v.Struct(p))

	p.ZipCode = "78705-1234"
	assert.NoError(t, v.Struct(p))

	p.ZipCode = "787"
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, v.Struct(p), &fieldErr)
	assert.Equal(t, "ZipCode", fieldErr.Field)
}

func TestStateMustBeTwoLetters(t *testing.T) {
	v := validate.New()
	p := &models.Property{
		Address:      "2200 Guadalupe St",
		City:         "Austin",
		State:        "Texas",
		ZipCode:      "78705",
		PropertyType: models.PropertyTypeCommercial,
	}
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, v.Struct(p), &fieldErr)
	assert.Equal(t, "State", fieldErr.Field)
}

func TestParseDate(t *testing.T) {
	ts, err := validate.ParseDate("start_date", "2026-03-15")
	assert.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())

	_, err = validate.ParseDate("start_date", "03/15/2026")
	var fieldErr *validate.FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "start_date", fieldErr.Field)
}
