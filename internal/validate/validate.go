package validate

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/ttacon/libphonenumber"
)

// DateFormat is the date layout accepted on input (YYYY-MM-DD).
const DateFormat = "2006-01-02"

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// FieldError identifies the offending field of a rejected input. It is
// raised before any statement reaches the database.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validator checks entity fields before they reach storage.
type Validator struct {
	v *validator.Validate
}

// New builds a Validator with the zipcode and phone rules registered on
// top of the library's built-in email and range checks.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("zipcode", validZip)
	_ = v.RegisterValidation("phone", validPhone)
	return &Validator{v: v}
}

// Struct validates every tagged field of an entity and reports the
// first offending field.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		return &FieldError{Field: fe.Field(), Reason: reasonFor(fe)}
	}
	return err
}

func reasonFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "email":
		return "malformed email address"
	case "phone":
		return "malformed phone number"
	case "zipcode":
		return "malformed ZIP code"
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "alpha":
		return "must contain only letters"
	default:
		return fmt.Sprintf("failed %s check", fe.Tag())
	}
}

func validZip(fl validator.FieldLevel) bool {
	return zipPattern.MatchString(fl.Field().String())
}

func validPhone(fl validator.FieldLevel) bool {
	num, err := libphonenumber.Parse(fl.Field().String(), "US")
	if err != nil {
		return false
	}
	return libphonenumber.IsValidNumber(num)
}

// ParseDate parses a YYYY-MM-DD input for the named field.
func ParseDate(field, value string) (time.Time, error) {
	ts, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Reason: "expected date in YYYY-MM-DD format"}
	}
	return ts, nil
}
