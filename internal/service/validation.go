package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/apperror"
)

// validator collects field messages for one input.
type validator struct {
	errs *apperror.ValidationError
}

func newValidator() *validator {
	return &validator{errs: apperror.NewValidationError()}
}

func (v *validator) required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.errs.Add(field, fmt.Sprintf("The %s field is required.", field))
	}
}

func (v *validator) maxLen(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.errs.Add(field, fmt.Sprintf("The %s may not be greater than %d characters.", field, max))
	}
}

func (v *validator) nonNegative(field string, value decimal.Decimal) {
	if value.IsNegative() {
		v.errs.Add(field, fmt.Sprintf("The %s must be at least 0.", field))
	}
}

func (v *validator) positive(field string, value decimal.Decimal) {
	if !value.IsPositive() {
		v.errs.Add(field, fmt.Sprintf("The %s must be greater than 0.", field))
	}
}

// money rejects values that do not fit NUMERIC(15,2).
func (v *validator) money(field string, value decimal.Decimal) {
	if !value.Round(2).Equal(value) {
		v.errs.Add(field, fmt.Sprintf("The %s may not have more than 2 decimal places.", field))
	}
	if value.Abs().GreaterThanOrEqual(maxMoney) {
		v.errs.Add(field, fmt.Sprintf("The %s is too large.", field))
	}
}

func (v *validator) oneOf(field string, ok bool) {
	if !ok {
		v.errs.Add(field, fmt.Sprintf("The selected %s is invalid.", field))
	}
}

func (v *validator) fail(field, message string) {
	v.errs.Add(field, message)
}

func (v *validator) err() error {
	return v.errs.OrNil()
}

var maxMoney = decimal.New(1, 13)
