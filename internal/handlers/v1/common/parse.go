package common

import (
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// Parser converts wire strings into typed values and collects a message per
// malformed field, so one response reports every problem at once.
type Parser struct {
	errs *apperror.ValidationError
}

func NewParser() *Parser {
	return &Parser{errs: apperror.NewValidationError()}
}

// Decimal parses a required decimal; an empty value yields zero so the
// service can report range errors.
func (p *Parser) Decimal(field, value string) decimal.Decimal {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		p.errs.Add(field, "The "+field+" must be a number.")
		return decimal.Zero
	}
	return d
}

// NullDecimal parses an optional decimal; empty means absent.
func (p *Parser) NullDecimal(field, value string) decimal.NullDecimal {
	if strings.TrimSpace(value) == "" {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(p.Decimal(field, value))
}

// UUID parses an identifier; empty yields uuid.Nil.
func (p *Parser) UUID(field, value string) uuid.UUID {
	value = strings.TrimSpace(value)
	if value == "" {
		return uuid.Nil
	}
	id, err := uuid.FromString(value)
	if err != nil {
		p.errs.Add(field, "The "+field+" must be a valid UUID.")
		return uuid.Nil
	}
	return id
}

func (p *Parser) NullUUID(field, value string) uuid.NullUUID {
	if strings.TrimSpace(value) == "" {
		return uuid.NullUUID{}
	}
	id := p.UUID(field, value)
	return uuid.NullUUID{UUID: id, Valid: id != uuid.Nil}
}

// Date parses a YYYY-MM-DD date; empty yields nil.
func (p *Parser) Date(field, value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	t, err := ledger.ParseDate(value)
	if err != nil {
		p.errs.Add(field, "The "+field+" is not a valid date.")
		return nil
	}
	return &t
}

// RequiredDate is Date with a zero time for an absent value.
func (p *Parser) RequiredDate(field, value string) time.Time {
	if t := p.Date(field, value); t != nil {
		return *t
	}
	return time.Time{}
}

// Err returns the collected failures as a 422, or nil.
func (p *Parser) Err() error {
	if !p.errs.HasErrors() {
		return nil
	}
	return ValidationError(p.errs)
}
