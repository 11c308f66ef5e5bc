package common

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

// Money renders an amount with two decimal places.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// NullMoney renders an optional amount, nil when absent.
func NullMoney(d decimal.NullDecimal) *string {
	if !d.Valid {
		return nil
	}
	s := Money(d.Decimal)
	return &s
}

func Date(t time.Time) string {
	return ledger.FormatDate(t)
}

func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}

// NullID renders an optional identifier, nil when absent.
func NullID(id uuid.NullUUID) *string {
	if !id.Valid {
		return nil
	}
	s := id.UUID.String()
	return &s
}

// PathID parses an {id} path parameter. Huma has already checked the uuid
// format, so a failure here means the route was declared without it.
func PathID(value string) (uuid.UUID, error) {
	id, err := uuid.FromString(value)
	if err != nil {
		return uuid.Nil, ValidationErrorAt("path.id", "The id must be a valid UUID.")
	}
	return id, nil
}

// Totals is the income/expense summary block shared by list and detail
// responses.
type Totals struct {
	Income  string `json:"income" doc:"Sum of income amounts"`
	Expense string `json:"expense" doc:"Sum of expense amounts"`
	Net     string `json:"net" doc:"Income minus expense"`
	Count   int64  `json:"count" doc:"Number of transactions"`
}

func TotalsFrom(t ledger.Totals) Totals {
	return Totals{
		Income:  Money(t.Income),
		Expense: Money(t.Expense),
		Net:     Money(t.Net()),
		Count:   t.Count,
	}
}
