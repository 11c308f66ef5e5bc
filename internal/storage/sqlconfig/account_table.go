package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
)

const accountsTable = "accounts"

var accountColumns = []any{
	"id", "code", "name", "account_type", "bank_name", "account_number", "ifsc_code",
	"opening_balance", "current_balance", "credit_limit", "is_active", "created_at", "updated_at",
}

// AccountsTable provides access to the accounts table.
type AccountsTable struct {
	exec bob.Executor
}

// Ensure AccountsTable implements IAccountTable at compile time.
var _ IAccountTable = (*AccountsTable)(nil)

// NewAccountsTable creates an AccountsTable running against exec, which may
// be the pool or a transaction.
func NewAccountsTable(exec bob.Executor) *AccountsTable {
	return &AccountsTable{exec: exec}
}

func selectAccounts(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(accountColumns...),
		sm.From(accountsTable),
	}
	return psql.Select(append(base, mods...)...)
}

// FindByID retrieves an account by primary key.
func (t *AccountsTable) FindByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	return findOne[Account](ctx, t.exec, selectAccounts(
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	))
}

// FindByCode retrieves an account by its unique code.
func (t *AccountsTable) FindByCode(ctx context.Context, code string) (*Account, error) {
	return findOne[Account](ctx, t.exec, selectAccounts(
		sm.Where(psql.Quote("code").EQ(psql.Arg(code))),
	))
}

// Insert creates a new account and returns its generated ID.
func (t *AccountsTable) Insert(ctx context.Context, create *AccountCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(accountsTable,
			"code", "name", "account_type", "bank_name", "account_number", "ifsc_code",
			"opening_balance", "current_balance", "credit_limit", "is_active",
		),
		im.Values(psql.Arg(
			create.Code, create.Name, create.Type, create.BankName, create.AccountNumber, create.IFSCCode,
			create.OpeningBalance, create.OpeningBalance, create.CreditLimit, create.IsActive,
		)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

// Update changes the set columns of an account.
func (t *AccountsTable) Update(ctx context.Context, id uuid.UUID, update *AccountUpdate) error {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.Code.Get(); ok {
		sets = append(sets, um.SetCol("code").ToArg(v))
	}
	if v, ok := update.Name.Get(); ok {
		sets = append(sets, um.SetCol("name").ToArg(v))
	}
	if v, ok := update.Type.Get(); ok {
		sets = append(sets, um.SetCol("account_type").ToArg(v))
	}
	if v, ok := update.BankName.Get(); ok {
		sets = append(sets, um.SetCol("bank_name").ToArg(v))
	}
	if v, ok := update.AccountNumber.Get(); ok {
		sets = append(sets, um.SetCol("account_number").ToArg(v))
	}
	if v, ok := update.IFSCCode.Get(); ok {
		sets = append(sets, um.SetCol("ifsc_code").ToArg(v))
	}
	if v, ok := update.OpeningBalance.Get(); ok {
		sets = append(sets, um.SetCol("opening_balance").ToArg(v))
	}
	if v, ok := update.CreditLimit.Get(); ok {
		sets = append(sets, um.SetCol("credit_limit").ToArg(v))
	}
	if v, ok := update.IsActive.Get(); ok {
		sets = append(sets, um.SetCol("is_active").ToArg(v))
	}
	return updateByID(ctx, t.exec, accountsTable, id, sets)
}

// Delete removes an account. Callers check for dependent transactions first;
// the foreign key rejects the delete otherwise.
func (t *AccountsTable) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, t.exec, accountsTable, id)
}

// List returns accounts matching the filter ordered by name. When a limit is
// set one extra row is fetched so callers can tell whether a next page exists.
// Nil filter returns all.
func (t *AccountsTable) List(ctx context.Context, filter *AccountFilter) ([]*Account, error) {
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter != nil {
		if filter.ActiveOnly {
			queryMods = append(queryMods, sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))))
		}
		if filter.Type != "" {
			queryMods = append(queryMods, sm.Where(psql.Quote("account_type").EQ(psql.Arg(filter.Type))))
		}
		if filter.Search != "" {
			pattern := likePattern(filter.Search)
			queryMods = append(queryMods, sm.Where(psql.Raw("(name ILIKE ? OR code ILIKE ? OR bank_name ILIKE ?)", pattern, pattern, pattern)))
		}
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("name")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)
	return findAll[Account](ctx, t.exec, selectAccounts(queryMods...))
}

// UpdateBalance overwrites the cached current balance for a given account.
func (t *AccountsTable) UpdateBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error {
	return updateByID(ctx, t.exec, accountsTable, id, []bob.Mod[*dialect.UpdateQuery]{
		um.SetCol("current_balance").ToArg(balance),
	})
}
