package sqlconfig

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"

	"github.com/carson-networks/finance-tracker/internal/ledger"
)

const transactionsTable = "transactions"

const (
	sumIncome  = "COALESCE(SUM(CASE WHEN t.transaction_type = 'income' THEN t.amount ELSE 0 END), 0) AS income"
	sumExpense = "COALESCE(SUM(CASE WHEN t.transaction_type = 'expense' THEN t.amount ELSE 0 END), 0) AS expense"
	countAll   = "COUNT(t.id) AS transaction_count"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

type TransactionsTable struct {
	exec bob.Executor
}

func NewTransactionsTable(exec bob.Executor) *TransactionsTable {
	return &TransactionsTable{exec: exec}
}

// fromTransactions is the FROM clause every transaction query shares; the
// joins make account and category names available to columns and search.
func fromTransactions() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.From(transactionsTable).As("t"),
		sm.InnerJoin(accountsTable).As("a").On(psql.Quote("a", "id").EQ(psql.Quote("t", "account_id"))),
		sm.InnerJoin(categoriesTable).As("c").On(psql.Quote("c", "id").EQ(psql.Quote("t", "category_id"))),
	}
}

// transactionWhere translates a filter into where clauses. List and the
// aggregate queries both go through here, so totals are always computed over
// exactly the rows a list would page through.
func transactionWhere(filter *TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	if filter == nil {
		return nil
	}

	var mods []bob.Mod[*dialect.SelectQuery]
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		mods = append(mods, sm.Where(psql.Raw(
			"(t.description ILIKE ? OR t.reference_number ILIKE ? OR c.name ILIKE ?)",
			pattern, pattern, pattern,
		)))
	}
	if len(filter.CategoryIDs) > 0 {
		mods = append(mods, sm.Where(psql.Quote("t", "category_id").In(psql.Arg(uuidArgs(filter.CategoryIDs)...))))
	}
	if filter.AccountID != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "account_id").EQ(psql.Arg(*filter.AccountID))))
	}
	if filter.DateFrom != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "transaction_date").GTE(psql.Arg(*filter.DateFrom))))
	}
	if filter.DateTo != nil {
		mods = append(mods, sm.Where(psql.Quote("t", "transaction_date").LTE(psql.Arg(*filter.DateTo))))
	}
	if filter.PaymentMethod != "" {
		mods = append(mods, sm.Where(psql.Quote("t", "payment_method").EQ(psql.Arg(filter.PaymentMethod))))
	}
	if filter.Status != "" {
		mods = append(mods, sm.Where(psql.Quote("t", "status").EQ(psql.Arg(filter.Status))))
	}
	if filter.Type != "" {
		mods = append(mods, sm.Where(psql.Quote("t", "transaction_type").EQ(psql.Arg(filter.Type))))
	}
	return mods
}

func transactionOrder(sort TransactionSort) []bob.Mod[*dialect.SelectQuery] {
	date := psql.Quote("t", "transaction_date")
	amount := psql.Quote("t", "amount")

	var mods []bob.Mod[*dialect.SelectQuery]
	switch sort {
	case SortDateAsc:
		mods = append(mods, sm.OrderBy(date).Asc())
	case SortAmountDesc:
		mods = append(mods, sm.OrderBy(amount).Desc())
	case SortAmountAsc:
		mods = append(mods, sm.OrderBy(amount).Asc())
	case SortCategory:
		mods = append(mods, sm.OrderBy(psql.Quote("c", "name")).Asc(), sm.OrderBy(date).Desc())
	default:
		mods = append(mods, sm.OrderBy(date).Desc())
	}
	// Stable tie-breakers keep offset pagination deterministic.
	return append(mods,
		sm.OrderBy(psql.Quote("t", "created_at")).Desc(),
		sm.OrderBy(psql.Quote("t", "id")).Desc(),
	)
}

func selectTransactions(mods ...bob.Mod[*dialect.SelectQuery]) bob.BaseQuery[*dialect.SelectQuery] {
	base := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Quote("t", "id"), psql.Quote("t", "account_id"), psql.Raw("a.name AS account_name"),
			psql.Quote("t", "category_id"), psql.Raw("c.name AS category_name"),
			psql.Quote("t", "transaction_type"), psql.Quote("t", "amount"), psql.Quote("t", "description"),
			psql.Quote("t", "transaction_date"), psql.Quote("t", "payment_method"),
			psql.Quote("t", "reference_number"), psql.Quote("t", "status"), psql.Quote("t", "tags"),
			psql.Quote("t", "location"), psql.Quote("t", "created_at"), psql.Quote("t", "updated_at"),
		),
	}
	base = append(base, fromTransactions()...)
	return psql.Select(append(base, mods...)...)
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	return findOne[Transaction](ctx, t.exec, selectTransactions(
		sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))),
	))
}

// FindByIDs retrieves the transactions among ids that exist.
func (t *TransactionsTable) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return findAll[Transaction](ctx, t.exec, selectTransactions(
		sm.Where(psql.Quote("t", "id").In(psql.Arg(uuidArgs(ids)...))),
	))
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (uuid.UUID, error) {
	q := psql.Insert(
		im.Into(transactionsTable,
			"account_id", "category_id", "transaction_type", "amount", "description", "transaction_date",
			"payment_method", "reference_number", "status", "tags", "location",
		),
		im.Values(psql.Arg(
			create.AccountID, create.CategoryID, create.TransactionType, create.Amount, create.Description,
			create.TransactionDate, create.PaymentMethod, create.ReferenceNumber, create.Status, create.Tags,
			create.Location,
		)),
		im.Returning("id"),
	)
	return insertReturningID(ctx, t.exec, q)
}

func (t *TransactionsTable) Update(ctx context.Context, id uuid.UUID, update *TransactionUpdate) error {
	var sets []bob.Mod[*dialect.UpdateQuery]
	if v, ok := update.AccountID.Get(); ok {
		sets = append(sets, um.SetCol("account_id").ToArg(v))
	}
	if v, ok := update.CategoryID.Get(); ok {
		sets = append(sets, um.SetCol("category_id").ToArg(v))
	}
	if v, ok := update.TransactionType.Get(); ok {
		sets = append(sets, um.SetCol("transaction_type").ToArg(v))
	}
	if v, ok := update.Amount.Get(); ok {
		sets = append(sets, um.SetCol("amount").ToArg(v))
	}
	if v, ok := update.Description.Get(); ok {
		sets = append(sets, um.SetCol("description").ToArg(v))
	}
	if v, ok := update.TransactionDate.Get(); ok {
		sets = append(sets, um.SetCol("transaction_date").ToArg(v))
	}
	if v, ok := update.PaymentMethod.Get(); ok {
		sets = append(sets, um.SetCol("payment_method").ToArg(v))
	}
	if v, ok := update.ReferenceNumber.Get(); ok {
		sets = append(sets, um.SetCol("reference_number").ToArg(v))
	}
	if v, ok := update.Status.Get(); ok {
		sets = append(sets, um.SetCol("status").ToArg(v))
	}
	if v, ok := update.Tags.Get(); ok {
		sets = append(sets, um.SetCol("tags").ToArg(v))
	}
	if v, ok := update.Location.Get(); ok {
		sets = append(sets, um.SetCol("location").ToArg(v))
	}
	return updateByID(ctx, t.exec, transactionsTable, id, sets)
}

func (t *TransactionsTable) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, t.exec, transactionsTable, id)
}

// DeleteMany removes every transaction in ids and reports how many rows went.
func (t *TransactionsTable) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	result, err := bob.Exec(ctx, t.exec, psql.Delete(
		dm.From(transactionsTable),
		dm.Where(psql.Quote("id").In(psql.Arg(uuidArgs(ids)...))),
	))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// List returns one page of transactions matching the filter. One extra row is
// fetched when a limit is set so callers can detect a next page.
func (t *TransactionsTable) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	queryMods := transactionWhere(filter)
	var sort TransactionSort
	if filter != nil {
		sort = filter.Sort
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit+1))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, transactionOrder(sort)...)
	return findAll[Transaction](ctx, t.exec, selectTransactions(queryMods...))
}

type totalsRow struct {
	Income  decimal.Decimal `db:"income"`
	Expense decimal.Decimal `db:"expense"`
	Count   int64           `db:"transaction_count"`
}

// Totals sums income and expense over every row matching the filter. Sort and
// pagination fields are ignored.
func (t *TransactionsTable) Totals(ctx context.Context, filter *TransactionFilter) (ledger.Totals, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{sm.Columns(psql.Raw(sumIncome), psql.Raw(sumExpense), psql.Raw(countAll))}
	mods = append(mods, fromTransactions()...)
	mods = append(mods, transactionWhere(filter)...)

	row, err := findOne[totalsRow](ctx, t.exec, psql.Select(mods...))
	if err != nil || row == nil {
		return ledger.Totals{Income: decimal.Zero, Expense: decimal.Zero}, err
	}
	return ledger.Totals{Income: row.Income, Expense: row.Expense, Count: row.Count}, nil
}

// SumByCategory totals amounts per category, largest first.
func (t *TransactionsTable) SumByCategory(ctx context.Context, filter *TransactionFilter) ([]*CategorySum, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{sm.Columns(
		psql.Quote("t", "category_id"),
		psql.Raw("c.name AS category_name"),
		psql.Raw("COALESCE(SUM(t.amount), 0) AS amount"),
		psql.Raw(countAll),
	)}
	mods = append(mods, fromTransactions()...)
	mods = append(mods, transactionWhere(filter)...)
	mods = append(mods,
		sm.GroupBy(psql.Quote("t", "category_id")),
		sm.GroupBy(psql.Quote("c", "name")),
		sm.OrderBy(psql.Raw("amount")).Desc(),
		sm.OrderBy(psql.Quote("c", "name")).Asc(),
	)
	return findAll[CategorySum](ctx, t.exec, psql.Select(mods...))
}

// SumByAccount summarises income and expense per account.
func (t *TransactionsTable) SumByAccount(ctx context.Context, filter *TransactionFilter) ([]*AccountSum, error) {
	mods := []bob.Mod[*dialect.SelectQuery]{sm.Columns(
		psql.Quote("t", "account_id"),
		psql.Raw("a.name AS account_name"),
		psql.Raw(sumIncome), psql.Raw(sumExpense), psql.Raw(countAll),
	)}
	mods = append(mods, fromTransactions()...)
	mods = append(mods, transactionWhere(filter)...)
	mods = append(mods,
		sm.GroupBy(psql.Quote("t", "account_id")),
		sm.GroupBy(psql.Quote("a", "name")),
		sm.OrderBy(psql.Quote("a", "name")).Asc(),
	)
	return findAll[AccountSum](ctx, t.exec, psql.Select(mods...))
}

// SumByPeriod summarises income and expense per day or month, oldest first.
// Periods without transactions are absent.
func (t *TransactionsTable) SumByPeriod(ctx context.Context, filter *TransactionFilter, granularity Granularity) ([]*PeriodSum, error) {
	bucket := "t.transaction_date"
	if granularity == GranularityMonth {
		bucket = "date_trunc('month', t.transaction_date)::date"
	}

	mods := []bob.Mod[*dialect.SelectQuery]{sm.Columns(
		psql.Raw(bucket+" AS period"),
		psql.Raw(sumIncome), psql.Raw(sumExpense), psql.Raw(countAll),
	)}
	mods = append(mods, fromTransactions()...)
	mods = append(mods, transactionWhere(filter)...)
	mods = append(mods,
		sm.GroupBy(psql.Raw(bucket)),
		sm.OrderBy(psql.Raw("period")).Asc(),
	)
	return findAll[PeriodSum](ctx, t.exec, psql.Select(mods...))
}
