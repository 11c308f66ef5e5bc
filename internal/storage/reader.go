package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// Reader bundles the tables bound to one executor.
type Reader struct {
	Accounts     sqlconfig.IAccountTable
	Categories   sqlconfig.ICategoryTable
	Transactions sqlconfig.ITransactionTable
	Budgets      sqlconfig.IBudgetTable
}

func NewReader(exec bob.Executor) Reader {
	return Reader{
		Accounts:     sqlconfig.NewAccountsTable(exec),
		Categories:   sqlconfig.NewCategoriesTable(exec),
		Transactions: sqlconfig.NewTransactionsTable(exec),
		Budgets:      sqlconfig.NewBudgetsTable(exec),
	}
}
