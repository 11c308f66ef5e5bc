package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Option is one entry of a selection list.
type Option struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	ParentID *string `json:"parentID,omitempty" doc:"Parent category UUID, sub-categories only"`
}

// EditTransactionBody is a transaction with the options its form needs.
type EditTransactionBody struct {
	Transaction      Transaction `json:"transaction"`
	Accounts         []Option    `json:"accounts" doc:"Active accounts"`
	Categories       []Option    `json:"categories" doc:"Active categories"`
	TransactionTypes []string    `json:"transactionTypes"`
	PaymentMethods   []string    `json:"paymentMethods"`
	Statuses         []string    `json:"statuses"`
}

type EditTransactionOutput struct {
	Body EditTransactionBody
}

type activeAccountLister interface {
	ActiveAccounts(ctx context.Context) ([]service.Account, error)
}

type activeCategoryLister interface {
	ActiveCategories(ctx context.Context) ([]service.Category, error)
}

// EditTransactionHandler handles GET /transactions/{id}/edit.
type EditTransactionHandler struct {
	TransactionService transactionGetter
	AccountService     activeAccountLister
	CategoryService    activeCategoryLister
}

func NewEditTransactionHandler(transactions transactionGetter, accounts activeAccountLister, categories activeCategoryLister) *EditTransactionHandler {
	return &EditTransactionHandler{
		TransactionService: transactions,
		AccountService:     accounts,
		CategoryService:    categories,
	}
}

func (h *EditTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-transaction",
		Method:      http.MethodGet,
		Path:        "/transactions/{id}/edit",
		Summary:     "Get a transaction for editing",
		Description: "Returns the transaction with the active accounts and categories it may move to.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *EditTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*EditTransactionOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	var (
		transaction *service.Transaction
		accounts    []service.Account
		categories  []service.Category
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transaction, err = h.TransactionService.GetTransaction(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		accounts, err = h.AccountService.ActiveAccounts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = h.CategoryService.ActiveCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get transaction")
	}

	body := EditTransactionBody{
		Transaction:      FromService(*transaction),
		Accounts:         make([]Option, len(accounts)),
		Categories:       make([]Option, len(categories)),
		TransactionTypes: []string{string(ledger.TransactionTypeIncome), string(ledger.TransactionTypeExpense)},
	}
	for i, a := range accounts {
		body.Accounts[i] = Option{ID: a.ID.String(), Name: a.Name}
	}
	for i, c := range categories {
		body.Categories[i] = Option{ID: c.ID.String(), Name: c.Name, ParentID: common.NullID(c.ParentID)}
	}
	for _, m := range service.PaymentMethods {
		body.PaymentMethods = append(body.PaymentMethods, string(m))
	}
	for _, s := range service.TransactionStatuses {
		body.Statuses = append(body.Statuses, string(s))
	}
	return &EditTransactionOutput{Body: body}, nil
}
