package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// ListTransactionsInput is the Huma input for listing transactions. Every
// filter is optional and set filters combine with AND.
type ListTransactionsInput struct {
	Search        string `query:"search" doc:"Matches description, reference number or location"`
	CategoryID    string `query:"categoryID" doc:"Category UUID; a top-level category includes its sub-categories"`
	AccountID     string `query:"accountID" doc:"Account UUID"`
	DateFrom      string `query:"dateFrom" doc:"Earliest transaction date, YYYY-MM-DD"`
	DateTo        string `query:"dateTo" doc:"Latest transaction date, YYYY-MM-DD"`
	PaymentMethod string `query:"paymentMethod" doc:"Payment method"`
	Status        string `query:"status" doc:"Transaction status"`
	Type          string `query:"transactionType" doc:"income or expense"`
	Sort          string `query:"sort" doc:"date_desc (default), date_asc, amount_desc, amount_asc or category"`
	common.PageQuery
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction  `json:"transactions" doc:"Page of transactions"`
	Totals       common.Totals  `json:"totals" doc:"Totals over every transaction matching the filters"`
	NextCursor   *common.Cursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, query service.TransactionQuery, cursor *service.Cursor) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/transactions",
		Summary:     "List transactions",
		Description: "Returns a filtered, sorted page of transactions with totals over the whole filtered set.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput turns the query string into a service query.
// Malformed ids and dates are reported together as one 422.
func parseListTransactionsInput(input *ListTransactionsInput) (service.TransactionQuery, error) {
	p := common.NewParser()
	query := service.TransactionQuery{
		Search:        input.Search,
		DateFrom:      p.Date("dateFrom", input.DateFrom),
		DateTo:        p.Date("dateTo", input.DateTo),
		PaymentMethod: service.PaymentMethod(input.PaymentMethod),
		Status:        service.TransactionStatus(input.Status),
		Type:          ledger.TransactionType(input.Type),
		Sort:          sqlconfig.TransactionSort(input.Sort),
	}
	if id := p.NullUUID("categoryID", input.CategoryID); id.Valid {
		query.CategoryID = &id.UUID
	}
	if id := p.NullUUID("accountID", input.AccountID); id.Valid {
		query.AccountID = &id.UUID
	}
	return query, p.Err()
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	page, err := h.TransactionService.ListTransactions(ctx, query, input.PageQuery.Cursor())
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", len(page.Transactions))
		logData.AddData("matchingCount", page.Totals.Count)
	}

	return &ListTransactionsOutput{Body: ListTransactionsResponseBody{
		Transactions: FromServiceList(page.Transactions),
		Totals:       common.TotalsFrom(page.Totals),
		NextCursor:   common.NextCursor(page.Next),
	}}, nil
}
