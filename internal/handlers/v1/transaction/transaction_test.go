package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// mockTransactionService is a mock for the transaction handler interfaces.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, input service.TransactionInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockTransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func (m *mockTransactionService) ListTransactions(ctx context.Context, query service.TransactionQuery, cursor *service.Cursor) (*service.TransactionPage, error) {
	args := m.Called(ctx, query, cursor)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.TransactionPage), args.Error(1)
}

func (m *mockTransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input service.TransactionInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *mockTransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockTransactionService) BulkDeleteTransactions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionService) ActiveAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *mockTransactionService) ActiveCategories(ctx context.Context) ([]service.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.Category), args.Error(1)
}

// newTestAPI registers the handlers against a humatest API and returns it.
func newTestAPI(t *testing.T, svc *mockTransactionService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	NewListTransactionsHandler(svc).Register(api)
	NewGetTransactionHandler(svc).Register(api)
	NewEditTransactionHandler(svc, svc, svc).Register(api)
	NewUpdateTransactionHandler(svc).Register(api)
	NewDeleteTransactionHandler(svc).Register(api)
	NewBulkDeleteHandler(svc).Register(api)
	return api
}

type errorBody struct {
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}

func (b errorBody) locations() []string {
	out := make([]string, len(b.Errors))
	for i, e := range b.Errors {
		out[i] = e.Location
	}
	return out
}

func sampleTransaction(id uuid.UUID) *service.Transaction {
	stamp := time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)
	return &service.Transaction{
		ID:              id,
		AccountID:       uuid.Must(uuid.NewV4()),
		AccountName:     "Wallet",
		CategoryID:      uuid.Must(uuid.NewV4()),
		CategoryName:    "Groceries",
		Type:            ledger.TransactionTypeExpense,
		Amount:          decimal.RequireFromString("150"),
		TransactionDate: time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC),
		PaymentMethod:   service.PaymentMethodUPI,
		Status:          service.TransactionStatusCompleted,
		Tags:            []string{"food", "weekly"},
		CreatedAt:       stamp,
		UpdatedAt:       stamp,
	}
}

// -- parse unit tests --

func TestParseTransactionBody_Valid(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	input, err := parseTransactionBody(TransactionBody{
		AccountID:       accountID.String(),
		CategoryID:      categoryID.String(),
		Type:            "income",
		Amount:          "123.45",
		TransactionDate: "2024-01-15",
		Tags:            "salary, monthly",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, input.AccountID)
	assert.Equal(t, categoryID, input.CategoryID)
	assert.Equal(t, ledger.TransactionTypeIncome, input.Type)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), input.TransactionDate)
	assert.Equal(t, "salary, monthly", input.Tags)
}

func TestParseTransactionBody_ReportsEveryMalformedField(t *testing.T) {
	_, err := parseTransactionBody(TransactionBody{
		AccountID:       "nope",
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Type:            "expense",
		Amount:          "ten",
		TransactionDate: "15/01/2024",
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestParseListTransactionsInput(t *testing.T) {
	categoryID := uuid.Must(uuid.NewV4())

	query, err := parseListTransactionsInput(&ListTransactionsInput{
		CategoryID: categoryID.String(),
		DateFrom:   "2024-03-01",
		Sort:       "amount_desc",
		Type:       "expense",
	})

	require.NoError(t, err)
	require.NotNil(t, query.CategoryID)
	assert.Equal(t, categoryID, *query.CategoryID)
	assert.Nil(t, query.AccountID)
	require.NotNil(t, query.DateFrom)
	assert.Equal(t, "2024-03-01", ledger.FormatDate(*query.DateFrom))
	assert.Nil(t, query.DateTo)
	assert.Equal(t, sqlconfig.SortAmountDesc, query.Sort)
	assert.Equal(t, ledger.TransactionTypeExpense, query.Type)
}

// -- HTTP tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())
	txID := uuid.Must(uuid.NewV4())

	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.AccountID == accountID &&
			in.CategoryID == categoryID &&
			in.Type == ledger.TransactionTypeExpense &&
			in.Amount.Equal(decimal.RequireFromString("12.50")) &&
			in.PaymentMethod == ""
	})).Return(txID, nil)

	resp := newTestAPI(t, svc).Post("/transactions", TransactionBody{
		AccountID:       accountID.String(),
		CategoryID:      categoryID.String(),
		Type:            "expense",
		Amount:          "12.50",
		Description:     "Coffee",
		TransactionDate: "2024-03-09",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateTransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, txID.String(), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Post("/transactions", map[string]any{
		"description": "no account",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_UnknownPaymentMethodAndStatus(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Post("/transactions", TransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Type:            "expense",
		Amount:          "12.50",
		TransactionDate: "2024-03-09",
		PaymentMethod:   "bitcoin",
		Status:          "disputed",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	assert.Contains(t, resp.Body.String(), "body.paymentMethod")
	assert.Contains(t, resp.Body.String(), "body.status")
	svc.AssertNotCalled(t, "CreateTransaction", mock.Anything, mock.Anything)
}

func TestHTTP_CreateTransaction_InactiveAccount(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(uuid.Nil, apperror.Invalid("accountID", "The selected account is invalid."))

	resp := newTestAPI(t, svc).Post("/transactions", TransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Type:            "expense",
		Amount:          "1",
		TransactionDate: "2024-03-09",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"body.accountID"}, body.locations())
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("CreateTransaction", mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("db down"))

	resp := newTestAPI(t, svc).Post("/transactions", TransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Type:            "income",
		Amount:          "1",
		TransactionDate: "2024-03-09",
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}

func TestHTTP_ListTransactions_TotalsCoverFilteredSet(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything,
		mock.MatchedBy(func(q service.TransactionQuery) bool {
			return q.AccountID != nil && *q.AccountID == accountID && q.Status == service.TransactionStatusPending
		}),
		&service.Cursor{Position: 0, Limit: 1},
	).Return(&service.TransactionPage{
		Transactions: []service.Transaction{*sampleTransaction(uuid.Must(uuid.NewV4()))},
		Totals: ledger.Totals{
			Income:  decimal.RequireFromString("500"),
			Expense: decimal.RequireFromString("200"),
			Count:   3,
		},
		Next: &service.Cursor{Position: 1, Limit: 1},
	}, nil)

	resp := newTestAPI(t, svc).Get("/transactions?accountID=" + accountID.String() + "&status=pending&limit=1")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Transactions, 1)
	assert.Equal(t, "150.00", body.Transactions[0].Amount)
	assert.Equal(t, []string{"food", "weekly"}, body.Transactions[0].Tags)
	assert.Equal(t, "500.00", body.Totals.Income)
	assert.Equal(t, "300.00", body.Totals.Net)
	assert.Equal(t, int64(3), body.Totals.Count)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 1, body.NextCursor.Position)
}

func TestHTTP_ListTransactions_MalformedFilters(t *testing.T) {
	svc := new(mockTransactionService)

	resp := newTestAPI(t, svc).Get("/transactions?categoryID=abc&dateTo=yesterday")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.ElementsMatch(t, []string{"body.categoryID", "body.dateTo"}, body.locations())
	svc.AssertNotCalled(t, "ListTransactions", mock.Anything, mock.Anything, mock.Anything)
}

func TestHTTP_ListTransactions_InvalidSortFromService(t *testing.T) {
	svc := new(mockTransactionService)
	svc.On("ListTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperror.Invalid("sort", "The selected sort is invalid."))

	resp := newTestAPI(t, svc).Get("/transactions?sort=random")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
}

func TestHTTP_GetTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	t.Run("found", func(t *testing.T) {
		svc := new(mockTransactionService)
		svc.On("GetTransaction", mock.Anything, id).Return(sampleTransaction(id), nil)

		resp := newTestAPI(t, svc).Get("/transactions/" + id.String())

		assert.Equal(t, http.StatusOK, resp.Code)
		var body Transaction
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "2024-03-09", body.TransactionDate)
		assert.Equal(t, "expense", body.Type)
		assert.Equal(t, "2024-03-10T08:00:00Z", body.CreatedAt)
	})

	t.Run("missing", func(t *testing.T) {
		svc := new(mockTransactionService)
		svc.On("GetTransaction", mock.Anything, id).Return(nil, apperror.NotFound("transaction"))

		resp := newTestAPI(t, svc).Get("/transactions/" + id.String())

		assert.Equal(t, http.StatusNotFound, resp.Code)
	})
}

func TestHTTP_EditTransaction_IncludesOptions(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	parent := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("GetTransaction", mock.Anything, id).Return(sampleTransaction(id), nil)
	svc.On("ActiveAccounts", mock.Anything).Return([]service.Account{{ID: uuid.Must(uuid.NewV4()), Name: "Wallet"}}, nil)
	svc.On("ActiveCategories", mock.Anything).Return([]service.Category{
		{ID: parent, Name: "Food"},
		{ID: uuid.Must(uuid.NewV4()), Name: "Groceries", ParentID: uuid.NullUUID{UUID: parent, Valid: true}},
	}, nil)

	resp := newTestAPI(t, svc).Get("/transactions/" + id.String() + "/edit")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body EditTransactionBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Accounts, 1)
	require.Len(t, body.Categories, 2)
	assert.Nil(t, body.Categories[0].ParentID)
	require.NotNil(t, body.Categories[1].ParentID)
	assert.Equal(t, parent.String(), *body.Categories[1].ParentID)
	assert.Contains(t, body.PaymentMethods, "upi")
	assert.Equal(t, []string{"completed", "pending", "cancelled"}, body.Statuses)
	assert.Equal(t, []string{"income", "expense"}, body.TransactionTypes)
}

func TestHTTP_UpdateTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("UpdateTransaction", mock.Anything, id, mock.MatchedBy(func(in service.TransactionInput) bool {
		return in.Status == service.TransactionStatusCancelled
	})).Return(nil)
	svc.On("GetTransaction", mock.Anything, id).Return(sampleTransaction(id), nil)

	resp := newTestAPI(t, svc).Put("/transactions/"+id.String(), TransactionBody{
		AccountID:       uuid.Must(uuid.NewV4()).String(),
		CategoryID:      uuid.Must(uuid.NewV4()).String(),
		Type:            "expense",
		Amount:          "150",
		TransactionDate: "2024-03-09",
		Status:          "cancelled",
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockTransactionService)
	svc.On("DeleteTransaction", mock.Anything, id).Return(nil)

	resp := newTestAPI(t, svc).Delete("/transactions/" + id.String())

	assert.Equal(t, http.StatusNoContent, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_BulkDelete(t *testing.T) {
	a := uuid.Must(uuid.NewV4())
	b := uuid.Must(uuid.NewV4())

	t.Run("deletes", func(t *testing.T) {
		svc := new(mockTransactionService)
		svc.On("BulkDeleteTransactions", mock.Anything, []uuid.UUID{a, b}).Return(int64(2), nil)

		resp := newTestAPI(t, svc).Post("/transactions/bulk-destroy", BulkDeleteBody{IDs: []string{a.String(), b.String()}})

		assert.Equal(t, http.StatusOK, resp.Code)
		var body BulkDeleteResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, int64(2), body.Deleted)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := new(mockTransactionService)

		resp := newTestAPI(t, svc).Post("/transactions/bulk-destroy", BulkDeleteBody{IDs: []string{a.String(), "x"}})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
		svc.AssertNotCalled(t, "BulkDeleteTransactions", mock.Anything, mock.Anything)
	})

	t.Run("empty list", func(t *testing.T) {
		svc := new(mockTransactionService)
		svc.On("BulkDeleteTransactions", mock.Anything, []uuid.UUID{}).
			Return(int64(0), apperror.Invalid("ids", "The ids field is required."))

		resp := newTestAPI(t, svc).Post("/transactions/bulk-destroy", BulkDeleteBody{IDs: []string{}})

		assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	})
}
