package account

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
)

type mockAccountService struct {
	mock.Mock
}

func (m *mockAccountService) CreateAccount(ctx context.Context, input service.AccountInput) (uuid.UUID, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *mockAccountService) GetAccount(ctx context.Context, id uuid.UUID) (*service.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Account), args.Error(1)
}

func (m *mockAccountService) GetAccountDetail(ctx context.Context, id uuid.UUID) (*service.AccountDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.AccountDetail), args.Error(1)
}

func (m *mockAccountService) ListAccounts(ctx context.Context, query service.AccountQuery, cursor *service.Cursor) ([]service.Account, *service.Cursor, error) {
	args := m.Called(ctx, query, cursor)
	var next *service.Cursor
	if args.Get(1) != nil {
		next = args.Get(1).(*service.Cursor)
	}
	return args.Get(0).([]service.Account), next, args.Error(2)
}

func (m *mockAccountService) ActiveAccounts(ctx context.Context) ([]service.Account, error) {
	args := m.Called(ctx)
	return args.Get(0).([]service.Account), args.Error(1)
}

func (m *mockAccountService) UpdateAccount(ctx context.Context, id uuid.UUID, input service.AccountInput) error {
	return m.Called(ctx, id, input).Error(0)
}

func (m *mockAccountService) DeleteAccount(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockAccountService) ToggleAccountStatus(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *mockAccountService) RecomputeBalances(ctx context.Context, accountID *uuid.UUID) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func newTestAPI(t *testing.T, svc *mockAccountService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateAccountHandler(svc).Register(api)
	NewListAccountsHandler(svc).Register(api)
	NewGetAccountHandler(svc).Register(api)
	NewEditAccountHandler(svc).Register(api)
	NewUpdateAccountHandler(svc).Register(api)
	NewDeleteAccountHandler(svc).Register(api)
	NewToggleAccountStatusHandler(svc).Register(api)
	NewActiveAccountsHandler(svc).Register(api)
	NewRecalculateBalanceHandler(svc).Register(api)
	return api
}

func sampleAccount(id uuid.UUID) *service.Account {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	return &service.Account{
		ID:             id,
		Code:           "HDFC-01",
		Name:           "HDFC Savings",
		Type:           service.AccountTypeSavings,
		BankName:       "HDFC",
		OpeningBalance: decimal.RequireFromString("1000"),
		CurrentBalance: decimal.RequireFromString("850.5"),
		IsActive:       true,
		CreatedAt:      created,
		UpdatedAt:      created,
	}
}

type errorBody struct {
	Status int `json:"status"`
	Errors []struct {
		Message  string `json:"message"`
		Location string `json:"location"`
	} `json:"errors"`
}

func TestHTTP_CreateAccount_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, mock.MatchedBy(func(in service.AccountInput) bool {
		return in.Code == "HDFC-01" &&
			in.Type == service.AccountTypeSavings &&
			in.OpeningBalance.Equal(decimal.RequireFromString("1000.25")) &&
			!in.CreditLimit.Valid &&
			in.IsActive
	})).Return(id, nil)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{
		Code:           "HDFC-01",
		Name:           "HDFC Savings",
		Type:           "savings",
		OpeningBalance: "1000.25",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body CreateAccountResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	svc.AssertExpectations(t)
}

func TestHTTP_CreateAccount_MalformedOpeningBalance(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{
		Code:           "C1",
		Name:           "Cash",
		Type:           "cash",
		OpeningBalance: "lots",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "body.openingBalance", body.Errors[0].Location)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_UnknownType(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{Code: "C1", Name: "Cash", Type: "piggy_bank"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "CreateAccount", mock.Anything, mock.Anything)
}

func TestHTTP_CreateAccount_DuplicateCode(t *testing.T) {
	svc := new(mockAccountService)
	verr := apperror.NewValidationError()
	verr.Add("code", "The code has already been taken.")
	svc.On("CreateAccount", mock.Anything, mock.Anything).Return(uuid.Nil, verr)

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{Code: "C1", Name: "Cash", Type: "cash"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	var body errorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Errors, 1)
	assert.Equal(t, "body.code", body.Errors[0].Location)
	assert.Equal(t, "The code has already been taken.", body.Errors[0].Message)
}

func TestHTTP_CreateAccount_StorageFailure(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("CreateAccount", mock.Anything, mock.Anything).Return(uuid.Nil, errors.New("connection reset"))

	resp := newTestAPI(t, svc).Post("/accounts", AccountBody{Code: "C1", Name: "Cash", Type: "cash"})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "connection reset")
}

func TestHTTP_ListAccounts_PassesFiltersAndCursor(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything,
		service.AccountQuery{ActiveOnly: true, Type: service.AccountTypeSavings, Search: "hdfc"},
		&service.Cursor{Position: 20, Limit: 20},
	).Return([]service.Account{*sampleAccount(id)}, &service.Cursor{Position: 40, Limit: 20}, nil)

	resp := newTestAPI(t, svc).Get("/accounts?search=hdfc&type=savings&activeOnly=true&position=20&limit=20")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Accounts, 1)
	assert.Equal(t, "850.50", body.Accounts[0].CurrentBalance)
	assert.Equal(t, "1000.00", body.Accounts[0].OpeningBalance)
	assert.Nil(t, body.Accounts[0].CreditLimit)
	require.NotNil(t, body.NextCursor)
	assert.Equal(t, 40, body.NextCursor.Position)
	svc.AssertExpectations(t)
}

func TestHTTP_ListAccounts_LastPage(t *testing.T) {
	svc := new(mockAccountService)
	svc.On("ListAccounts", mock.Anything, service.AccountQuery{}, (*service.Cursor)(nil)).
		Return([]service.Account{}, nil, nil)

	resp := newTestAPI(t, svc).Get("/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListAccountsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Accounts)
	assert.Nil(t, body.NextCursor)
}

func TestHTTP_GetAccount_Detail(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("GetAccountDetail", mock.Anything, id).Return(&service.AccountDetail{
		Account: *sampleAccount(id),
		Totals: ledger.Totals{
			Income:  decimal.RequireFromString("100"),
			Expense: decimal.RequireFromString("249.5"),
			Count:   3,
		},
		RecentTransactions: []service.Transaction{{
			ID:              uuid.Must(uuid.NewV4()),
			AccountID:       id,
			Type:            ledger.TransactionTypeExpense,
			Amount:          decimal.RequireFromString("49.5"),
			TransactionDate: time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
		}},
	}, nil)

	resp := newTestAPI(t, svc).Get("/accounts/" + id.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body AccountDetailBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.Account.ID)
	assert.Equal(t, "-149.50", body.Totals.Net)
	assert.Equal(t, int64(3), body.Totals.Count)
	require.Len(t, body.RecentTransactions, 1)
	assert.Equal(t, "2024-03-02", body.RecentTransactions[0].TransactionDate)
}

func TestHTTP_GetAccount_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("GetAccountDetail", mock.Anything, id).Return(nil, apperror.NotFound("account"))

	resp := newTestAPI(t, svc).Get("/accounts/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestHTTP_GetAccount_MalformedID(t *testing.T) {
	svc := new(mockAccountService)

	resp := newTestAPI(t, svc).Get("/accounts/not-a-uuid")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	svc.AssertNotCalled(t, "GetAccountDetail", mock.Anything, mock.Anything)
}

func TestHTTP_EditAccount_IncludesTypes(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("GetAccount", mock.Anything, id).Return(sampleAccount(id), nil)

	resp := newTestAPI(t, svc).Get("/accounts/" + id.String() + "/edit")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body EditAccountBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"savings", "current", "credit_card", "cash", "investment"}, body.AccountTypes)
	assert.Equal(t, "HDFC-01", body.Account.Code)
}

func TestHTTP_UpdateAccount_ReturnsUpdated(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("UpdateAccount", mock.Anything, id, mock.MatchedBy(func(in service.AccountInput) bool {
		return in.Type == service.AccountTypeCreditCard &&
			in.CreditLimit.Valid &&
			in.CreditLimit.Decimal.Equal(decimal.RequireFromString("50000")) &&
			!in.IsActive
	})).Return(nil)
	svc.On("GetAccount", mock.Anything, id).Return(sampleAccount(id), nil)

	inactive := false
	resp := newTestAPI(t, svc).Put("/accounts/"+id.String(), AccountBody{
		Code:        "CC",
		Name:        "Card",
		Type:        "credit_card",
		CreditLimit: "50000",
		IsActive:    &inactive,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestHTTP_DeleteAccount(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	t.Run("deleted", func(t *testing.T) {
		svc := new(mockAccountService)
		svc.On("DeleteAccount", mock.Anything, id).Return(nil)

		resp := newTestAPI(t, svc).Delete("/accounts/" + id.String())

		assert.Equal(t, http.StatusNoContent, resp.Code)
	})

	t.Run("has transactions", func(t *testing.T) {
		svc := new(mockAccountService)
		svc.On("DeleteAccount", mock.Anything, id).
			Return(apperror.Conflict("Cannot delete account with existing transactions."))

		resp := newTestAPI(t, svc).Delete("/accounts/" + id.String())

		assert.Equal(t, http.StatusConflict, resp.Code)
		assert.Contains(t, resp.Body.String(), "Cannot delete account with existing transactions.")
	})
}

func TestHTTP_ToggleAccountStatus(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("ToggleAccountStatus", mock.Anything, id).Return(false, nil)

	resp := newTestAPI(t, svc).Patch("/accounts/" + id.String() + "/toggle-status")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ToggleStatusBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, id.String(), body.ID)
	assert.False(t, body.IsActive)
}

func TestHTTP_ActiveAccounts(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("ActiveAccounts", mock.Anything).Return([]service.Account{*sampleAccount(id)}, nil)

	resp := newTestAPI(t, svc).Get("/api/accounts")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []AccountOption
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 1)
	assert.Equal(t, "850.50", body[0].CurrentBalance)
}

func TestHTTP_RecalculateBalance(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	svc := new(mockAccountService)
	svc.On("RecomputeBalances", mock.Anything, &id).Return(1, nil)
	svc.On("GetAccount", mock.Anything, id).Return(sampleAccount(id), nil)

	resp := newTestAPI(t, svc).Post("/accounts/" + id.String() + "/recalculate-balance")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Account
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "850.50", body.CurrentBalance)
	svc.AssertExpectations(t)
}
