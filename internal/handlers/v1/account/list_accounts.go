package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListAccountsInput is the Huma input for listing accounts.
type ListAccountsInput struct {
	Search     string `query:"search" doc:"Matches code, name, bank name or account number"`
	Type       string `query:"type" enum:"savings,current,credit_card,cash,investment" doc:"Only accounts of this type"`
	ActiveOnly bool   `query:"activeOnly" doc:"Only active accounts"`
	common.PageQuery
}

// ListAccountsResponseBody is the response body for listing accounts.
type ListAccountsResponseBody struct {
	Accounts   []Account      `json:"accounts" doc:"Page of accounts"`
	NextCursor *common.Cursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

// ListAccountsOutput is the Huma output for listing accounts.
type ListAccountsOutput struct {
	Body ListAccountsResponseBody
}

type accountLister interface {
	ListAccounts(ctx context.Context, query service.AccountQuery, cursor *service.Cursor) ([]service.Account, *service.Cursor, error)
}

// ListAccountsHandler handles GET /accounts.
type ListAccountsHandler struct {
	AccountService accountLister
}

func NewListAccountsHandler(svc accountLister) *ListAccountsHandler {
	return &ListAccountsHandler{AccountService: svc}
}

func (h *ListAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-accounts",
		Method:      http.MethodGet,
		Path:        "/accounts",
		Summary:     "List accounts",
		Description: "Returns a paginated list of accounts ordered by name.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ListAccountsHandler) handle(ctx context.Context, input *ListAccountsInput) (*ListAccountsOutput, error) {
	query := service.AccountQuery{
		ActiveOnly: input.ActiveOnly,
		Type:       service.AccountType(input.Type),
		Search:     input.Search,
	}

	stopTimer := logging.Timed(ctx, "listAccountsMs")
	accounts, next, err := h.AccountService.ListAccounts(ctx, query, input.PageQuery.Cursor())
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list accounts")
	}

	logging.Data(ctx, "accountCount", len(accounts))

	return &ListAccountsOutput{Body: ListAccountsResponseBody{
		Accounts:   fromServiceList(accounts),
		NextCursor: common.NextCursor(next),
	}}, nil
}
