package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// AccountOption is the compact form used by selection lists.
type AccountOption struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	Name           string `json:"name"`
	Type           string `json:"type"`
	CurrentBalance string `json:"currentBalance"`
}

type ActiveAccountsOutput struct {
	Body []AccountOption
}

type activeAccountLister interface {
	ActiveAccounts(ctx context.Context) ([]service.Account, error)
}

// ActiveAccountsHandler handles GET /api/accounts.
type ActiveAccountsHandler struct {
	AccountService activeAccountLister
}

func NewActiveAccountsHandler(svc activeAccountLister) *ActiveAccountsHandler {
	return &ActiveAccountsHandler{AccountService: svc}
}

func (h *ActiveAccountsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "active-accounts",
		Method:      http.MethodGet,
		Path:        "/api/accounts",
		Summary:     "List active accounts",
		Description: "Returns every active account ordered by name, for selection lists.",
		Tags:        []string{"Accounts"},
	}, h.handle)
}

func (h *ActiveAccountsHandler) handle(ctx context.Context, _ *struct{}) (*ActiveAccountsOutput, error) {
	accounts, err := h.AccountService.ActiveAccounts(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list accounts")
	}

	options := make([]AccountOption, len(accounts))
	for i, a := range accounts {
		options[i] = AccountOption{
			ID:             a.ID.String(),
			Code:           a.Code,
			Name:           a.Name,
			Type:           string(a.Type),
			CurrentBalance: common.Money(a.CurrentBalance),
		}
	}
	return &ActiveAccountsOutput{Body: options}, nil
}
