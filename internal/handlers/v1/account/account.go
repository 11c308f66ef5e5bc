package account

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Account is the API response model for an account.
// It is used only for responses, not for request bodies.
type Account struct {
	ID             string  `json:"id" doc:"Account UUID"`
	Code           string  `json:"code" doc:"Unique account code"`
	Name           string  `json:"name" doc:"Account name"`
	Type           string  `json:"type" doc:"savings, current, credit_card, cash or investment"`
	BankName       string  `json:"bankName" doc:"Bank name"`
	AccountNumber  string  `json:"accountNumber" doc:"Bank account number"`
	IFSCCode       string  `json:"ifscCode" doc:"Bank branch code"`
	OpeningBalance string  `json:"openingBalance" doc:"Decimal opening balance"`
	CurrentBalance string  `json:"currentBalance" doc:"Decimal current balance"`
	CreditLimit    *string `json:"creditLimit" doc:"Decimal credit limit, credit cards only"`
	IsActive       bool    `json:"isActive" doc:"Whether new transactions may use the account"`
	CreatedAt      string  `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt      string  `json:"updatedAt" doc:"RFC3339 last update time"`
}

// AccountBody is the request body for creating or replacing an account.
type AccountBody struct {
	Code           string `json:"code" minLength:"1" maxLength:"50" doc:"Unique account code"`
	Name           string `json:"name" minLength:"1" maxLength:"255" doc:"Account name"`
	Type           string `json:"type" enum:"savings,current,credit_card,cash,investment" doc:"Account type"`
	BankName       string `json:"bankName,omitempty" maxLength:"255" doc:"Bank name"`
	AccountNumber  string `json:"accountNumber,omitempty" maxLength:"50" doc:"Bank account number"`
	IFSCCode       string `json:"ifscCode,omitempty" maxLength:"20" doc:"Bank branch code"`
	OpeningBalance string `json:"openingBalance,omitempty" doc:"Decimal opening balance, defaults to 0"`
	CreditLimit    string `json:"creditLimit,omitempty" doc:"Decimal credit limit, kept only for credit cards"`
	IsActive       *bool  `json:"isActive,omitempty" doc:"Defaults to true"`
}

// AccountIDInput addresses one account by path.
type AccountIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Account UUID"`
}

func parseAccountBody(body AccountBody) (service.AccountInput, error) {
	p := common.NewParser()
	input := service.AccountInput{
		Code:           body.Code,
		Name:           body.Name,
		Type:           service.AccountType(body.Type),
		BankName:       body.BankName,
		AccountNumber:  body.AccountNumber,
		IFSCCode:       body.IFSCCode,
		OpeningBalance: p.Decimal("openingBalance", body.OpeningBalance),
		CreditLimit:    p.NullDecimal("creditLimit", body.CreditLimit),
		IsActive:       body.IsActive == nil || *body.IsActive,
	}
	return input, p.Err()
}

func fromService(a service.Account) Account {
	return Account{
		ID:             a.ID.String(),
		Code:           a.Code,
		Name:           a.Name,
		Type:           string(a.Type),
		BankName:       a.BankName,
		AccountNumber:  a.AccountNumber,
		IFSCCode:       a.IFSCCode,
		OpeningBalance: common.Money(a.OpeningBalance),
		CurrentBalance: common.Money(a.CurrentBalance),
		CreditLimit:    common.NullMoney(a.CreditLimit),
		IsActive:       a.IsActive,
		CreatedAt:      common.Timestamp(a.CreatedAt),
		UpdatedAt:      common.Timestamp(a.UpdatedAt),
	}
}

func fromServiceList(accounts []service.Account) []Account {
	out := make([]Account, len(accounts))
	for i, a := range accounts {
		out[i] = fromService(a)
	}
	return out
}
