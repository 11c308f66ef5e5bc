package transaction

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID              string   `json:"id" doc:"Transaction UUID"`
	AccountID       string   `json:"accountID" doc:"Account UUID"`
	AccountName     string   `json:"accountName" doc:"Account name"`
	CategoryID      string   `json:"categoryID" doc:"Category UUID"`
	CategoryName    string   `json:"categoryName" doc:"Category name"`
	Type            string   `json:"transactionType" doc:"income or expense"`
	Amount          string   `json:"amount" doc:"Decimal amount, always non-negative"`
	Description     string   `json:"description" doc:"Free text description"`
	TransactionDate string   `json:"transactionDate" doc:"YYYY-MM-DD transaction date"`
	PaymentMethod   string   `json:"paymentMethod" doc:"How the transaction was paid"`
	ReferenceNumber string   `json:"referenceNumber" doc:"External reference"`
	Status          string   `json:"status" doc:"completed, pending or cancelled"`
	Tags            []string `json:"tags" doc:"Tags in entry order"`
	Location        string   `json:"location" doc:"Where the transaction happened"`
	CreatedAt       string   `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt       string   `json:"updatedAt" doc:"RFC3339 last update time"`
}

// TransactionBody is the request body for creating or replacing a
// transaction.
type TransactionBody struct {
	AccountID       string `json:"accountID" format:"uuid" doc:"Account UUID, must be active"`
	CategoryID      string `json:"categoryID" format:"uuid" doc:"Category UUID, must be active"`
	Type            string `json:"transactionType" enum:"income,expense" doc:"Transaction type, decides the balance sign"`
	Amount          string `json:"amount" doc:"Decimal amount with at most two decimal places"`
	Description     string `json:"description,omitempty" doc:"Free text description"`
	TransactionDate string `json:"transactionDate" format:"date" doc:"YYYY-MM-DD transaction date"`
	PaymentMethod   string `json:"paymentMethod,omitempty" enum:"cash,debit_card,credit_card,upi,net_banking,cheque,wallet,other" doc:"cash, debit_card, credit_card, upi, net_banking, cheque, wallet or other; defaults to other"`
	ReferenceNumber string `json:"referenceNumber,omitempty" doc:"External reference"`
	Status          string `json:"status,omitempty" enum:"completed,pending,cancelled" doc:"completed, pending or cancelled; defaults to completed"`
	Tags            string `json:"tags,omitempty" doc:"Comma separated tags"`
	Location        string `json:"location,omitempty" doc:"Where the transaction happened"`
}

type TransactionIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Transaction UUID"`
}

func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	p := common.NewParser()
	input := service.TransactionInput{
		AccountID:       p.UUID("accountID", body.AccountID),
		CategoryID:      p.UUID("categoryID", body.CategoryID),
		Type:            ledger.TransactionType(body.Type),
		Amount:          p.Decimal("amount", body.Amount),
		Description:     body.Description,
		TransactionDate: p.RequiredDate("transactionDate", body.TransactionDate),
		PaymentMethod:   service.PaymentMethod(body.PaymentMethod),
		ReferenceNumber: body.ReferenceNumber,
		Status:          service.TransactionStatus(body.Status),
		Tags:            body.Tags,
		Location:        body.Location,
	}
	return input, p.Err()
}

// FromService converts a service transaction to its API form.
func FromService(t service.Transaction) Transaction {
	tags := t.Tags
	if tags == nil {
		tags = []string{}
	}
	return Transaction{
		ID:              t.ID.String(),
		AccountID:       t.AccountID.String(),
		AccountName:     t.AccountName,
		CategoryID:      t.CategoryID.String(),
		CategoryName:    t.CategoryName,
		Type:            string(t.Type),
		Amount:          common.Money(t.Amount),
		Description:     t.Description,
		TransactionDate: common.Date(t.TransactionDate),
		PaymentMethod:   string(t.PaymentMethod),
		ReferenceNumber: t.ReferenceNumber,
		Status:          string(t.Status),
		Tags:            tags,
		Location:        t.Location,
		CreatedAt:       common.Timestamp(t.CreatedAt),
		UpdatedAt:       common.Timestamp(t.UpdatedAt),
	}
}

func FromServiceList(transactions []service.Transaction) []Transaction {
	out := make([]Transaction, len(transactions))
	for i, t := range transactions {
		out[i] = FromService(t)
	}
	return out
}
