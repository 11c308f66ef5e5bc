package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateTransactionInput struct {
	ID   string `path:"id" format:"uuid" doc:"Transaction UUID"`
	Body TransactionBody
}

type UpdateTransactionOutput struct {
	Body Transaction
}

type transactionUpdater interface {
	UpdateTransaction(ctx context.Context, id uuid.UUID, input service.TransactionInput) error
	GetTransaction(ctx context.Context, id uuid.UUID) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PUT /transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPut,
		Path:        "/transactions/{id}",
		Summary:     "Update a transaction",
		Description: "Replaces a transaction and recomputes the balances of the old and new account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	transaction, err := parseTransactionBody(input.Body)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "transactionID", id.String())

	stopTimer := logging.Timed(ctx, "updateTransactionMs")
	err = h.TransactionService.UpdateTransaction(ctx, id, transaction)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to update transaction")
	}

	updated, err := h.TransactionService.GetTransaction(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get transaction")
	}
	return &UpdateTransactionOutput{Body: FromService(*updated)}, nil
}
