package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type transactionDeleter interface {
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// DeleteTransactionHandler handles DELETE /transactions/{id}.
type DeleteTransactionHandler struct {
	TransactionService transactionDeleter
}

func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{TransactionService: svc}
}

func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/transactions/{id}",
		Summary:       "Delete a transaction",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *TransactionIDInput) (*struct{}, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "transactionID", id.String())

	if err := h.TransactionService.DeleteTransaction(ctx, id); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to delete transaction")
	}
	return nil, nil
}

// BulkDeleteBody lists the transactions to delete.
type BulkDeleteBody struct {
	IDs []string `json:"ids" doc:"Transaction UUIDs; unknown ids are skipped"`
}

type BulkDeleteInput struct {
	Body BulkDeleteBody
}

type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted" doc:"Number of transactions removed"`
}

type BulkDeleteOutput struct {
	Body BulkDeleteResponse
}

type transactionBulkDeleter interface {
	BulkDeleteTransactions(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// BulkDeleteHandler handles POST /transactions/bulk-destroy.
type BulkDeleteHandler struct {
	TransactionService transactionBulkDeleter
}

func NewBulkDeleteHandler(svc transactionBulkDeleter) *BulkDeleteHandler {
	return &BulkDeleteHandler{TransactionService: svc}
}

func (h *BulkDeleteHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "bulk-delete-transactions",
		Method:      http.MethodPost,
		Path:        "/transactions/bulk-destroy",
		Summary:     "Delete several transactions",
		Description: "Deletes the listed transactions in one write and recomputes every affected account.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *BulkDeleteHandler) handle(ctx context.Context, input *BulkDeleteInput) (*BulkDeleteOutput, error) {
	p := common.NewParser()
	ids := make([]uuid.UUID, 0, len(input.Body.IDs))
	for _, raw := range input.Body.IDs {
		if id := p.UUID("ids", raw); id != uuid.Nil {
			ids = append(ids, id)
		}
	}
	if err := p.Err(); err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "bulkDeleteMs")
	deleted, err := h.TransactionService.BulkDeleteTransactions(ctx, ids)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to delete transactions")
	}
	logging.Data(ctx, "deletedCount", deleted)

	return &BulkDeleteOutput{Body: BulkDeleteResponse{Deleted: deleted}}, nil
}
