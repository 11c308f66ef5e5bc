package service

import (
	"context"
	"strings"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	reader    storage.Reader
	processor actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader storage.Reader, processor actionProcessor) *TransactionService {
	return &TransactionService{reader: reader, processor: processor}
}

// CreateTransaction records a transaction, updates the account balance and
// returns the new ID.
func (s *TransactionService) CreateTransaction(ctx context.Context, input TransactionInput) (uuid.UUID, error) {
	input = normalizeTransactionInput(input)
	if err := validateTransactionInput(input); err != nil {
		return uuid.Nil, err
	}

	action := &actions.CreateTransaction{Create: sqlconfig.TransactionCreate{
		AccountID:       input.AccountID,
		CategoryID:      input.CategoryID,
		TransactionType: string(input.Type),
		Amount:          input.Amount,
		Description:     input.Description,
		TransactionDate: ledger.Day(input.TransactionDate),
		PaymentMethod:   string(input.PaymentMethod),
		ReferenceNumber: input.ReferenceNumber,
		Status:          string(input.Status),
		Tags:            input.Tags,
		Location:        input.Location,
	}}
	if err := s.processor.Process(ctx, action); err != nil {
		return uuid.Nil, err
	}
	return action.CreatedID, nil
}

// GetTransaction retrieves a transaction by ID.
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.reader.Transactions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, apperror.NotFound("transaction")
	}
	transaction := transactionFromStorage(row)
	return &transaction, nil
}

// ListTransactions returns a page of transactions matching query along with
// the income, expense and count over the whole filtered set.
func (s *TransactionService) ListTransactions(ctx context.Context, query TransactionQuery, cursor *Cursor) (*TransactionPage, error) {
	if query.Sort != "" && !query.Sort.Valid() {
		return nil, apperror.Invalid("sort", "The selected sort is invalid.")
	}
	if query.DateFrom != nil && query.DateTo != nil && query.DateTo.Before(*query.DateFrom) {
		return nil, apperror.Invalid("dateTo", "The date to must be a date after or equal to date from.")
	}

	filter, err := s.filterFor(ctx, query)
	if err != nil {
		return nil, err
	}
	limit, offset := pageBounds(cursor)
	filter.Limit = limit
	filter.Offset = offset

	rows, err := s.reader.Transactions.List(ctx, &filter)
	if err != nil {
		return nil, err
	}

	unpaged := filter.Unpaged()
	totals, err := s.reader.Transactions.Totals(ctx, &unpaged)
	if err != nil {
		return nil, err
	}

	rows, next := trimPage(rows, limit, offset)
	return &TransactionPage{
		Transactions: transactionsFromStorage(rows),
		Totals:       totals,
		Next:         next,
	}, nil
}

// filterFor turns a query into a storage filter, widening a top-level
// category to its sub-categories.
func (s *TransactionService) filterFor(ctx context.Context, query TransactionQuery) (sqlconfig.TransactionFilter, error) {
	filter := sqlconfig.TransactionFilter{
		Search:        strings.TrimSpace(query.Search),
		AccountID:     query.AccountID,
		PaymentMethod: string(query.PaymentMethod),
		Status:        string(query.Status),
		Type:          string(query.Type),
		Sort:          query.Sort,
	}
	if query.DateFrom != nil {
		from := ledger.Day(*query.DateFrom)
		filter.DateFrom = &from
	}
	if query.DateTo != nil {
		to := ledger.Day(*query.DateTo)
		filter.DateTo = &to
	}

	if query.CategoryID != nil {
		ids, err := categoryScope(ctx, s.reader, *query.CategoryID)
		if err != nil {
			return filter, err
		}
		filter.CategoryIDs = ids
	}
	return filter, nil
}

// UpdateTransaction replaces the writable fields of a transaction and
// recomputes the balances it touches.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input TransactionInput) error {
	input = normalizeTransactionInput(input)
	if err := validateTransactionInput(input); err != nil {
		return err
	}

	return s.processor.Process(ctx, &actions.UpdateTransaction{ID: id, Update: sqlconfig.TransactionUpdate{
		AccountID:       omit.From(input.AccountID),
		CategoryID:      omit.From(input.CategoryID),
		TransactionType: omit.From(string(input.Type)),
		Amount:          omit.From(input.Amount),
		Description:     omit.From(input.Description),
		TransactionDate: omit.From(ledger.Day(input.TransactionDate)),
		PaymentMethod:   omit.From(string(input.PaymentMethod)),
		ReferenceNumber: omit.From(input.ReferenceNumber),
		Status:          omit.From(string(input.Status)),
		Tags:            omit.From(input.Tags),
		Location:        omit.From(input.Location),
	}})
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return s.processor.Process(ctx, &actions.DeleteTransaction{ID: id})
}

// BulkDeleteTransactions deletes the given transactions and returns how many
// were removed. Unknown IDs are skipped.
func (s *TransactionService) BulkDeleteTransactions(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, apperror.Invalid("ids", "The ids field is required.")
	}

	action := &actions.BulkDeleteTransactions{IDs: ids}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.Deleted, nil
}

func normalizeTransactionInput(input TransactionInput) TransactionInput {
	input.Description = strings.TrimSpace(input.Description)
	input.ReferenceNumber = strings.TrimSpace(input.ReferenceNumber)
	input.Location = strings.TrimSpace(input.Location)
	input.Tags = ledger.NormalizeTags(input.Tags)
	if input.PaymentMethod == "" {
		input.PaymentMethod = PaymentMethodOther
	}
	if input.Status == "" {
		input.Status = TransactionStatusCompleted
	}
	return input
}

func validateTransactionInput(input TransactionInput) error {
	v := newValidator()
	if input.AccountID == uuid.Nil {
		v.fail("accountID", "The account field is required.")
	}
	if input.CategoryID == uuid.Nil {
		v.fail("categoryID", "The category field is required.")
	}
	v.oneOf("transactionType", input.Type.Valid())
	v.nonNegative("amount", input.Amount)
	v.money("amount", input.Amount)
	if input.TransactionDate.IsZero() {
		v.fail("transactionDate", "The transaction date field is required.")
	}
	v.oneOf("paymentMethod", input.PaymentMethod.Valid())
	v.oneOf("status", input.Status.Valid())
	v.maxLen("description", input.Description, 1000)
	v.maxLen("referenceNumber", input.ReferenceNumber, 100)
	v.maxLen("location", input.Location, 255)
	return v.err()
}
