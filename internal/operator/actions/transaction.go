package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

// CreateTransaction posts a transaction to an active account and category and
// recomputes that account's balance.
type CreateTransaction struct {
	Create sqlconfig.TransactionCreate

	CreatedID uuid.UUID
}

func (c *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := activeAccount(ctx, writer, c.Create.AccountID, "accountID")
	if err != nil {
		return err
	}
	if _, err := activeCategory(ctx, writer, c.Create.CategoryID, "categoryID"); err != nil {
		return err
	}

	id, err := writer.Transactions.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	c.CreatedID = id

	return recomputeAccountBalance(ctx, writer, account)
}

// UpdateTransaction applies a partial update. Moving a transaction between
// accounts recomputes both.
type UpdateTransaction struct {
	ID     uuid.UUID
	Update sqlconfig.TransactionUpdate
}

func (u *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("transaction")
	}

	affected := []uuid.UUID{existing.AccountID}
	if accountID, ok := u.Update.AccountID.Get(); ok && accountID != existing.AccountID {
		if _, err := activeAccount(ctx, writer, accountID, "accountID"); err != nil {
			return err
		}
		affected = append(affected, accountID)
	}
	if categoryID, ok := u.Update.CategoryID.Get(); ok && categoryID != existing.CategoryID {
		if _, err := activeCategory(ctx, writer, categoryID, "categoryID"); err != nil {
			return err
		}
	}

	if err := writer.Transactions.Update(ctx, u.ID, &u.Update); err != nil {
		return fmt.Errorf("update transaction: %w", err)
	}

	return recomputeAccountBalances(ctx, writer, affected...)
}

type DeleteTransaction struct {
	ID uuid.UUID
}

func (d *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("transaction")
	}

	if err := writer.Transactions.Delete(ctx, d.ID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	return recomputeAccountBalances(ctx, writer, existing.AccountID)
}

// BulkDeleteTransactions deletes the listed transactions that exist. Unknown
// ids are ignored; Deleted reports how many rows went.
type BulkDeleteTransactions struct {
	IDs []uuid.UUID

	Deleted int64
}

func (b *BulkDeleteTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Transactions.FindByIDs(ctx, b.IDs)
	if err != nil {
		return err
	}
	if len(existing) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(existing))
	accounts := make([]uuid.UUID, len(existing))
	for i, txn := range existing {
		ids[i] = txn.ID
		accounts[i] = txn.AccountID
	}

	deleted, err := writer.Transactions.DeleteMany(ctx, ids)
	if err != nil {
		return fmt.Errorf("delete transactions: %w", err)
	}
	b.Deleted = deleted

	return recomputeAccountBalances(ctx, writer, accounts...)
}
