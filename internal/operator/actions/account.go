package actions

import (
	"context"
	"fmt"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

type CreateAccount struct {
	Create sqlconfig.AccountCreate

	CreatedID uuid.UUID
}

func (c *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ensureAccountCodeFree(ctx, writer, c.Create.Code, uuid.Nil); err != nil {
		return err
	}

	id, err := writer.Accounts.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	c.CreatedID = id
	return nil
}

// UpdateAccount applies a partial update. A new opening balance shifts the
// current balance through a full recompute.
type UpdateAccount struct {
	ID     uuid.UUID
	Update sqlconfig.AccountUpdate
}

func (u *UpdateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NotFound("account")
	}

	if code, ok := u.Update.Code.Get(); ok && code != account.Code {
		if err := ensureAccountCodeFree(ctx, writer, code, account.ID); err != nil {
			return err
		}
	}

	if err := writer.Accounts.Update(ctx, u.ID, &u.Update); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	if opening, ok := u.Update.OpeningBalance.Get(); ok && !opening.Equal(account.OpeningBalance) {
		account.OpeningBalance = opening
		return recomputeAccountBalance(ctx, writer, account)
	}
	return nil
}

// DeleteAccount removes an account that has no transactions.
type DeleteAccount struct {
	ID uuid.UUID
}

func (d *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NotFound("account")
	}

	used, err := hasTransactions(ctx, writer, &sqlconfig.TransactionFilter{AccountID: &d.ID})
	if err != nil {
		return err
	}
	if used {
		return apperror.Conflict("Cannot delete account with existing transactions.")
	}

	return writer.Accounts.Delete(ctx, d.ID)
}

// ToggleAccountStatus flips is_active. IsActive holds the new state.
type ToggleAccountStatus struct {
	ID uuid.UUID

	IsActive bool
}

func (t *ToggleAccountStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Accounts.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if account == nil {
		return apperror.NotFound("account")
	}

	t.IsActive = !account.IsActive
	return writer.Accounts.Update(ctx, t.ID, &sqlconfig.AccountUpdate{IsActive: omit.From(t.IsActive)})
}

// RecomputeBalances rebuilds current balances from transaction history, for
// one account when AccountID is set and for every account otherwise.
type RecomputeBalances struct {
	AccountID *uuid.UUID

	Recomputed int
}

func (r *RecomputeBalances) Perform(ctx context.Context, writer *storage.Writer) error {
	var accounts []*sqlconfig.Account
	if r.AccountID != nil {
		account, err := writer.Accounts.FindByID(ctx, *r.AccountID)
		if err != nil {
			return err
		}
		if account == nil {
			return apperror.NotFound("account")
		}
		accounts = append(accounts, account)
	} else {
		all, err := writer.Accounts.List(ctx, &sqlconfig.AccountFilter{})
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}
		accounts = all
	}

	for _, account := range accounts {
		if err := recomputeAccountBalance(ctx, writer, account); err != nil {
			return err
		}
	}
	r.Recomputed = len(accounts)
	return nil
}

func ensureAccountCodeFree(ctx context.Context, writer *storage.Writer, code string, self uuid.UUID) error {
	existing, err := writer.Accounts.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return apperror.Invalid("code", "The code has already been taken.")
	}
	return nil
}
