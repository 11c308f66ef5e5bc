package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/apperror"
	"github.com/carson-networks/finance-tracker/internal/ledger"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/sqlconfig"
)

const overlapMessage = "An active budget already exists for this category during the selected period."

type CreateBudget struct {
	Create sqlconfig.BudgetCreate

	CreatedID uuid.UUID
}

func (c *CreateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, c.Create.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.Invalid("categoryID", "The selected category does not exist.")
	}

	if c.Create.IsActive {
		if err := ensureNoOverlap(ctx, writer, c.Create.CategoryID, c.Create.StartDate, c.Create.EndDate, uuid.Nil); err != nil {
			return err
		}
	}

	id, err := writer.Budgets.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert budget: %w", err)
	}
	c.CreatedID = id
	return nil
}

// UpdateBudget applies a partial update. The overlap guard runs against the
// budget as it would look after the update.
type UpdateBudget struct {
	ID     uuid.UUID
	Update sqlconfig.BudgetUpdate
}

func (u *UpdateBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	budget, err := writer.Budgets.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if budget == nil {
		return apperror.NotFound("budget")
	}

	categoryID := u.Update.CategoryID.GetOr(budget.CategoryID)
	start := u.Update.StartDate.GetOr(budget.StartDate)
	end := u.Update.EndDate.GetOr(budget.EndDate)
	active := u.Update.IsActive.GetOr(budget.IsActive)

	if categoryID != budget.CategoryID {
		category, err := writer.Categories.FindByID(ctx, categoryID)
		if err != nil {
			return err
		}
		if category == nil {
			return apperror.Invalid("categoryID", "The selected category does not exist.")
		}
	}
	if end.Before(start) {
		return apperror.Invalid("endDate", "The end date must be a date after or equal to start date.")
	}
	if active {
		if err := ensureNoOverlap(ctx, writer, categoryID, start, end, budget.ID); err != nil {
			return err
		}
	}

	if err := writer.Budgets.Update(ctx, u.ID, &u.Update); err != nil {
		return fmt.Errorf("update budget: %w", err)
	}
	return nil
}

type DeleteBudget struct {
	ID uuid.UUID
}

func (d *DeleteBudget) Perform(ctx context.Context, writer *storage.Writer) error {
	budget, err := writer.Budgets.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if budget == nil {
		return apperror.NotFound("budget")
	}
	return writer.Budgets.Delete(ctx, d.ID)
}

// ToggleBudgetStatus flips is_active. Activating a budget is refused when it
// would overlap another active budget of the same category.
type ToggleBudgetStatus struct {
	ID uuid.UUID

	IsActive bool
}

func (t *ToggleBudgetStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	budget, err := writer.Budgets.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if budget == nil {
		return apperror.NotFound("budget")
	}

	t.IsActive = !budget.IsActive
	if t.IsActive {
		if err := ensureNoOverlap(ctx, writer, budget.CategoryID, budget.StartDate, budget.EndDate, budget.ID); err != nil {
			return err
		}
	}
	return writer.Budgets.Update(ctx, t.ID, &sqlconfig.BudgetUpdate{IsActive: omit.From(t.IsActive)})
}

// ensureNoOverlap rejects a date range that intersects another active budget
// of the same category. self is left out of the comparison.
func ensureNoOverlap(ctx context.Context, writer *storage.Writer, categoryID uuid.UUID, start, end time.Time, self uuid.UUID) error {
	filter := &sqlconfig.BudgetFilter{
		CategoryID: &categoryID,
		ActiveOnly: true,
	}
	if self != uuid.Nil {
		filter.ExcludeID = &self
	}

	existing, err := writer.Budgets.List(ctx, filter)
	if err != nil {
		return fmt.Errorf("list budgets: %w", err)
	}

	ranges := make([]ledger.DateRange, len(existing))
	for i, b := range existing {
		ranges[i] = ledger.DateRange{Start: b.StartDate, End: b.EndDate}
	}
	if ledger.FirstOverlap(ledger.DateRange{Start: start, End: end}, ranges) >= 0 {
		return apperror.Invalid("startDate", overlapMessage)
	}
	return nil
}
