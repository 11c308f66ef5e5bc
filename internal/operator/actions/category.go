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

type CreateCategory struct {
	Create sqlconfig.CategoryCreate

	CreatedID uuid.UUID
}

func (c *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	if err := ensureCategoryCodeFree(ctx, writer, c.Create.Code, uuid.Nil); err != nil {
		return err
	}
	if c.Create.ParentID.Valid {
		if err := validateParent(ctx, writer, uuid.Nil, c.Create.ParentID.UUID); err != nil {
			return err
		}
	}

	id, err := writer.Categories.Insert(ctx, &c.Create)
	if err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	c.CreatedID = id
	return nil
}

type UpdateCategory struct {
	ID     uuid.UUID
	Update sqlconfig.CategoryUpdate
}

func (u *UpdateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, u.ID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	if code, ok := u.Update.Code.Get(); ok && code != category.Code {
		if err := ensureCategoryCodeFree(ctx, writer, code, category.ID); err != nil {
			return err
		}
	}

	if parent, ok := u.Update.ParentID.Get(); ok && parent.Valid {
		if err := validateParent(ctx, writer, category.ID, parent.UUID); err != nil {
			return err
		}
		children, err := writer.Categories.CountChildren(ctx, category.ID)
		if err != nil {
			return err
		}
		if children > 0 {
			return apperror.Invalid("parentID", "A category with sub-categories cannot be moved under another category.")
		}
	}

	if err := writer.Categories.Update(ctx, u.ID, &u.Update); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// DeleteCategory removes a category with no sub-categories and no
// transactions. Its budgets go with it.
type DeleteCategory struct {
	ID uuid.UUID
}

func (d *DeleteCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, d.ID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	children, err := writer.Categories.CountChildren(ctx, d.ID)
	if err != nil {
		return err
	}
	if children > 0 {
		return apperror.Conflict("Cannot delete category with subcategories.")
	}

	used, err := hasTransactions(ctx, writer, &sqlconfig.TransactionFilter{CategoryIDs: []uuid.UUID{d.ID}})
	if err != nil {
		return err
	}
	if used {
		return apperror.Conflict("Cannot delete category with existing transactions.")
	}

	return writer.Categories.Delete(ctx, d.ID)
}

type ToggleCategoryStatus struct {
	ID uuid.UUID

	IsActive bool
}

func (t *ToggleCategoryStatus) Perform(ctx context.Context, writer *storage.Writer) error {
	category, err := writer.Categories.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NotFound("category")
	}

	t.IsActive = !category.IsActive
	return writer.Categories.Update(ctx, t.ID, &sqlconfig.CategoryUpdate{IsActive: omit.From(t.IsActive)})
}

// validateParent keeps the tree two levels deep: the parent must exist, must
// not be the category itself and must be top-level.
func validateParent(ctx context.Context, writer *storage.Writer, self, parentID uuid.UUID) error {
	if parentID == self {
		return apperror.Invalid("parentID", "A category cannot be its own parent.")
	}

	parent, err := writer.Categories.FindByID(ctx, parentID)
	if err != nil {
		return err
	}
	if parent == nil {
		return apperror.Invalid("parentID", "The selected parent category does not exist.")
	}
	if parent.ParentID.Valid {
		return apperror.Invalid("parentID", "The parent category must be a top-level category.")
	}
	return nil
}

func ensureCategoryCodeFree(ctx context.Context, writer *storage.Writer, code string, self uuid.UUID) error {
	existing, err := writer.Categories.FindByCode(ctx, code)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != self {
		return apperror.Invalid("code", "The code has already been taken.")
	}
	return nil
}
