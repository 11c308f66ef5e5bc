package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
)

// Category represents a category record. ParentName is joined in on reads.
type Category struct {
	ID          uuid.UUID     `db:"id"`
	ParentID    uuid.NullUUID `db:"parent_id"`
	ParentName  string        `db:"parent_name"`
	Name        string        `db:"name"`
	Code        string        `db:"code"`
	Description string        `db:"description"`
	Icon        string        `db:"icon"`
	Color       string        `db:"color"`
	IsActive    bool          `db:"is_active"`
	CreatedAt   time.Time     `db:"created_at"`
	UpdatedAt   time.Time     `db:"updated_at"`
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	ParentID    uuid.NullUUID
	Name        string
	Code        string
	Description string
	Icon        string
	Color       string
	IsActive    bool
}

// CategoryUpdate holds the columns to change; unset fields are left alone.
type CategoryUpdate struct {
	ParentID    omit.Val[uuid.NullUUID]
	Name        omit.Val[string]
	Code        omit.Val[string]
	Description omit.Val[string]
	Icon        omit.Val[string]
	Color       omit.Val[string]
	IsActive    omit.Val[bool]
}

// CategoryFilter specifies filters for listing categories. ParentID and
// TopLevelOnly are mutually exclusive; ParentID wins.
type CategoryFilter struct {
	ActiveOnly   bool
	TopLevelOnly bool
	ParentID     *uuid.UUID
	Search       string
	Limit        int
	Offset       int
}

// ICategoryTable defines the interface for category storage operations.
//
//go:generate mockery --name ICategoryTable --inpackage --with-expecter --filename mock_ICategoryTable.go
type ICategoryTable interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	FindByCode(ctx context.Context, code string) (*Category, error)
	Insert(ctx context.Context, create *CategoryCreate) (uuid.UUID, error)
	Update(ctx context.Context, id uuid.UUID, update *CategoryUpdate) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
	CountChildren(ctx context.Context, id uuid.UUID) (int64, error)
}
