package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// CategoryOption is the compact form used by selection lists.
type CategoryOption struct {
	ID       string  `json:"id"`
	ParentID *string `json:"parentID"`
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	Icon     string  `json:"icon"`
	Color    string  `json:"color"`
}

// CategoryTreeNode is a top-level category with its sub-categories.
type CategoryTreeNode struct {
	CategoryOption
	Children []CategoryOption `json:"children"`
}

type CategoryOptionsOutput struct {
	Body []CategoryOption
}

type CategoryTreeOutput struct {
	Body []CategoryTreeNode
}

func toOption(c service.Category) CategoryOption {
	return CategoryOption{
		ID:       c.ID.String(),
		ParentID: common.NullID(c.ParentID),
		Name:     c.Name,
		Code:     c.Code,
		Icon:     c.Icon,
		Color:    c.Color,
	}
}

func toOptions(categories []service.Category) []CategoryOption {
	out := make([]CategoryOption, len(categories))
	for i, c := range categories {
		out[i] = toOption(c)
	}
	return out
}

type categoryLookup interface {
	ActiveCategories(ctx context.Context) ([]service.Category, error)
	CategoryTree(ctx context.Context) ([]service.CategoryTreeNode, error)
	ParentCategories(ctx context.Context) ([]service.Category, error)
	Children(ctx context.Context, id uuid.UUID) ([]service.Category, error)
}

// LookupHandler serves the read-only category lists under /api/categories
// used to fill selection controls.
type LookupHandler struct {
	CategoryService categoryLookup
}

func NewLookupHandler(svc categoryLookup) *LookupHandler {
	return &LookupHandler{CategoryService: svc}
}

func (h *LookupHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "active-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories",
		Summary:     "List active categories",
		Tags:        []string{"Categories"},
	}, h.active)
	huma.Register(api, huma.Operation{
		OperationID: "category-tree",
		Method:      http.MethodGet,
		Path:        "/api/categories/tree",
		Summary:     "Active categories as a two-level tree",
		Tags:        []string{"Categories"},
	}, h.tree)
	huma.Register(api, huma.Operation{
		OperationID: "parent-categories",
		Method:      http.MethodGet,
		Path:        "/api/categories/parents",
		Summary:     "List active top-level categories",
		Tags:        []string{"Categories"},
	}, h.parents)
	huma.Register(api, huma.Operation{
		OperationID: "category-children",
		Method:      http.MethodGet,
		Path:        "/api/categories/{id}/children",
		Summary:     "List the active sub-categories of a category",
		Tags:        []string{"Categories"},
	}, h.children)
}

func (h *LookupHandler) active(ctx context.Context, _ *struct{}) (*CategoryOptionsOutput, error) {
	categories, err := h.CategoryService.ActiveCategories(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list categories")
	}
	return &CategoryOptionsOutput{Body: toOptions(categories)}, nil
}

func (h *LookupHandler) tree(ctx context.Context, _ *struct{}) (*CategoryTreeOutput, error) {
	nodes, err := h.CategoryService.CategoryTree(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to build category tree")
	}

	out := make([]CategoryTreeNode, len(nodes))
	for i, node := range nodes {
		out[i] = CategoryTreeNode{
			CategoryOption: toOption(node.Category),
			Children:       toOptions(node.Children),
		}
	}
	return &CategoryTreeOutput{Body: out}, nil
}

func (h *LookupHandler) parents(ctx context.Context, _ *struct{}) (*CategoryOptionsOutput, error) {
	categories, err := h.CategoryService.ParentCategories(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list parent categories")
	}
	return &CategoryOptionsOutput{Body: toOptions(categories)}, nil
}

func (h *LookupHandler) children(ctx context.Context, input *CategoryIDInput) (*CategoryOptionsOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	categories, err := h.CategoryService.Children(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list sub-categories")
	}
	return &CategoryOptionsOutput{Body: toOptions(categories)}, nil
}
