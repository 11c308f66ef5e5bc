package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/transaction"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type CategoryDetailBody struct {
	Category           Category                  `json:"category"`
	Children           []Category                `json:"children" doc:"Sub-categories with their own totals"`
	RecentTransactions []transaction.Transaction `json:"recentTransactions" doc:"Latest transactions across the category and its sub-categories"`
}

type GetCategoryOutput struct {
	Body CategoryDetailBody
}

type categoryDetailGetter interface {
	GetCategoryDetail(ctx context.Context, id uuid.UUID) (*service.CategoryDetail, error)
}

// GetCategoryHandler handles GET /categories/{id}.
type GetCategoryHandler struct {
	CategoryService categoryDetailGetter
}

func NewGetCategoryHandler(svc categoryDetailGetter) *GetCategoryHandler {
	return &GetCategoryHandler{CategoryService: svc}
}

func (h *GetCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}",
		Summary:     "Get a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *GetCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*GetCategoryOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	detail, err := h.CategoryService.GetCategoryDetail(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get category")
	}

	return &GetCategoryOutput{Body: CategoryDetailBody{
		Category:           fromService(detail.Category),
		Children:           fromServiceList(detail.Children),
		RecentTransactions: transaction.FromServiceList(detail.RecentTransactions),
	}}, nil
}

// EditCategoryBody is a category with the parents it may be moved under.
type EditCategoryBody struct {
	Category Category   `json:"category"`
	Parents  []Category `json:"parents" doc:"Active top-level categories other than this one"`
}

type EditCategoryOutput struct {
	Body EditCategoryBody
}

type categoryEditor interface {
	GetCategory(ctx context.Context, id uuid.UUID) (*service.Category, error)
	ParentCategories(ctx context.Context) ([]service.Category, error)
}

// EditCategoryHandler handles GET /categories/{id}/edit.
type EditCategoryHandler struct {
	CategoryService categoryEditor
}

func NewEditCategoryHandler(svc categoryEditor) *EditCategoryHandler {
	return &EditCategoryHandler{CategoryService: svc}
}

func (h *EditCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "edit-category",
		Method:      http.MethodGet,
		Path:        "/categories/{id}/edit",
		Summary:     "Get a category for editing",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *EditCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*EditCategoryOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	category, err := h.CategoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get category")
	}
	parents, err := h.CategoryService.ParentCategories(ctx)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list parent categories")
	}

	body := EditCategoryBody{Category: fromService(*category), Parents: []Category{}}
	for _, parent := range parents {
		if parent.ID != id {
			body.Parents = append(body.Parents, fromService(parent))
		}
	}
	return &EditCategoryOutput{Body: body}, nil
}
