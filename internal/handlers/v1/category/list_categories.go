package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type ListCategoriesInput struct {
	Search       string `query:"search" doc:"Matches name or code"`
	ActiveOnly   bool   `query:"activeOnly"`
	TopLevelOnly bool   `query:"topLevelOnly"`
	common.PageQuery
}

type ListCategoriesResponseBody struct {
	Categories []Category     `json:"categories" doc:"Page of categories with aggregate totals"`
	NextCursor *common.Cursor `json:"nextCursor,omitempty" doc:"Cursor to fetch the next page, absent on the last page"`
}

type ListCategoriesOutput struct {
	Body ListCategoriesResponseBody
}

type categoryLister interface {
	ListCategories(ctx context.Context, query service.CategoryQuery, cursor *service.Cursor) ([]service.Category, *service.Cursor, error)
}

// ListCategoriesHandler handles GET /categories.
type ListCategoriesHandler struct {
	CategoryService categoryLister
}

func NewListCategoriesHandler(svc categoryLister) *ListCategoriesHandler {
	return &ListCategoriesHandler{CategoryService: svc}
}

func (h *ListCategoriesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-categories",
		Method:      http.MethodGet,
		Path:        "/categories",
		Summary:     "List categories",
		Description: "Returns a page of categories. Top-level totals include their sub-categories.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ListCategoriesHandler) handle(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error) {
	query := service.CategoryQuery{
		ActiveOnly:   input.ActiveOnly,
		TopLevelOnly: input.TopLevelOnly,
		Search:       input.Search,
	}

	stopTimer := logging.Timed(ctx, "listCategoriesMs")
	categories, next, err := h.CategoryService.ListCategories(ctx, query, input.PageQuery.Cursor())
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to list categories")
	}

	return &ListCategoriesOutput{Body: ListCategoriesResponseBody{
		Categories: fromServiceList(categories),
		NextCursor: common.NextCursor(next),
	}}, nil
}
