package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

type UpdateCategoryInput struct {
	ID   string `path:"id" format:"uuid" doc:"Category UUID"`
	Body CategoryBody
}

type UpdateCategoryOutput struct {
	Body Category
}

type categoryUpdater interface {
	UpdateCategory(ctx context.Context, id uuid.UUID, input service.CategoryInput) error
	GetCategory(ctx context.Context, id uuid.UUID) (*service.Category, error)
}

// UpdateCategoryHandler handles PUT /categories/{id}.
type UpdateCategoryHandler struct {
	CategoryService categoryUpdater
}

func NewUpdateCategoryHandler(svc categoryUpdater) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{CategoryService: svc}
}

func (h *UpdateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-category",
		Method:      http.MethodPut,
		Path:        "/categories/{id}",
		Summary:     "Update a category",
		Description: "Replaces a category. A category with sub-categories cannot itself become a sub-category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *UpdateCategoryHandler) handle(ctx context.Context, input *UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "categoryID", id.String())

	if err := h.CategoryService.UpdateCategory(ctx, id, category); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to update category")
	}

	updated, err := h.CategoryService.GetCategory(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to get category")
	}
	return &UpdateCategoryOutput{Body: fromService(*updated)}, nil
}
