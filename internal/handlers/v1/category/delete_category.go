package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/logging"
)

type categoryDeleter interface {
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// DeleteCategoryHandler handles DELETE /categories/{id}.
type DeleteCategoryHandler struct {
	CategoryService categoryDeleter
}

func NewDeleteCategoryHandler(svc categoryDeleter) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{CategoryService: svc}
}

func (h *DeleteCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-category",
		Method:        http.MethodDelete,
		Path:          "/categories/{id}",
		Summary:       "Delete a category",
		Description:   "Refused with 409 while the category has sub-categories or transactions.",
		Tags:          []string{"Categories"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteCategoryHandler) handle(ctx context.Context, input *CategoryIDInput) (*struct{}, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}
	logging.Data(ctx, "categoryID", id.String())

	if err := h.CategoryService.DeleteCategory(ctx, id); err != nil {
		return nil, common.ServiceError(ctx, err, "failed to delete category")
	}
	return nil, nil
}

type ToggleStatusBody struct {
	ID       string `json:"id" doc:"Category UUID"`
	IsActive bool   `json:"isActive" doc:"Status after the toggle"`
}

type ToggleCategoryStatusOutput struct {
	Body ToggleStatusBody
}

type categoryToggler interface {
	ToggleCategoryStatus(ctx context.Context, id uuid.UUID) (bool, error)
}

// ToggleCategoryStatusHandler handles PATCH /categories/{id}/toggle-status.
type ToggleCategoryStatusHandler struct {
	CategoryService categoryToggler
}

func NewToggleCategoryStatusHandler(svc categoryToggler) *ToggleCategoryStatusHandler {
	return &ToggleCategoryStatusHandler{CategoryService: svc}
}

func (h *ToggleCategoryStatusHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "toggle-category-status",
		Method:      http.MethodPatch,
		Path:        "/categories/{id}/toggle-status",
		Summary:     "Activate or deactivate a category",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *ToggleCategoryStatusHandler) handle(ctx context.Context, input *CategoryIDInput) (*ToggleCategoryStatusOutput, error) {
	id, err := common.PathID(input.ID)
	if err != nil {
		return nil, err
	}

	active, err := h.CategoryService.ToggleCategoryStatus(ctx, id)
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to toggle category status")
	}
	logging.Data(ctx, "categoryID", id.String())

	return &ToggleCategoryStatusOutput{Body: ToggleStatusBody{ID: id.String(), IsActive: active}}, nil
}
