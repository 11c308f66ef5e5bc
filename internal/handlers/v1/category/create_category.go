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

type CreateCategoryInput struct {
	Body CategoryBody
}

type CreateCategoryResponse struct {
	ID string `json:"id" doc:"Created category UUID"`
}

type CreateCategoryOutput struct {
	Status int
	Body   CreateCategoryResponse
}

type categoryCreator interface {
	CreateCategory(ctx context.Context, input service.CategoryInput) (uuid.UUID, error)
}

// CreateCategoryHandler handles POST /categories.
type CreateCategoryHandler struct {
	CategoryService categoryCreator
}

func NewCreateCategoryHandler(svc categoryCreator) *CreateCategoryHandler {
	return &CreateCategoryHandler{CategoryService: svc}
}

func (h *CreateCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-category",
		Method:      http.MethodPost,
		Path:        "/categories",
		Summary:     "Create a category",
		Description: "Creates a top-level category, or a sub-category when parentID names a top-level category.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *CreateCategoryHandler) handle(ctx context.Context, input *CreateCategoryInput) (*CreateCategoryOutput, error) {
	category, err := parseCategoryBody(input.Body)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.Timed(ctx, "createCategoryMs")
	id, err := h.CategoryService.CreateCategory(ctx, category)
	stopTimer()
	if err != nil {
		return nil, common.ServiceError(ctx, err, "failed to create category")
	}
	logging.Data(ctx, "categoryID", id.String())

	return &CreateCategoryOutput{
		Status: http.StatusCreated,
		Body:   CreateCategoryResponse{ID: id.String()},
	}, nil
}
