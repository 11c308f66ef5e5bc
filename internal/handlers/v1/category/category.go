package category

import (
	"github.com/carson-networks/finance-tracker/internal/handlers/v1/common"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Category is the API response model for a category. TotalAmount and
// TransactionCount cover the category and, for a top-level category, its
// sub-categories.
type Category struct {
	ID               string  `json:"id" doc:"Category UUID"`
	ParentID         *string `json:"parentID" doc:"Parent category UUID, null for top-level categories"`
	ParentName       string  `json:"parentName" doc:"Parent category name"`
	Name             string  `json:"name"`
	Code             string  `json:"code" doc:"Unique category code"`
	Description      string  `json:"description"`
	Icon             string  `json:"icon"`
	Color            string  `json:"color"`
	IsActive         bool    `json:"isActive"`
	TotalAmount      string  `json:"totalAmount" doc:"Sum of transaction amounts"`
	TransactionCount int64   `json:"transactionCount"`
	CreatedAt        string  `json:"createdAt"`
	UpdatedAt        string  `json:"updatedAt"`
}

// CategoryBody is the request body for creating or replacing a category.
type CategoryBody struct {
	ParentID    string `json:"parentID,omitempty" doc:"Parent category UUID; must be an existing top-level category"`
	Name        string `json:"name" minLength:"1" maxLength:"255"`
	Code        string `json:"code" minLength:"1" maxLength:"50" doc:"Unique category code"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty" maxLength:"100"`
	Color       string `json:"color,omitempty" maxLength:"20"`
	IsActive    *bool  `json:"isActive,omitempty" doc:"Defaults to true"`
}

type CategoryIDInput struct {
	ID string `path:"id" format:"uuid" doc:"Category UUID"`
}

func parseCategoryBody(body CategoryBody) (service.CategoryInput, error) {
	p := common.NewParser()
	input := service.CategoryInput{
		ParentID:    p.NullUUID("parentID", body.ParentID),
		Name:        body.Name,
		Code:        body.Code,
		Description: body.Description,
		Icon:        body.Icon,
		Color:       body.Color,
		IsActive:    body.IsActive == nil || *body.IsActive,
	}
	return input, p.Err()
}

func fromService(c service.Category) Category {
	return Category{
		ID:               c.ID.String(),
		ParentID:         common.NullID(c.ParentID),
		ParentName:       c.ParentName,
		Name:             c.Name,
		Code:             c.Code,
		Description:      c.Description,
		Icon:             c.Icon,
		Color:            c.Color,
		IsActive:         c.IsActive,
		TotalAmount:      common.Money(c.TotalAmount),
		TransactionCount: c.TransactionCount,
		CreatedAt:        common.Timestamp(c.CreatedAt),
		UpdatedAt:        common.Timestamp(c.UpdatedAt),
	}
}

func fromServiceList(categories []service.Category) []Category {
	out := make([]Category, len(categories))
	for i, c := range categories {
		out[i] = fromService(c)
	}
	return out
}
