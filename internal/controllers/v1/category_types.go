package v1

import (
	"fmt"

	"github.com/spendlog/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CategoryEditable represents all user configurable parameters
type CategoryEditable struct {
	Name string `json:"name" example:"Groceries" default:""`         // Name of the category, unique per user
	Note string `json:"note" example:"Everything edible" default:""` // Notes about the category
}

func (editable CategoryEditable) model(user uuid.UUID) models.Category {
	return models.Category{
		UserID: user,
		Name:   editable.Name,
		Note:   editable.Note,
	}
}

type CategoryLinks struct {
	Self      string `json:"self" example:"https://example.com/api/v1/categories/3b1ea324-d438-4419-882a-2fc91d71772f"`              // The category itself
	Purchases string `json:"purchases" example:"https://example.com/api/v1/purchases?category=3b1ea324-d438-4419-882a-2fc91d71772f"` // Purchases in this category
}

type Category struct {
	models.DefaultModel
	CategoryEditable
	Links CategoryLinks `json:"links"`
}

// newCategory returns the API representation of the resource
func newCategory(c *gin.Context, model models.Category) Category {
	url := c.GetString(string(models.DBContextURL))

	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name: model.Name,
			Note: model.Note,
		},
		Links: CategoryLinks{
			Self:      fmt.Sprintf("%s/v1/categories/%s", url, model.ID),
			Purchases: fmt.Sprintf("%s/v1/purchases?category=%s", url, model.ID),
		},
	}
}

type CategoryListResponse struct {
	Data       []Category  `json:"data"`                                                          // List of Categories
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type CategoryCreateResponse struct {
	Data  []CategoryResponse `json:"data"`                                                          // List of the created Categories or their respective error
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

func (r *CategoryCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, CategoryResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type CategoryResponse struct {
	Data  *Category `json:"data"`                                                          // Data for the Category
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryQueryFilter struct {
	Name   string `json:"name" form:"name" filterField:"false"`     // By name
	Note   string `json:"note" form:"note" filterField:"false"`     // By note
	Search string `json:"search" form:"search" filterField:"false"` // By string in name or note
	Offset uint   `json:"offset" form:"offset" filterField:"false"` // The offset of the first Category returned. Defaults to 0.
	Limit  int    `json:"limit" form:"limit" filterField:"false"`   // Maximum number of Categories to return. Defaults to 50.
}
