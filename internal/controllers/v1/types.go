package v1

import (
	"github.com/spendlog/backend/internal/models"
	sl_uuid "github.com/spendlog/backend/internal/uuid"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type URIID struct {
	ID sl_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

// Pagination contains information about the pagination for list endpoint calls.
type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}

// userID returns the authenticated user for the request. The router
// middleware guarantees it is set on all /v1 routes.
func userID(c *gin.Context) uuid.UUID {
	id, _ := c.MustGet(string(models.DBContextUser)).(uuid.UUID)
	return id
}
