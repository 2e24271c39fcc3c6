package v1

import (
	"fmt"
	"strings"

	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"
	sl_uuid "github.com/spendlog/backend/internal/uuid"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseEditable represents all user configurable parameters
type PurchaseEditable struct {
	Date types.Date `json:"date" example:"2024-01-01"` // Calendar day of the purchase. Defaults to today.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"14.03" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount of the purchase

	Description string               `json:"description" example:"Lunch at the corner place" default:""` // What was bought
	Note        string               `json:"note" example:"Reimbursed by the office" default:""`         // A note
	Payment     models.PaymentMethod `json:"payment" example:"debit_card" default:"other"`               // How the purchase was paid
	Currency    string               `json:"currency" example:"EUR" default:"USD"`                       // Currency code of the amount
	Location    string               `json:"location" example:"Main St Market" default:""`               // Where the purchase was made
	CategoryID  uuid.UUID            `json:"categoryId" example:"fd81dc45-a3a2-468e-a6fa-b2618f30aa45"`  // ID of the category
}

// model returns the database resource for the API representation of the editable fields
func (editable PurchaseEditable) model(user uuid.UUID) models.Purchase {
	return models.Purchase{
		UserID:      user,
		Date:        editable.Date,
		Amount:      editable.Amount,
		Description: editable.Description,
		Note:        editable.Note,
		Payment:     editable.Payment,
		Currency:    editable.Currency,
		Location:    editable.Location,
		CategoryID:  editable.CategoryID,
	}
}

type PurchaseLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/purchases/d430d7c3-d14c-4712-9336-ee56965a6673"` // The purchase itself
}

// Purchase is the representation of a Purchase in API v1.
type Purchase struct {
	models.DefaultModel
	PurchaseEditable
	Links PurchaseLinks `json:"links"`
}

// newPurchase returns the API representation of the resource
func newPurchase(c *gin.Context, model models.Purchase) Purchase {
	url := c.GetString(string(models.DBContextURL))

	return Purchase{
		DefaultModel: model.DefaultModel,
		PurchaseEditable: PurchaseEditable{
			Date:        model.Date,
			Amount:      model.Amount,
			Description: model.Description,
			Note:        model.Note,
			Payment:     model.Payment,
			Currency:    model.Currency,
			Location:    model.Location,
			CategoryID:  model.CategoryID,
		},
		Links: PurchaseLinks{
			Self: fmt.Sprintf("%s/v1/purchases/%s", url, model.ID),
		},
	}
}

type PurchaseListResponse struct {
	Data       []Purchase  `json:"data"`                                                          // List of purchases
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type PurchaseCreateResponse struct {
	Error *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []PurchaseResponse `json:"data"`                                                          // List of created Purchases
}

func (r *PurchaseCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	r.Data = append(r.Data, PurchaseResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type PurchaseResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this purchase
	Data  *Purchase `json:"data"`                                                          // The Purchase data, if creation was successful
}

type PurchaseQueryFilter struct {
	Date              types.Date           `form:"date" filterField:"false"`              // Purchases on this day
	FromDate          types.Date           `form:"fromDate" filterField:"false"`          // Purchases at and after this date
	UntilDate         types.Date           `form:"untilDate" filterField:"false"`         // Purchases before and at this date
	Amount            decimal.Decimal      `form:"amount"`                                // Exact amount
	AmountLessOrEqual decimal.Decimal      `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual decimal.Decimal      `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Description       string               `form:"description" filterField:"false"`       // Description contains this
	Note              string               `form:"note" filterField:"false"`              // Note contains this
	Payment           models.PaymentMethod `form:"payment"`                               // Payment method
	Currency          string               `form:"currency"`                              // Currency code
	Location          string               `form:"location" filterField:"false"`          // Location contains this
	CategoryID        sl_uuid.UUID         `form:"category"`                              // ID of the category
	Offset            uint                 `form:"offset" filterField:"false"`            // The offset of the first Purchase returned. Defaults to 0.
	Limit             int                  `form:"limit" filterField:"false"`             // Maximum number of Purchases to return. Defaults to 50.
}

func (f PurchaseQueryFilter) model() models.Purchase {
	return models.Purchase{
		Amount:  f.Amount,
		Payment: f.Payment,

		// Stored currency codes are uppercased
		Currency:   strings.ToUpper(strings.TrimSpace(f.Currency)),
		CategoryID: f.CategoryID.UUID,
	}
}
