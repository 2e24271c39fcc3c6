// Package importer implements the purchase import pipeline.
//
// Importing happens in three phases: a parser turns a tabular file
// into rows, Stage validates the rows against the user's existing
// resources and Commit persists all accepted rows and implicitly
// created categories in a single transaction.
package importer

import (
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Row is a single parsed line of an import file.
type Row struct {
	Row         int // 1-based number of the data row in the source file
	Date        types.Date
	Description string
	Amount      decimal.Decimal
	Category    string // Raw category name, empty when the file has none
}

// Status describes the outcome of validating a single row.
//
// swagger:enum Status
type Status string

const (
	StatusAccepted          Status = "accepted"
	StatusRejectedInvalid   Status = "rejected-invalid"
	StatusRejectedDuplicate Status = "rejected-duplicate"
)

// Rejection reports a row that will not be imported, with the reason.
type Rejection struct {
	Row    int    `json:"row" example:"3"`                                       // Number of the data row in the source file
	Status Status `json:"status" example:"rejected-invalid"`                     // Why the row was rejected
	Reason string `json:"reason" example:"could not parse amount: not-a-number"` // Human readable reason
}

// PurchasePreview is a staged purchase that will be created on commit.
type PurchasePreview struct {
	Row          int             `json:"row" example:"1"`             // Number of the data row in the source file
	CategoryName string          `json:"categoryName" example:"Food"` // Name of the resolved category
	Purchase     models.Purchase `json:"purchase"`                    // The purchase as it will be created

	// Set when the category does not exist yet and is staged for
	// creation together with the purchase.
	newCategory *models.Category
}

// Batch is the transient result of validating an import file. Nothing
// in a Batch has been persisted.
type Batch struct {
	UserID        uuid.UUID         `json:"-"`
	Purchases     []PurchasePreview `json:"accepted"`      // Rows that will be imported
	NewCategories []string          `json:"newCategories"` // Names of categories that will be created implicitly
	Rejected      []Rejection       `json:"rejected"`      // Rows that will not be imported

	// Staged categories in creation order. Previews reference them
	// via their newCategory field.
	newCategories []*models.Category
}
