package v1

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"

	"github.com/gin-gonic/gin"
)

// ExportQuery are the query parameters for the export endpoint
type ExportQuery struct {
	FromDate  types.Date `form:"fromDate"`  // Export purchases at and after this date
	UntilDate types.Date `form:"untilDate"` // Export purchases before and at this date
}

// RegisterExportRoutes registers the routes for exports with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", Export)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export purchases
// @Description	Exports purchases as a CSV file in the same format the import accepts
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			fromDate	query		string	false	"Export purchases at and after this date"
// @Param			untilDate	query		string	false	"Export purchases before and at this date"
// @Router			/v1/export [get]
func Export(c *gin.Context) {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errInvalidQueryString.Error(),
		})
		return
	}

	q := models.DB.
		Preload("Category").
		Order("date(date) ASC, datetime(created_at) ASC").
		Where("user_id = ?", userID(c))

	if !query.FromDate.IsZero() {
		q = q.Where("purchases.date >= date(?)", query.FromDate)
	}

	if !query.UntilDate.IsZero() {
		q = q.Where("purchases.date <= date(?)", query.UntilDate)
	}

	var purchases []models.Purchase
	err := q.Find(&purchases).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	_ = writer.Write([]string{"date", "description", "amount", "category"})
	for _, purchase := range purchases {
		_ = writer.Write([]string{
			purchase.Date.String(),
			purchase.Description,
			purchase.Amount.String(),
			purchase.Category.Name,
		})
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	filename := fmt.Sprintf("spendlog-export-%s.csv", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", buf.Bytes())
}
