package v1

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/importer"
	"github.com/spendlog/backend/internal/importer/parser/bankcsv"
	"github.com/spendlog/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// ImportQuery are the query parameters for the import endpoint
type ImportQuery struct {
	DryRun bool `form:"dryRun"` // When true, the import is staged but not committed
}

// ImportPreviewResponse is returned when an import is performed with dryRun=true
type ImportPreviewResponse struct {
	Error *string         `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
	Data  *importer.Batch `json:"data"`                                                  // The staged import
}

// ImportResult summarizes a committed import
type ImportResult struct {
	Purchases     []Purchase           `json:"purchases"`     // The purchases that were created
	NewCategories []string             `json:"newCategories"` // Names of categories created by the import
	Rejected      []importer.Rejection `json:"rejected"`      // Rows that were not imported
}

// ImportResponse is returned when an import is committed
type ImportResponse struct {
	Error *string       `json:"error" example:"you must send a file to this endpoint"` // The error, if any occurred
	Data  *ImportResult `json:"data"`                                                  // The result of the import
}

// RegisterImportRoutes registers the routes for imports with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", Import)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Import
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Import purchases
// @Description	Imports purchases from a CSV file. Invalid and duplicate rows are rejected, all other rows are imported in one transaction. With dryRun=true, the import is staged and returned, but nothing is saved.
// @Tags			Import
// @Accept			multipart/form-data
// @Produce		json
// @Success		200		{object}	ImportPreviewResponse
// @Success		201		{object}	ImportResponse
// @Failure		400		{object}	ImportResponse
// @Failure		500		{object}	ImportResponse
// @Param			file	formData	file	true	"File to import"
// @Param			dryRun	query		bool	false	"Stage the import without committing it. Defaults to false."
// @Router			/v1/import [post]
func Import(c *gin.Context) {
	var query ImportQuery
	if err := c.Bind(&query); err != nil {
		s := errInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	f, err := getUploadedFile(c, ".csv")
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}
	defer f.Close()

	rows, rejections, err := bankcsv.Parse(f)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ImportResponse{
			Error: &s,
		})
		return
	}

	batch, err := importer.Stage(models.DB, userID(c), rows, rejections)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	if query.DryRun {
		c.JSON(http.StatusOK, ImportPreviewResponse{Data: batch})
		return
	}

	purchases, err := importer.Commit(models.DB, batch)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ImportResponse{
			Error: &s,
		})
		return
	}

	data := ImportResult{
		Purchases:     make([]Purchase, 0, len(purchases)),
		NewCategories: batch.NewCategories,
		Rejected:      batch.Rejected,
	}
	for _, purchase := range purchases {
		data.Purchases = append(data.Purchases, newPurchase(c, purchase))
	}

	c.JSON(http.StatusCreated, ImportResponse{Data: &data})
}

// getUploadedFile returns the form field "file" of the request.
// The file name needs to have the specified suffix.
func getUploadedFile(c *gin.Context, suffix string) (multipart.File, error) {
	formFile, err := c.FormFile("file")
	if formFile == nil {
		return nil, errNoFilePost
	}

	if err != nil {
		return nil, err
	}

	if !strings.HasSuffix(formFile.Filename, suffix) {
		return nil, fmt.Errorf("%w: %s", errWrongFileSuffix, suffix)
	}

	f, err := formFile.Open()
	if err != nil {
		return nil, err
	}

	return f, nil
}
