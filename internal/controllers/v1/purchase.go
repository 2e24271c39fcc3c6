package v1

import (
	"net/http"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// RegisterPurchaseRoutes registers the routes for purchases with
// the RouterGroup that is passed.
func RegisterPurchaseRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsPurchaseList)
		r.GET("", GetPurchases)
		r.POST("", CreatePurchases)
	}

	// Purchase with ID
	{
		r.OPTIONS("/:id", OptionsPurchaseDetail)
		r.GET("/:id", GetPurchase)
		r.PATCH("/:id", UpdatePurchase)
		r.DELETE("/:id", DeletePurchase)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Router			/v1/purchases [options]
func OptionsPurchaseList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [options]
func OptionsPurchaseDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.First(&models.Purchase{}, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create purchases
// @Description	Creates new purchases
// @Tags			Purchases
// @Produce		json
// @Success		201			{object}	PurchaseCreateResponse
// @Failure		400			{object}	PurchaseCreateResponse
// @Failure		404			{object}	PurchaseCreateResponse
// @Failure		500			{object}	PurchaseCreateResponse
// @Param			purchases	body		[]PurchaseEditable	true	"Purchases"
// @Router			/v1/purchases [post]
func CreatePurchases(c *gin.Context) {
	var editables []PurchaseEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := PurchaseCreateResponse{}

	for _, editable := range editables {
		purchase := editable.model(userID(c))

		err = models.DB.Create(&purchase).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newPurchase(c, purchase)
		r.Data = append(r.Data, PurchaseResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Get purchases
// @Description	Returns a list of purchases
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseListResponse
// @Failure		400	{object}	PurchaseListResponse
// @Failure		500	{object}	PurchaseListResponse
// @Router			/v1/purchases [get]
// @Param			date				query	string	false	"Purchases on this day"
// @Param			fromDate			query	string	false	"Purchases at and after this date"
// @Param			untilDate			query	string	false	"Purchases before and at this date"
// @Param			amount				query	string	false	"Exact amount"
// @Param			amountLessOrEqual	query	string	false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string	false	"Amount more than or equal to this"
// @Param			description			query	string	false	"Search for this string in the description"
// @Param			note				query	string	false	"Search for this string in the note"
// @Param			payment				query	string	false	"Payment method"
// @Param			currency			query	string	false	"Currency code"
// @Param			location			query	string	false	"Search for this string in the location"
// @Param			category			query	string	false	"Filter by category ID"
// @Param			offset				query	uint	false	"The offset of the first Purchase returned. Defaults to 0."
// @Param			limit				query	int		false	"Maximum number of Purchases to return. Defaults to 50."
func GetPurchases(c *gin.Context) {
	var filter PurchaseQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := errInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, PurchaseListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields that we are filtering for
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	where := filter.model()

	q := models.DB.
		Order("date(date) DESC, datetime(created_at) DESC").
		Where("user_id = ?", userID(c)).
		Where(&where, queryFields...)

	q = dateFilters(q, filter)

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("purchases.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("purchases.amount >= ?", filter.AmountMoreOrEqual)
	}

	if filter.Description != "" {
		q = q.Where("description LIKE ?", "%"+filter.Description+"%")
	}

	if filter.Location != "" {
		q = q.Where("location LIKE ?", "%"+filter.Location+"%")
	}

	if filter.Note != "" {
		q = q.Where("note LIKE ?", "%"+filter.Note+"%")
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	// Default to 50 Purchases and set the limit
	limit := 50
	if slices.Contains(setFields, "Limit") {
		limit = filter.Limit
	}
	q = q.Limit(limit)

	var purchases []models.Purchase
	err := q.Find(&purchases).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &s,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), PurchaseListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Purchase, 0, len(purchases))
	for _, purchase := range purchases {
		data = append(data, newPurchase(c, purchase))
	}

	c.JSON(http.StatusOK, PurchaseListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get purchase
// @Description	Returns a specific purchase
// @Tags			Purchases
// @Produce		json
// @Success		200	{object}	PurchaseResponse
// @Failure		400	{object}	PurchaseResponse
// @Failure		404	{object}	PurchaseResponse
// @Failure		500	{object}	PurchaseResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [get]
func GetPurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	data := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &data})
}

// @Summary		Update purchase
// @Description	Update an existing purchase. Only values to be updated need to be specified.
// @Tags			Purchases
// @Accept			json
// @Produce		json
// @Success		200			{object}	PurchaseResponse
// @Failure		400			{object}	PurchaseResponse
// @Failure		404			{object}	PurchaseResponse
// @Failure		500			{object}	PurchaseResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			purchase	body		PurchaseEditable	true	"Purchase"
// @Router			/v1/purchases/{id} [patch]
func UpdatePurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, PurchaseEditable{})
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	var data PurchaseEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	// The duplicate detection fields are recomputed in the BeforeUpdate
	// hook and have to be writable for the restricted update.
	updateFields = append(updateFields, "NormalizedDescription", "ImportHash")

	err = models.DB.Model(&purchase).Select("", updateFields...).Updates(data.model(userID(c))).Error
	if err != nil {
		s := err.Error()
		c.JSON(status(err), PurchaseResponse{
			Error: &s,
		})
		return
	}

	r := newPurchase(c, purchase)
	c.JSON(http.StatusOK, PurchaseResponse{Data: &r})
}

// @Summary		Delete purchase
// @Description	Deletes a purchase
// @Tags			Purchases
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/purchases/{id} [delete]
func DeletePurchase(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var purchase models.Purchase
	err = models.DB.First(&purchase, "id = ? AND user_id = ?", uri.ID, userID(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&purchase).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// dateFilters applies the date related filters from the query string.
func dateFilters(q *gorm.DB, filter PurchaseQueryFilter) *gorm.DB {
	if !filter.Date.IsZero() {
		q = q.Where("purchases.date = date(?)", filter.Date)
	}

	if !filter.FromDate.IsZero() {
		q = q.Where("purchases.date >= date(?)", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("purchases.date <= date(?)", filter.UntilDate)
	}

	return q
}
