package v1

import (
	"net/http"
	"time"

	"github.com/spendlog/backend/internal/httputil"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/reports"
	"github.com/spendlog/backend/internal/types"

	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slices"
)

// AggregateQuery are the query parameters for the aggregate endpoint
type AggregateQuery struct {
	From    types.Date      `form:"from"`    // Start of the date range, inclusive
	Until   types.Date      `form:"until"`   // End of the date range, inclusive
	GroupBy reports.GroupBy `form:"groupBy"` // One of category, day, week or month
}

type AggregateResponse struct {
	Error *string          `json:"error" example:"the from parameter must be set"` // The error, if any occurred
	Data  []reports.Rollup `json:"data"`                                           // The rollup rows
}

// TrendQuery are the query parameters for the trend endpoint
type TrendQuery struct {
	From       types.Date `form:"from"`       // Start of the current period, inclusive
	Until      types.Date `form:"until"`      // End of the current period, inclusive
	PriorFrom  types.Date `form:"priorFrom"`  // Start of the prior period, inclusive
	PriorUntil types.Date `form:"priorUntil"` // End of the prior period, inclusive
}

type TrendResponse struct {
	Error *string        `json:"error" example:"the from parameter must be set"` // The error, if any occurred
	Data  *reports.Trend `json:"data"`                                           // The trend
}

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/aggregate", OptionsAggregate)
		r.GET("/aggregate", GetAggregate)
	}

	{
		r.OPTIONS("/trend", OptionsTrend)
		r.GET("/trend", GetTrend)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/aggregate [options]
func OptionsAggregate(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics/trend [options]
func OptionsTrend(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Aggregate purchases
// @Description	Aggregates the purchases in the date range into rollup rows with the total amount and the purchase count per bucket. Buckets are categories or calendar periods, depending on the grouping.
// @Tags			Analytics
// @Produce		json
// @Success		200		{object}	AggregateResponse
// @Failure		400		{object}	AggregateResponse
// @Failure		500		{object}	AggregateResponse
// @Param			from	query		string	true	"Start of the date range, inclusive"
// @Param			until	query		string	true	"End of the date range, inclusive"
// @Param			groupBy	query		string	true	"One of category, day, week or month"
// @Router			/v1/analytics/aggregate [get]
func GetAggregate(c *gin.Context) {
	var query AggregateQuery
	if err := c.Bind(&query); err != nil {
		s := errInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, AggregateResponse{
			Error: &s,
		})
		return
	}

	if err := checkRange(query.From, query.Until); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, AggregateResponse{
			Error: &s,
		})
		return
	}

	// Check the grouping before touching the database
	if !slices.Contains(reports.GroupBys, query.GroupBy) {
		s := reports.ErrGroupByInvalid.Error()
		c.JSON(http.StatusBadRequest, AggregateResponse{
			Error: &s,
		})
		return
	}

	// The week start is a per-user setting, only weekly buckets need it
	weekStart := time.Monday
	if query.GroupBy == reports.GroupByWeek {
		settings, err := models.SettingsForUser(models.DB, userID(c))
		if err != nil {
			s := err.Error()
			c.JSON(status(err), AggregateResponse{
				Error: &s,
			})
			return
		}

		weekStart = settings.Weekday()
	}

	rollups, err := reports.Aggregate(models.DB, userID(c), query.From, query.Until, query.GroupBy, weekStart)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), AggregateResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, AggregateResponse{Data: rollups})
}

// @Summary		Spending trend
// @Description	Compares the total spending of two periods and returns the absolute and percentage change. The percentage change is null when the prior period has no spending.
// @Tags			Analytics
// @Produce		json
// @Success		200			{object}	TrendResponse
// @Failure		400			{object}	TrendResponse
// @Failure		500			{object}	TrendResponse
// @Param			from		query		string	true	"Start of the current period, inclusive"
// @Param			until		query		string	true	"End of the current period, inclusive"
// @Param			priorFrom	query		string	true	"Start of the prior period, inclusive"
// @Param			priorUntil	query		string	true	"End of the prior period, inclusive"
// @Router			/v1/analytics/trend [get]
func GetTrend(c *gin.Context) {
	var query TrendQuery
	if err := c.Bind(&query); err != nil {
		s := errInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, TrendResponse{
			Error: &s,
		})
		return
	}

	if err := checkRange(query.From, query.Until); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendResponse{
			Error: &s,
		})
		return
	}

	if err := checkRange(query.PriorFrom, query.PriorUntil); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TrendResponse{
			Error: &s,
		})
		return
	}

	trend, err := reports.TrendBetween(models.DB, userID(c),
		reports.Period{From: query.From, To: query.Until},
		reports.Period{From: query.PriorFrom, To: query.PriorUntil},
	)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), TrendResponse{
			Error: &s,
		})
		return
	}

	c.JSON(http.StatusOK, TrendResponse{Data: &trend})
}

// checkRange verifies that both ends of a date range are set.
func checkRange(from, until types.Date) error {
	if from.IsZero() {
		return errFromNotSet
	}

	if until.IsZero() {
		return errUntilNotSet
	}

	return nil
}
