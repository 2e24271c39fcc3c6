// Package reports computes spending rollups over purchases.
package reports

import (
	"errors"
	"sort"
	"time"

	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// GroupBy is the dimension purchases are grouped by.
//
// swagger:enum GroupBy
type GroupBy string

const (
	GroupByCategory GroupBy = "category"
	GroupByDay      GroupBy = "day"
	GroupByWeek     GroupBy = "week"
	GroupByMonth    GroupBy = "month"
)

// GroupBys are all valid values for GroupBy.
var GroupBys = []GroupBy{GroupByCategory, GroupByDay, GroupByWeek, GroupByMonth}

var (
	ErrGroupByInvalid = errors.New("the groupBy parameter must be one of category, day, week or month")
	ErrRangeNotSet    = errors.New("both the start and the end of the date range must be set")
)

// Rollup is the aggregated total and purchase count for one bucket.
type Rollup struct {
	Bucket string          `json:"bucket" example:"2024-01"` // Category name or calendar period
	Total  decimal.Decimal `json:"total" example:"327.49"`   // Sum of all purchase amounts in the bucket
	Count  int             `json:"count" example:"14"`       // Number of purchases in the bucket
}

// Aggregate computes rollups for all purchases of the user within the
// inclusive date range.
//
// Time buckets use calendar semantics: months are calendar months and
// weeks start on the given weekday. Bucket ordering is ascending for
// time buckets; category buckets are ordered by total descending with
// ties broken by name.
//
// Amounts are summed with exact decimal arithmetic. A range without
// purchases yields an empty slice, not an error.
func Aggregate(db *gorm.DB, userID uuid.UUID, from, to types.Date, groupBy GroupBy, weekStart time.Weekday) ([]Rollup, error) {
	if !slices.Contains(GroupBys, groupBy) {
		return nil, ErrGroupByInvalid
	}

	if from.IsZero() || to.IsZero() {
		return nil, ErrRangeNotSet
	}

	// An inverted range is empty, not an error
	if from.After(to) {
		return []Rollup{}, nil
	}

	purchases, err := rangePurchases(db, userID, from, to, groupBy == GroupByCategory)
	if err != nil {
		return nil, err
	}

	rollups := make(map[string]*Rollup)
	for _, purchase := range purchases {
		key := bucketKey(purchase, groupBy, weekStart)

		rollup, ok := rollups[key]
		if !ok {
			rollup = &Rollup{Bucket: key, Total: decimal.Zero}
			rollups[key] = rollup
		}

		rollup.Total = rollup.Total.Add(purchase.Amount)
		rollup.Count++
	}

	result := make([]Rollup, 0, len(rollups))
	for _, rollup := range rollups {
		result = append(result, *rollup)
	}

	if groupBy == GroupByCategory {
		sort.Slice(result, func(i, j int) bool {
			if !result[i].Total.Equal(result[j].Total) {
				return result[i].Total.GreaterThan(result[j].Total)
			}
			return result[i].Bucket < result[j].Bucket
		})
	} else {
		// ISO formatted periods sort chronologically as strings
		sort.Slice(result, func(i, j int) bool {
			return result[i].Bucket < result[j].Bucket
		})
	}

	return result, nil
}

// Period is a date range with inclusive bounds.
type Period struct {
	From types.Date `json:"from" example:"2024-01-01"`
	To   types.Date `json:"to" example:"2024-01-31"`
}

// Trend is the period-over-period change of total spending.
type Trend struct {
	CurrentTotal  decimal.Decimal  `json:"currentTotal" example:"50"`   // Total of the current period
	PriorTotal    decimal.Decimal  `json:"priorTotal" example:"0"`      // Total of the prior period
	DeltaAbsolute decimal.Decimal  `json:"deltaAbsolute" example:"50"`  // Absolute change
	DeltaPercent  *decimal.Decimal `json:"deltaPercent" example:"12.5"` // Change in percent, null when the prior total is zero
}

// TrendBetween compares the total spending of two periods. The percent
// change is undefined when the prior period total is zero and reported
// as null in that case.
func TrendBetween(db *gorm.DB, userID uuid.UUID, current, prior Period) (Trend, error) {
	if current.From.IsZero() || current.To.IsZero() || prior.From.IsZero() || prior.To.IsZero() {
		return Trend{}, ErrRangeNotSet
	}

	currentTotal, err := rangeTotal(db, userID, current)
	if err != nil {
		return Trend{}, err
	}

	priorTotal, err := rangeTotal(db, userID, prior)
	if err != nil {
		return Trend{}, err
	}

	trend := Trend{
		CurrentTotal:  currentTotal,
		PriorTotal:    priorTotal,
		DeltaAbsolute: currentTotal.Sub(priorTotal),
	}

	if !priorTotal.IsZero() {
		percent := trend.DeltaAbsolute.Div(priorTotal).Mul(decimal.NewFromInt(100))
		trend.DeltaPercent = &percent
	}

	return trend, nil
}

// bucketKey returns the grouping key of a purchase.
func bucketKey(purchase models.Purchase, groupBy GroupBy, weekStart time.Weekday) string {
	switch groupBy {
	case GroupByCategory:
		return purchase.Category.Name
	case GroupByDay:
		return purchase.Date.String()
	case GroupByWeek:
		return purchase.Date.StartOfWeek(weekStart).String()
	default:
		return types.MonthOf(purchase.Date).String()
	}
}

// rangePurchases loads all purchases of a user in the inclusive range.
func rangePurchases(db *gorm.DB, userID uuid.UUID, from, to types.Date, withCategory bool) ([]models.Purchase, error) {
	q := db.
		Where("user_id = ?", userID).
		Where("date >= ?", from).
		Where("date < ?", to.AddDays(1))

	if withCategory {
		q = q.Preload("Category")
	}

	var purchases []models.Purchase
	err := q.Find(&purchases).Error
	return purchases, err
}

// rangeTotal sums the purchases of a period.
//
// The sum is computed in Go since SQLite coerces DECIMAL columns to
// floats when summing, which loses exactness for currency amounts.
func rangeTotal(db *gorm.DB, userID uuid.UUID, period Period) (decimal.Decimal, error) {
	if period.From.After(period.To) {
		return decimal.Zero, nil
	}

	purchases, err := rangePurchases(db, userID, period.From, period.To, false)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, purchase := range purchases {
		total = total.Add(purchase.Amount)
	}

	return total, nil
}
