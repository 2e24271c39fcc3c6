package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	v1 "github.com/spendlog/backend/internal/controllers/v1"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"
	"github.com/spendlog/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAnalyticsOptions() {
	for _, path := range []string{"aggregate", "trend"} {
		suite.T().Run(path, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, fmt.Sprintf("http://example.com/v1/analytics/%s", path), "", userHeader())
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, "OPTIONS, GET", r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestAggregate() {
	t := suite.T()

	food := createTestCategory(t, v1.CategoryEditable{Name: "Food"})
	transport := createTestCategory(t, v1.CategoryEditable{Name: "Transport"})

	for _, editable := range []v1.PurchaseEditable{
		{Date: types.NewDate(2024, time.January, 1), Amount: decimal.RequireFromString("3.50"), CategoryID: food.Data.ID},
		{Date: types.NewDate(2024, time.January, 1), Amount: decimal.RequireFromString("12.00"), CategoryID: food.Data.ID},
		{Date: types.NewDate(2024, time.January, 2), Amount: decimal.RequireFromString("49.90"), CategoryID: transport.Data.ID},
	} {
		_ = createTestPurchase(t, editable)
	}

	tests := []struct {
		name    string
		groupBy string
		buckets []string
	}{
		{"By category", "category", []string{"Transport", "Food"}},
		{"By day", "day", []string{"2024-01-01", "2024-01-02"}},
		{"By week", "week", []string{"2024-01-01"}},
		{"By month", "month", []string{"2024-01"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			url := fmt.Sprintf("http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=%s", tt.groupBy)
			r := test.Request(t, http.MethodGet, url, "", userHeader())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.AggregateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.buckets))

			for i, bucket := range tt.buckets {
				assert.Equal(t, bucket, response.Data[i].Bucket)
			}
		})
	}
}

// TestAggregateTotals verifies the totals and counts of the rollups.
func (suite *TestSuiteStandard) TestAggregateTotals() {
	t := suite.T()

	food := createTestCategory(t, v1.CategoryEditable{Name: "Food"})

	for _, amount := range []string{"3.50", "12.00"} {
		_ = createTestPurchase(t, v1.PurchaseEditable{
			Date:       types.NewDate(2024, time.January, 1),
			Amount:     decimal.RequireFromString(amount),
			CategoryID: food.Data.ID,
		})
	}

	r := test.Request(t, http.MethodGet, "http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=category", "", userHeader())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AggregateResponse
	test.DecodeResponse(t, &r, &response)
	require.Len(t, response.Data, 1)

	assert.Equal(t, "Food", response.Data[0].Bucket)
	assert.True(t, response.Data[0].Total.Equal(decimal.RequireFromString("15.50")))
	assert.Equal(t, 2, response.Data[0].Count)
}

// TestAggregateWeekStart verifies that weekly buckets respect the
// per-user week start setting.
func (suite *TestSuiteStandard) TestAggregateWeekStart() {
	t := suite.T()

	c := createTestCategory(t, v1.CategoryEditable{Name: "Food"})

	// 2024-01-07 is a Sunday
	_ = createTestPurchase(t, v1.PurchaseEditable{
		Date:       types.NewDate(2024, time.January, 7),
		Amount:     decimal.NewFromInt(1),
		CategoryID: c.Data.ID,
	})

	url := "http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=week"

	r := test.Request(t, http.MethodGet, url, "", userHeader())
	var response v1.AggregateResponse
	test.DecodeResponse(t, &r, &response)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "2024-01-01", response.Data[0].Bucket, "weeks start on Monday by default")

	patch := test.Request(t, http.MethodPatch, "http://example.com/v1/settings", map[string]string{"weekStart": "sunday"}, userHeader())
	test.AssertHTTPStatus(t, &patch, http.StatusOK)

	r = test.Request(t, http.MethodGet, url, "", userHeader())
	test.DecodeResponse(t, &r, &response)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "2024-01-07", response.Data[0].Bucket)
}

// TestAggregateErrors verifies the parameter validation.
func (suite *TestSuiteStandard) TestAggregateErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing from", "until=2024-01-31&groupBy=day", "the from parameter must be set"},
		{"Missing until", "from=2024-01-01&groupBy=day", "the until parameter must be set"},
		{"Invalid groupBy", "from=2024-01-01&until=2024-01-31&groupBy=year", "groupBy parameter must be one of"},
		{"Invalid date", "from=01.02.2024&until=2024-01-31&groupBy=day", "query string contains unparseable data"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/aggregate?%s", tt.query), "", userHeader())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err)
		})
	}
}

// TestAggregateInvalidLeavesNoSettings verifies that a rejected request
// does not persist a settings row as a side effect.
func (suite *TestSuiteStandard) TestAggregateInvalidLeavesNoSettings() {
	t := suite.T()

	r := test.Request(t, http.MethodGet, "http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=bogus", "", userHeader())
	test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

	var count int64
	require.Nil(t, models.DB.Model(&models.Settings{}).Count(&count).Error)
	assert.Zero(t, count)
}

func (suite *TestSuiteStandard) TestAggregateEmptyRange() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=day", "", userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.AggregateResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Empty(suite.T(), response.Data)
}

func (suite *TestSuiteStandard) TestTrend() {
	t := suite.T()

	c := createTestCategory(t, v1.CategoryEditable{Name: "Food"})

	for _, p := range []struct {
		day    int
		amount string
	}{
		{1, "10.00"},
		{5, "5.00"},
		{10, "12.00"},
	} {
		_ = createTestPurchase(t, v1.PurchaseEditable{
			Date:       types.NewDate(2024, time.January, p.day),
			Amount:     decimal.RequireFromString(p.amount),
			CategoryID: c.Data.ID,
		})
	}

	url := "http://example.com/v1/analytics/trend?from=2024-01-08&until=2024-01-14&priorFrom=2024-01-01&priorUntil=2024-01-07"
	r := test.Request(t, http.MethodGet, url, "", userHeader())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	assert.True(t, response.Data.CurrentTotal.Equal(decimal.NewFromInt(12)))
	assert.True(t, response.Data.PriorTotal.Equal(decimal.NewFromInt(15)))
	assert.True(t, response.Data.DeltaAbsolute.Equal(decimal.NewFromInt(-3)))
	require.NotNil(t, response.Data.DeltaPercent)
	assert.True(t, response.Data.DeltaPercent.Equal(decimal.NewFromInt(-20)))
}

// TestTrendPriorZero verifies that the percentage change is null when
// the prior period has no spending.
func (suite *TestSuiteStandard) TestTrendPriorZero() {
	t := suite.T()

	_ = createTestPurchase(t, v1.PurchaseEditable{
		Date:   types.NewDate(2024, time.January, 10),
		Amount: decimal.NewFromInt(12),
	})

	url := "http://example.com/v1/analytics/trend?from=2024-01-08&until=2024-01-14&priorFrom=2024-01-01&priorUntil=2024-01-07"
	r := test.Request(t, http.MethodGet, url, "", userHeader())
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.TrendResponse
	test.DecodeResponse(t, &r, &response)
	require.NotNil(t, response.Data)

	assert.True(t, response.Data.PriorTotal.IsZero())
	assert.Nil(t, response.Data.DeltaPercent)
}

func (suite *TestSuiteStandard) TestTrendErrors() {
	tests := []struct {
		name  string
		query string
		err   string
	}{
		{"Missing current from", "until=2024-01-14&priorFrom=2024-01-01&priorUntil=2024-01-07", "the from parameter must be set"},
		{"Missing prior until", "from=2024-01-08&until=2024-01-14&priorFrom=2024-01-01", "the until parameter must be set"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/analytics/trend?%s", tt.query), "", userHeader())
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
			assert.Contains(t, r.Body.String(), tt.err)
		})
	}
}

// TestAnalyticsUserScoping verifies that aggregation only includes the
// requesting user's purchases.
func (suite *TestSuiteStandard) TestAnalyticsUserScoping() {
	t := suite.T()

	_ = createTestPurchase(t, v1.PurchaseEditable{
		Date:   types.NewDate(2024, time.January, 1),
		Amount: decimal.NewFromInt(10),
	})

	r := test.Request(t, http.MethodGet, "http://example.com/v1/analytics/aggregate?from=2024-01-01&until=2024-01-31&groupBy=day", "", userHeader(uuid.New()))
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.AggregateResponse
	test.DecodeResponse(t, &r, &response)
	assert.Empty(t, response.Data)
}
