package importer_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/spendlog/backend/internal/importer"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRow(row int, day int, description, amount, category string) importer.Row {
	return importer.Row{
		Row:         row,
		Date:        types.NewDate(2024, time.January, day),
		Description: description,
		Amount:      decimal.RequireFromString(amount),
		Category:    category,
	}
}

func (suite *TestSuiteStandard) TestStageResolvesCategories() {
	t := suite.T()

	food := suite.createTestCategory(models.Category{Name: "Food"})

	rows := []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "food"),
		testRow(2, 2, "Transit pass", "49.90", "Transport"),
		testRow(3, 3, "Taxi", "17.00", "Transport"),
	}

	batch, err := importer.Stage(models.DB, testUser, rows, nil)
	require.Nil(t, err)

	require.Len(t, batch.Purchases, 3)
	assert.Empty(t, batch.Rejected)

	// Existing categories are matched case-insensitively
	assert.Equal(t, "Food", batch.Purchases[0].CategoryName)
	assert.Equal(t, food.ID, batch.Purchases[0].Purchase.CategoryID)

	// Unknown names are staged for creation exactly once
	assert.Equal(t, []string{"Transport"}, batch.NewCategories)
	assert.Equal(t, "Transport", batch.Purchases[1].CategoryName)
	assert.Equal(t, "Transport", batch.Purchases[2].CategoryName)

	// Staging persists nothing
	var count int64
	_ = models.DB.Model(&models.Category{}).Where("user_id = ?", testUser).Count(&count).Error
	assert.Equal(t, int64(1), count)
}

func (suite *TestSuiteStandard) TestStageDefaultCategory() {
	t := suite.T()

	batch, err := importer.Stage(models.DB, testUser, []importer.Row{
		testRow(1, 1, "Cinema tickets", "21.00", ""),
	}, nil)
	require.Nil(t, err)

	require.Len(t, batch.Purchases, 1)
	assert.Equal(t, models.DefaultCategoryName, batch.Purchases[0].CategoryName)
	assert.Equal(t, []string{models.DefaultCategoryName}, batch.NewCategories)
}

// TestStageMatchRules verifies that rows without a category are run
// through the user's match rules in priority order.
func (suite *TestSuiteStandard) TestStageMatchRules() {
	t := suite.T()

	food := suite.createTestCategory(models.Category{Name: "Food"})
	transport := suite.createTestCategory(models.Category{Name: "Transport"})

	for _, rule := range []models.MatchRule{
		{UserID: testUser, CategoryID: transport.ID, Priority: 2, Match: "*"},
		{UserID: testUser, CategoryID: food.ID, Priority: 1, Match: "bakery*"},
	} {
		require.Nil(t, models.DB.Create(&rule).Error)
	}

	batch, err := importer.Stage(models.DB, testUser, []importer.Row{
		testRow(1, 1, "Bakery Smith", "12.00", ""),
		testRow(2, 2, "Taxi ride", "17.00", ""),
		testRow(3, 3, "Coffee", "3.50", "Snacks"),
	}, nil)
	require.Nil(t, err)
	require.Len(t, batch.Purchases, 3)

	assert.Equal(t, "Food", batch.Purchases[0].CategoryName, "the lower priority number wins")
	assert.Equal(t, "Transport", batch.Purchases[1].CategoryName)
	assert.Equal(t, "Snacks", batch.Purchases[2].CategoryName, "explicit categories are not matched against rules")
}

func (suite *TestSuiteStandard) TestStageDuplicates() {
	t := suite.T()

	category := suite.createTestCategory(models.Category{Name: "Food"})

	existing := models.Purchase{
		UserID:      testUser,
		CategoryID:  category.ID,
		Date:        types.NewDate(2024, time.January, 1),
		Description: "Coffee",
		Amount:      decimal.RequireFromString("3.50"),
	}
	require.Nil(t, models.DB.Create(&existing).Error)

	rows := []importer.Row{
		// Duplicate of the existing purchase, in an equivalent representation
		testRow(1, 1, " COFFEE ", "3.5", "Food"),
		testRow(2, 2, "Tea", "2.00", "Food"),
		// Duplicate of row 2 within the same batch
		testRow(3, 2, "tea", "2.00", "Food"),
		// Same description and amount on another day is no duplicate
		testRow(4, 3, "Tea", "2.00", "Food"),
	}

	batch, err := importer.Stage(models.DB, testUser, rows, nil)
	require.Nil(t, err)

	require.Len(t, batch.Purchases, 2)
	assert.Equal(t, 2, batch.Purchases[0].Row)
	assert.Equal(t, 4, batch.Purchases[1].Row)

	require.Len(t, batch.Rejected, 2)
	assert.Equal(t, 1, batch.Rejected[0].Row)
	assert.Equal(t, importer.StatusRejectedDuplicate, batch.Rejected[0].Status)
	assert.Equal(t, 3, batch.Rejected[1].Row)
	assert.Contains(t, batch.Rejected[1].Reason, "duplicate of row 2")
}

// TestStageUserScoping verifies that purchases of other users do not
// count as duplicates.
func (suite *TestSuiteStandard) TestStageUserScoping() {
	t := suite.T()

	otherUser := uuid.New()
	category := suite.createTestCategory(models.Category{Name: "Food", UserID: otherUser})

	existing := models.Purchase{
		UserID:      otherUser,
		CategoryID:  category.ID,
		Date:        types.NewDate(2024, time.January, 1),
		Description: "Coffee",
		Amount:      decimal.RequireFromString("3.50"),
	}
	require.Nil(t, models.DB.Create(&existing).Error)

	batch, err := importer.Stage(models.DB, testUser, []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "Food"),
	}, nil)
	require.Nil(t, err)

	assert.Len(t, batch.Purchases, 1)
	assert.Empty(t, batch.Rejected)
}

func (suite *TestSuiteStandard) TestStageMergesParseRejections() {
	t := suite.T()

	parseRejections := []importer.Rejection{
		{Row: 2, Status: importer.StatusRejectedInvalid, Reason: "could not parse amount: \"x\" is not a decimal number"},
	}

	batch, err := importer.Stage(models.DB, testUser, []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "Food"),
		testRow(3, 1, "coffee", "3.50", "Food"),
	}, parseRejections)
	require.Nil(t, err)

	require.Len(t, batch.Rejected, 2)
	assert.Equal(t, 2, batch.Rejected[0].Row, "rejections must be sorted by row number")
	assert.Equal(t, importer.StatusRejectedInvalid, batch.Rejected[0].Status)
	assert.Equal(t, 3, batch.Rejected[1].Row)
	assert.Equal(t, importer.StatusRejectedDuplicate, batch.Rejected[1].Status)
}

func (suite *TestSuiteStandard) TestStageEmpty() {
	batch, err := importer.Stage(models.DB, testUser, nil, nil)
	require.Nil(suite.T(), err)

	assert.Empty(suite.T(), batch.Purchases)
	assert.Empty(suite.T(), batch.Rejected)
	assert.Empty(suite.T(), batch.NewCategories)
}
