package importer_test

import (
	"github.com/spendlog/backend/internal/importer"
	"github.com/spendlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestCommit() {
	t := suite.T()

	_ = suite.createTestCategory(models.Category{Name: "Food"})

	rows := []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "Food"),
		testRow(2, 2, "Transit pass", "49.90", "Transport"),
		testRow(3, 3, "Taxi", "17.00", "Transport"),
	}

	batch, err := importer.Stage(models.DB, testUser, rows, nil)
	require.Nil(t, err)

	purchases, err := importer.Commit(models.DB, batch)
	require.Nil(t, err)
	require.Len(t, purchases, 3)

	// Purchases come back in row order with resolved categories
	assert.Equal(t, "Coffee", purchases[0].Description)
	assert.NotEqual(t, purchases[0].CategoryID, purchases[1].CategoryID)
	assert.Equal(t, purchases[1].CategoryID, purchases[2].CategoryID, "both Transport rows must reference the same new category")

	transport, err := models.CategoryByName(models.DB, testUser, "Transport")
	require.Nil(t, err)
	assert.Equal(t, transport.ID, purchases[1].CategoryID)

	var count int64
	_ = models.DB.Model(&models.Purchase{}).Where("user_id = ?", testUser).Count(&count).Error
	assert.Equal(t, int64(3), count)
}

// TestCommitIdempotent verifies that importing the same rows twice
// does not create duplicates.
func (suite *TestSuiteStandard) TestCommitIdempotent() {
	t := suite.T()

	rows := []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "Food"),
		testRow(2, 2, "Tea", "2.00", "Food"),
	}

	batch, err := importer.Stage(models.DB, testUser, rows, nil)
	require.Nil(t, err)

	_, err = importer.Commit(models.DB, batch)
	require.Nil(t, err)

	// The second run rejects everything as duplicates
	batch, err = importer.Stage(models.DB, testUser, rows, nil)
	require.Nil(t, err)

	assert.Empty(t, batch.Purchases)
	assert.Len(t, batch.Rejected, 2)

	purchases, err := importer.Commit(models.DB, batch)
	require.Nil(t, err)
	assert.Empty(t, purchases)

	var count int64
	_ = models.DB.Model(&models.Purchase{}).Where("user_id = ?", testUser).Count(&count).Error
	assert.Equal(t, int64(2), count)
}

// TestCommitRollsBack verifies that nothing is persisted when any row
// of the batch cannot be created.
func (suite *TestSuiteStandard) TestCommitRollsBack() {
	t := suite.T()

	batch, err := importer.Stage(models.DB, testUser, []importer.Row{
		testRow(1, 1, "Coffee", "3.50", "Food"),
		testRow(2, 2, "Tea", "2.00", "Drinks"),
	}, nil)
	require.Nil(t, err)

	// A category created between staging and committing makes the
	// staged category collide
	_ = suite.createTestCategory(models.Category{Name: "Drinks"})

	_, err = importer.Commit(models.DB, batch)
	require.NotNil(t, err)
	assert.ErrorIs(t, err, models.ErrCategoryNameNotUnique)

	var count int64
	_ = models.DB.Model(&models.Purchase{}).Where("user_id = ?", testUser).Count(&count).Error
	assert.Equal(t, int64(0), count, "no purchases must be created when the transaction rolls back")
}
