package models_test

import (
	"github.com/google/uuid"
	"github.com/spendlog/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

// TestQueryErrorMessages verifies that "record not found" errors
// reference the resource that was not found.
func (suite *TestSuiteStandard) TestQueryErrorMessages() {
	err := models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no category matching your query", err.Error())

	err = models.DB.First(&models.Purchase{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no purchase matching your query", err.Error())

	err = models.DB.First(&models.MatchRule{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
	assert.Equal(suite.T(), "there is no match rule matching your query", err.Error())
}

// TestDBClosedError verifies that unexpected database errors are
// replaced with a general error message.
func (suite *TestSuiteStandard) TestDBClosedError() {
	suite.CloseDB()

	err := models.DB.First(&models.Category{}, "id = ?", uuid.New()).Error
	assert.ErrorIs(suite.T(), err, models.ErrGeneral)
}
