package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/spendlog/backend/internal/controllers/v1"
	"github.com/spendlog/backend/internal/models"
	"github.com/spendlog/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestMatchRule(t *testing.T, m v1.MatchRuleEditable, expectedStatus ...int) v1.MatchRuleResponse {
	if m.CategoryID == uuid.Nil {
		m.CategoryID = createTestCategory(t, v1.CategoryEditable{}).Data.ID
	}

	if m.Match == "" {
		m.Match = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.MatchRuleEditable{m}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", body, userHeader())
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var matchRule v1.MatchRuleCreateResponse
	test.DecodeResponse(t, &r, &matchRule)

	if r.Code == http.StatusCreated {
		return matchRule.Data[0]
	}

	return v1.MatchRuleResponse{}
}

// TestMatchRulesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestMatchRulesDBClosed() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestMatchRule(t, v1.MatchRuleEditable{CategoryID: c.Data.ID}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/match-rules", "", userHeader())
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.MatchRuleListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestMatchRulesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestMatchRulesOptions() {
	tests := []struct {
		name   string
		id     string // path at the match rules endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No MatchRule with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"MatchRule exists", createTestMatchRule(suite.T(), v1.MatchRuleEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/match-rules", tt.id)
			r := test.Request(t, http.MethodOptions, path, "", userHeader())
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesCreate() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})

	m := createTestMatchRule(suite.T(), v1.MatchRuleEditable{
		Priority:   2,
		Match:      "Bakery*",
		CategoryID: c.Data.ID,
	})

	require.NotNil(suite.T(), m.Data)
	assert.Equal(suite.T(), uint(2), m.Data.Priority)
	assert.Equal(suite.T(), "Bakery*", m.Data.Match)
	assert.Equal(suite.T(), c.Data.ID, m.Data.CategoryID)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/match-rules/%s", m.Data.ID), m.Data.Links.Self)
}

// TestMatchRulesCreateErrors verifies that erroneous create requests
// return the correct status and error.
func (suite *TestSuiteStandard) TestMatchRulesCreateErrors() {
	otherUsersCategory := models.Category{UserID: uuid.New(), Name: "Not yours"}
	require.Nil(suite.T(), models.DB.Create(&otherUsersCategory).Error)

	tests := []struct {
		name   string
		body   any
		status int
		err    string
	}{
		{
			"Category does not exist",
			[]v1.MatchRuleEditable{{Match: "Bakery*", CategoryID: uuid.New()}},
			http.StatusNotFound,
			"there is no category matching your query",
		},
		{
			"Category of another user",
			[]v1.MatchRuleEditable{{Match: "Bakery*", CategoryID: otherUsersCategory.ID}},
			http.StatusBadRequest,
			models.ErrCategoryNotOwned.Error(),
		},
		{
			"Broken body",
			`{ "match": }`,
			http.StatusBadRequest,
			"invalid or un-parseable data",
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/match-rules", tt.body, userHeader())
			test.AssertHTTPStatus(t, &r, tt.status)
			assert.Contains(t, r.Body.String(), tt.err)
		})
	}
}

// TestMatchRulesSorting verifies that match rules are returned in
// application order.
func (suite *TestSuiteStandard) TestMatchRulesSorting() {
	c := createTestCategory(suite.T(), v1.CategoryEditable{})

	for _, editable := range []v1.MatchRuleEditable{
		{Priority: 2, Match: "Grocery*", CategoryID: c.Data.ID},
		{Priority: 1, Match: "Coffee*", CategoryID: c.Data.ID},
		{Priority: 1, Match: "Bakery*", CategoryID: c.Data.ID},
	} {
		_ = createTestMatchRule(suite.T(), editable)
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/match-rules", "", userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.MatchRuleListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.Len(suite.T(), response.Data, 3)

	assert.Equal(suite.T(), "Bakery*", response.Data[0].Match)
	assert.Equal(suite.T(), "Coffee*", response.Data[1].Match)
	assert.Equal(suite.T(), "Grocery*", response.Data[2].Match)
}

func (suite *TestSuiteStandard) TestMatchRulesGetFiltered() {
	food := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Food"})
	transport := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})

	for _, editable := range []v1.MatchRuleEditable{
		{Priority: 1, Match: "Bakery*", CategoryID: food.Data.ID},
		{Priority: 1, Match: "Coffee*", CategoryID: food.Data.ID},
		{Priority: 2, Match: "Taxi*", CategoryID: transport.Data.ID},
	} {
		_ = createTestMatchRule(suite.T(), editable)
	}

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Priority", "priority=1", 2},
		{"Match", "match=Taxi", 1},
		{"Category", fmt.Sprintf("category=%s", food.Data.ID), 2},
		{"Limit", "limit=1", 1},
		{"No filter", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/match-rules?%s", tt.query), "", userHeader())
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.MatchRuleListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.len)
		})
	}
}

func (suite *TestSuiteStandard) TestMatchRulesUpdate() {
	m := createTestMatchRule(suite.T(), v1.MatchRuleEditable{Priority: 1, Match: "Bakery*"})

	r := test.Request(suite.T(), http.MethodPatch, m.Data.Links.Self, map[string]any{
		"priority": 5,
	}, userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodGet, m.Data.Links.Self, "", userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.MatchRuleResponse
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), uint(5), updated.Data.Priority)
	assert.Equal(suite.T(), "Bakery*", updated.Data.Match, "match must be unchanged")
}

// TestMatchRulesUpdateCategory verifies that the category reference is
// checked when it is updated.
func (suite *TestSuiteStandard) TestMatchRulesUpdateCategory() {
	m := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	otherUsersCategory := models.Category{UserID: uuid.New(), Name: "Not yours"}
	require.Nil(suite.T(), models.DB.Create(&otherUsersCategory).Error)

	r := test.Request(suite.T(), http.MethodPatch, m.Data.Links.Self, map[string]string{
		"categoryId": otherUsersCategory.ID.String(),
	}, userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	assert.Contains(suite.T(), r.Body.String(), models.ErrCategoryNotOwned.Error())
}

func (suite *TestSuiteStandard) TestMatchRulesDelete() {
	m := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	r := test.Request(suite.T(), http.MethodDelete, m.Data.Links.Self, "", userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, m.Data.Links.Self, "", userHeader())
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestMatchRulesUserScoping verifies that match rules of other users
// are neither readable nor writable.
func (suite *TestSuiteStandard) TestMatchRulesUserScoping() {
	m := createTestMatchRule(suite.T(), v1.MatchRuleEditable{})

	otherUser := uuid.New()

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		suite.T().Run(method, func(t *testing.T) {
			r := test.Request(t, method, m.Data.Links.Self, "", userHeader(otherUser))
			test.AssertHTTPStatus(t, &r, http.StatusNotFound)
		})
	}
}
