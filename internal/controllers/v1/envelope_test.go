package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/duobudget/backend/internal/controllers/v1"
	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestEnvelope(t *testing.T, e v1.EnvelopeEditable, expectedStatus ...int) v1.EnvelopeCreateResponse {
	if e.Name == "" {
		e.Name = uuid.NewString()
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", e)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var envelope v1.EnvelopeCreateResponse
	test.DecodeResponse(t, &r, &envelope)

	return envelope
}

// TestEnvelopesDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestEnvelopesDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestEnvelope(t, v1.EnvelopeEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/envelopes", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.EnvelopeListResponse
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

// TestEnvelopesOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestEnvelopesOptions() {
	tests := []struct {
		name   string
		id     string // path at the envelopes endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Envelope with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Envelope exists", createTestEnvelope(suite.T(), v1.EnvelopeEditable{}).Data[0].ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/envelopes", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesCreateShared() {
	category := "daily"
	allocation := decimal.NewFromFloat(400)

	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Groceries",
		Category:   &category,
		Allocation: &allocation,
	})

	require.Len(suite.T(), envelope.Data, 1)
	assert.False(suite.T(), envelope.Reactivated)

	data := envelope.Data[0]
	assert.Equal(suite.T(), "Groceries", data.Name)
	assert.Equal(suite.T(), "daily", data.Category)
	assert.Nil(suite.T(), data.Owner)
	assert.False(suite.T(), data.Individual)
	assert.False(suite.T(), data.Rollover)
	assert.False(suite.T(), data.Deleted)

	// A new envelope starts the month with its allocation
	assert.True(suite.T(), data.Balance.Equal(allocation), "Balance is %s, should be 400", data.Balance)

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/envelopes/%s", data.ID), data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions?envelope=%s", data.ID), data.Links.Transactions)
}

func (suite *TestSuiteStandard) TestEnvelopesCreateIndividual() {
	allocation := decimal.NewFromFloat(150)

	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Allowance",
		Allocation: &allocation,
		Individual: true,
	})

	require.Len(suite.T(), envelope.Data, 2)

	owners := make([]string, 0, len(envelope.Data))
	for _, data := range envelope.Data {
		assert.Equal(suite.T(), "Allowance", data.Name)
		assert.True(suite.T(), data.Individual)
		assert.True(suite.T(), data.Balance.Equal(allocation), "Balance is %s, should be 150", data.Balance)

		require.NotNil(suite.T(), data.Owner)
		owners = append(owners, *data.Owner)
	}

	assert.ElementsMatch(suite.T(), []string{"alice", "bob"}, owners)
}

func (suite *TestSuiteStandard) TestEnvelopesCreateDefaults() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Vacation"})

	require.Len(suite.T(), envelope.Data, 1)

	data := envelope.Data[0]
	assert.Equal(suite.T(), "uncategorized", data.Category)
	assert.True(suite.T(), data.Allocation.IsZero(), "Allocation is %s, should be 0", data.Allocation)
	assert.True(suite.T(), data.Balance.IsZero(), "Balance is %s, should be 0", data.Balance)
	assert.False(suite.T(), data.Rollover)
}

func (suite *TestSuiteStandard) TestEnvelopesCreateFails() {
	negative := decimal.NewFromFloat(-10)

	tests := []struct {
		name     string
		body     any
		status   int    // expected HTTP status
		contains string // expected string in the error
	}{
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"No body", "", http.StatusBadRequest, "request body must not be empty"},
		{"Negative allocation", v1.EnvelopeEditable{Name: "Impossible", Allocation: &negative}, http.StatusBadRequest, models.ErrInvalidAmount.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/envelopes", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.EnvelopeCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesCreateDuplicateName() {
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"})

	duplicate := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries"}, http.StatusConflict)
	require.NotNil(suite.T(), duplicate.Error)
	assert.Equal(suite.T(), models.ErrEnvelopeNameInUse.Error(), *duplicate.Error)
}

// TestEnvelopesReactivate verifies that creating an envelope with the name of
// a deleted one brings the deleted envelope back.
func (suite *TestSuiteStandard) TestEnvelopesReactivate() {
	allocation := decimal.NewFromFloat(100)

	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Household",
		Allocation: &allocation,
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", envelope.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	newAllocation := decimal.NewFromFloat(250)
	rollover := true

	reactivated := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Household",
		Allocation: &newAllocation,
		Rollover:   &rollover,
	}, http.StatusOK)

	require.Len(suite.T(), reactivated.Data, 1)
	assert.True(suite.T(), reactivated.Reactivated)

	data := reactivated.Data[0]

	// The row is the same resource as before the deletion
	assert.Equal(suite.T(), envelope.Data[0].ID, data.ID)
	assert.False(suite.T(), data.Deleted)
	assert.True(suite.T(), data.Rollover)

	// Reactivation starts the envelope over with the new allocation
	assert.True(suite.T(), data.Allocation.Equal(newAllocation), "Allocation is %s, should be 250", data.Allocation)
	assert.True(suite.T(), data.Balance.Equal(newAllocation), "Balance is %s, should be 250", data.Balance)
}

func (suite *TestSuiteStandard) TestEnvelopesGetAll() {
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Zoo Visits"})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Aquarium"})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Museum", Individual: true})

	deleted := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Retired"})
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", deleted.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	recorder := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.EnvelopeListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	// The individual envelope has one row per person, the deleted one
	// does not show up
	require.Len(suite.T(), response.Data, 4)

	names := make([]string, 0, len(response.Data))
	for _, envelope := range response.Data {
		names = append(names, envelope.Name)
	}

	assert.Equal(suite.T(), []string{"Aquarium", "Museum", "Museum", "Zoo Visits"}, names)
}

func (suite *TestSuiteStandard) TestEnvelopesGetFilter() {
	daily := "daily"
	fun := "fun"

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries", Category: &daily})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Drugstore", Category: &daily})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Cinema", Category: &fun})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"Daily envelopes", "category=daily", 2},
		{"Fun envelopes", "category=fun", 1},
		{"Unknown category", "category=unknown", 0},
		{"No filter", "", 3},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/envelopes?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.EnvelopeListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
		})
	}
}

// TestEnvelopesGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestEnvelopesGetSingle() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Envelope", e.Data[0].ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Envelope with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/envelopes/%s", tt.id), "")

			var envelope v1.EnvelopeResponse
			test.DecodeResponse(t, &r, &envelope)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestEnvelopesDelete() {
	envelope := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Short-lived"})
	path := fmt.Sprintf("http://example.com/v1/envelopes/%s", envelope.Data[0].ID)

	r := test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	// The deleted envelope is still readable for reactivation and history
	r = test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.EnvelopeResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Deleted)

	// Deleting an envelope that is already deleted fails
	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestEnvelopeCategories() {
	daily := "daily"
	fun := "fun"

	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Groceries", Category: &daily})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Drugstore", Category: &daily})
	cinema := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Cinema", Category: &fun})
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Vacation"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"daily", "fun", "uncategorized"}, response.Data)

	// Categories only used by deleted envelopes disappear
	recorder := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", cinema.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/envelopes/categories", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), []string{"daily", "uncategorized"}, response.Data)
}
