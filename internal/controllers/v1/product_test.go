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

func createTestProduct(t *testing.T, p v1.ProductEditable, expectedStatus ...int) v1.ProductResponse {
	if p.Name == "" {
		p.Name = uuid.NewString()
	}

	if p.Envelope == "" {
		allocation := decimal.NewFromFloat(100)
		p.Envelope = createTestEnvelope(t, v1.EnvelopeEditable{Allocation: &allocation}).Data[0].Name
	}

	if p.TotalPrice.IsZero() {
		p.TotalPrice = decimal.NewFromFloat(36)
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/products", p)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var product v1.ProductResponse
	test.DecodeResponse(t, &r, &product)

	return product
}

// TestProductsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProductsDBClosed() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProduct(t, v1.ProductEditable{Envelope: e.Data[0].Name}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/products", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProductListResponse
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

// TestProductsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestProductsOptions() {
	tests := []struct {
		name   string
		id     string // path at the products endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No Product with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Product exists", createTestProduct(suite.T(), v1.ProductEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/products", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestProductsOptionsConsume verifies that OPTIONS requests for the consume
// endpoint are handled correctly.
func (suite *TestSuiteStandard) TestProductsOptionsConsume() {
	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"No Product with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Product exists", createTestProduct(suite.T(), v1.ProductEditable{}).Data.ID.String(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("http://example.com/v1/products/%s/consume", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, POST", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestProductsCreate() {
	allocation := decimal.NewFromFloat(100)
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Beverages", Allocation: &allocation})

	product := createTestProduct(suite.T(), v1.ProductEditable{
		Name:       "Beer",
		Envelope:   "Beverages",
		TotalPrice: decimal.NewFromFloat(36),
		Quantity:   24,
	})

	require.NotNil(suite.T(), product.Data)

	data := *product.Data
	assert.Equal(suite.T(), "Beer", data.Name)
	assert.Equal(suite.T(), e.Data[0].ID, data.EnvelopeID)
	assert.Equal(suite.T(), "Beverages", data.EnvelopeName)
	assert.Equal(suite.T(), 24, data.Quantity)
	assert.True(suite.T(), data.TotalPrice.Equal(decimal.NewFromFloat(36)), "TotalPrice is %s, should be 36", data.TotalPrice)
	assert.True(suite.T(), data.UnitPrice.Equal(decimal.NewFromFloat(1.5)), "UnitPrice is %s, should be 1.5", data.UnitPrice)

	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/products/%s", data.ID), data.Links.Self)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/envelopes/%s", data.EnvelopeID), data.Links.Envelope)
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/products/%s/consume", data.ID), data.Links.Consume)
}

func (suite *TestSuiteStandard) TestProductsCreateDefaults() {
	product := createTestProduct(suite.T(), v1.ProductEditable{TotalPrice: decimal.NewFromFloat(4.2)})

	require.NotNil(suite.T(), product.Data)

	// An omitted quantity means a single unit
	assert.Equal(suite.T(), 1, product.Data.Quantity)
	assert.True(suite.T(), product.Data.UnitPrice.Equal(decimal.NewFromFloat(4.2)), "UnitPrice is %s, should be 4.2", product.Data.UnitPrice)
}

func (suite *TestSuiteStandard) TestProductsCreateFails() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})
	envelopeName := e.Data[0].Name

	tests := []struct {
		name     string
		body     any
		status   int    // expected HTTP status
		contains string // expected string in the error
	}{
		{"Broken body", `{ "name": 2" }`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"No body", "", http.StatusBadRequest, "request body must not be empty"},
		{"Unknown envelope", v1.ProductEditable{Name: "Orphan", Envelope: "No such envelope", TotalPrice: decimal.NewFromFloat(10)}, http.StatusNotFound, "there is no envelope matching your query"},
		{"Price missing", v1.ProductEditable{Name: "Free", Envelope: envelopeName}, http.StatusBadRequest, models.ErrInvalidAmount.Error()},
		{"Negative price", v1.ProductEditable{Name: "Paid to take", Envelope: envelopeName, TotalPrice: decimal.NewFromFloat(-3)}, http.StatusBadRequest, models.ErrInvalidAmount.Error()},
		{"Negative quantity", v1.ProductEditable{Name: "Antimatter", Envelope: envelopeName, TotalPrice: decimal.NewFromFloat(10), Quantity: -2}, http.StatusBadRequest, models.ErrQuantityInvalid.Error()},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/products", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProductResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestProductsCreateDuplicateName() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Beer", Envelope: e.Data[0].Name})

	duplicate := createTestProduct(suite.T(), v1.ProductEditable{Name: "Beer", Envelope: e.Data[0].Name}, http.StatusConflict)
	require.NotNil(suite.T(), duplicate.Error)
	assert.Equal(suite.T(), models.ErrProductNameInUse.Error(), *duplicate.Error)
}

func (suite *TestSuiteStandard) TestProductsGetAll() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{})

	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Wine", Envelope: e.Data[0].Name})
	_ = createTestProduct(suite.T(), v1.ProductEditable{Name: "Beer", Envelope: e.Data[0].Name})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/products", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "Beer", response.Data[0].Name)
	assert.Equal(suite.T(), "Wine", response.Data[1].Name)
}

// TestProductsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestProductsGetSingle() {
	p := createTestProduct(suite.T(), v1.ProductEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Product", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Product with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/products/%s", tt.id), "")

			var product v1.ProductResponse
			test.DecodeResponse(t, &r, &product)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProductsUpdate() {
	_ = createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Beverages"})
	target := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Treats"})

	product := createTestProduct(suite.T(), v1.ProductEditable{
		Name:       "Beer",
		Envelope:   "Beverages",
		TotalPrice: decimal.NewFromFloat(36),
		Quantity:   24,
	})
	path := fmt.Sprintf("http://example.com/v1/products/%s", product.Data.ID)

	newPrice := decimal.NewFromFloat(40)
	r := test.Request(suite.T(), http.MethodPatch, path, v1.ProductPatch{TotalPrice: &newPrice})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProductResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	// The unit price follows the pack price, untouched attributes stay
	assert.True(suite.T(), response.Data.TotalPrice.Equal(newPrice), "TotalPrice is %s, should be 40", response.Data.TotalPrice)
	assert.True(suite.T(), response.Data.UnitPrice.Equal(newPrice.Div(decimal.NewFromInt(24))), "UnitPrice is %s, should be 40/24", response.Data.UnitPrice)
	assert.Equal(suite.T(), 24, response.Data.Quantity)
	assert.Equal(suite.T(), "Beverages", response.Data.EnvelopeName)

	// Re-anchoring to another envelope
	treats := "Treats"
	r = test.Request(suite.T(), http.MethodPatch, path, v1.ProductPatch{Envelope: &treats})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.Equal(suite.T(), target.Data[0].ID, response.Data.EnvelopeID)
	assert.Equal(suite.T(), "Treats", response.Data.EnvelopeName)
}

func (suite *TestSuiteStandard) TestProductsUpdateFails() {
	product := createTestProduct(suite.T(), v1.ProductEditable{})
	path := fmt.Sprintf("http://example.com/v1/products/%s", product.Data.ID)

	zero := decimal.Decimal{}
	zeroQuantity := 0
	unknown := "No such envelope"

	tests := []struct {
		name     string
		path     string
		body     any
		status   int    // expected HTTP status
		contains string // expected string in the error
	}{
		{"Broken body", path, `{ "quantity": 2" }`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"No body", path, "", http.StatusBadRequest, "request body must not be empty"},
		{"No Product with this ID", fmt.Sprintf("http://example.com/v1/products/%s", uuid.New()), v1.ProductPatch{}, http.StatusNotFound, "there is no product matching your query"},
		{"Price to zero", path, v1.ProductPatch{TotalPrice: &zero}, http.StatusBadRequest, models.ErrInvalidAmount.Error()},
		{"Quantity to zero", path, v1.ProductPatch{Quantity: &zeroQuantity}, http.StatusBadRequest, models.ErrQuantityInvalid.Error()},
		{"Unknown envelope", path, v1.ProductPatch{Envelope: &unknown}, http.StatusNotFound, "there is no envelope matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ProductResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}
}

func (suite *TestSuiteStandard) TestProductsDelete() {
	allocation := decimal.NewFromFloat(100)
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Allocation: &allocation})
	product := createTestProduct(suite.T(), v1.ProductEditable{Envelope: e.Data[0].Name, TotalPrice: decimal.NewFromFloat(5)})
	path := fmt.Sprintf("http://example.com/v1/products/%s", product.Data.ID)

	// Consume once so there is a ledger entry for the product
	r := test.Request(suite.T(), http.MethodPost, path+"/consume", v1.ProductConsume{User: "alice"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// Deleting a product that does not exist anymore fails
	r = test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The consumption stays in the ledger, it belongs to the envelope
	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?envelope=%s", e.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)
	assert.Len(suite.T(), transactions.Data, 1)
}

func (suite *TestSuiteStandard) TestProductsConsume() {
	allocation := decimal.NewFromFloat(100)
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Beverages", Allocation: &allocation})

	product := createTestProduct(suite.T(), v1.ProductEditable{
		Name:       "Beer",
		Envelope:   "Beverages",
		TotalPrice: decimal.NewFromFloat(36),
		Quantity:   24,
	})
	path := fmt.Sprintf("http://example.com/v1/products/%s/consume", product.Data.ID)

	r := test.Request(suite.T(), http.MethodPost, path, v1.ProductConsume{User: "alice"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ConsumptionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	// An omitted quantity books a single unit
	assert.Equal(suite.T(), 1, response.Data.Quantity)
	assert.Equal(suite.T(), "Beer", response.Data.Product.Name)

	booking := response.Data.Booking
	assert.Equal(suite.T(), "Beer x1", booking.Transaction.Description)
	assert.Equal(suite.T(), models.TransactionTypeSpend, booking.Transaction.Type)
	assert.Equal(suite.T(), "alice", booking.Transaction.User)
	assert.Equal(suite.T(), e.Data[0].ID, booking.Transaction.EnvelopeID)
	assert.True(suite.T(), booking.Transaction.Amount.Equal(decimal.NewFromFloat(1.5)), "Amount is %s, should be 1.5", booking.Transaction.Amount)
	assert.True(suite.T(), booking.NewBalance.Equal(decimal.NewFromFloat(98.5)), "NewBalance is %s, should be 98.5", booking.NewBalance)

	// Multiple units book the multiple of the unit price
	r = test.Request(suite.T(), http.MethodPost, path, v1.ProductConsume{User: "bob", Quantity: 4})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), 4, response.Data.Quantity)
	assert.Equal(suite.T(), "Beer x4", response.Data.Booking.Transaction.Description)
	assert.True(suite.T(), response.Data.Booking.Transaction.Amount.Equal(decimal.NewFromFloat(6)), "Amount is %s, should be 6", response.Data.Booking.Transaction.Amount)
	assert.True(suite.T(), response.Data.Booking.NewBalance.Equal(decimal.NewFromFloat(92.5)), "NewBalance is %s, should be 92.5", response.Data.Booking.NewBalance)
}

// TestProductsConsumeIndividual verifies that consumption against an
// individual envelope books on the consuming person's own instance.
func (suite *TestSuiteStandard) TestProductsConsumeIndividual() {
	allocation := decimal.NewFromFloat(50)
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{
		Name:       "Snacks",
		Allocation: &allocation,
		Individual: true,
	})

	var bobInstance v1.Envelope
	for _, data := range e.Data {
		if data.Owner != nil && *data.Owner == "bob" {
			bobInstance = data
		}
	}

	product := createTestProduct(suite.T(), v1.ProductEditable{
		Name:       "Chocolate",
		Envelope:   "Snacks",
		TotalPrice: decimal.NewFromFloat(2.5),
	})

	r := test.Request(suite.T(), http.MethodPost, fmt.Sprintf("http://example.com/v1/products/%s/consume", product.Data.ID), v1.ProductConsume{User: "bob", Quantity: 2})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusCreated)

	var response v1.ConsumptionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)

	assert.Equal(suite.T(), bobInstance.ID, response.Data.Booking.Transaction.EnvelopeID)
	assert.True(suite.T(), response.Data.Booking.NewBalance.Equal(decimal.NewFromFloat(45)), "NewBalance is %s, should be 45", response.Data.Booking.NewBalance)
}

func (suite *TestSuiteStandard) TestProductsConsumeFails() {
	e := createTestEnvelope(suite.T(), v1.EnvelopeEditable{Name: "Disposable"})
	product := createTestProduct(suite.T(), v1.ProductEditable{Envelope: "Disposable"})
	path := fmt.Sprintf("http://example.com/v1/products/%s/consume", product.Data.ID)

	tests := []struct {
		name     string
		path     string
		body     any
		status   int    // expected HTTP status
		contains string // expected string in the error
	}{
		{"Broken body", path, `{ "quantity": 2" }`, http.StatusBadRequest, "invalid or un-parseable data"},
		{"No body", path, "", http.StatusBadRequest, "request body must not be empty"},
		{"No user", path, v1.ProductConsume{Quantity: 1}, http.StatusBadRequest, "the user parameter must be set"},
		{"Negative quantity", path, v1.ProductConsume{User: "alice", Quantity: -1}, http.StatusBadRequest, models.ErrQuantityInvalid.Error()},
		{"No Product with this ID", fmt.Sprintf("http://example.com/v1/products/%s/consume", uuid.New()), v1.ProductConsume{User: "alice"}, http.StatusNotFound, "there is no product matching your query"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, tt.path, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ConsumptionResponse
			test.DecodeResponse(t, &r, &response)

			require.NotNil(t, response.Error)
			assert.Contains(t, *response.Error, tt.contains)
		})
	}

	// Consuming from a deleted envelope fails
	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/envelopes/%s", e.Data[0].ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodPost, path, v1.ProductConsume{User: "alice"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.ConsumptionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Error)
	assert.Equal(suite.T(), models.ErrEnvelopeUnavailable.Error(), *response.Error)
}
