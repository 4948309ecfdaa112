package v1

import (
	"fmt"

	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable represents all user configurable parameters
type EnvelopeEditable struct {
	Name       string           `json:"name" example:"Groceries" default:""`        // Name of the envelope
	Category   *string          `json:"category" example:"daily"`                   // Category the envelope is grouped under. Defaults to "uncategorized"
	Allocation *decimal.Decimal `json:"allocation" example:"400" minimum:"0"`       // Amount allocated at each month change. Defaults to 0
	Individual bool             `json:"individual" example:"false" default:"false"` // Create one instance per person instead of a shared envelope
	Rollover   *bool            `json:"rollover" example:"false"`                   // Keep the remaining balance at the month change. Defaults to false
}

// create returns the engine attributes for the API representation of the editable fields
func (editable EnvelopeEditable) create() models.EnvelopeCreate {
	return models.EnvelopeCreate{
		Name:         editable.Name,
		Category:     editable.Category,
		Allocation:   editable.Allocation,
		IsIndividual: editable.Individual,
		Rollover:     editable.Rollover,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/3b1ea324-d438-4419-882a-2fc91d71772f"`                  // The envelope itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=3b1ea324-d438-4419-882a-2fc91d71772f"` // Transactions for this envelope
}

// Envelope is the representation of an Envelope in API v1.
type Envelope struct {
	models.DefaultModel
	Name       string          `json:"name" example:"Groceries"`    // Name of the envelope
	Category   string          `json:"category" example:"daily"`    // Category the envelope is grouped under
	Allocation decimal.Decimal `json:"allocation" example:"400"`    // Amount allocated at each month change
	Balance    decimal.Decimal `json:"balance" example:"123.45"`    // Current balance
	Individual bool            `json:"individual" example:"false"`  // Does each person have their own instance?
	Owner      *string         `json:"owner" example:"alice"`       // The person this instance belongs to, null for shared envelopes
	Rollover   bool            `json:"rollover" example:"false"`    // Is the remaining balance kept at the month change?
	Deleted    bool            `json:"deleted" example:"false"`     // Is the envelope deleted?
	Links      EnvelopeLinks   `json:"links"`
}

// newEnvelope returns the API v1 representation of the resource
func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.DBContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		Category:     model.Category,
		Allocation:   model.Allocation,
		Balance:      model.Balance,
		Individual:   model.IsIndividual,
		Owner:        model.UserID,
		Rollover:     model.Rollover,
		Deleted:      model.IsDeleted,
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?envelope=%s", url, model.ID),
		},
	}
}

type EnvelopeListResponse struct {
	Data  []Envelope `json:"data"`                                                          // List of envelopes
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// EnvelopeCreateResponse contains the rows active under the name after
// a create call. An individual envelope creates one row per person,
// which is why Data is a list.
type EnvelopeCreateResponse struct {
	Data        []Envelope `json:"data"`                                                // All rows now active under the name
	Reactivated bool       `json:"reactivated" example:"false"`                         // Were deleted rows brought back instead of creating new ones?
	Error       *string    `json:"error" example:"an envelope with this name already exists"` // The error, if any occurred
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // Data for the envelope
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoriesResponse struct {
	Data  []string `json:"data" example:"daily,fun"`                    // All categories in use by active envelopes
	Error *string  `json:"error" example:"there is no envelope matching your query"` // The error, if any occurred
}

type EnvelopeQueryFilter struct {
	Category string `form:"category"` // By the category the envelope is grouped under
}
