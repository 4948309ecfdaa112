package v1

import (
	"fmt"

	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductEditable represents all user configurable parameters
type ProductEditable struct {
	Name        string          `json:"name" example:"Beer" default:""`                // Name of the product
	Envelope    string          `json:"envelope" example:"Beverages"`                  // Name of the envelope consumption is booked against
	TotalPrice  decimal.Decimal `json:"totalPrice" example:"36" minimum:"0.00000001"`  // Price of the whole pack
	Quantity    int             `json:"quantity" example:"24" minimum:"1" default:"1"` // Number of units in the pack. Defaults to 1
	Description *string         `json:"description" example:"Cold ones for the fridge"` // Optional description
}

// create returns the engine attributes for the API representation of the editable fields
func (editable ProductEditable) create() models.ProductCreate {
	// An omitted quantity means a single unit
	quantity := editable.Quantity
	if quantity == 0 {
		quantity = 1
	}

	return models.ProductCreate{
		Name:         editable.Name,
		EnvelopeName: editable.Envelope,
		TotalPrice:   editable.TotalPrice,
		Quantity:     quantity,
		Description:  editable.Description,
	}
}

// ProductPatch are the product attributes that can change. Omitted
// fields keep their stored value.
type ProductPatch struct {
	TotalPrice  *decimal.Decimal `json:"totalPrice" example:"40"`      // New price of the whole pack
	Quantity    *int             `json:"quantity" example:"24"`        // New number of units in the pack
	Envelope    *string          `json:"envelope" example:"Beverages"` // Name of the envelope to re-anchor the product to
	Description *string          `json:"description" example:"Cold ones for the fridge"` // New description
}

func (patch ProductPatch) update() models.ProductUpdate {
	return models.ProductUpdate{
		TotalPrice:   patch.TotalPrice,
		Quantity:     patch.Quantity,
		EnvelopeName: patch.Envelope,
		Description:  patch.Description,
	}
}

type ProductLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/products/501eedb9-4ca5-4b01-8cbb-a9b91c47f817"`     // The product itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e"` // The envelope consumption is booked against
	Consume  string `json:"consume" example:"https://example.com/api/v1/products/501eedb9-4ca5-4b01-8cbb-a9b91c47f817/consume"` // Endpoint to consume the product
}

// Product is the representation of a Product in API v1.
type Product struct {
	models.DefaultModel
	Name        string          `json:"name" example:"Beer"`       // Name of the product
	EnvelopeID  uuid.UUID       `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the envelope consumption is booked against
	TotalPrice  decimal.Decimal `json:"totalPrice" example:"36"`   // Price of the whole pack
	Quantity    int             `json:"quantity" example:"24"`     // Number of units in the pack
	Description *string         `json:"description" example:"Cold ones for the fridge"` // Optional description
	Links       ProductLinks    `json:"links"`

	// These fields are computed
	EnvelopeName string          `json:"envelopeName" example:"Beverages"` // Name of the envelope consumption is booked against
	UnitPrice    decimal.Decimal `json:"unitPrice" example:"1.5"`          // Price of a single unit
}

// newProduct returns the API v1 representation of the resource
func newProduct(c *gin.Context, model models.Product) (Product, error) {
	url := c.GetString(string(models.DBContextURL))

	envelope, err := models.EnvelopeByID(model.EnvelopeID)
	if err != nil {
		return Product{}, err
	}

	return Product{
		DefaultModel: model.DefaultModel,
		Name:         model.Name,
		EnvelopeID:   model.EnvelopeID,
		TotalPrice:   model.TotalPrice,
		Quantity:     model.Quantity,
		Description:  model.Description,
		EnvelopeName: envelope.Name,
		UnitPrice:    model.UnitPrice(),
		Links: ProductLinks{
			Self:     fmt.Sprintf("%s/v1/products/%s", url, model.ID),
			Envelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.EnvelopeID),
			Consume:  fmt.Sprintf("%s/v1/products/%s/consume", url, model.ID),
		},
	}, nil
}

type ProductResponse struct {
	Data  *Product `json:"data"`                                                          // Data for the product
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ProductListResponse struct {
	Data  []Product `json:"data"`                                                          // List of products
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// ProductConsume are the parameters for consuming a product.
type ProductConsume struct {
	User      string  `json:"user" example:"alice"`                  // The person consuming
	Quantity  int     `json:"quantity" example:"2" default:"1"`      // Number of units consumed. Defaults to 1
	MessageID *string `json:"messageId" example:"1146744345innerID"` // Correlation ID of the chat message that caused the booking
}

// Consumption is the effect of consuming a product.
type Consumption struct {
	Product  Product `json:"product"`               // The product that was consumed
	Quantity int     `json:"quantity" example:"2"`  // Number of units consumed
	Booking  Booking `json:"booking"`               // The booking the consumption caused
}

type ConsumptionResponse struct {
	Data  *Consumption `json:"data"`                                               // The consumption result
	Error *string      `json:"error" example:"the envelope for this operation is deleted"` // The error, if any occurred
}
