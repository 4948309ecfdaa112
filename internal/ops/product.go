package ops

import (
	"github.com/duobudget/backend/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UseParams consume a product. Quantity defaults to 1.
type UseParams struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`

	MessageID *string `json:"messageId"`
}

func (r *Registry) useOperation() Operation {
	return Operation{
		Name:        "use",
		Description: "Spend a product's price from its envelope",
		NewParams:   func() any { return &UseParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*UseParams)

			quantity := params.Quantity
			if quantity == 0 {
				quantity = 1
			}

			return models.ConsumeProduct(params.Product, inv.User, quantity, params.MessageID)
		},
	}
}

// ProductAddParams register a recurring purchase. TotalPrice covers the
// whole pack, Quantity is the number of units in it and defaults to 1.
type ProductAddParams struct {
	Name        string  `json:"name"`
	Envelope    string  `json:"envelope"`
	TotalPrice  float64 `json:"totalPrice"`
	Quantity    int     `json:"quantity"`
	Description *string `json:"description"`
}

func (r *Registry) productAddOperation() Operation {
	return Operation{
		Name:        "product-add",
		Description: "Register a product with its price and envelope",
		NewParams:   func() any { return &ProductAddParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*ProductAddParams)

			price, err := parseAmount(params.TotalPrice)
			if err != nil {
				return nil, err
			}

			quantity := params.Quantity
			if quantity == 0 {
				quantity = 1
			}

			return models.CreateProduct(models.ProductCreate{
				Name:         params.Name,
				EnvelopeName: params.Envelope,
				TotalPrice:   price,
				Quantity:     quantity,
				Description:  params.Description,
			})
		},
	}
}

// ProductUpdateParams change a product. Nil attributes stay untouched.
type ProductUpdateParams struct {
	Name        string   `json:"name"`
	TotalPrice  *float64 `json:"totalPrice"`
	Quantity    *int     `json:"quantity"`
	Envelope    *string  `json:"envelope"`
	Description *string  `json:"description"`
}

func (r *Registry) productUpdateOperation() Operation {
	return Operation{
		Name:        "product-update",
		Description: "Change a product's price, quantity or envelope",
		NewParams:   func() any { return &ProductUpdateParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*ProductUpdateParams)

			update := models.ProductUpdate{
				Quantity:     params.Quantity,
				EnvelopeName: params.Envelope,
				Description:  params.Description,
			}

			if params.TotalPrice != nil {
				price, err := parseAmount(*params.TotalPrice)
				if err != nil {
					return nil, err
				}
				update.TotalPrice = &price
			}

			return models.UpdateProduct(params.Name, update)
		},
	}
}

// ProductDeleteParams name the product to remove.
type ProductDeleteParams struct {
	Name string `json:"name"`
}

// ProductDeleteResult confirms the removal.
type ProductDeleteResult struct {
	Name string `json:"name"`
}

func (r *Registry) productDeleteOperation() Operation {
	return Operation{
		Name:        "product-delete",
		Description: "Remove a product, keeping its past transactions",
		NewParams:   func() any { return &ProductDeleteParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*ProductDeleteParams)

			err := models.DeleteProduct(params.Name)
			if err != nil {
				return nil, err
			}

			return ProductDeleteResult{Name: params.Name}, nil
		},
	}
}

// ProductInfo is a product with its envelope's name and the calculated
// price of a single unit.
type ProductInfo struct {
	models.Product
	EnvelopeName string          `json:"envelopeName"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
}

func (r *Registry) productsOperation() Operation {
	return Operation{
		Name:        "products",
		Description: "List all products with prices and envelopes",
		NewParams:   func() any { return &struct{}{} },
		Handle: func(inv Invocation) (any, error) {
			products, err := models.Products()
			if err != nil {
				return nil, err
			}

			ids := make([]uuid.UUID, 0, len(products))
			for _, product := range products {
				ids = append(ids, product.EnvelopeID)
			}

			envelopes, err := models.EnvelopesByIDs(ids)
			if err != nil {
				return nil, err
			}

			infos := make([]ProductInfo, 0, len(products))
			for _, product := range products {
				infos = append(infos, ProductInfo{
					Product:      product,
					EnvelopeName: envelopes[product.EnvelopeID].Name,
					UnitPrice:    product.UnitPrice(),
				})
			}

			return infos, nil
		},
	}
}
