package models

import (
	"errors"
	"fmt"
	"strings"

	"github.com/duobudget/backend/internal/events"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a purchasable item whose price is known in advance, so
// that spending on it only takes its name and a quantity.
//
// TotalPrice is the price of the whole pack. The price of a single
// unit is derived, never stored.
type Product struct {
	DefaultModel
	Name        string          `json:"name" gorm:"uniqueIndex:product_name"`
	EnvelopeID  uuid.UUID       `json:"envelopeId"`
	Envelope    Envelope        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	TotalPrice  decimal.Decimal `json:"totalPrice" gorm:"type:DECIMAL(20,8)"`
	Quantity    int             `json:"quantity"`
	Description *string         `json:"description"` // nil when the product needs no explanation
}

var (
	ErrProductNameInUse = errors.New("the product name is already in use")
	ErrQuantityInvalid  = errors.New("the quantity must be at least 1")
)

func (p *Product) BeforeSave(_ *gorm.DB) error {
	p.Name = normalizeName(p.Name)

	if p.Description != nil {
		trimmed := strings.TrimSpace(*p.Description)
		p.Description = &trimmed
	}

	return nil
}

// UnitPrice is the price of a single unit of the product.
func (p Product) UnitPrice() decimal.Decimal {
	if p.Quantity < 1 {
		return p.TotalPrice
	}

	return p.TotalPrice.Div(decimal.NewFromInt(int64(p.Quantity)))
}

// ProductCreate are the attributes for a new product. The envelope is
// referenced by name and resolved to its anchor row here.
type ProductCreate struct {
	Name         string
	EnvelopeName string
	TotalPrice   decimal.Decimal
	Quantity     int
	Description  *string
}

// CreateProduct registers a product and anchors it to an envelope.
//
// For an individual envelope the anchor is one of the two per-user
// rows. Consuming re-resolves the actual target for the consuming
// user, so which row serves as anchor does not matter as long as it is
// deterministic. Shared rows sort first because their user_id is NULL.
func CreateProduct(create ProductCreate) (Product, error) {
	if !create.TotalPrice.IsPositive() {
		return Product{}, ErrInvalidAmount
	}

	if create.Quantity < 1 {
		return Product{}, ErrQuantityInvalid
	}

	var anchor Envelope
	err := DB.
		Where("name = ? AND is_deleted = ?", normalizeName(create.EnvelopeName), false).
		Order("user_id ASC").
		First(&anchor).Error
	if err != nil {
		return Product{}, err
	}

	product := Product{
		Name:        create.Name,
		EnvelopeID:  anchor.ID,
		TotalPrice:  create.TotalPrice,
		Quantity:    create.Quantity,
		Description: create.Description,
	}

	err = DB.Create(&product).Error
	if err != nil {
		return Product{}, err
	}

	Events.Publish(events.Event{Entity: events.EntityProduct, Op: events.OpCreated, Name: product.Name})
	return product, nil
}

// ProductUpdate are the attributes that can change on a product. Nil
// fields keep their current value.
type ProductUpdate struct {
	TotalPrice   *decimal.Decimal
	Quantity     *int
	EnvelopeName *string
	Description  *string
}

// UpdateProduct applies the non-nil attributes to the product with
// this name. Setting a new envelope name re-anchors the product.
func UpdateProduct(name string, update ProductUpdate) (Product, error) {
	product, err := ProductByName(name)
	if err != nil {
		return Product{}, err
	}

	return applyProductUpdate(product, update)
}

// UpdateProductByID is UpdateProduct for a product referenced by ID.
func UpdateProductByID(id uuid.UUID, update ProductUpdate) (Product, error) {
	product, err := ProductByID(id)
	if err != nil {
		return Product{}, err
	}

	return applyProductUpdate(product, update)
}

func applyProductUpdate(product Product, update ProductUpdate) (Product, error) {
	if update.TotalPrice != nil {
		if !update.TotalPrice.IsPositive() {
			return Product{}, ErrInvalidAmount
		}
		product.TotalPrice = *update.TotalPrice
	}

	if update.Quantity != nil {
		if *update.Quantity < 1 {
			return Product{}, ErrQuantityInvalid
		}
		product.Quantity = *update.Quantity
	}

	if update.EnvelopeName != nil {
		var anchor Envelope
		err := DB.
			Where("name = ? AND is_deleted = ?", normalizeName(*update.EnvelopeName), false).
			Order("user_id ASC").
			First(&anchor).Error
		if err != nil {
			return Product{}, err
		}

		product.EnvelopeID = anchor.ID
	}

	if update.Description != nil {
		product.Description = update.Description
	}

	err := DB.Save(&product).Error
	if err != nil {
		return Product{}, err
	}

	Events.Publish(events.Event{Entity: events.EntityProduct, Op: events.OpUpdated, Name: product.Name})
	return product, nil
}

// DeleteProduct removes the product with this name. Its past
// transactions stay in the ledger since they reference the envelope,
// not the product.
func DeleteProduct(name string) error {
	product, err := ProductByName(name)
	if err != nil {
		return err
	}

	return removeProduct(product)
}

// DeleteProductByID is DeleteProduct for a product referenced by ID.
func DeleteProductByID(id uuid.UUID) error {
	product, err := ProductByID(id)
	if err != nil {
		return err
	}

	return removeProduct(product)
}

func removeProduct(product Product) error {
	err := DB.Delete(&product).Error
	if err != nil {
		return err
	}

	Events.Publish(events.Event{Entity: events.EntityProduct, Op: events.OpDeleted, Name: product.Name})
	return nil
}

func ProductByName(name string) (Product, error) {
	var product Product
	err := DB.First(&product, "name = ?", normalizeName(name)).Error
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

// ProductByID returns the product with this ID.
func ProductByID(id uuid.UUID) (Product, error) {
	var product Product
	err := DB.First(&product, "id = ?", id).Error
	if err != nil {
		return Product{}, err
	}

	return product, nil
}

// Products returns all products ordered by name.
func Products() ([]Product, error) {
	var products []Product
	err := DB.Order("name ASC").Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

// ConsumeResult reports a booked product consumption.
type ConsumeResult struct {
	Product  Product       `json:"product"`
	Quantity int           `json:"quantity"`
	Booking  BookingResult `json:"booking"`
}

// ConsumeProduct spends the product price for the given quantity from
// the product's envelope.
//
// When the anchor envelope is individual, the consuming user's own
// instance is resolved by name first, so both partners can use the
// same product against their respective envelopes.
func ConsumeProduct(name string, user string, quantity int, messageID *string) (ConsumeResult, error) {
	if quantity < 1 {
		return ConsumeResult{}, ErrQuantityInvalid
	}

	product, err := ProductByName(name)
	if err != nil {
		return ConsumeResult{}, err
	}

	return consume(product, user, quantity, messageID)
}

// ConsumeProductByID is ConsumeProduct for a product referenced by ID.
func ConsumeProductByID(id uuid.UUID, user string, quantity int, messageID *string) (ConsumeResult, error) {
	if quantity < 1 {
		return ConsumeResult{}, ErrQuantityInvalid
	}

	product, err := ProductByID(id)
	if err != nil {
		return ConsumeResult{}, err
	}

	return consume(product, user, quantity, messageID)
}

func consume(product Product, user string, quantity int, messageID *string) (ConsumeResult, error) {
	target, err := EnvelopeByID(product.EnvelopeID)
	if err != nil {
		return ConsumeResult{}, err
	}

	if target.IsIndividual {
		err = DB.
			Where("name = ? AND is_deleted = ? AND user_id = ?", target.Name, false, user).
			First(&target).Error
		if err != nil {
			if errors.Is(err, ErrResourceNotFound) {
				return ConsumeResult{}, ErrEnvelopeUnavailable
			}
			return ConsumeResult{}, err
		}
	}

	if target.IsDeleted {
		return ConsumeResult{}, ErrEnvelopeUnavailable
	}

	totalCost := product.UnitPrice().Mul(decimal.NewFromInt(int64(quantity)))
	description := fmt.Sprintf("%s x%d", product.Name, quantity)

	booking, err := RecordTransaction(target.ID, totalCost, TransactionTypeSpend, user, description, messageID)
	if err != nil {
		return ConsumeResult{}, err
	}

	return ConsumeResult{
		Product:  product,
		Quantity: quantity,
		Booking:  booking,
	}, nil
}
