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

// Envelope is a named budget for one spending area with a monthly
// allocation. Shared envelopes have no owner; individual envelopes
// exist once per configured user under the same name.
//
// The unique indexes span soft-deleted rows on purpose: a deleted
// envelope reserves its name until it is reactivated.
type Envelope struct {
	DefaultModel
	Name         string          `json:"name" gorm:"index:envelope_shared_name,unique,where:user_id IS NULL;index:envelope_owner_name,unique,where:user_id IS NOT NULL,priority:1"`
	Category     string          `json:"category"`
	Allocation   decimal.Decimal `json:"allocation" gorm:"type:DECIMAL(20,8)"`
	Balance      decimal.Decimal `json:"balance" gorm:"type:DECIMAL(20,8)"`
	IsIndividual bool            `json:"individual"`
	UserID       *string         `json:"owner" gorm:"index:envelope_owner_name,unique,where:user_id IS NOT NULL,priority:2"` // nil for shared envelopes
	Rollover     bool            `json:"rollover"`
	IsDeleted    bool            `json:"deleted"`
}

var (
	ErrEnvelopeNameInUse   = errors.New("an envelope with this name already exists")
	ErrEnvelopeUnavailable = errors.New("the envelope for this operation is deleted")
)

// DefaultCategory is used for envelopes created without a category.
const DefaultCategory = "uncategorized"

// BeforeSave normalizes the user supplied strings.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = normalizeName(e.Name)
	e.Category = strings.TrimSpace(e.Category)

	return nil
}

// EnvelopeCreate holds the attributes for the create-or-reenable
// operation. A nil pointer means the attribute was omitted: creation
// falls back to the default, reactivation keeps the stored value.
type EnvelopeCreate struct {
	Name         string
	Category     *string
	Allocation   *decimal.Decimal
	IsIndividual bool
	Rollover     *bool
}

// EnvelopeCreateResult is the outcome of a create-or-reenable call.
type EnvelopeCreateResult struct {
	Envelopes   []Envelope `json:"envelopes"`   // all rows now active under the name
	Reactivated bool       `json:"reactivated"` // true when soft-deleted rows were brought back
}

// CreateEnvelope creates an envelope or brings a soft-deleted one back.
//
// A soft-deleted row with the same name is reactivated instead of
// creating a new row: supplied attributes are applied, omitted ones
// keep their stored values and the balance starts over at the
// allocation. The stored individual/shared type always wins.
//
// For a new individual envelope one row per configured user is created,
// in a single transaction so that there is never half a pair.
func CreateEnvelope(create EnvelopeCreate, users [2]string) (EnvelopeCreateResult, error) {
	if create.Allocation != nil && create.Allocation.IsNegative() {
		return EnvelopeCreateResult{}, ErrInvalidAmount
	}

	name := normalizeName(create.Name)

	var result EnvelopeCreateResult
	err := DB.Transaction(func(tx *gorm.DB) error {
		var existing []Envelope
		err := tx.Where("name = ?", name).Order("user_id ASC").Find(&existing).Error
		if err != nil {
			return err
		}

		if len(existing) != 0 {
			return reenableEnvelopes(tx, existing, create, &result)
		}

		return insertEnvelopes(tx, create, users, &result)
	})
	if err != nil {
		return EnvelopeCreateResult{}, err
	}

	op := events.OpCreated
	if result.Reactivated {
		op = events.OpReactivated
	}
	Events.Publish(events.Event{Entity: events.EntityEnvelope, Op: op, Name: name})

	return result, nil
}

// reenableEnvelopes reactivates the soft-deleted rows for a name.
// Rows that are still active are kept untouched; if no row is deleted,
// the name is simply taken.
func reenableEnvelopes(tx *gorm.DB, existing []Envelope, create EnvelopeCreate, result *EnvelopeCreateResult) error {
	deleted := 0
	for _, envelope := range existing {
		if envelope.IsDeleted {
			deleted++
		}
	}

	if deleted == 0 {
		return ErrEnvelopeNameInUse
	}

	for i := range existing {
		envelope := &existing[i]

		if !envelope.IsDeleted {
			result.Envelopes = append(result.Envelopes, *envelope)
			continue
		}

		if create.Category != nil {
			envelope.Category = *create.Category
		}
		if create.Allocation != nil {
			envelope.Allocation = *create.Allocation
		}
		if create.Rollover != nil {
			envelope.Rollover = *create.Rollover
		}

		// The balance starts over, spending history is kept
		envelope.Balance = envelope.Allocation
		envelope.IsDeleted = false

		err := tx.Save(envelope).Error
		if err != nil {
			return err
		}

		result.Envelopes = append(result.Envelopes, *envelope)
	}

	result.Reactivated = true
	return nil
}

// insertEnvelopes creates the row, or row pair, for a new envelope.
func insertEnvelopes(tx *gorm.DB, create EnvelopeCreate, users [2]string, result *EnvelopeCreateResult) error {
	category := DefaultCategory
	if create.Category != nil {
		category = *create.Category
	}

	allocation := decimal.Zero
	if create.Allocation != nil {
		allocation = *create.Allocation
	}

	rollover := false
	if create.Rollover != nil {
		rollover = *create.Rollover
	}

	owners := []*string{nil}
	if create.IsIndividual {
		owners = []*string{&users[0], &users[1]}
	}

	for _, owner := range owners {
		envelope := Envelope{
			Name:         create.Name,
			Category:     category,
			Allocation:   allocation,
			Balance:      allocation,
			IsIndividual: create.IsIndividual,
			UserID:       owner,
			Rollover:     rollover,
		}

		err := tx.Create(&envelope).Error
		if err != nil {
			return err
		}

		result.Envelopes = append(result.Envelopes, envelope)
	}

	return nil
}

// ResolveEnvelope returns the active envelope a user means when they
// use a name: the shared envelope if one exists, otherwise the user's
// own instance of an individual envelope. Creation rules guarantee a
// name is never both, so at most one row matches.
func ResolveEnvelope(name, user string) (Envelope, error) {
	var envelope Envelope
	err := DB.
		Where("name = ? AND is_deleted = ? AND (user_id IS NULL OR user_id = ?)", normalizeName(name), false, user).
		First(&envelope).Error
	if err != nil {
		return Envelope{}, err
	}

	return envelope, nil
}

// SoftDeleteEnvelope marks the envelope the user resolves by name as
// deleted. For an individual envelope that is only ever the user's own
// instance, the partner's stays active. The balance and the transaction
// history are kept so that a later reactivation continues where the
// envelope left off.
func SoftDeleteEnvelope(name, user string) (Envelope, error) {
	envelope, err := ResolveEnvelope(name, user)
	if err != nil {
		return Envelope{}, err
	}

	return markEnvelopeDeleted(envelope)
}

// SoftDeleteEnvelopeByID marks the envelope with this ID as deleted.
// An envelope that is already deleted reports not found, like any
// other read of a deleted resource.
func SoftDeleteEnvelopeByID(id uuid.UUID) (Envelope, error) {
	envelope, err := EnvelopeByID(id)
	if err != nil {
		return Envelope{}, err
	}

	if envelope.IsDeleted {
		return Envelope{}, fmt.Errorf("%w envelope matching your query", ErrResourceNotFound)
	}

	return markEnvelopeDeleted(envelope)
}

func markEnvelopeDeleted(envelope Envelope) (Envelope, error) {
	err := DB.Model(&envelope).Update("is_deleted", true).Error
	if err != nil {
		return Envelope{}, err
	}
	envelope.IsDeleted = true

	Events.Publish(events.Event{Entity: events.EntityEnvelope, Op: events.OpDeleted, Name: envelope.Name})

	return envelope, nil
}

// ActiveEnvelopes returns all envelopes that are not deleted, ordered
// by name. Individual pairs appear once per owner.
func ActiveEnvelopes() ([]Envelope, error) {
	var envelopes []Envelope
	err := DB.
		Where("is_deleted = ?", false).
		Order("name ASC, user_id ASC").
		Find(&envelopes).Error

	return envelopes, err
}

// EnvelopeByID returns the envelope with this ID, deleted or not.
func EnvelopeByID(id uuid.UUID) (Envelope, error) {
	var envelope Envelope
	err := DB.First(&envelope, "id = ?", id).Error
	if err != nil {
		return Envelope{}, err
	}

	return envelope, nil
}

// EnvelopeCategories returns the distinct categories of all active
// envelopes, sorted alphabetically.
func EnvelopeCategories() ([]string, error) {
	var categories []string
	err := DB.
		Model(&Envelope{}).
		Where("is_deleted = ?", false).
		Distinct().
		Order("category ASC").
		Pluck("category", &categories).Error

	return categories, err
}

// EnvelopesByIDs returns the envelopes with the given IDs, deleted or
// not, keyed by ID. IDs without a matching envelope are left out.
func EnvelopesByIDs(ids []uuid.UUID) (map[uuid.UUID]Envelope, error) {
	var envelopes []Envelope
	err := DB.Where("id IN ?", ids).Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]Envelope, len(envelopes))
	for _, envelope := range envelopes {
		byID[envelope.ID] = envelope
	}

	return byID, nil
}
