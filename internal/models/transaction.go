package models

import (
	"errors"
	"strings"
	"time"

	"github.com/duobudget/backend/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// TransactionType declares how a transaction affects the balance:
// spend debits the envelope, deposit and adjustment credit it.
// The stored amount is always the magnitude.
type TransactionType string

const (
	TransactionTypeSpend      TransactionType = "spend"
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeAdjustment TransactionType = "adjustment"

	// Reserved for planned features. Declared so that the identifiers
	// are taken, but not accepted by RecordTransaction yet.
	TransactionTypeSplit     TransactionType = "split"
	TransactionTypeRecurring TransactionType = "recurring"
)

// activeTransactionTypes are the types RecordTransaction accepts.
var activeTransactionTypes = []TransactionType{
	TransactionTypeSpend,
	TransactionTypeDeposit,
	TransactionTypeAdjustment,
}

// Transaction is one immutable entry in the ledger. Entries are never
// updated; the only way they disappear is the retention pruning of the
// monthly processing.
type Transaction struct {
	DefaultModel
	EnvelopeID  uuid.UUID       `json:"envelopeId"`
	Envelope    Envelope        `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8);check:transaction_amount_positive,amount > 0"`
	Description string          `json:"description"`
	Timestamp   time.Time       `json:"timestamp"`
	UserID      string          `json:"user"`
	MessageID   *string         `json:"messageId"` // correlation id of the chat message that caused this entry
	Type        TransactionType `json:"type" gorm:"column:transaction_type"`
}

var (
	ErrInvalidAmount          = errors.New("the amount must be a positive number")
	ErrTransactionTypeInvalid = errors.New("the specified transaction type is invalid")
)

// BeforeSave sets the timezone for the Timestamp to UTC and trims the
// description.
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().In(time.UTC)
	} else {
		t.Timestamp = t.Timestamp.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	err := t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Timestamp = t.Timestamp.In(time.UTC)
	return nil
}

// BookingResult reports the effect of a booked transaction.
type BookingResult struct {
	Transaction Transaction     `json:"transaction"`
	NewBalance  decimal.Decimal `json:"newBalance"`
	Overdraft   bool            `json:"overdraft"` // the balance dropped below zero; allowed, but worth surfacing
}

// RecordTransaction books an amount against an envelope and appends the
// ledger entry for it, both in one database transaction.
//
// The balance is changed in place with "balance = balance + ?" so that
// concurrent bookings cannot lose updates; the amount is validated here
// because callers outside this module are not trusted to do so.
//
// A negative new balance is reported as an overdraft, never rejected.
func RecordTransaction(envelopeID uuid.UUID, amount decimal.Decimal, transactionType TransactionType, user string, description string, messageID *string) (BookingResult, error) {
	if !slices.Contains(activeTransactionTypes, transactionType) {
		return BookingResult{}, ErrTransactionTypeInvalid
	}

	if !amount.IsPositive() {
		return BookingResult{}, ErrInvalidAmount
	}

	delta := amount
	if transactionType == TransactionTypeSpend {
		delta = amount.Neg()
	}

	var result BookingResult
	err := DB.Transaction(func(tx *gorm.DB) error {
		var envelope Envelope
		err := tx.First(&envelope, "id = ?", envelopeID).Error
		if err != nil {
			return err
		}

		if envelope.IsDeleted {
			return ErrEnvelopeUnavailable
		}

		err = tx.Model(&Envelope{}).
			Where("id = ?", envelopeID).
			Update("balance", gorm.Expr("balance + ?", delta)).Error
		if err != nil {
			return err
		}

		transaction := Transaction{
			EnvelopeID:  envelopeID,
			Amount:      amount,
			Description: description,
			UserID:      user,
			MessageID:   messageID,
			Type:        transactionType,
		}

		err = tx.Create(&transaction).Error
		if err != nil {
			return err
		}

		// Read the balance back inside the transaction so the result
		// reflects exactly this booking
		err = tx.First(&envelope, "id = ?", envelopeID).Error
		if err != nil {
			return err
		}

		result = BookingResult{
			Transaction: transaction,
			NewBalance:  envelope.Balance,
			Overdraft:   envelope.Balance.IsNegative(),
		}

		return nil
	})
	if err != nil {
		return BookingResult{}, err
	}

	return result, nil
}

// SpentInMonth returns the sum of all spend magnitudes booked against
// the envelope within the month.
func SpentInMonth(envelopeID uuid.UUID, month types.Month) (decimal.Decimal, error) {
	var sum decimal.NullDecimal
	err := DB.
		Table("transactions").
		Where("envelope_id = ? AND transaction_type = ? AND timestamp >= ? AND timestamp < ?",
			envelopeID, TransactionTypeSpend, month.Start(), month.End()).
		Select("SUM(amount)").
		Row().
		Scan(&sum)
	if err != nil {
		return decimal.Zero, err
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// SpentByEnvelope returns the spend sums of the month for all envelopes
// that have spend transactions in it, keyed by envelope ID.
func SpentByEnvelope(month types.Month) (map[uuid.UUID]decimal.Decimal, error) {
	var sums []struct {
		EnvelopeID uuid.UUID
		Total      decimal.Decimal
	}

	err := DB.
		Model(&Transaction{}).
		Select("envelope_id, SUM(amount) AS total").
		Where("transaction_type = ? AND timestamp >= ? AND timestamp < ?",
			TransactionTypeSpend, month.Start(), month.End()).
		Group("envelope_id").
		Find(&sums).Error
	if err != nil {
		return nil, err
	}

	spent := make(map[uuid.UUID]decimal.Decimal, len(sums))
	for _, sum := range sums {
		spent[sum.EnvelopeID] = sum.Total
	}

	return spent, nil
}

// TransactionFilter narrows down the transaction list. Nil fields are
// ignored.
type TransactionFilter struct {
	EnvelopeID *uuid.UUID
	Type       *TransactionType
	Month      *types.Month
	User       *string
	Offset     int
	Limit      int // defaults to 50 when not positive
}

// Transactions returns ledger entries, newest first, and the total
// number of matches for pagination.
func Transactions(filter TransactionFilter) ([]Transaction, int64, error) {
	query := DB.Model(&Transaction{})

	if filter.EnvelopeID != nil {
		query = query.Where("envelope_id = ?", *filter.EnvelopeID)
	}
	if filter.Type != nil {
		query = query.Where("transaction_type = ?", *filter.Type)
	}
	if filter.Month != nil {
		query = query.Where("timestamp >= ? AND timestamp < ?", filter.Month.Start(), filter.Month.End())
	}
	if filter.User != nil {
		query = query.Where("user_id = ?", *filter.User)
	}

	var total int64
	err := query.Count(&total).Error
	if err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	var transactions []Transaction
	err = query.
		Order("timestamp DESC, created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&transactions).Error
	if err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
