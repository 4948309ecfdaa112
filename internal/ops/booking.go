package ops

import (
	"fmt"
	"math"

	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

// BookingParams are shared by all operations that write a single
// transaction against an envelope.
type BookingParams struct {
	Envelope    string  `json:"envelope"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`

	// MessageID links the transaction to the chat message that caused
	// it, if the front end has one.
	MessageID *string `json:"messageId"`
}

// parseAmount converts a payload amount into a decimal. JSON numbers
// arrive as float64, so NaN and infinities have to be caught before
// decimal conversion panics on them.
func parseAmount(amount float64) (decimal.Decimal, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return decimal.Zero, models.ErrInvalidAmount
	}

	return decimal.NewFromFloat(amount), nil
}

// book builds the handler shared by spend, deposit and adjust.
func (r *Registry) book(transactionType models.TransactionType) func(inv Invocation) (any, error) {
	return func(inv Invocation) (any, error) {
		params := inv.Params.(*BookingParams)

		amount, err := parseAmount(params.Amount)
		if err != nil {
			return nil, err
		}

		envelope, err := models.ResolveEnvelope(params.Envelope, inv.User)
		if err != nil {
			return nil, err
		}

		return models.RecordTransaction(envelope.ID, amount, transactionType, inv.User, params.Description, params.MessageID)
	}
}

func (r *Registry) spendOperation() Operation {
	return Operation{
		Name:        "spend",
		Description: "Record an expense against an envelope",
		NewParams:   func() any { return &BookingParams{} },
		Handle:      r.book(models.TransactionTypeSpend),
	}
}

func (r *Registry) depositOperation() Operation {
	return Operation{
		Name:        "deposit",
		Description: "Add money to an envelope",
		NewParams:   func() any { return &BookingParams{} },
		Handle:      r.book(models.TransactionTypeDeposit),
	}
}

func (r *Registry) adjustOperation() Operation {
	return Operation{
		Name:        "adjust",
		Description: "Correct an envelope balance upwards",
		NewParams:   func() any { return &BookingParams{} },
		Handle:      r.book(models.TransactionTypeAdjustment),
	}
}

// HistoryParams filter the transaction log. All filters are optional.
type HistoryParams struct {
	Envelope *string `json:"envelope"`
	Month    *string `json:"month"`
	Type     *string `json:"type"`
	User     *string `json:"user"`
	Limit    int     `json:"limit"`
}

// HistoryResult is one page of the transaction log, newest first.
type HistoryResult struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
}

func (r *Registry) historyOperation() Operation {
	return Operation{
		Name:        "history",
		Description: "Show the latest transactions, optionally filtered",
		NewParams:   func() any { return &HistoryParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*HistoryParams)

			limit := params.Limit
			if limit <= 0 {
				limit = 10
			}
			if limit > 50 {
				limit = 50
			}

			filter := models.TransactionFilter{
				User:  params.User,
				Limit: limit,
			}

			if params.Envelope != nil {
				envelope, err := models.ResolveEnvelope(*params.Envelope, inv.User)
				if err != nil {
					return nil, err
				}
				filter.EnvelopeID = &envelope.ID
			}

			if params.Month != nil {
				month, err := types.ParseMonth(*params.Month)
				if err != nil {
					return nil, fmt.Errorf("%w: month must look like 2026-08", ErrInvalidParams)
				}
				filter.Month = &month
			}

			if params.Type != nil {
				transactionType := models.TransactionType(*params.Type)
				filter.Type = &transactionType
			}

			transactions, total, err := models.Transactions(filter)
			if err != nil {
				return nil, err
			}

			return HistoryResult{Transactions: transactions, Total: total}, nil
		},
	}
}
