package v1

import (
	"fmt"
	"time"

	"github.com/duobudget/backend/internal/models"
	db_uuid "github.com/duobudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionEditable represents all user configurable parameters
type TransactionEditable struct {
	EnvelopeID uuid.UUID `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the envelope the amount is booked against

	// The amount is a string so that clients cannot accidentally send a
	// binary float. "12.34" is fine, 12.34 is not.
	Amount string `json:"amount" example:"12.34"`

	Type        models.TransactionType `json:"type" example:"spend"`                       // One of spend, deposit, adjustment
	User        string                 `json:"user" example:"alice"`                       // The person booking the amount
	Description string                 `json:"description" example:"Weekly shopping" default:""` // A note on what the booking was for
	MessageID   *string                `json:"messageId" example:"1146744345innerID"`      // Correlation ID of the chat message that caused the booking
}

type TransactionLinks struct {
	Self     string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`  // The transaction itself
	Envelope string `json:"envelope" example:"https://example.com/api/v1/envelopes/2649c965-7999-4873-ae16-89d5d5fa972e"` // The envelope the transaction was booked against
}

// Transaction is the representation of a Transaction in API v1.
type Transaction struct {
	models.DefaultModel
	EnvelopeID  uuid.UUID              `json:"envelopeId" example:"2649c965-7999-4873-ae16-89d5d5fa972e"` // ID of the envelope
	Amount      decimal.Decimal        `json:"amount" example:"12.34"`                                    // The amount booked, always positive
	Type        models.TransactionType `json:"type" example:"spend"`                                      // One of spend, deposit, adjustment
	User        string                 `json:"user" example:"alice"`                                      // The person who booked
	Description string                 `json:"description" example:"Weekly shopping"`                     // A note on what the booking was for
	Timestamp   time.Time              `json:"timestamp" example:"2026-08-02T19:28:44.491514Z"`           // When the booking happened
	MessageID   *string                `json:"messageId" example:"1146744345innerID"`                     // Correlation ID of the chat message that caused the booking
	Links       TransactionLinks       `json:"links"`
}

// newTransaction returns the API v1 representation of the resource
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	return Transaction{
		DefaultModel: model.DefaultModel,
		EnvelopeID:   model.EnvelopeID,
		Amount:       model.Amount,
		Type:         model.Type,
		User:         model.UserID,
		Description:  model.Description,
		Timestamp:    model.Timestamp,
		MessageID:    model.MessageID,
		Links: TransactionLinks{
			Self:     fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Envelope: fmt.Sprintf("%s/v1/envelopes/%s", url, model.EnvelopeID),
		},
	}
}

// Booking is the effect of a newly recorded transaction.
type Booking struct {
	Transaction Transaction     `json:"transaction"`                // The ledger entry that was created
	NewBalance  decimal.Decimal `json:"newBalance" example:"87.5"`  // The envelope balance after the booking
	Overdraft   bool            `json:"overdraft" example:"false"`  // Did the balance drop below zero?
}

type BookingResponse struct {
	Data  *Booking `json:"data"`                                              // The booking result
	Error *string  `json:"error" example:"the amount must be a positive number"` // The error, if any occurred
}

type TransactionResponse struct {
	Data  *Transaction `json:"data"`                                                          // Data for the transaction
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionQueryFilter struct {
	Envelope db_uuid.UUID `form:"envelope"`                                 // By ID of the envelope
	Type     string       `form:"type"`                                     // By type: spend, deposit or adjustment
	Month    time.Time    `form:"month" time_format:"2006-01" time_utc:"1"` // By month in YYYY-MM format
	User     string       `form:"user"`                                     // By the person who booked
	Offset   uint         `form:"offset"`                                   // The offset of the first Transaction returned. Defaults to 0.
	Limit    int          `form:"limit"`                                    // Maximum number of Transactions to return. Defaults to 50.
}
