package v1

import (
	"net/http"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/internal/types"
	db_uuid "github.com/duobudget/backend/internal/uuid"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
//
// Ledger entries are immutable, so there is no update and no delete.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", GetTransactions)
		r.POST("", CreateTransaction)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGet(c)
}

// @Summary		Record transaction
// @Description	Books an amount against an envelope and appends the ledger entry for it. A balance below zero is allowed and reported as overdraft.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	BookingResponse
// @Failure		400			{object}	BookingResponse
// @Failure		404			{object}	BookingResponse
// @Failure		500			{object}	BookingResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	if editable.User == "" {
		e := errUserNotSet.Error()
		c.JSON(http.StatusBadRequest, BookingResponse{
			Error: &e,
		})
		return
	}

	amount, err := decimal.NewFromString(editable.Amount)
	if err != nil {
		e := errAmountNotDecimal.Error()
		c.JSON(http.StatusBadRequest, BookingResponse{
			Error: &e,
		})
		return
	}

	booking, err := models.RecordTransaction(editable.EnvelopeID, amount, editable.Type, editable.User, editable.Description, editable.MessageID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BookingResponse{
			Error: &e,
		})
		return
	}

	data := Booking{
		Transaction: newTransaction(c, booking.Transaction),
		NewBalance:  booking.NewBalance,
		Overdraft:   booking.Overdraft,
	}

	c.JSON(http.StatusCreated, BookingResponse{Data: &data})
}

// @Summary		Get transactions
// @Description	Returns ledger entries, newest first
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			envelope	query	string	false	"Filter by envelope ID"
// @Param			type		query	string	false	"Filter by type: spend, deposit or adjustment"
// @Param			month		query	string	false	"Filter by month in YYYY-MM format"
// @Param			user		query	string	false	"Filter by the person who booked"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50."
// @Router			/v1/transactions [get]
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &e,
		})
		return
	}

	model := models.TransactionFilter{
		Offset: int(filter.Offset),
		Limit:  filter.Limit,
	}

	if filter.Envelope != db_uuid.Nil {
		id := filter.Envelope.UUID
		model.EnvelopeID = &id
	}

	if filter.Type != "" {
		transactionType := models.TransactionType(filter.Type)
		if !slices.Contains([]models.TransactionType{
			models.TransactionTypeSpend,
			models.TransactionTypeDeposit,
			models.TransactionTypeAdjustment,
		}, transactionType) {
			e := models.ErrTransactionTypeInvalid.Error()
			c.JSON(http.StatusBadRequest, TransactionListResponse{
				Error: &e,
			})
			return
		}

		model.Type = &transactionType
	}

	if !filter.Month.IsZero() {
		month := types.MonthOf(filter.Month)
		model.Month = &month
	}

	if filter.User != "" {
		model.User = &filter.User
	}

	transactions, total, err := models.Transactions(model)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		data = append(data, newTransaction(c, transaction))
	}

	// Mirror the default the engine applies
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  total,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific ledger entry
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	err = models.DB.First(&transaction, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}
