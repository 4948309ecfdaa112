package v1

import (
	"net/http"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelope)
	}

	// Categories in use
	{
		r.OPTIONS("/categories", OptionsEnvelopeCategories)
		r.GET("/categories", GetEnvelopeCategories)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes/categories [options]
func OptionsEnvelopeCategories(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.EnvelopeByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetDelete(c)
}

// @Summary		Create envelope
// @Description	Creates a new envelope, or brings a deleted one with the same name back. For an individual envelope, one instance per person is created.
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeCreateResponse
// @Success		200			{object}	EnvelopeCreateResponse	"A deleted envelope was reactivated"
// @Failure		400			{object}	EnvelopeCreateResponse
// @Failure		409			{object}	EnvelopeCreateResponse
// @Failure		500			{object}	EnvelopeCreateResponse
// @Param			envelope	body		EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	result, err := models.CreateEnvelope(editable.create(), users)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeCreateResponse{
			Error: &e,
		})
		return
	}

	data := make([]Envelope, 0, len(result.Envelopes))
	for _, envelope := range result.Envelopes {
		data = append(data, newEnvelope(c, envelope))
	}

	// Reactivation reports 200 since no new resource was created
	httpStatus := http.StatusCreated
	if result.Reactivated {
		httpStatus = http.StatusOK
	}

	c.JSON(httpStatus, EnvelopeCreateResponse{
		Data:        data,
		Reactivated: result.Reactivated,
	})
}

// @Summary		Get envelopes
// @Description	Returns a list of all active envelopes
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		400	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Param			category	query	string	false	"Filter by category"
// @Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	var filter EnvelopeQueryFilter
	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	q := models.DB.Where("is_deleted = ?", false).Order("name ASC, user_id ASC")

	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}

	var envelopes []models.Envelope
	err := q.Find(&envelopes).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{Data: data})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope, deleted or not
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	envelope, err := models.EnvelopeByID(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{
			Error: &e,
		})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Delete envelope
// @Description	Marks the envelope as deleted. The balance and the transaction history are kept for a later reactivation.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.SoftDeleteEnvelopeByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Get categories
// @Description	Returns the distinct categories of all active envelopes
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	CategoriesResponse
// @Failure		500	{object}	CategoriesResponse
// @Router			/v1/envelopes/categories [get]
func GetEnvelopeCategories(c *gin.Context) {
	categories, err := models.EnvelopeCategories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CategoriesResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, CategoriesResponse{Data: categories})
}
