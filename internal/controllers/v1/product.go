package v1

import (
	"net/http"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterProductRoutes registers the routes for products with
// the RouterGroup that is passed.
func RegisterProductRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsProductList)
		r.GET("", GetProducts)
		r.POST("", CreateProduct)
	}

	// Product with ID
	{
		r.OPTIONS("/:id", OptionsProductDetail)
		r.GET("/:id", GetProduct)
		r.PATCH("/:id", UpdateProduct)
		r.DELETE("/:id", DeleteProduct)
	}

	// Consumption
	{
		r.OPTIONS("/:id/consume", OptionsProductConsume)
		r.POST("/:id/consume", ConsumeProduct)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Router			/v1/products [options]
func OptionsProductList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [options]
func OptionsProductDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.ProductByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id}/consume [options]
func OptionsProductConsume(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	_, err = models.ProductByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Create product
// @Description	Registers a product and anchors it to an envelope referenced by name
// @Tags			Products
// @Produce		json
// @Success		201		{object}	ProductResponse
// @Failure		400		{object}	ProductResponse
// @Failure		404		{object}	ProductResponse
// @Failure		409		{object}	ProductResponse
// @Failure		500		{object}	ProductResponse
// @Param			product	body		ProductEditable	true	"Product"
// @Router			/v1/products [post]
func CreateProduct(c *gin.Context) {
	var editable ProductEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	product, err := models.CreateProduct(editable.create())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	data, err := newProduct(c, product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusCreated, ProductResponse{Data: &data})
}

// @Summary		Get products
// @Description	Returns a list of all products
// @Tags			Products
// @Produce		json
// @Success		200	{object}	ProductListResponse
// @Failure		500	{object}	ProductListResponse
// @Router			/v1/products [get]
func GetProducts(c *gin.Context) {
	products, err := models.Products()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Product, 0, len(products))
	for _, product := range products {
		p, err := newProduct(c, product)
		if err != nil {
			e := err.Error()
			c.JSON(status(err), ProductListResponse{
				Error: &e,
			})
			return
		}

		data = append(data, p)
	}

	c.JSON(http.StatusOK, ProductListResponse{Data: data})
}

// @Summary		Get product
// @Description	Returns a specific product
// @Tags			Products
// @Produce		json
// @Success		200	{object}	ProductResponse
// @Failure		400	{object}	ProductResponse
// @Failure		404	{object}	ProductResponse
// @Failure		500	{object}	ProductResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [get]
func GetProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	product, err := models.ProductByID(uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	data, err := newProduct(c, product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProductResponse{Data: &data})
}

// @Summary		Update product
// @Description	Updates the price, pack size or envelope of a product. Only values to be updated need to be specified.
// @Tags			Products
// @Accept			json
// @Produce		json
// @Success		200		{object}	ProductResponse
// @Failure		400		{object}	ProductResponse
// @Failure		404		{object}	ProductResponse
// @Failure		500		{object}	ProductResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			product	body		ProductPatch	true	"Product"
// @Router			/v1/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	var patch ProductPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	product, err := models.UpdateProductByID(uri.ID.UUID, patch.update())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	data, err := newProduct(c, product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProductResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ProductResponse{Data: &data})
}

// @Summary		Delete product
// @Description	Deletes a product. Past consumptions stay in the ledger.
// @Tags			Products
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DeleteProductByID(uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Consume product
// @Description	Books the price for the given quantity against the product's envelope. For an individual envelope, the consuming person's own instance is used.
// @Tags			Products
// @Produce		json
// @Success		201			{object}	ConsumptionResponse
// @Failure		400			{object}	ConsumptionResponse
// @Failure		404			{object}	ConsumptionResponse
// @Failure		500			{object}	ConsumptionResponse
// @Param			id			path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			consumption	body		ProductConsume	true	"Consumption"
// @Router			/v1/products/{id}/consume [post]
func ConsumeProduct(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsumptionResponse{
			Error: &e,
		})
		return
	}

	var body ProductConsume
	err = httputil.BindData(c, &body)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsumptionResponse{
			Error: &e,
		})
		return
	}

	if body.User == "" {
		e := errUserNotSet.Error()
		c.JSON(http.StatusBadRequest, ConsumptionResponse{
			Error: &e,
		})
		return
	}

	// An omitted quantity means a single unit
	quantity := body.Quantity
	if quantity == 0 {
		quantity = 1
	}

	result, err := models.ConsumeProductByID(uri.ID.UUID, body.User, quantity, body.MessageID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsumptionResponse{
			Error: &e,
		})
		return
	}

	product, err := newProduct(c, result.Product)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ConsumptionResponse{
			Error: &e,
		})
		return
	}

	data := Consumption{
		Product:  product,
		Quantity: result.Quantity,
		Booking: Booking{
			Transaction: newTransaction(c, result.Booking.Transaction),
			NewBalance:  result.Booking.NewBalance,
			Overdraft:   result.Booking.Overdraft,
		},
	}

	c.JSON(http.StatusCreated, ConsumptionResponse{Data: &data})
}
