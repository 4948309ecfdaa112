package v1

import (
	"encoding/json"
	"net/http"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/ops"
	"github.com/gin-gonic/gin"
)

// OperationDescriptor describes one operation for a front end.
type OperationDescriptor struct {
	Name        string `json:"name" example:"spend"`                               // Name the operation is dispatched under
	Description string `json:"description" example:"Spend an amount from an envelope"` // What the operation does
}

type OperationListResponse struct {
	Data  []OperationDescriptor `json:"data"`                                       // All operations, sorted by name
	Error *string               `json:"error" example:"there is no operation with this name"` // The error, if any occurred
}

// OperationInvocation is the request body for dispatching an
// operation. Params is decoded into the parameter struct of the
// operation being dispatched.
type OperationInvocation struct {
	User   string          `json:"user" example:"alice"` // The person invoking the operation
	Params json.RawMessage `json:"params"`               // Operation specific parameters
}

type OperationResultResponse struct {
	Data  any     `json:"data"`                                       // The operation result, its shape depends on the operation
	Error *string `json:"error" example:"there is no operation with this name"` // The error, if any occurred
}

type URIOperation struct {
	Name string `uri:"name" binding:"required"` // Name of the operation
}

// RegisterOpsRoutes registers the routes for operation dispatch with
// the RouterGroup that is passed.
//
// This is the surface chat front ends consume. They list the table
// once for their command setup and dispatch decoded payloads here.
func RegisterOpsRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsOpsList)
		r.GET("", GetOperations)
	}

	// Dispatch by name
	{
		r.OPTIONS("/:name", OptionsOpsDetail)
		r.POST("/:name", DispatchOperation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Router			/v1/ops [options]
func OptionsOpsList(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Operations
// @Success		204
// @Failure		404	{object}	httpError
// @Param			name	path	string	true	"Name of the operation"
// @Router			/v1/ops/{name} [options]
func OptionsOpsDetail(c *gin.Context) {
	var uri URIOperation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if _, ok := registry.Find(uri.Name); !ok {
		c.JSON(http.StatusNotFound, httpError{
			Error: errOperationUnknown.Error(),
		})
		return
	}

	httputil.OptionsPost(c)
}

// @Summary		Get operations
// @Description	Returns all operations a front end can dispatch
// @Tags			Operations
// @Produce		json
// @Success		200	{object}	OperationListResponse
// @Router			/v1/ops [get]
func GetOperations(c *gin.Context) {
	operations := registry.Operations()

	data := make([]OperationDescriptor, 0, len(operations))
	for _, op := range operations {
		data = append(data, OperationDescriptor{
			Name:        op.Name,
			Description: op.Description,
		})
	}

	c.JSON(http.StatusOK, OperationListResponse{Data: data})
}

// @Summary		Dispatch operation
// @Description	Runs one operation with the parameters in the request body. The result shape depends on the operation.
// @Tags			Operations
// @Produce		json
// @Success		200			{object}	OperationResultResponse
// @Failure		400			{object}	OperationResultResponse
// @Failure		404			{object}	OperationResultResponse
// @Failure		500			{object}	OperationResultResponse
// @Param			name		path		string				true	"Name of the operation"
// @Param			invocation	body		OperationInvocation	true	"Invocation"
// @Router			/v1/ops/{name} [post]
func DispatchOperation(c *gin.Context) {
	var uri URIOperation
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OperationResultResponse{
			Error: &e,
		})
		return
	}

	op, ok := registry.Find(uri.Name)
	if !ok {
		e := errOperationUnknown.Error()
		c.JSON(http.StatusNotFound, OperationResultResponse{
			Error: &e,
		})
		return
	}

	var invocation OperationInvocation
	err = httputil.BindData(c, &invocation)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OperationResultResponse{
			Error: &e,
		})
		return
	}

	params := op.NewParams()
	if len(invocation.Params) != 0 {
		err = json.Unmarshal(invocation.Params, params)
		if err != nil {
			e := err.Error()
			c.JSON(http.StatusBadRequest, OperationResultResponse{
				Error: &e,
			})
			return
		}
	}

	result, err := op.Handle(ops.Invocation{User: invocation.User, Params: params})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), OperationResultResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, OperationResultResponse{Data: result})
}
