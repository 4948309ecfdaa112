package v1

import (
	"net/http"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"`
}

type Links struct {
	Envelopes    string `json:"envelopes" example:"https://example.com/api/v1/envelopes"`       // URL of the envelope collection
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions"` // URL of the transaction ledger
	Products     string `json:"products" example:"https://example.com/api/v1/products"`         // URL of the product collection
	Process      string `json:"process" example:"https://example.com/api/v1/process"`           // Endpoint triggering the month rollover
	Report       string `json:"report" example:"https://example.com/api/v1/report"`             // Endpoint returning the budget report
	Ops          string `json:"ops" example:"https://example.com/api/v1/ops"`                   // Operation dispatch for chat front ends
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Envelopes:    url + "/v1/envelopes",
			Transactions: url + "/v1/transactions",
			Products:     url + "/v1/products",
			Process:      url + "/v1/process",
			Report:       url + "/v1/report",
			Ops:          url + "/v1/ops",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
