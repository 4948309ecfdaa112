package v1

import (
	"net/http"
	"time"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/report"
	"github.com/gin-gonic/gin"
)

type ReportResponse struct {
	Data  *report.Report `json:"data"`                                   // The month-to-date overview
	Error *string        `json:"error" example:"there is a problem with the database connection"` // The error, if any occurred
}

// RegisterReportRoutes registers the routes for the report with
// the RouterGroup that is passed.
func RegisterReportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReport)
	r.GET("", GetReport)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Report
// @Success		204
// @Router			/v1/report [options]
func OptionsReport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get report
// @Description	Returns the month-to-date overview. For every active envelope, the spending so far is compared to an even pace over the month.
// @Tags			Report
// @Produce		json
// @Success		200	{object}	ReportResponse
// @Failure		500	{object}	ReportResponse
// @Router			/v1/report [get]
func GetReport(c *gin.Context) {
	data, err := report.Generate(time.Now())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ReportResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, ReportResponse{Data: &data})
}
