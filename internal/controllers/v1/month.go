package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/duobudget/backend/internal/httputil"
	"github.com/duobudget/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// MonthProcessed reports the outcome of a monthly processing call.
type MonthProcessed struct {
	Processed bool                   `json:"processed" example:"true"` // Did this call process the month? False when it already was processed.
	Summary   *models.MonthlySummary `json:"summary"`                  // What the run changed, null when nothing ran
}

type MonthProcessedResponse struct {
	Data  *MonthProcessed `json:"data"`                                   // The processing outcome
	Error *string         `json:"error" example:"there is a problem with the database connection"` // The error, if any occurred
}

// RegisterProcessRoutes registers the routes for the monthly
// processing with the RouterGroup that is passed.
func RegisterProcessRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsProcess)
	r.POST("", ProcessMonth)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Months
// @Success		204
// @Router			/v1/process [options]
func OptionsProcess(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Process month
// @Description	Runs the month change for the current month. Envelopes with rollover keep their balance on top of a fresh allocation, all others start over at their allocation, and ledger entries past the retention window are pruned. Safe to call repeatedly, only the first call in a month processes.
// @Tags			Months
// @Produce		json
// @Success		200	{object}	MonthProcessedResponse
// @Failure		500	{object}	MonthProcessedResponse
// @Router			/v1/process [post]
func ProcessMonth(c *gin.Context) {
	summary, err := models.ProcessMonth(time.Now())
	if err != nil {
		if errors.Is(err, models.ErrAlreadyProcessed) {
			c.JSON(http.StatusOK, MonthProcessedResponse{
				Data: &MonthProcessed{Processed: false},
			})
			return
		}

		e := err.Error()
		c.JSON(status(err), MonthProcessedResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, MonthProcessedResponse{
		Data: &MonthProcessed{Processed: true, Summary: &summary},
	})
}
