// Package report builds the month-to-date spending overview.
package report

import (
	"time"

	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Status grades how an envelope's consumption compares to an even
// spending pace over the month.
type Status string

const (
	StatusNeutral  Status = "neutral"
	StatusOnTrack  Status = "onTrack"
	StatusCaution  Status = "caution"
	StatusOverPace Status = "overPace"
)

var (
	one          = decimal.NewFromInt(1)
	cautionBound = decimal.RequireFromString("1.25")
)

// Line is the row of a report for one envelope.
type Line struct {
	Name         string          `json:"name"`
	Owner        *string         `json:"owner"` // nil for shared envelopes
	Category     string          `json:"category"`
	Allocation   decimal.Decimal `json:"allocation"`
	Balance      decimal.Decimal `json:"balance"`
	Spent        decimal.Decimal `json:"spent"`
	ExpectedPace decimal.Decimal `json:"expectedPace"`
	Status       Status          `json:"status"`
}

// Report is the overview over all active envelopes at a point in the
// month.
type Report struct {
	Month types.Month `json:"month"`
	Day   int         `json:"day"`
	Lines []Line      `json:"lines"`
}

// Generate builds the report for the month and day that now falls
// into, in UTC.
func Generate(now time.Time) (Report, error) {
	month := types.MonthOf(now)
	day := now.UTC().Day()

	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		return Report{}, err
	}

	spent, err := models.SpentByEnvelope(month)
	if err != nil {
		return Report{}, err
	}

	dayFactor := decimal.NewFromInt(int64(day))
	daysInMonth := decimal.NewFromInt(int64(month.Days()))

	report := Report{
		Month: month,
		Day:   day,
		Lines: make([]Line, 0, len(envelopes)),
	}

	for _, envelope := range envelopes {
		// Multiply first so that evenly divisible allocations come out
		// without a remainder
		pace := envelope.Allocation.Mul(dayFactor).Div(daysInMonth)

		report.Lines = append(report.Lines, Line{
			Name:         envelope.Name,
			Owner:        envelope.UserID,
			Category:     envelope.Category,
			Allocation:   envelope.Allocation,
			Balance:      envelope.Balance,
			Spent:        spent[envelope.ID],
			ExpectedPace: pace,
			Status:       status(envelope, pace),
		})
	}

	return report, nil
}

// status grades one envelope. The ratio of consumed allocation to the
// expected pace decides, boundaries count as the friendlier grade.
func status(envelope models.Envelope, pace decimal.Decimal) Status {
	if envelope.Allocation.IsZero() {
		return StatusNeutral
	}

	consumed := envelope.Allocation.Sub(envelope.Balance)

	// Without a pace there is no ratio. Anything consumed already is
	// too much, otherwise all is well.
	if pace.IsZero() {
		if consumed.IsPositive() {
			return StatusOverPace
		}
		return StatusOnTrack
	}

	ratio := consumed.Div(pace)

	switch {
	case ratio.LessThanOrEqual(one):
		return StatusOnTrack
	case ratio.LessThanOrEqual(cautionBound):
		return StatusCaution
	default:
		return StatusOverPace
	}
}
