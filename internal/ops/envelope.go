package ops

import (
	"errors"
	"math"
	"time"

	"github.com/duobudget/backend/internal/models"
	"github.com/duobudget/backend/internal/report"
	"github.com/shopspring/decimal"
)

func (r *Registry) envelopesOperation() Operation {
	return Operation{
		Name:        "envelopes",
		Description: "List all active envelopes with their balances",
		NewParams:   func() any { return &struct{}{} },
		Handle: func(inv Invocation) (any, error) {
			return models.ActiveEnvelopes()
		},
	}
}

// CreateEnvelopeParams describe a new envelope. Individual envelopes
// get one instance per configured user.
type CreateEnvelopeParams struct {
	Name       string   `json:"name"`
	Category   *string  `json:"category"`
	Allocation *float64 `json:"allocation"`
	Individual bool     `json:"individual"`
	Rollover   *bool    `json:"rollover"`
}

func (r *Registry) createEnvelopeOperation() Operation {
	return Operation{
		Name:        "create-envelope",
		Description: "Create an envelope, or reactivate a deleted one of the same name",
		NewParams:   func() any { return &CreateEnvelopeParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*CreateEnvelopeParams)

			create := models.EnvelopeCreate{
				Name:         params.Name,
				Category:     params.Category,
				IsIndividual: params.Individual,
				Rollover:     params.Rollover,
			}

			if params.Allocation != nil {
				allocation := *params.Allocation
				if math.IsNaN(allocation) || math.IsInf(allocation, 0) || allocation < 0 {
					return nil, models.ErrInvalidAmount
				}

				value := decimal.NewFromFloat(allocation)
				create.Allocation = &value
			}

			return models.CreateEnvelope(create, r.users)
		},
	}
}

// DeleteEnvelopeParams name the envelope to retire.
type DeleteEnvelopeParams struct {
	Name string `json:"name"`
}

// DeleteEnvelopeResult reports which envelope was retired.
type DeleteEnvelopeResult struct {
	Envelope models.Envelope `json:"envelope"`
}

func (r *Registry) deleteEnvelopeOperation() Operation {
	return Operation{
		Name:        "delete-envelope",
		Description: "Retire an envelope, keeping its history",
		NewParams:   func() any { return &DeleteEnvelopeParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*DeleteEnvelopeParams)

			envelope, err := models.SoftDeleteEnvelope(params.Name, inv.User)
			if err != nil {
				return nil, err
			}

			return DeleteEnvelopeResult{Envelope: envelope}, nil
		},
	}
}

func (r *Registry) reportOperation() Operation {
	return Operation{
		Name:        "report",
		Description: "Show the pace report for the current month",
		NewParams:   func() any { return &struct{}{} },
		Handle: func(inv Invocation) (any, error) {
			return report.Generate(time.Now())
		},
	}
}

// UpdateResult tells whether the monthly rollover ran or had already
// run for the current month.
type UpdateResult struct {
	Processed bool                   `json:"processed"`
	Summary   *models.MonthlySummary `json:"summary"`
}

func (r *Registry) updateOperation() Operation {
	return Operation{
		Name:        "update",
		Description: "Run the monthly rollover for the current month",
		NewParams:   func() any { return &struct{}{} },
		Handle: func(inv Invocation) (any, error) {
			summary, err := models.ProcessMonth(time.Now())
			if err != nil {
				if errors.Is(err, models.ErrAlreadyProcessed) {
					return UpdateResult{Processed: false}, nil
				}

				return nil, err
			}

			return UpdateResult{Processed: true, Summary: &summary}, nil
		},
	}
}
