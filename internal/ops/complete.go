package ops

import (
	"strings"

	"github.com/duobudget/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

// maxCompletions bounds a completion response. Chat autocompletion
// menus show 25 entries at most.
const maxCompletions = 25

// activeEnvelopeNames loads the distinct names of all active
// envelopes. Individual envelopes have one row per user, but complete
// as a single name.
func activeEnvelopeNames() ([]string, error) {
	envelopes, err := models.ActiveEnvelopes()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(envelopes))
	for _, envelope := range envelopes {
		// Rows are sorted by name, duplicates are adjacent.
		if len(names) > 0 && names[len(names)-1] == envelope.Name {
			continue
		}
		names = append(names, envelope.Name)
	}

	return names, nil
}

func productNames() ([]string, error) {
	products, err := models.Products()
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(products))
	for _, product := range products {
		names = append(names, product.Name)
	}

	return names, nil
}

// CompleteParams carry the partial input typed so far.
type CompleteParams struct {
	Partial string `json:"partial"`
}

// complete returns the names matching the partial input,
// case-insensitively and anywhere in the name.
func complete(names []string, partial string) []string {
	pattern := "*" + strings.ToLower(strings.TrimSpace(partial)) + "*"

	matches := make([]string, 0, maxCompletions)
	for _, name := range names {
		if !glob.Glob(pattern, strings.ToLower(name)) {
			continue
		}

		matches = append(matches, name)
		if len(matches) == maxCompletions {
			break
		}
	}

	return matches
}

func (r *Registry) completeEnvelopeOperation() Operation {
	return Operation{
		Name:        "complete-envelope",
		Description: "Autocomplete an envelope name",
		NewParams:   func() any { return &CompleteParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*CompleteParams)

			names, err := r.names.EnvelopeNames()
			if err != nil {
				return nil, err
			}

			return complete(names, params.Partial), nil
		},
	}
}

func (r *Registry) completeProductOperation() Operation {
	return Operation{
		Name:        "complete-product",
		Description: "Autocomplete a product name",
		NewParams:   func() any { return &CompleteParams{} },
		Handle: func(inv Invocation) (any, error) {
			params := inv.Params.(*CompleteParams)

			names, err := r.names.ProductNames()
			if err != nil {
				return nil, err
			}

			return complete(names, params.Partial), nil
		},
	}
}
