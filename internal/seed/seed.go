// Package seed loads the initial envelope set from a YAML file.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/duobudget/backend/internal/models"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Envelopes []seedEnvelope `yaml:"envelopes"`
}

// seedEnvelope mirrors models.EnvelopeCreate: nil means the attribute
// was not set in the file.
type seedEnvelope struct {
	Name       string   `yaml:"name"`
	Category   *string  `yaml:"category"`
	Allocation *float64 `yaml:"allocation"`
	Individual bool     `yaml:"individual"`
	Rollover   *bool    `yaml:"rollover"`
}

// ParseFile reads and parses the seed file at path.
func ParseFile(path string) ([]models.EnvelopeCreate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	entries, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}

	return entries, nil
}

// Parse turns seed file contents into envelope create calls. Unknown
// keys are rejected so that typos do not silently drop attributes.
func Parse(data []byte) ([]models.EnvelopeCreate, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var file seedFile
	err := decoder.Decode(&file)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	entries := make([]models.EnvelopeCreate, 0, len(file.Envelopes))
	for i, envelope := range file.Envelopes {
		if strings.TrimSpace(envelope.Name) == "" {
			return nil, fmt.Errorf("envelope %d: the name must not be empty", i+1)
		}

		create := models.EnvelopeCreate{
			Name:         envelope.Name,
			Category:     envelope.Category,
			IsIndividual: envelope.Individual,
			Rollover:     envelope.Rollover,
		}

		if envelope.Allocation != nil {
			amount := *envelope.Allocation
			if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
				return nil, fmt.Errorf("envelope %q: the allocation must be a non-negative number", envelope.Name)
			}

			allocation := decimal.NewFromFloat(amount)
			create.Allocation = &allocation
		}

		entries = append(entries, create)
	}

	return entries, nil
}
