package models

import "errors"

// SeedResult reports what applying a seed changed.
type SeedResult struct {
	Created     int
	Reactivated int
	Skipped     int
}

// ApplySeed creates the given envelopes, skipping the ones that are
// already active. Reactivations are counted separately so a fresh
// database and a reused one can be told apart in the logs.
func ApplySeed(entries []EnvelopeCreate, users [2]string) (SeedResult, error) {
	var result SeedResult

	for _, entry := range entries {
		created, err := CreateEnvelope(entry, users)
		if err != nil {
			if errors.Is(err, ErrEnvelopeNameInUse) {
				result.Skipped++
				continue
			}
			return result, err
		}

		if created.Reactivated {
			result.Reactivated++
		} else {
			result.Created++
		}
	}

	return result, nil
}
