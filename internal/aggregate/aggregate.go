// Package aggregate derives lifespan figures and summary statistics from
// parsed records. Everything here is a pure function over value data.
package aggregate

import (
	"math"

	"vitae/internal/model"
)

// Derive computes the age at death for every deceased record. Living
// records pass through with the age undefined; order is preserved.
func Derive(records []model.Record) []model.LifespanRecord {
	derived := make([]model.LifespanRecord, 0, len(records))
	for _, r := range records {
		lr := model.LifespanRecord{Record: r}
		if r.DeathYear != nil {
			age := *r.DeathYear - r.BirthYear
			lr.AgeAtDeath = &age
		}
		derived = append(derived, lr)
	}
	return derived
}

// Summarize computes min/max/average age at death over the deceased subset.
// Ties keep the first matching name. Returns EmptyDatasetError when no
// record has a defined age.
func Summarize(records []model.LifespanRecord) (*model.Summary, error) {
	s := &model.Summary{}
	total := 0

	for _, r := range records {
		if r.AgeAtDeath == nil {
			s.Living++
			continue
		}

		age := *r.AgeAtDeath
		if s.Deceased == 0 || age < s.MinAge {
			s.MinAge = age
			s.MinAgeName = r.Name
		}
		if s.Deceased == 0 || age > s.MaxAge {
			s.MaxAge = age
			s.MaxAgeName = r.Name
		}
		total += age
		s.Deceased++
	}

	if s.Deceased == 0 {
		return nil, &model.EmptyDatasetError{}
	}

	// Ages are integer differences already; rounding guards against any
	// future float contamination upstream.
	s.MinAge = roundYear(float64(s.MinAge))
	s.MaxAge = roundYear(float64(s.MaxAge))
	s.AverageAge = roundYear(float64(total) / float64(s.Deceased))

	return s, nil
}

func roundYear(v float64) int {
	return int(math.Round(v))
}
