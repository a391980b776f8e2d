package model

// Record represents one office-holder parsed from the source table
type Record struct {
	Name      string `json:"name"`                 // Name as it appears before the parenthetical
	BirthYear int    `json:"birth_year"`           // Four-digit birth year, always present
	DeathYear *int   `json:"death_year,omitempty"` // nil means the person is recorded as living
	Ambiguous bool   `json:"ambiguous,omitempty"`  // Cell carried both a year range and a born token
}

// Living reports whether the record has no death year
func (r Record) Living() bool {
	return r.DeathYear == nil
}

// LifespanRecord extends Record with the computed age at death
type LifespanRecord struct {
	Record
	AgeAtDeath *int `json:"age_at_death,omitempty"` // Defined only for deceased records
}

// SpanEnd returns the year the record's chart bar ends at: the death year
// for deceased records, or currentYear for living ones. Display only; it
// must never be used to compute an age.
func (r LifespanRecord) SpanEnd(currentYear int) int {
	if r.DeathYear != nil {
		return *r.DeathYear
	}
	return currentYear
}

// Summary holds aggregate lifespan statistics over the deceased subset
type Summary struct {
	Deceased   int    `json:"deceased"`     // Count of records with an age at death
	Living     int    `json:"living"`       // Count of records without one
	MinAge     int    `json:"min_age"`      // Youngest age at death
	MinAgeName string `json:"min_age_name"` // First record achieving MinAge
	MaxAge     int    `json:"max_age"`      // Oldest age at death
	MaxAgeName string `json:"max_age_name"` // First record achieving MaxAge
	AverageAge int    `json:"average_age"`  // Mean age at death, rounded to nearest year
}

// SkippedRecord documents a cell that failed parsing under the skip policy
type SkippedRecord struct {
	Index     int    `json:"index"`               // Position in the extracted cell sequence (0-based)
	Name      string `json:"name,omitempty"`      // Name portion, if a parenthesis was found
	Remainder string `json:"remainder,omitempty"` // Raw text after the parenthesis
	Cell      string `json:"cell"`                // Full raw cell text
	Reason    string `json:"reason"`              // Why it failed
}
