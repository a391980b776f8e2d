package aggregate

import (
	"errors"
	"testing"

	"vitae/internal/model"
)

func deceased(name string, birth, death int) model.Record {
	return model.Record{Name: name, BirthYear: birth, DeathYear: &death}
}

func living(name string, birth int) model.Record {
	return model.Record{Name: name, BirthYear: birth}
}

func TestDerive(t *testing.T) {
	records := []model.Record{
		deceased("Edmund Barton", 1849, 1920),
		living("Anthony Albanese", 1963),
	}

	derived := Derive(records)
	if len(derived) != 2 {
		t.Fatalf("Expected 2 derived records, got %d", len(derived))
	}

	if derived[0].AgeAtDeath == nil || *derived[0].AgeAtDeath != 71 {
		t.Errorf("Expected age 71, got %v", derived[0].AgeAtDeath)
	}
	if derived[1].AgeAtDeath != nil {
		t.Errorf("Expected undefined age for living record, got %d", *derived[1].AgeAtDeath)
	}
}

func TestDerive_LivingSpanEndIsDisplayOnly(t *testing.T) {
	derived := Derive([]model.Record{living("Anthony Albanese", 1963)})

	if got := derived[0].SpanEnd(2026); got != 2026 {
		t.Errorf("Expected display span end 2026, got %d", got)
	}
	// The substituted year must never produce an age.
	if derived[0].AgeAtDeath != nil {
		t.Error("Display substitution leaked into age computation")
	}
}

func TestSummarize(t *testing.T) {
	// Deceased ages 71, 79, 85 -> min 71, max 85, average 78 (235/3 rounded).
	derived := Derive([]model.Record{
		deceased("A", 1849, 1920),
		deceased("B", 1850, 1929),
		deceased("C", 1860, 1945),
		living("D", 1963),
	})

	s, err := Summarize(derived)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if s.MinAge != 71 || s.MinAgeName != "A" {
		t.Errorf("Expected min 71 (A), got %d (%s)", s.MinAge, s.MinAgeName)
	}
	if s.MaxAge != 85 || s.MaxAgeName != "C" {
		t.Errorf("Expected max 85 (C), got %d (%s)", s.MaxAge, s.MaxAgeName)
	}
	if s.AverageAge != 78 {
		t.Errorf("Expected average 78, got %d", s.AverageAge)
	}
	if s.Deceased != 3 || s.Living != 1 {
		t.Errorf("Expected 3 deceased / 1 living, got %d / %d", s.Deceased, s.Living)
	}
}

func TestSummarize_TiesKeepFirstName(t *testing.T) {
	derived := Derive([]model.Record{
		deceased("First", 1900, 1971),
		deceased("Second", 1901, 1972),
	})

	s, err := Summarize(derived)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if s.MinAgeName != "First" {
		t.Errorf("Expected first match to win min tie, got %q", s.MinAgeName)
	}
	if s.MaxAgeName != "First" {
		t.Errorf("Expected first match to win max tie, got %q", s.MaxAgeName)
	}
}

func TestSummarize_EmptyDeceasedSubset(t *testing.T) {
	derived := Derive([]model.Record{living("Only Living", 1963)})

	_, err := Summarize(derived)
	if err == nil {
		t.Fatal("Expected error for living-only dataset")
	}
	var empty *model.EmptyDatasetError
	if !errors.As(err, &empty) {
		t.Fatalf("Expected EmptyDatasetError, got %T", err)
	}
}

func TestSummarize_AverageWithinBounds(t *testing.T) {
	cases := [][]model.Record{
		{deceased("A", 1900, 1971)},
		{deceased("A", 1900, 1971), deceased("B", 1900, 1972)},
		{deceased("A", 1900, 1950), deceased("B", 1900, 1990), deceased("C", 1900, 1991)},
	}

	for _, records := range cases {
		s, err := Summarize(Derive(records))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if s.AverageAge < s.MinAge || s.AverageAge > s.MaxAge {
			t.Errorf("Average %d outside [%d, %d]", s.AverageAge, s.MinAge, s.MaxAge)
		}
	}
}
