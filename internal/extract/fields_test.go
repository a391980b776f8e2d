package extract

import (
	"errors"
	"testing"

	"vitae/internal/model"
)

func TestParseCell_DateRange(t *testing.T) {
	rec, err := ParseCell(0, "Edmund Barton(1849–1920)Division of Hunter")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Name != "Edmund Barton" {
		t.Errorf("Expected name Edmund Barton, got %q", rec.Name)
	}
	if rec.BirthYear != 1849 {
		t.Errorf("Expected birth 1849, got %d", rec.BirthYear)
	}
	if rec.DeathYear == nil || *rec.DeathYear != 1920 {
		t.Errorf("Expected death 1920, got %v", rec.DeathYear)
	}
	if rec.Living() {
		t.Error("Expected deceased record")
	}
}

func TestParseCell_BornOnly(t *testing.T) {
	rec, err := ParseCell(0, "Anthony Albanese(b. 1963)Division of Grayndler")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Name != "Anthony Albanese" {
		t.Errorf("Expected name Anthony Albanese, got %q", rec.Name)
	}
	if rec.BirthYear != 1963 {
		t.Errorf("Expected birth 1963, got %d", rec.BirthYear)
	}
	if rec.DeathYear != nil {
		t.Errorf("Expected no death year, got %d", *rec.DeathYear)
	}
	if !rec.Living() {
		t.Error("Expected living record")
	}
}

func TestParseCell_NameWithSpaceBeforeParen(t *testing.T) {
	rec, err := ParseCell(0, "John Smith (1920–1990)Some District")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Name != "John Smith" {
		t.Errorf("Expected trimmed name, got %q", rec.Name)
	}
}

func TestParseCell_NoParenthesis(t *testing.T) {
	_, err := ParseCell(7, "No Parens Here")
	if err == nil {
		t.Fatal("Expected error for cell without parenthesis")
	}
	var perr *model.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if perr.Index != 7 {
		t.Errorf("Expected index 7, got %d", perr.Index)
	}
	if perr.Cell != "No Parens Here" {
		t.Errorf("Expected offending cell in error, got %q", perr.Cell)
	}
}

func TestParseCell_NoYearToken(t *testing.T) {
	_, err := ParseCell(2, "Jane Doe(unknown)Somewhere")
	if err == nil {
		t.Fatal("Expected error for unrecognizable remainder")
	}
	var perr *model.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
	if perr.Name != "Jane Doe" {
		t.Errorf("Expected name in error, got %q", perr.Name)
	}
	if perr.Remainder != "unknown)Somewhere" {
		t.Errorf("Expected remainder in error, got %q", perr.Remainder)
	}
}

func TestParseCell_AsciiHyphenDoesNotMatchRange(t *testing.T) {
	// A plain hyphen must not be read as a year range. With no born token
	// either, the cell is unparseable.
	_, err := ParseCell(0, "Old Format(1849-1920)Somewhere")
	if err == nil {
		t.Fatal("Expected ASCII hyphen range to fail extraction")
	}
	var perr *model.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Expected ParseError, got %T", err)
	}
}

func TestParseCell_BirthAfterDeath(t *testing.T) {
	_, err := ParseCell(0, "Impossible Person(1990–1920)Nowhere")
	if err == nil {
		t.Fatal("Expected error for birth after death")
	}
}

func TestParseCell_BothPatterns_RangeWins(t *testing.T) {
	rec, err := ParseCell(0, "Odd Cell(1900–1980, b. 1900)Somewhere")
	if err != nil {
		t.Fatalf("Expected range branch to win, got %v", err)
	}
	if rec.DeathYear == nil || *rec.DeathYear != 1980 {
		t.Errorf("Expected death 1980, got %v", rec.DeathYear)
	}
	if !rec.Ambiguous {
		t.Error("Expected ambiguous flag when both patterns match")
	}
}

func TestClassifyRemainder(t *testing.T) {
	tests := []struct {
		name      string
		remainder string
		want      Remainder
	}{
		{"range", "1849–1920)Division of Hunter", Remainder{Kind: KindDateRange, Birth: 1849, Death: 1920}},
		{"born", "b. 1963)Division of Grayndler", Remainder{Kind: KindBornOnly, Birth: 1963}},
		{"born requires lowercase", "B. 1963)", Remainder{Kind: KindUnrecognized}},
		{"born requires single space", "b.1963)", Remainder{Kind: KindUnrecognized}},
		{"hyphen not a range", "1849-1920)", Remainder{Kind: KindUnrecognized}},
		{"three digit years", "849–920)", Remainder{Kind: KindUnrecognized}},
		{"nothing", "some text)", Remainder{Kind: KindUnrecognized}},
		{"both", "1900–1980, b. 1900)", Remainder{Kind: KindDateRange, Birth: 1900, Death: 1980, Ambiguous: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyRemainder(tt.remainder)
			if got != tt.want {
				t.Errorf("ClassifyRemainder(%q) = %+v, want %+v", tt.remainder, got, tt.want)
			}
		})
	}
}
