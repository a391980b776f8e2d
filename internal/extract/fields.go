package extract

import (
	"regexp"
	"strconv"
	"strings"

	"vitae/internal/model"
)

// YearRangeDash is the dash glyph separating birth and death years in the
// source. It is an en dash (U+2013), not an ASCII hyphen: a cell written
// with a plain hyphen deliberately does not match the range pattern.
const YearRangeDash = "–"

var (
	yearRangeRe = regexp.MustCompile(`(\d{4})` + YearRangeDash + `(\d{4})`)
	bornRe      = regexp.MustCompile(`b\. (\d{4})`)
)

// RemainderKind tags the recognized format of a cell's parenthetical
type RemainderKind int

const (
	KindUnrecognized RemainderKind = iota
	KindDateRange                  // "(1849–1920)..."
	KindBornOnly                   // "(b. 1963)..."
)

// Remainder is the classified parenthetical fragment of a cell
type Remainder struct {
	Kind      RemainderKind
	Birth     int
	Death     int  // Defined only for KindDateRange
	Ambiguous bool // Both patterns matched; the range won
}

// ClassifyRemainder extracts year tokens from the text following the first
// opening parenthesis. Trailing constituency text is ignored, not stripped.
// When both patterns match, the date range wins and the result is flagged
// ambiguous.
func ClassifyRemainder(remainder string) Remainder {
	rangeMatch := yearRangeRe.FindStringSubmatch(remainder)
	bornMatch := bornRe.FindStringSubmatch(remainder)

	if rangeMatch != nil {
		birth, _ := strconv.Atoi(rangeMatch[1])
		death, _ := strconv.Atoi(rangeMatch[2])
		return Remainder{
			Kind:      KindDateRange,
			Birth:     birth,
			Death:     death,
			Ambiguous: bornMatch != nil,
		}
	}

	if bornMatch != nil {
		birth, _ := strconv.Atoi(bornMatch[1])
		return Remainder{Kind: KindBornOnly, Birth: birth}
	}

	return Remainder{Kind: KindUnrecognized}
}

// ParseCell turns one normalized cell into a Record. index identifies the
// cell's position for diagnostics only.
func ParseCell(index int, cell string) (model.Record, error) {
	paren := strings.Index(cell, "(")
	if paren < 0 {
		return model.Record{}, &model.ParseError{
			Index:  index,
			Cell:   cell,
			Reason: "no opening parenthesis",
		}
	}

	name := strings.TrimSpace(cell[:paren])
	remainder := cell[paren+1:]

	classified := ClassifyRemainder(remainder)
	switch classified.Kind {
	case KindDateRange:
		if classified.Birth > classified.Death {
			return model.Record{}, &model.ParseError{
				Index:     index,
				Name:      name,
				Remainder: remainder,
				Cell:      cell,
				Reason:    "birth year after death year",
			}
		}
		death := classified.Death
		return model.Record{
			Name:      name,
			BirthYear: classified.Birth,
			DeathYear: &death,
			Ambiguous: classified.Ambiguous,
		}, nil

	case KindBornOnly:
		return model.Record{
			Name:      name,
			BirthYear: classified.Birth,
		}, nil

	default:
		return model.Record{}, &model.ParseError{
			Index:     index,
			Name:      name,
			Remainder: remainder,
			Cell:      cell,
			Reason:    "no recognizable year token",
		}
	}
}
