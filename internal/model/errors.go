package model

import "fmt"

// ExtractionError indicates the source table or its designated column could
// not be located. It is fatal: there is no data to work with.
type ExtractionError struct {
	Reason     string // "table not found", "column not found", ...
	TableClass string // Class marker the extractor searched for
	Column     string // Designated column, when the failure concerns it
}

func (e *ExtractionError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("extraction failed: %s (table class %q, column %q)", e.Reason, e.TableClass, e.Column)
	}
	return fmt.Sprintf("extraction failed: %s (table class %q)", e.Reason, e.TableClass)
}

// ParseError indicates a single cell matched neither recognized format.
// It carries enough of the offending text to diagnose without re-running.
type ParseError struct {
	Index     int    // Position of the cell in the extracted sequence (0-based)
	Name      string // Name portion, if a parenthesis was found
	Remainder string // Text after the first opening parenthesis
	Cell      string // Full raw cell text
	Reason    string
}

func (e *ParseError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("parse record %d (%s): %s: %q", e.Index, e.Name, e.Reason, e.Remainder)
	}
	return fmt.Sprintf("parse record %d: %s: %q", e.Index, e.Reason, e.Cell)
}

// EmptyDatasetError indicates there are no deceased records to summarize.
// Only the summary step fails on it; a living-only dataset still charts.
type EmptyDatasetError struct{}

func (e *EmptyDatasetError) Error() string {
	return "no deceased records to summarize"
}
