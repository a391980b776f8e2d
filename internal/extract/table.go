package extract

import (
	"strings"

	"golang.org/x/net/html"

	"vitae/internal/model"
)

// TableExtractor locates the data table in a fetched page and projects it
// onto the single composite column the field parser understands.
type TableExtractor struct {
	tableClass string
	column     string
}

// NewTableExtractor creates an extractor for the given table class marker
// and designated column header.
func NewTableExtractor(tableClass, column string) *TableExtractor {
	return &TableExtractor{
		tableClass: tableClass,
		column:     column,
	}
}

// Extract parses the document, finds the first matching table, and returns
// the ordered, deduplicated, whitespace-normalized cells of the designated
// column. Header-literal rows are rejected.
func (e *TableExtractor) Extract(htmlContent string) ([]string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return nil, &model.ExtractionError{Reason: "parse document: " + err.Error(), TableClass: e.tableClass}
	}

	table := findFirst(doc, func(n *html.Node) bool {
		return isElement(n, "table") && hasClass(n, e.tableClass)
	})
	if table == nil {
		return nil, &model.ExtractionError{Reason: "table not found", TableClass: e.tableClass}
	}

	rows := findAll(table, func(n *html.Node) bool {
		return isElement(n, "tr")
	})
	if len(rows) == 0 {
		return nil, &model.ExtractionError{Reason: "table has no rows", TableClass: e.tableClass}
	}

	headers := rowCells(rows[0])
	idx := -1
	for i, h := range headers {
		if h == e.column {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, &model.ExtractionError{Reason: "column not found", TableClass: e.tableClass, Column: e.column}
	}

	seen := make(map[string]bool)
	var cells []string
	for _, row := range rows[1:] {
		values := rowCells(row)
		if idx >= len(values) {
			continue
		}

		// Map the row and project the designated column.
		byColumn := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(values) {
				byColumn[h] = values[i]
			}
		}
		cell := byColumn[e.column]

		// A repeated header row parses as data; reject the literal.
		if cell == "" || cell == e.column {
			continue
		}
		if seen[cell] {
			continue
		}
		seen[cell] = true
		cells = append(cells, cell)
	}

	return cells, nil
}

// rowCells returns the normalized text of each th/td cell in a table row
func rowCells(row *html.Node) []string {
	nodes := findAll(row, func(n *html.Node) bool {
		return isElement(n, "th") || isElement(n, "td")
	})

	cells := make([]string, 0, len(nodes))
	for _, n := range nodes {
		cells = append(cells, nodeText(n))
	}
	return cells
}
