package extract

import (
	"errors"
	"testing"

	"vitae/internal/model"
)

const samplePage = `<html><body>
<table class="sortable">
  <tr><th>Other</th></tr>
  <tr><td>ignored</td></tr>
</table>
<table class="wikitable sortable">
  <tr><th>No.</th><th>Name(Birth` + "–" + `Death)Constituency</th><th>Term</th></tr>
  <tr><td>1</td><td>Edmund
      Barton(1849` + "–" + `1920)Division of Hunter</td><td>1901</td></tr>
  <tr><td>2</td><td><a href="/wiki/A">Alfred Deakin</a>(1856` + "–" + `1919)Division of Ballarat</td><td>1903</td></tr>
  <tr><td>2b</td><td>Alfred Deakin(1856` + "–" + `1919)Division of Ballarat</td><td>1905</td></tr>
  <tr><td></td><td>Name(Birth` + "–" + `Death)Constituency</td><td></td></tr>
  <tr><td>31</td><td>Anthony Albanese(b. 1963)Division of Grayndler</td><td>2022</td></tr>
</table>
</body></html>`

func TestTableExtractor_Extract(t *testing.T) {
	e := NewTableExtractor("wikitable", "Name(Birth–Death)Constituency")
	cells, err := e.Extract(samplePage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	want := []string{
		"Edmund Barton(1849–1920)Division of Hunter",
		"Alfred Deakin(1856–1919)Division of Ballarat",
		"Anthony Albanese(b. 1963)Division of Grayndler",
	}
	if len(cells) != len(want) {
		t.Fatalf("Expected %d cells, got %d: %v", len(want), len(cells), cells)
	}
	for i, w := range want {
		if cells[i] != w {
			t.Errorf("Cell %d: expected %q, got %q", i, w, cells[i])
		}
	}
}

func TestTableExtractor_HeaderLiteralRejected(t *testing.T) {
	e := NewTableExtractor("wikitable", "Name(Birth–Death)Constituency")
	cells, err := e.Extract(samplePage)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, c := range cells {
		if c == "Name(Birth–Death)Constituency" {
			t.Error("Header literal leaked into extracted cells")
		}
	}
}

func TestTableExtractor_NoTable(t *testing.T) {
	e := NewTableExtractor("wikitable", "Name")
	_, err := e.Extract("<html><body><p>nothing here</p></body></html>")
	if err == nil {
		t.Fatal("Expected error when no matching table exists")
	}
	var eerr *model.ExtractionError
	if !errors.As(err, &eerr) {
		t.Fatalf("Expected ExtractionError, got %T", err)
	}
}

func TestTableExtractor_MissingColumn(t *testing.T) {
	e := NewTableExtractor("wikitable", "Nonexistent")
	_, err := e.Extract(samplePage)
	if err == nil {
		t.Fatal("Expected error when designated column is absent")
	}
	var eerr *model.ExtractionError
	if !errors.As(err, &eerr) {
		t.Fatalf("Expected ExtractionError, got %T", err)
	}
	if eerr.Column != "Nonexistent" {
		t.Errorf("Expected column in error, got %q", eerr.Column)
	}
}

func TestCollapseWhitespace(t *testing.T) {
	in := "  Edmund \n\t Barton(1849–1920)Division   of Hunter  "
	want := "Edmund Barton(1849–1920)Division of Hunter"
	got := CollapseWhitespace(in)
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}

	// Idempotent: a second pass changes nothing.
	if again := CollapseWhitespace(got); again != got {
		t.Errorf("Normalization not idempotent: %q vs %q", got, again)
	}
}
