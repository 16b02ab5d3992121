package renderer

import (
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"github.com/rafaelleal24/inventory/internal/core/domain"
)

// outline is what a markdown viewer sees: headings, and the cell count of
// every table row.
type outline struct {
	headings []string
	tables   [][]int
}

// parseOutline parses md with the GFM table extension, the dialect glamour
// renders.
func parseOutline(t *testing.T, md string) outline {
	t.Helper()

	source := []byte(md)
	root := goldmark.New(goldmark.WithExtensions(extension.Table)).Parser().Parse(text.NewReader(source))

	var o outline
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *ast.Heading:
			o.headings = append(o.headings, plainText(n, source))
			return ast.WalkSkipChildren, nil
		case *extast.Table:
			var rows []int
			for row := n.FirstChild(); row != nil; row = row.NextSibling() {
				rows = append(rows, row.ChildCount())
			}
			o.tables = append(o.tables, rows)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		t.Fatalf("walk markdown: %v", err)
	}
	return o
}

func plainText(n ast.Node, source []byte) string {
	var s string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if txt, ok := c.(*ast.Text); ok {
			s += string(txt.Segment.Value(source))
			continue
		}
		s += plainText(c, source)
	}
	return s
}

func TestRenderReport_Structure(t *testing.T) {
	o := parseOutline(t, RenderReport(sampleReport(), "USD"))

	wantHeadings := []string{"Inventory Report", "Sales Report", "Purchase Report"}
	if len(o.headings) != len(wantHeadings) {
		t.Fatalf("expected headings %v, got %v", wantHeadings, o.headings)
	}
	for i, want := range wantHeadings {
		if o.headings[i] != want {
			t.Fatalf("heading %d: expected %q, got %q", i, want, o.headings[i])
		}
	}

	// header row + one row per line; totals must not be swallowed by a table
	wantTables := [][]int{{4, 4, 4}, {4, 4}, {4, 4}}
	if len(o.tables) != len(wantTables) {
		t.Fatalf("expected %d tables, got %v", len(wantTables), o.tables)
	}
	for i, want := range wantTables {
		if len(o.tables[i]) != len(want) {
			t.Fatalf("table %d: expected %d rows, got %v", i, len(want), o.tables[i])
		}
		for j, cells := range want {
			if o.tables[i][j] != cells {
				t.Fatalf("table %d row %d: expected %d cells, got %d", i, j, cells, o.tables[i][j])
			}
		}
	}
}

func TestRenderReport_EmptyHasNoTables(t *testing.T) {
	o := parseOutline(t, RenderReport(domain.NewReport(nil, nil, nil), "USD"))

	if len(o.tables) != 0 {
		t.Fatalf("expected no tables, got %v", o.tables)
	}
	if len(o.headings) != 3 {
		t.Fatalf("expected 3 headings, got %v", o.headings)
	}
}

func TestRenderCatalog_Structure(t *testing.T) {
	products := []*domain.Product{
		domain.NewProduct("Widget", "line one\nline two", domain.NewAmount(10), 5),
	}
	o := parseOutline(t, RenderCatalog(products, "USD"))

	if len(o.tables) != 1 || len(o.tables[0]) != 2 {
		t.Fatalf("expected one table with a header and one row, got %v", o.tables)
	}
	if o.tables[0][0] != o.tables[0][1] {
		t.Fatalf("expected the row to match the header width, got %v", o.tables[0])
	}
}
