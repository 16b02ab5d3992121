// Package renderer turns ledger snapshots into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/rafaelleal24/inventory/internal/core/domain"
)

//go:embed templates/*.md
var templates embed.FS

// RenderReport renders the inventory, sales and purchase sections of a
// report followed by the profit. Amounts are formatted in currency.
func RenderReport(r *domain.Report, currency string) string {
	partials := map[string]string{
		"report_products":  "report_products.md",
		"report_sales":     "report_sales.md",
		"report_purchases": "report_purchases.md",
	}
	return renderTemplate("report", "report.md", partials, funcs(currency), r)
}

// RenderCatalog renders the products in catalog order.
func RenderCatalog(products []*domain.Product, currency string) string {
	return renderTemplate("catalog", "catalog.md", nil, funcs(currency), products)
}

// RenderProduct renders one product. A nil product renders as not found.
func RenderProduct(p *domain.Product, currency string) string {
	return renderTemplate("product", "product.md", nil, funcs(currency), p)
}

func funcs(currency string) template.FuncMap {
	return template.FuncMap{
		"money": func(a domain.Amount) string { return a.Format(currency) },
		"cell":  cell,
	}
}

// cell keeps free text from breaking a markdown table row.
func cell(s string) string {
	if s == "" {
		return "-"
	}
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}

func renderTemplate(templateName, mainFile string, partials map[string]string, fm template.FuncMap, data any) string {
	mainContent, err := fs.ReadFile(templates, "templates/"+mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(fm).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, "templates/"+file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
