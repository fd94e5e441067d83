// Package report renders transaction reports as HTML documents.
package report

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/bookkeeping/internal/application/adapter"
	"github.com/finance-tracker/bookkeeping/internal/domain/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

const templateName = "transactions.html"

// htmlRenderer implements the adapter.ReportRenderer interface.
type htmlRenderer struct {
	templates *htmltemplate.Template
}

// NewHTMLRenderer parses the embedded report templates.
func NewHTMLRenderer() (adapter.ReportRenderer, error) {
	tmpl, err := htmltemplate.New("report").
		Funcs(htmltemplate.FuncMap{
			"money": formatMoney,
			"date":  formatDate,
		}).
		ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse report templates: %w", err)
	}

	return &htmlRenderer{
		templates: tmpl,
	}, nil
}

// Render renders the report as an HTML document.
func (r *htmlRenderer) Render(_ context.Context, report *entity.Report) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, templateName, report); err != nil {
		return nil, "", fmt.Errorf("failed to render report template: %w", err)
	}
	return buf.Bytes(), "text/html; charset=utf-8", nil
}

// Extension returns the file extension of rendered reports.
func (r *htmlRenderer) Extension() string {
	return ".html"
}

// formatMoney renders an amount with thousands separators and two decimals.
func formatMoney(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	whole, frac, _ := strings.Cut(fixed, ".")

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + humanize.Comma(decimal.RequireFromString(whole).IntPart()) + "." + frac
}

func formatDate(t time.Time) string {
	return t.Format("Jan 02, 2006")
}
