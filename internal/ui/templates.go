package ui

import (
	"embed"
	"html/template"

	"github.com/shopspring/decimal"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"score": func(d decimal.NullDecimal) string {
		if !d.Valid {
			return "-"
		}
		return d.Decimal.StringFixed(1)
	},
}

func parseTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*.html")
}
