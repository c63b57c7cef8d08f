package export

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"

	"github.com/modos-studio/quotepilot-backend/internal/quote"
)

//go:embed templates/*.html
var templateFS embed.FS

var quoteTemplate = template.Must(
	template.New("quote.html").Funcs(template.FuncMap{
		"money": formatMoney,
		"css":   func(s string) template.CSS { return template.CSS(s) },
	}).ParseFS(templateFS, "templates/quote.html"),
)

// templateData wraps the document with resolved style defaults so the
// template never dereferences a nil style.
type templateData struct {
	Doc   quote.Document
	Style quote.Style
}

// renderHTML produces the printable A4 page for a document.
func renderHTML(doc quote.Document) (string, error) {
	style := quote.Style{
		FontFamily:      "Inter",
		HeadingFont:     "Inter",
		BodyFontSize:    12,
		HeadingFontSize: 28,
		PrimaryColor:    quote.BrandPrimaryColor,
		SecondaryColor:  quote.BrandSecondaryColor,
		AccentColor:     quote.BrandPrimaryColor,
		TextColor:       "#1A1A1A",
	}
	if doc.Style != nil {
		s := *doc.Style
		if s.FontFamily == "" {
			s.FontFamily = style.FontFamily
		}
		if s.HeadingFont == "" {
			s.HeadingFont = s.FontFamily
		}
		if s.BodyFontSize == 0 {
			s.BodyFontSize = style.BodyFontSize
		}
		if s.HeadingFontSize == 0 {
			s.HeadingFontSize = style.HeadingFontSize
		}
		if s.AccentColor == "" {
			s.AccentColor = style.AccentColor
		}
		if s.TextColor == "" {
			s.TextColor = style.TextColor
		}
		s.PrimaryColor = quote.BrandPrimaryColor
		s.SecondaryColor = quote.BrandSecondaryColor
		style = s
	}

	var buf bytes.Buffer
	if err := quoteTemplate.Execute(&buf, templateData{Doc: doc, Style: style}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatMoney renders integer VND with dot thousands separators, the way
// the documents print amounts ("30.000.000").
func formatMoney(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatInt(v, 10)
	var out []byte
	for i, digit := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, '.')
		}
		out = append(out, digit)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
