package fanyi

import (
	"strings"

	"github.com/akarin-dev/fanyi/minifmt"
	"github.com/akarin-dev/fanyi/translate"
)

// Version is the release version of the fanyi tool.
const Version = "0.3.0"

// FormatRows compiles each format string once and renders every translated
// row through it, template-major then row-minor: all rows through the first
// template, then all rows through the second, and so on. Each row supplies
// two arguments, the translated text then the source text.
func FormatRows(formats []string, rows []translate.Row) (string, error) {
	templates := make([]*minifmt.Template, 0, len(formats))
	for _, format := range formats {
		tmpl, err := minifmt.Compile(format)
		if err != nil {
			return "", err
		}
		templates = append(templates, tmpl)
	}

	var out strings.Builder
	for _, tmpl := range templates {
		for _, row := range rows {
			s, err := tmpl.RenderStrings(row.Dst, row.Src)
			if err != nil {
				return "", err
			}
			out.WriteString(s)
		}
	}
	return out.String(), nil
}
