package router

import (
	"fmt"
	"html/template"
	"io"
	"time"

	"portfolio-go-backend/pkg/util/datetime"
	"portfolio-go-backend/pkg/util/text"

	"github.com/labstack/echo/v4"
)

// Renderer renders the site templates through echo.
type Renderer struct {
	templates *template.Template
}

// TemplateFuncs are the helpers available inside templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"split":    text.Split,
		"trim":     text.Trim,
		"markdown": text.MarkdownToHTML,
		// Enum fields come through as named string types.
		"skillPercentage": func(proficiency interface{}) int {
			return text.SkillPercentage(fmt.Sprint(proficiency))
		},
		// Optional dates are pointers; render empty when unset.
		"formatDate": func(v interface{}) string {
			switch t := v.(type) {
			case time.Time:
				return datetime.FormatDate(t)
			case *time.Time:
				if t == nil {
					return ""
				}
				return datetime.FormatDate(*t)
			}
			return ""
		},
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"duration": func(start time.Time, end *time.Time) string {
			if end == nil {
				return datetime.Duration(start, time.Time{})
			}
			return datetime.Duration(start, *end)
		},
	}
}

// NewRenderer parses every template matching the glob.
func NewRenderer(glob string) (*Renderer, error) {
	tmpl, err := template.New("").Funcs(TemplateFuncs()).ParseGlob(glob)
	if err != nil {
		return nil, err
	}
	return &Renderer{templates: tmpl}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}
