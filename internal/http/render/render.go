package render

import (
	"embed"
	"html/template"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// Templates parses the embedded pages. Each page is addressed by its file
// name, e.g. "admin.tmpl".
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl"))
}

func Page(c *gin.Context, status int, name string, data any) {
	c.HTML(status, name, data)
}

var funcs = template.FuncMap{
	"imgsrc": imgSrc,
}

// imgSrc lets stored image data-URLs through html/template's URL filter.
// Anything else is handed back as a plain string and filtered as usual.
func imgSrc(s string) any {
	if strings.HasPrefix(s, "data:image/") {
		return template.URL(s)
	}
	return s
}
