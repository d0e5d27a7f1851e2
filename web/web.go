// Package web holds the page templates and static assets compiled into the binary.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"PortfolioGolang/pkg/markdown"
	"PortfolioGolang/pkg/media"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates
var templates embed.FS

//go:embed static
var static embed.FS

// Static is the asset tree served under /static.
func Static() http.FileSystem {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// NewEngine builds the view engine. storage may be nil, in which case media keys
// are emitted unchanged.
func NewEngine(storage media.Storage, md *markdown.Renderer) *html.Engine {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		panic(err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFuncMap(Funcs(storage, md))

	return engine
}

// Funcs is the template function set shared by every page.
func Funcs(storage media.Storage, md *markdown.Renderer) template.FuncMap {
	return template.FuncMap{
		"markdown": md.MustRender,
		"media": func(key string) string {
			if storage == nil {
				return key
			}
			return storage.URL(key)
		},
		"date": func(t time.Time, layout string) string {
			if t.IsZero() {
				return ""
			}
			return t.Format(layout)
		},
		"price": func(p *float64) string {
			if p == nil {
				return ""
			}
			return strconv.FormatFloat(*p, 'f', 2, 64)
		},
		"stars": func(n int) []int {
			if n < 0 {
				n = 0
			}
			return make([]int, n)
		},
		"list": func(values ...string) []string {
			return values
		},
		"dict": func(kv ...any) map[string]any {
			m := make(map[string]any, len(kv)/2)
			for i := 0; i+1 < len(kv); i += 2 {
				if k, ok := kv[i].(string); ok {
					m[k] = kv[i+1]
				}
			}
			return m
		},
		"pageQuery": pageQuery,
	}
}

// pageQuery builds "?k=v&page=n" from key/value pairs, dropping empty values so
// pagination links keep the active search and filter.
func pageQuery(page int, params []string) string {
	values := url.Values{}
	for i := 0; i+1 < len(params); i += 2 {
		if params[i+1] != "" {
			values.Set(params[i], params[i+1])
		}
	}
	values.Set("page", strconv.Itoa(page))
	return "?" + values.Encode()
}
