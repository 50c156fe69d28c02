package faq

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// pageTemplate wraps the rendered FAQ document in a minimal standalone page.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>FAQ — Xuno</title>
  <style>
    body { max-width: 48rem; margin: 2rem auto; padding: 0 1rem;
           font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", sans-serif;
           line-height: 1.6; color: #1f2328; }
    h3 { border-bottom: 1px solid #d0d7de; padding-bottom: .3rem; margin-top: 2rem; }
    strong { color: #0969da; }
  </style>
</head>
<body>
{{.Content}}
</body>
</html>
`

// RegisterPage mounts a server-rendered HTML view of the FAQ document at
// GET /faq. The document is re-read and re-rendered per request, like the
// JSON endpoints.
func RegisterPage(r chi.Router, store *Store) {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	tmpl := template.Must(template.New("faq").Parse(pageTemplate))

	r.Get("/faq", func(w http.ResponseWriter, req *http.Request) {
		content, err := os.ReadFile(store.Path())
		if err != nil {
			log.Printf("faq: reading %s: %v", store.Path(), err)
			http.Error(w, "FAQ document unavailable", http.StatusInternalServerError)
			return
		}

		var buf bytes.Buffer
		if err := md.Convert(content, &buf); err != nil {
			log.Printf("faq: rendering %s: %v", store.Path(), err)
			http.Error(w, "FAQ document unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := tmpl.Execute(w, struct{ Content template.HTML }{template.HTML(buf.String())}); err != nil {
			fmt.Fprintln(os.Stderr, "faq: executing template:", err)
		}
	})
}
