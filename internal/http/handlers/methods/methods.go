package methods

import (
	"html/template"
	"net/http"

	"github.com/lidofinance/near-jsonrpc/internal/utils/registry"
)

type MethodInfo struct {
	Name        string
	Description string
	ReplacedBy  string
	Immutable   bool
}

type TemplateData struct {
	Node    string
	Methods []MethodInfo
}

var page = template.Must(template.New("methods").Parse(`<!DOCTYPE html>
<html>
<head><title>NEAR JSON-RPC methods</title></head>
<body>
<h1>{{.Node}}</h1>
<table>
<tr><th>Method</th><th>Description</th><th>Use instead</th><th>Cacheable</th></tr>
{{range .Methods}}<tr><td>{{.Name}}</td><td>{{.Description}}</td><td>{{.ReplacedBy}}</td><td>{{if .Immutable}}yes{{end}}</td></tr>
{{end}}</table>
</body>
</html>
`))

type handler struct {
	node string
}

func New(node string) *handler {
	return &handler{
		node: node,
	}
}

func (h *handler) Handler(w http.ResponseWriter, _ *http.Request) {
	names := registry.Names()

	data := TemplateData{
		Node:    h.node,
		Methods: make([]MethodInfo, 0, len(names)),
	}
	for _, name := range names {
		m := registry.Methods[name]
		data.Methods = append(data.Methods, MethodInfo{
			Name:        m.Name,
			Description: m.Description,
			ReplacedBy:  m.ReplacedBy,
			Immutable:   m.Immutable,
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
