// Command arity writes the Func1..FuncN handler constructors.
package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"

	"github.com/alecthomas/kong"
)

var cli struct {
	Output string `short:"o" default:"arity.go" help:"File to write."`
	Max    int    `default:"16" help:"Highest arity to generate."`
}

type arity struct {
	N    int
	Args []int
}

var funcs = template.FuncMap{
	"types": func(args []int) string {
		parts := make([]string, len(args))
		for i, n := range args {
			parts[i] = fmt.Sprintf("T%d", n)
		}
		return strings.Join(parts, ", ")
	},
	"values": func(args []int) string {
		parts := make([]string, len(args))
		for i, n := range args {
			parts[i] = fmt.Sprintf("v%d", n)
		}
		return strings.Join(parts, ", ")
	},
}

var tmpl = template.Must(template.New("arity").Funcs(funcs).Parse(`// Code generated by internal/gen/arity. DO NOT EDIT.

package handler

import (
	"net/http"

	"github.com/xraph/dispatch/extract"
	"github.com/xraph/dispatch/response"
)
{{range .}}
// Func{{.N}} adapts a callback taking {{.N}} extracted value{{if gt .N 1}}s{{end}}. Extractors run in
// order and the first rejection is returned as the response.
func Func{{.N}}[{{types .Args}} any, R response.IntoResponse](
	fn func(*http.Request, {{types .Args}}) R,
{{- range .Args}}
	e{{.}} extract.Extractor[T{{.}}],
{{- end}}
) Handler {
	return handlerFunc(func(r *http.Request) *response.Response {
{{- range .Args}}
		v{{.}}, err := e{{.}}.Extract(r)
		if err != nil {
			return response.FromError(err)
		}
{{- end}}
		return response.Into(fn(r, {{values .Args}}))
	})
}
{{end}}`))

func main() {
	kctx := kong.Parse(&cli, kong.Description("Generate handler constructors for each arity."))

	arities := make([]arity, 0, cli.Max)
	for n := 1; n <= cli.Max; n++ {
		a := arity{N: n}
		for i := 1; i <= n; i++ {
			a.Args = append(a.Args, i)
		}
		arities = append(arities, a)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("execute template: %w", err))
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("format generated source: %w", err))
	}

	if err := os.WriteFile(cli.Output, src, 0o644); err != nil {
		kctx.FatalIfErrorf(fmt.Errorf("write %s: %w", cli.Output, err))
	}
}
