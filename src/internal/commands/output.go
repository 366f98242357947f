package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/valyala/fasttemplate"
)

// renderTemplate substitutes {{name}} placeholders. Unknown placeholders
// render empty; an unclosed placeholder is an error.
func renderTemplate(tmpl string, values map[string]any) (string, error) {
	if !strings.Contains(tmpl, "{{") {
		return tmpl, nil
	}

	t, err := fasttemplate.NewTemplate(tmpl, "{{", "}}")
	if err != nil {
		return "", fmt.Errorf("invalid -format template: %w", err)
	}
	return t.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		v, ok := values[strings.TrimSpace(tag)]
		if !ok {
			return 0, nil
		}
		s, _ := v.(string)
		return w.Write([]byte(s))
	}), nil
}

// unescapeFormat turns the \n and \t a shell passes literally into control
// characters.
func unescapeFormat(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
