/*
Copyright 2026 The packet-networking Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package build

import (
	"bytes"
	"strings"
	"text/template"

	"github.com/pkg/errors"
)

// Dedent strips the longest common leading whitespace from every non-blank
// line, so templates can be written indented in source without polluting
// the rendered output.
func Dedent(text string) string {
	lines := strings.Split(text, "\n")

	prefix := ""
	found := false

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := line[:len(line)-len(strings.TrimLeft(line, " \t"))]
		if !found {
			prefix = indent
			found = true

			continue
		}

		for !strings.HasPrefix(indent, prefix) {
			prefix = prefix[:len(prefix)-1]
		}
	}

	if prefix == "" {
		return text
	}

	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		lines[i] = strings.TrimPrefix(line, prefix)
	}

	return strings.Join(lines, "\n")
}

// renderTemplate expands one task template in strict mode: any reference
// to an unbound context variable fails the render. Contexts are map-shaped
// throughout, so missingkey=error covers typo'd names, nil address
// placeholders fail on field access, and out-of-range list indexes fail on
// evaluation.
func renderTemplate(path, body string, ctx map[string]any) (string, error) {
	tmpl, err := template.New(path).Option("missingkey=error").Funcs(genericFuncMap()).Parse(body)
	if err != nil {
		return "", errors.Wrapf(err, "parsing template for task %q", path)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ctx); err != nil {
		return "", &UndefinedError{Path: path, Template: body, Err: err}
	}

	return buf.String(), nil
}
