// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package license loads license templates and renders them into header text.
//
// A template is plain text that may contain the placeholders %YEAR%,
// %OWNER% and %ORAGNIZATION% (the misspelling is historical; %ORGANIZATION%
// is accepted too). Rendering fills the placeholders and reflows the text to
// a column width with [Wrap].
package license

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
	"slices"
	"strings"

	"go.astrophena.name/addlicense/syncx"
	"go.astrophena.name/addlicense/unwrap"
)

// Default is the name of the license used when none is requested.
const Default = "bsd2"

// ErrUnknown is returned when a license name has no template.
var ErrUnknown = errors.New("unknown license")

//go:embed licenses/*.txt
var licensesFS embed.FS

var bundled = unwrap.Value(fs.Sub(licensesFS, "licenses"))

// Template is a license text with placeholders.
type Template struct {
	Name string
	Text string
}

// Fields hold the values substituted into a [Template].
type Fields struct {
	Year         string
	Owner        string
	Organization string // defaults to Owner
}

// Fill returns the template text with every placeholder replaced.
func (t *Template) Fill(f Fields) string {
	org := f.Organization
	if org == "" {
		org = f.Owner
	}
	return strings.NewReplacer(
		"%YEAR%", f.Year,
		"%OWNER%", f.Owner,
		"%ORAGNIZATION%", org,
		"%ORGANIZATION%", org,
	).Replace(t.Text)
}

// Render fills the template and wraps the result to column.
func (t *Template) Render(f Fields, column int) string {
	return Wrap(t.Fill(f), column)
}

// Registry resolves license names to templates. Templates bundled with the
// program can be extended or overridden by extra ones, typically coming from
// configuration.
//
// A Registry is safe for concurrent use.
type Registry struct {
	extra map[string]string
	cache syncx.Map[string, *Template]
}

// NewRegistry returns a Registry that knows the bundled licenses plus extra,
// which maps license names to template texts.
func NewRegistry(extra map[string]string) *Registry {
	return &Registry{extra: maps.Clone(extra)}
}

// Lookup returns the template named name. Names are case-sensitive. It
// returns an error wrapping [ErrUnknown] if there is no such template.
func (r *Registry) Lookup(name string) (*Template, error) {
	return r.cache.LoadOrCompute(name, func() (*Template, error) {
		text, err := r.load(name)
		if err != nil {
			return nil, err
		}
		return &Template{Name: name, Text: normalize(text)}, nil
	})
}

func (r *Registry) load(name string) (string, error) {
	if text, ok := r.extra[name]; ok {
		return text, nil
	}
	if name == "" || strings.ContainsAny(name, `/\`) || !fs.ValidPath(name) {
		return "", fmt.Errorf("%w %q", ErrUnknown, name)
	}
	b, err := fs.ReadFile(bundled, name+".txt")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q (known: %s)", ErrUnknown, name, strings.Join(r.Names(), ", "))
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Names returns the sorted names of all known licenses.
func (r *Registry) Names() []string {
	names := make(map[string]bool)
	matches, _ := fs.Glob(bundled, "*.txt")
	for _, m := range matches {
		names[strings.TrimSuffix(path.Base(m), ".txt")] = true
	}
	for name := range r.extra {
		names[name] = true
	}
	return slices.Sorted(maps.Keys(names))
}

// normalize converts line endings to "\n" and drops trailing blank lines.
func normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.TrimRight(text, "\n")
}
