// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package comment turns text into source code comments.
package comment

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"
)

// Style is a comment syntax.
type Style struct {
	Name   string
	Open   string // line emitted before the text, if not empty
	Prefix string // prepended to every line of text
	Close  string // line emitted after the text, if not empty
}

// Comment styles.
var (
	Block = Style{Name: "block", Open: "/*", Prefix: " * ", Close: " */"}
	Hash  = Style{Name: "hash", Prefix: "# "}
	Slash = Style{Name: "slash", Prefix: "// "}
	Plain = Style{Name: "plain"}
)

// Format returns text as a comment. Lines are never left with trailing
// whitespace, so blank lines of text become a bare comment marker.
func (s Style) Format(text string) string {
	var sb strings.Builder
	if s.Open != "" {
		sb.WriteString(s.Open)
		sb.WriteByte('\n')
	}
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(strings.TrimRight(s.Prefix+line, " \t"))
	}
	if s.Close != "" {
		sb.WriteByte('\n')
		sb.WriteString(s.Close)
	}
	return sb.String()
}

// Auto is the type name that selects a style per file with [Detect].
const Auto = "auto"

var types = map[string]Style{
	"c":        Block,
	"c++":      Block,
	"js":       Block,
	"go":       Slash,
	"bash":     Hash,
	"makefile": Hash,
	"python":   Hash,
	"plain":    Plain,
}

// Lookup returns the style for a type name such as "c" or "bash".
// It does not know [Auto].
func Lookup(typ string) (Style, bool) {
	s, ok := types[typ]
	return s, ok
}

// Types returns the sorted list of accepted type names, including [Auto].
func Types() []string {
	names := append(slices.Collect(maps.Keys(types)), Auto)
	slices.Sort(names)
	return names
}

var byName = map[string]Style{
	"LICENSE":     Plain,
	"Makefile":    Hash,
	"makefile":    Hash,
	"GNUmakefile": Hash,
}

var byExt = map[string]Style{
	".sh":   Hash,
	".bash": Hash,
	".zsh":  Hash,
	".py":   Hash,
	".rb":   Hash,
	".pl":   Hash,
	".yml":  Hash,
	".yaml": Hash,
	".toml": Hash,

	".c": Block,
	".h": Block,

	".cc":  Block,
	".cpp": Block,
	".cxx": Block,
	".c++": Block,
	".C":   Block,
	".hh":  Block,
	".hpp": Block,
	".hxx": Block,
	".h++": Block,
	".H":   Block,

	".js":   Block,
	".mjs":  Block,
	".cjs":  Block,
	".ts":   Block,
	".css":  Block,
	".java": Block,

	".go":    Slash,
	".rs":    Slash,
	".swift": Slash,
}

// Detect picks a style from the file name of path, falling back to its
// extension. Extensions are case-sensitive: ".C" is C++, ".c" is C.
func Detect(path string) (Style, bool) {
	base := filepath.Base(path)
	if s, ok := byName[base]; ok {
		return s, true
	}
	s, ok := byExt[filepath.Ext(base)]
	return s, ok
}
