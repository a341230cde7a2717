// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"strings"
	"unicode/utf8"

	"github.com/mitchellh/go-wordwrap"
)

// Wrap reflows every line of text that is wider than column runes.
//
// A line's prefix is everything before its first ASCII letter, such as
// indentation or a list bullet. The prefix stays on the first line and is
// replaced by spaces of equal width on continuation lines. Lines without
// letters, or whose prefix is at least column runes wide, are left alone.
// Wrapped lines are kept shorter than column; a single word that does not
// fit is never split and gets a line of its own. Runs of spaces where a line
// is broken are dropped.
//
// Trailing spaces are removed from all lines.
func Wrap(text string, column int) string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		out = append(out, wrapLine(line, column)...)
	}
	for i, line := range out {
		out[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, column int) []string {
	if utf8.RuneCountInString(line) <= column {
		return []string{line}
	}
	i := strings.IndexFunc(line, isLetter)
	if i < 0 {
		return []string{line}
	}
	prefix, body := line[:i], line[i:]
	width := utf8.RuneCountInString(prefix)
	if width >= column {
		return []string{line}
	}

	// One column is reserved for the space that would follow the last word.
	var lines []string
	if room := column - width - 1; room >= 2 {
		lines = strings.Split(wordwrap.WrapString(body, uint(room)), "\n")
	} else {
		// wordwrap never breaks with a limit below 2.
		lines = strings.Fields(body)
	}
	indent := strings.Repeat(" ", width)
	for j := range lines {
		if j == 0 {
			lines[j] = prefix + lines[j]
		} else {
			lines[j] = indent + lines[j]
		}
	}
	return lines
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}
