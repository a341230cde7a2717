// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package stamp inserts license headers into file contents.
package stamp

import (
	"bytes"
)

var (
	copyrightWord = []byte("copyright")
	shebang       = []byte("#!")
)

// HasCopyright reports whether content mentions the word "copyright" in any
// letter case. Such content is considered to already carry a license.
func HasCopyright(content []byte) bool {
	return bytes.Contains(bytes.ToLower(content), copyrightWord)
}

// Insert returns content with header added at the top, separated from the
// rest by a blank line.
//
// If content starts with a shebang line, that line stays first and is
// followed by a blank line and then the header.
func Insert(content []byte, header string) []byte {
	var buf bytes.Buffer
	buf.Grow(len(content) + len(header) + 3)

	rest := content
	if bytes.HasPrefix(content, shebang) {
		end := len(content)
		if i := bytes.IndexByte(content, '\n'); i >= 0 {
			end = i + 1
		}
		buf.Write(content[:end])
		buf.WriteByte('\n')
		rest = content[end:]
	}
	buf.WriteString(header)
	buf.WriteString("\n\n")
	buf.Write(rest)
	return buf.Bytes()
}

// Apply inserts header into content unless content already mentions
// copyright. The returned bool reports whether content was changed.
func Apply(content []byte, header string) ([]byte, bool) {
	if HasCopyright(content) {
		return content, false
	}
	return Insert(content, header), true
}
