// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

/*
Addlicense prepends a license header to source files.

Usage:

	addlicense -author=NAME [flags] [path ...]

The license text comes from a template (bsd2 by default, see -list). The
placeholders %YEAR%, %OWNER% and %ORAGNIZATION% are filled from -year,
-author and -oragnization, and the text is wrapped to fit -column once the
comment markers are added.

With -type=auto (the default) the comment syntax is chosen per file: C-style
block comments for C, C++, JavaScript and similar files, # lines for shell
scripts and Makefiles, // lines for Go and Rust, and plain text for files
named LICENSE. Files with other extensions are skipped with a warning.
Directories are walked recursively, skipping hidden directories and files
of unknown type.

A file that already contains the word "copyright" in any case is left
alone. If a file starts with a shebang line, the header goes right after it.

Use -preview to print the header without touching any file, and -dry to list
the files that would change.

Defaults can be kept in a .addlicense.txtar file in the current directory
(or the file named by -config). It is a txtar archive that can contain:

  - config.json: an object with optional "author", "organization",
    "license", "type", "column" and "exclusions" fields. Exclusions are path
    suffixes of files to skip. Flags take precedence.
  - licenses/NAME.txt: an additional license template, usable as
    -license=NAME. It overrides a bundled license with the same name.
*/
package main

import (
	_ "embed"

	"go.astrophena.name/addlicense/cli"
)

//go:embed doc.go
var doc []byte

func init() { cli.SetDocComment(doc) }
