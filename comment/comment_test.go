// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package comment

import (
	"testing"

	"go.astrophena.name/addlicense/testutil"
)

func TestFormat(t *testing.T) {
	const text = "Copyright (c) 2015, Gary Guo\n\n * Keep this notice."

	cases := map[string]struct {
		style Style
		want  string
	}{
		"block": {
			style: Block,
			want:  "/*\n * Copyright (c) 2015, Gary Guo\n *\n *  * Keep this notice.\n */",
		},
		"hash": {
			style: Hash,
			want:  "# Copyright (c) 2015, Gary Guo\n#\n#  * Keep this notice.",
		},
		"slash": {
			style: Slash,
			want:  "// Copyright (c) 2015, Gary Guo\n//\n//  * Keep this notice.",
		},
		"plain": {
			style: Plain,
			want:  text,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, tc.style.Format(text), tc.want)
		})
	}
}

func TestFormatSingleLine(t *testing.T) {
	testutil.AssertEqual(t, Block.Format("x"), "/*\n * x\n */")
	testutil.AssertEqual(t, Hash.Format("x"), "# x")
}

func TestLookup(t *testing.T) {
	cases := map[string]struct {
		want   Style
		wantOK bool
	}{
		"c":        {Block, true},
		"c++":      {Block, true},
		"js":       {Block, true},
		"go":       {Slash, true},
		"bash":     {Hash, true},
		"makefile": {Hash, true},
		"python":   {Hash, true},
		"plain":    {Plain, true},
		"auto":     {Style{}, false},
		"cobol":    {Style{}, false},
	}
	for typ, tc := range cases {
		t.Run(typ, func(t *testing.T) {
			got, ok := Lookup(typ)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}

func TestTypes(t *testing.T) {
	testutil.AssertEqual(t, Types(), []string{"auto", "bash", "c", "c++", "go", "js", "makefile", "plain", "python"})
}

func TestDetect(t *testing.T) {
	cases := map[string]struct {
		want   Style
		wantOK bool
	}{
		"LICENSE":           {Plain, true},
		"sub/dir/LICENSE":   {Plain, true},
		"Makefile":          {Hash, true},
		"src/GNUmakefile":   {Hash, true},
		"run.sh":            {Hash, true},
		"tool.py":           {Hash, true},
		"main.c":            {Block, true},
		"main.h":            {Block, true},
		"lib.cpp":           {Block, true},
		"lib.C":             {Block, true},
		"lib.h++":           {Block, true},
		"app.js":            {Block, true},
		"main.go":           {Slash, true},
		"lib.rs":            {Slash, true},
		"README.md":         {Style{}, false},
		"noext":             {Style{}, false},
		"LICENSE.md":        {Style{}, false},
		"dir.with.dots/x.c": {Block, true},
	}
	for path, tc := range cases {
		t.Run(path, func(t *testing.T) {
			got, ok := Detect(path)
			testutil.AssertEqual(t, ok, tc.wantOK)
			testutil.AssertEqual(t, got, tc.want)
		})
	}
}
