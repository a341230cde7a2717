// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package license

import (
	"encoding/json"
	"errors"
	"flag"
	"os"
	"slices"
	"strings"
	"testing"

	"go.astrophena.name/addlicense/testutil"
)

var update = flag.Bool("update", false, "update golden files")

func TestRenderGolden(t *testing.T) {
	r := NewRegistry(nil)
	testutil.RunGolden(t, "testdata/*.json", func(t *testing.T, match string) []byte {
		b, err := os.ReadFile(match)
		if err != nil {
			t.Fatal(err)
		}
		var tc struct {
			License      string `json:"license"`
			Year         string `json:"year"`
			Owner        string `json:"owner"`
			Organization string `json:"organization"`
			Column       int    `json:"column"`
		}
		if err := json.Unmarshal(b, &tc); err != nil {
			t.Fatal(err)
		}
		tmpl, err := r.Lookup(tc.License)
		if err != nil {
			t.Fatal(err)
		}
		out := tmpl.Render(Fields{Year: tc.Year, Owner: tc.Owner, Organization: tc.Organization}, tc.Column)
		return []byte(out + "\n")
	}, *update)
}

func TestFill(t *testing.T) {
	cases := map[string]struct {
		text   string
		fields Fields
		want   string
	}{
		"all placeholders": {
			text:   "(c) %YEAR% %OWNER%, %ORAGNIZATION%",
			fields: Fields{Year: "2015", Owner: "Gary", Organization: "Org"},
			want:   "(c) 2015 Gary, Org",
		},
		"organization defaults to owner": {
			text:   "%ORAGNIZATION%",
			fields: Fields{Owner: "Gary"},
			want:   "Gary",
		},
		"correct spelling accepted": {
			text:   "%ORGANIZATION%",
			fields: Fields{Owner: "Gary", Organization: "Org"},
			want:   "Org",
		},
		"repeated placeholders": {
			text:   "%YEAR% %YEAR%",
			fields: Fields{Year: "2026"},
			want:   "2026 2026",
		},
		"unknown placeholders untouched": {
			text:   "%NAME% 100%",
			fields: Fields{Year: "2026"},
			want:   "%NAME% 100%",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tmpl := &Template{Name: name, Text: tc.text}
			testutil.AssertEqual(t, tmpl.Fill(tc.fields), tc.want)
		})
	}
}

func TestLookup(t *testing.T) {
	r := NewRegistry(map[string]string{
		"custom": "Custom license %YEAR%\r\n\r\n",
		"mit":    "overridden",
	})

	t.Run("bundled", func(t *testing.T) {
		tmpl, err := r.Lookup(Default)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, tmpl.Name, "bsd2")
		if !strings.HasPrefix(tmpl.Text, "Copyright (c) %YEAR%, %OWNER%\n") {
			t.Errorf("unexpected bsd2 text: %q", tmpl.Text)
		}
		if strings.HasSuffix(tmpl.Text, "\n") {
			t.Error("trailing newline must be trimmed")
		}
	})

	t.Run("extra normalized", func(t *testing.T) {
		tmpl, err := r.Lookup("custom")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, tmpl.Text, "Custom license %YEAR%")
	})

	t.Run("extra overrides bundled", func(t *testing.T) {
		tmpl, err := r.Lookup("mit")
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, tmpl.Text, "overridden")
	})

	t.Run("cached", func(t *testing.T) {
		a, err := r.Lookup("isc")
		if err != nil {
			t.Fatal(err)
		}
		b, err := r.Lookup("isc")
		if err != nil {
			t.Fatal(err)
		}
		if a != b {
			t.Error("second lookup must return the cached template")
		}
	})

	for _, name := range []string{"nope", "", "../license", "licenses/bsd2", "BSD2"} {
		t.Run("unknown "+name, func(t *testing.T) {
			_, err := r.Lookup(name)
			if !errors.Is(err, ErrUnknown) {
				t.Fatalf("Lookup(%q) error = %v, want ErrUnknown", name, err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	got := NewRegistry(map[string]string{"zlib": "z"}).Names()
	want := []string{"apache2", "bsd2", "bsd3", "gpl3", "isc", "mit", "mpl2", "zlib"}
	testutil.AssertEqual(t, got, want)
	if !slices.IsSorted(got) {
		t.Errorf("Names() = %v, not sorted", got)
	}
}

func TestBundledHaveCopyrightLine(t *testing.T) {
	r := NewRegistry(nil)
	for _, name := range r.Names() {
		tmpl, err := r.Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		out := tmpl.Fill(Fields{Year: "2026", Owner: "Someone"})
		if !strings.Contains(strings.ToLower(out), "copyright") {
			t.Errorf("%s: rendered license has no copyright line", name)
		}
		if strings.Contains(out, "%") {
			t.Errorf("%s: placeholders left after Fill: %q", name, out)
		}
	}
}
