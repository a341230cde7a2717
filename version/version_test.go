// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package version

import (
	"strings"
	"testing"
	"time"
)

func TestInfoString(t *testing.T) {
	cases := map[string]struct {
		in   Info
		want []string
	}{
		"devel": {
			in:   Info{Name: "addlicense", Version: "devel", Go: "go1.26.0"},
			want: []string{"addlicense devel\n", "go1.26.0 "},
		},
		"commit and dirty": {
			in: Info{
				Name:    "addlicense",
				Version: "v1.2.3",
				Commit:  "abc123",
				Dirty:   true,
				Built:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
				Go:      "go1.26.0",
			},
			want: []string{"addlicense v1.2.3 (abc123, dirty)\n", "built at 2026-01-02T03:04:05Z\n"},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got := tc.in.String()
			for _, w := range tc.want {
				if !strings.Contains(got, w) {
					t.Errorf("String() = %q, must contain %q", got, w)
				}
			}
		})
	}
}

func TestVersionIsStable(t *testing.T) {
	a, b := Version(), Version()
	if a != b {
		t.Fatalf("Version() changed between calls: %+v vs %+v", a, b)
	}
	if a.Name == "" || a.Go == "" {
		t.Fatalf("Version() = %+v, want non-empty name and Go version", a)
	}
}
