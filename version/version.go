// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package version reports build information of the running program.
package version

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"go.astrophena.name/addlicense/syncx"
)

// Info describes a build.
type Info struct {
	// Name is the command name.
	Name string
	// Version is the module version, or "devel" for untagged builds.
	Version string
	// Commit is the VCS revision, if known.
	Commit string
	// Dirty reports whether the working tree had local modifications.
	Dirty bool
	// Built is the commit time, if known.
	Built time.Time
	// Go is the toolchain version.
	Go string
}

// String returns a multi-line human-readable form of i.
func (i Info) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", i.Name, i.Version)
	if i.Commit != "" {
		fmt.Fprintf(&sb, " (%s", i.Commit)
		if i.Dirty {
			sb.WriteString(", dirty")
		}
		sb.WriteString(")")
	}
	sb.WriteString("\n")
	if !i.Built.IsZero() {
		fmt.Fprintf(&sb, "built at %s\n", i.Built.Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "%s %s/%s\n", i.Go, runtime.GOOS, runtime.GOARCH)
	return sb.String()
}

var info syncx.Lazy[Info]

// Version returns build information of the running program.
func Version() Info {
	return info.Get(func() Info {
		i := Info{
			Name:    CmdName(),
			Version: "devel",
			Go:      runtime.Version(),
		}
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return i
		}
		if v := bi.Main.Version; v != "" && v != "(devel)" {
			i.Version = v
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				i.Commit = s.Value
			case "vcs.modified":
				i.Dirty = s.Value == "true"
			case "vcs.time":
				i.Built, _ = time.Parse(time.RFC3339, s.Value)
			}
		}
		return i
	})
}

// CmdName returns the base name of the running executable, without the
// ".exe" suffix.
func CmdName() string {
	exe, err := os.Executable()
	if err != nil {
		exe = os.Args[0]
	}
	return strings.TrimSuffix(filepath.Base(exe), ".exe")
}
