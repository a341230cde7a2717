// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package clitest provides a table-driven harness for testing [cli.App]
// implementations.
package clitest

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"go.astrophena.name/addlicense/cli"
)

// Case describes a single run of an application.
type Case[T cli.App] struct {
	// Args are the command-line arguments.
	Args []string
	// Stdin is the standard input. Empty if nil.
	Stdin io.Reader
	// Env holds environment variables visible through cli.Env.Getenv.
	Env map[string]string
	// Files, if not nil, are written to a new temporary directory, which
	// becomes the working directory for the run. Keys are slash-separated
	// paths relative to that directory.
	Files map[string]string

	// WantErr is checked with errors.Is against the returned error.
	WantErr error
	// WantErrType is checked with errors.As: the returned error must have
	// an error of the same type in its chain.
	WantErrType error
	// WantNothingPrinted requires both standard output and standard error to
	// be empty.
	WantNothingPrinted bool
	// WantInStdout must be a substring of standard output.
	WantInStdout string
	// WantInStderr must be a substring of standard error.
	WantInStderr string
	// WantFiles maps paths relative to the working directory to their
	// expected contents after the run. Requires Files.
	WantFiles map[string]string
	// CheckFunc, if set, is called after all other checks.
	CheckFunc func(*testing.T, T)
}

// Run runs each case as a subtest against a fresh application returned by
// setup.
//
// Cases with Files change the working directory, so they must not run in
// parallel with other tests.
func Run[T cli.App](t *testing.T, setup func(*testing.T) T, cases map[string]Case[T]) {
	t.Helper()
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			if tc.Files != nil {
				dir := t.TempDir()
				writeFiles(t, dir, tc.Files)
				t.Chdir(dir)
			}

			app := setup(t)

			stdin := tc.Stdin
			if stdin == nil {
				stdin = strings.NewReader("")
			}
			var stdout, stderr bytes.Buffer
			env := &cli.Env{
				Args:   tc.Args,
				Getenv: func(key string) string { return tc.Env[key] },
				Stdin:  stdin,
				Stdout: &stdout,
				Stderr: &stderr,
			}

			err := cli.Run(cli.WithEnv(context.Background(), env), app)
			checkErr(t, err, tc.WantErr, tc.WantErrType)

			if tc.WantNothingPrinted && (stdout.Len() > 0 || stderr.Len() > 0) {
				t.Errorf("want nothing printed, got stdout %q and stderr %q", stdout.String(), stderr.String())
			}
			if tc.WantInStdout != "" && !strings.Contains(stdout.String(), tc.WantInStdout) {
				t.Errorf("stdout must contain %q, got %q", tc.WantInStdout, stdout.String())
			}
			if tc.WantInStderr != "" && !strings.Contains(stderr.String(), tc.WantInStderr) {
				t.Errorf("stderr must contain %q, got %q", tc.WantInStderr, stderr.String())
			}

			for path, want := range tc.WantFiles {
				got, err := os.ReadFile(filepath.FromSlash(path))
				if err != nil {
					t.Errorf("reading %s: %v", path, err)
					continue
				}
				if string(got) != want {
					t.Errorf("%s content mismatch:\ngot:\n%s\nwant:\n%s", path, got, want)
				}
			}

			if tc.CheckFunc != nil {
				tc.CheckFunc(t, app)
			}
		})
	}
}

func checkErr(t *testing.T, err, wantErr, wantErrType error) {
	t.Helper()
	switch {
	case wantErr != nil:
		if !errors.Is(err, wantErr) {
			t.Fatalf("want error %v, got %v", wantErr, err)
		}
	case wantErrType != nil:
		target := reflect.New(reflect.TypeOf(wantErrType))
		if !errors.As(err, target.Interface()) {
			t.Fatalf("want error of type %T, got %v", wantErrType, err)
		}
	case err != nil:
		t.Fatalf("unexpected error: %v", err)
	}
}

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}
