// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"go.astrophena.name/addlicense/cli"
	"go.astrophena.name/addlicense/comment"
	"go.astrophena.name/addlicense/license"
	"go.astrophena.name/addlicense/logger"
	"go.astrophena.name/addlicense/stamp"
)

const (
	defaultColumn = 80
	// commentMargin is how many columns are left for comment markers.
	commentMargin = 4
)

func main() { cli.Main(new(app)) }

type app struct {
	author       string
	license      string
	year         string
	organization string
	column       int
	typ          string
	config       string
	preview      bool
	dry          bool
	list         bool

	now func() time.Time // if nil, time.Now
}

func (a *app) Flags(fs *flag.FlagSet) {
	fs.StringVar(&a.author, "author", "", "Copyright `owner`. Required, unless set in the config.")
	fs.StringVar(&a.license, "license", "", "License `name` (default "+license.Default+"). See -list.")
	fs.StringVar(&a.year, "year", "", "Copyright `year` (default current year).")
	fs.StringVar(&a.organization, "oragnization", "", "`Organization` named by the license (default author).")
	fs.StringVar(&a.organization, "organization", "", "Alias for -oragnization.")
	fs.IntVar(&a.column, "column", 0, "Maximum line `width` of the header (default "+strconv.Itoa(defaultColumn)+").")
	fs.StringVar(&a.typ, "type", "", "Comment `type`: "+strings.Join(comment.Types(), ", ")+" (default auto).")
	fs.StringVar(&a.config, "config", "", "Read defaults from txtar `file` (default "+defaultConfigPath+").")
	fs.BoolVar(&a.preview, "preview", false, "Print the header and exit without changing files.")
	fs.BoolVar(&a.dry, "dry", false, "Print the files that would have a license added, without making changes.")
	fs.BoolVar(&a.list, "list", false, "Print the names of available licenses and exit.")
}

func (a *app) Run(ctx context.Context) error {
	env := cli.GetEnv(ctx)

	cfg, err := loadConfig(a.config)
	if err != nil {
		return err
	}
	reg := license.NewRegistry(cfg.licenses)

	if a.list {
		for _, name := range reg.Names() {
			fmt.Fprintln(env.Stdout, name)
		}
		return nil
	}

	author := cmp.Or(a.author, cfg.Author)
	if author == "" {
		return fmt.Errorf("%w: expected --author", cli.ErrInvalidArgs)
	}
	fields := license.Fields{
		Year:         cmp.Or(a.year, strconv.Itoa(a.clock().Year())),
		Owner:        author,
		Organization: cmp.Or(a.organization, cfg.Organization, author),
	}

	column := cmp.Or(a.column, cfg.Column, defaultColumn)
	if column <= commentMargin {
		return fmt.Errorf("%w: --column=%d leaves no room for text", cli.ErrInvalidArgs, column)
	}

	tmpl, err := reg.Lookup(cmp.Or(a.license, cfg.License, license.Default))
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrInvalidArgs, err)
	}
	text := tmpl.Render(fields, column-commentMargin)

	var style *comment.Style
	if typ := cmp.Or(a.typ, cfg.Type, comment.Auto); typ != comment.Auto {
		s, ok := comment.Lookup(typ)
		if !ok {
			return fmt.Errorf("%w: unknown --type=%s", cli.ErrInvalidArgs, typ)
		}
		style = &s
	}

	if a.preview {
		// In auto mode, show the header as a LICENSE file would get it.
		s := comment.Plain
		if style != nil {
			s = *style
		}
		fmt.Fprintln(env.Stdout, s.Format(text))
		return nil
	}

	if len(env.Args) == 0 {
		logger.Debug(ctx, "no files given")
		return nil
	}

	st := &stamper{
		text:  text,
		style: style,
		cfg:   cfg,
		dry:   a.dry,
	}
	if err := st.run(ctx, env.Args); err != nil {
		return err
	}
	for _, path := range st.pending {
		env.Logf("Would add license to %s", path)
	}
	return nil
}

func (a *app) clock() time.Time {
	if a.now != nil {
		return a.now()
	}
	return time.Now()
}

// stamper adds a rendered license to files.
type stamper struct {
	text  string
	style *comment.Style // nil means detect per file
	cfg   *config
	dry   bool

	mu      sync.Mutex
	pending []string // files that would change in dry mode, sorted after run
}

// run processes paths, walking directories. Files are handled concurrently
// and in no particular order. Only read errors are returned.
func (s *stamper) run(ctx context.Context, paths []string) error {
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	schedule := func(path string, explicit bool) {
		if s.cfg.isExcluded(path) {
			logger.Debug(ctx, "excluded", slog.String("file", path))
			return
		}
		style, ok := s.styleFor(path)
		if !ok {
			if explicit {
				logger.Warn(ctx, "unrecognized extension", slog.String("file", path), slog.String("ext", filepath.Ext(path)))
			} else {
				logger.Debug(ctx, "skipping file of unknown type", slog.String("file", path))
			}
			return
		}
		g.Go(func() error { return s.stampFile(ctx, path, style) })
	}

	var walkErr error
	for _, root := range paths {
		if fi, err := os.Stat(root); err != nil || !fi.IsDir() {
			// Missing files fail when read.
			schedule(root, true)
			continue
		}
		walkErr = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && strings.HasPrefix(d.Name(), ".") {
					return filepath.SkipDir
				}
				return nil
			}
			if d.Type().IsRegular() {
				schedule(path, false)
			}
			return nil
		})
		if walkErr != nil {
			break
		}
	}

	err := errors.Join(walkErr, g.Wait())
	slices.Sort(s.pending)
	return err
}

func (s *stamper) styleFor(path string) (comment.Style, bool) {
	if s.style != nil {
		return *s.style, true
	}
	return comment.Detect(path)
}

func (s *stamper) stampFile(ctx context.Context, path string, style comment.Style) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	out, changed := stamp.Apply(content, style.Format(s.text))
	if !changed {
		logger.Info(ctx, "already has a copyright declaration", slog.String("file", path))
		return nil
	}

	if s.dry {
		s.mu.Lock()
		s.pending = append(s.pending, path)
		s.mu.Unlock()
		return nil
	}

	// Write failures are reported but do not fail the run. Existing files
	// keep their mode.
	if err := os.WriteFile(path, out, 0o644); err != nil {
		logger.Warn(ctx, "failed to write file", slog.String("file", path), logger.Err(err))
		return nil
	}
	logger.Info(ctx, "added license", slog.String("file", path), slog.String("style", style.Name))
	return nil
}
