// © 2026 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/tools/txtar"
)

const defaultConfigPath = ".addlicense.txtar"

type config struct {
	Author       string   `json:"author"`
	Organization string   `json:"organization"`
	License      string   `json:"license"`
	Type         string   `json:"type"`
	Column       int      `json:"column"`
	Exclusions   []string `json:"exclusions"`

	// licenses maps license names to templates.
	licenses map[string]string
}

// loadConfig reads the config archive at path. An empty path means the
// default location, which may be missing.
func loadConfig(path string) (*config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}

	ar, err := txtar.ParseFile(path)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return new(config), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := &config{licenses: make(map[string]string)}
	for _, f := range ar.Files {
		if f.Name == "config.json" {
			dec := json.NewDecoder(bytes.NewReader(f.Data))
			dec.DisallowUnknownFields()
			if err := dec.Decode(cfg); err != nil {
				return nil, fmt.Errorf("%s: config.json: %w", path, err)
			}
			continue
		}
		if name, ok := licenseName(f.Name); ok {
			cfg.licenses[name] = string(f.Data)
		}
	}
	return cfg, nil
}

func licenseName(file string) (string, bool) {
	dir, base := path.Split(file)
	if dir != "licenses/" || path.Ext(base) != ".txt" {
		return "", false
	}
	return strings.TrimSuffix(base, ".txt"), true
}

func (cfg *config) isExcluded(path string) bool {
	path = filepath.ToSlash(path)
	for _, ex := range cfg.Exclusions {
		if strings.HasSuffix(path, ex) {
			return true
		}
	}
	return false
}
