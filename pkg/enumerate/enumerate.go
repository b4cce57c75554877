// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package enumerate lists the files a rename run processes.
package enumerate

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"gitlab.com/tozd/go/errors"
)

// Filter selects files by extension and base-name prefix. Empty fields do not
// filter.
type Filter struct {
	Ext    string // Extension without the leading dot
	Prefix string // Base-name prefix
}

// Match reports whether the base name passes the filter.
func (f Filter) Match(name string) bool {
	if f.Ext != "" && !strings.HasSuffix(name, "."+f.Ext) {
		return false
	}
	if f.Prefix != "" && !strings.HasPrefix(name, f.Prefix) {
		return false
	}
	return true
}

// Pattern returns the filter as a doublestar pattern matching base names.
func (f Filter) Pattern() string {
	p := escapeMeta(f.Prefix) + "*"
	if f.Ext != "" {
		p += "." + escapeMeta(f.Ext)
	}
	return p
}

func escapeMeta(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '*', '?', '[', ']', '{', '}', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Options configures an Enumerator.
type Options struct {
	Root      string
	Recursive bool
	Filter    Filter
}

// Enumerator yields the files under a root directory.
type Enumerator struct {
	fs   afero.Fs
	opts Options
}

// New creates an Enumerator over fs.
func New(fs afero.Fs, opts Options) *Enumerator {
	return &Enumerator{fs: fs, opts: opts}
}

// Each calls fn for every matching file. Directories are listed right before
// their files are yielded, in lexical order; in recursive mode the walk is
// pre-order from the root. An error from fn stops the enumeration and is
// returned unchanged.
func (e *Enumerator) Each(ctx context.Context, fn func(path string) error) error {
	if !e.opts.Recursive {
		return e.eachInDir(ctx, e.opts.Root, e.opts.Filter.Match, fn)
	}

	dirs, err := e.dirs(ctx)
	if err != nil {
		return err
	}

	pattern := e.opts.Filter.Pattern()
	match := func(name string) bool {
		ok, err := doublestar.Match(pattern, name)
		return err == nil && ok
	}

	for _, dir := range dirs {
		if err := e.eachInDir(ctx, dir, match, fn); err != nil {
			return err
		}
	}
	return nil
}

// List collects every matching file.
func (e *Enumerator) List(ctx context.Context) ([]string, error) {
	var files []string
	err := e.Each(ctx, func(path string) error {
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (e *Enumerator) eachInDir(ctx context.Context, dir string, match func(string) bool, fn func(string) error) error {
	entries, err := afero.ReadDir(e.fs, dir)
	if err != nil {
		return errors.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !match(entry.Name()) {
			continue
		}
		if err := fn(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// dirs returns the root and every directory below it in walk order.
// Unreadable subdirectories are skipped.
func (e *Enumerator) dirs(ctx context.Context) ([]string, error) {
	logger := zerolog.Ctx(ctx)

	if _, err := e.fs.Stat(e.opts.Root); err != nil {
		return nil, errors.Errorf("reading directory %s: %w", e.opts.Root, err)
	}

	var dirs []string
	err := afero.Walk(e.fs, e.opts.Root, func(path string, info os.FileInfo, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable path")
			if info != nil && info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if info.IsDir() {
			dirs = append(dirs, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Errorf("walking %s: %w", e.opts.Root, err)
	}
	return dirs, nil
}
