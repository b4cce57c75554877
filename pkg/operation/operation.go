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

package operation

import (
	"context"
	"strings"

	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/exifdate"
	"github.com/walteh/renamerc/pkg/method"
	"github.com/walteh/renamerc/pkg/naming"
	"gitlab.com/tozd/go/errors"
)

// 🔧 Options contains configuration for a rename run
type Options struct {
	// Fs is the filesystem files are read from and renamed on
	Fs afero.Fs
	// Spec is the naming spec applied to every file
	Spec method.Spec
	// Collision is the collision counter width, zero disables it
	Collision int
	// OutExt overrides the target extension, empty keeps the original
	OutExt string
	// Show reports planned renames without touching the filesystem
	Show bool
	// MaxAttempts caps rename attempts per file, zero means unbounded
	MaxAttempts int
	// Images resolves embedded image dates, defaults to an EXIF reader on Fs
	Images exifdate.Reader
}

// 🎯 Source yields the files of a run
type Source interface {
	Each(ctx context.Context, fn func(path string) error) error
}

// 🏭 NewRunner creates a runner with the given options
func NewRunner(opts Options) (*Runner, error) {
	if opts.Fs == nil {
		return nil, errors.Errorf("filesystem is required")
	}
	if len(opts.Spec) == 0 {
		return nil, errors.WithStack(method.ErrEmptySpec)
	}
	if opts.Collision < 0 {
		return nil, errors.Errorf("collision width must not be negative: %d", opts.Collision)
	}
	if opts.MaxAttempts < 0 {
		return nil, errors.Errorf("max attempts must not be negative: %d", opts.MaxAttempts)
	}
	if opts.Images == nil {
		opts.Images = exifdate.New(opts.Fs)
	}
	opts.OutExt = strings.TrimPrefix(opts.OutExt, ".")

	return &Runner{
		opts:    opts,
		builder: naming.NewBuilder(opts.Fs, opts.Images),
		renamer: NewRenamer(opts.Fs, opts.Show, opts.MaxAttempts),
	}, nil
}
