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

// Package naming builds the new base name of a file from a naming spec.
package naming

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/exifdate"
	"github.com/walteh/renamerc/pkg/filetime"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/method"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Separator joins the components of a built name.
const Separator = "_"

// ErrEmptyName is returned when every component of a spec renders empty.
var ErrEmptyName = errors.Base("built name is empty")

// Builder evaluates naming specs against files on an afero filesystem.
type Builder struct {
	fs     afero.Fs
	images exifdate.Reader
}

// NewBuilder creates a Builder. images resolves ImageDate components.
func NewBuilder(fs afero.Fs, images exifdate.Reader) *Builder {
	return &Builder{fs: fs, images: images}
}

// Build renders spec for the file at path. seq is the 1-based file-sequence
// number used by SequenceNumber components. Components are joined with
// Separator; empty components are skipped.
func (b *Builder) Build(ctx context.Context, path string, spec method.Spec, seq int) (string, error) {
	fi, err := b.fs.Stat(path)
	if err != nil {
		return "", errors.Errorf("stat %s: %w", path, err)
	}

	parts := make([]string, 0, len(spec))
	for _, m := range spec {
		part, err := b.component(ctx, path, fi, m, seq)
		if err != nil {
			return "", err
		}
		if part == "" {
			continue
		}
		parts = append(parts, part)
	}

	if len(parts) == 0 {
		return "", errors.WithDetails(ErrEmptyName, "file", path, "spec", spec.String())
	}

	name := strings.Join(parts, Separator)
	zerolog.Ctx(ctx).Debug().Str("file", path).Int("seq", seq).Str("name", name).Msg("built name")
	return name, nil
}

func (b *Builder) component(ctx context.Context, path string, fi os.FileInfo, m method.Method, seq int) (string, error) {
	switch m := m.(type) {
	case method.CreationDate:
		return filetime.Format(filetime.Created(fi)), nil
	case method.ModificationDate:
		return filetime.Format(filetime.Modified(fi)), nil
	case method.ImageDate:
		if date, ok := b.images.ImageDate(ctx, path); ok {
			return date, nil
		}
		log.FromContext(ctx).Warningf("%s does not include any image date, so the modified file date is used.", path)
		return filetime.Format(filetime.Modified(fi)), nil
	case method.SequenceNumber:
		return m.Render(seq), nil
	case method.OriginalName:
		return Stem(path), nil
	case method.LowercaseName:
		return cases.Lower(language.Und).String(Stem(path)), nil
	case method.UppercaseName:
		return cases.Upper(language.Und).String(Stem(path)), nil
	case method.Literal:
		return m.Text, nil
	default:
		return "", errors.Errorf("unhandled naming method %T", m)
	}
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
