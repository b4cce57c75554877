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

// Package exifdate extracts the capture date embedded in image metadata.
package exifdate

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rwcarlsen/goexif/exif"
	"github.com/spf13/afero"
)

// Reader resolves the embedded capture date of an image.
type Reader interface {
	// ImageDate returns the capture date formatted as YYYY-MM-DD_HH-MM-SS, or
	// false when the file carries no usable date.
	ImageDate(ctx context.Context, path string) (string, bool)
}

// tagPair couples a timestamp tag with its sub-second companion.
type tagPair struct {
	date   exif.FieldName
	subsec exif.FieldName
}

// tagPairs is ordered by reliability: capture time, digitisation time, then
// the last-modified time written by the camera or editor.
var tagPairs = []tagPair{
	{date: exif.DateTimeOriginal, subsec: exif.SubSecTimeOriginal},
	{date: exif.DateTimeDigitized, subsec: exif.SubSecTimeDigitized},
	{date: exif.DateTime, subsec: exif.SubSecTime},
}

// Extractor reads EXIF metadata through an afero filesystem.
type Extractor struct {
	fs afero.Fs
}

var _ Reader = (*Extractor)(nil)

// New creates an Extractor over fs.
func New(fs afero.Fs) *Extractor {
	return &Extractor{fs: fs}
}

// ImageDate implements Reader. Unreadable files and malformed metadata are
// reported as absence, never as an error.
func (e *Extractor) ImageDate(ctx context.Context, path string) (date string, ok bool) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	f, err := e.fs.Open(path)
	if err != nil {
		logger.Debug().Err(err).Msg("opening image")
		return "", false
	}
	defer f.Close()

	// goexif can panic on truncated IFDs
	defer func() {
		if r := recover(); r != nil {
			logger.Debug().Interface("panic", r).Msg("decoding exif")
			date, ok = "", false
		}
	}()

	x, err := exif.Decode(f)
	if err != nil {
		logger.Debug().Err(err).Msg("decoding exif")
		return "", false
	}

	return fromExif(logger, x)
}

func fromExif(logger zerolog.Logger, x *exif.Exif) (string, bool) {
	for _, pair := range tagPairs {
		raw, ok := tagString(x, pair.date)
		if !ok {
			continue
		}
		// the sub-second tag is logged but never part of the name
		subsec, _ := tagString(x, pair.subsec)
		logger.Debug().
			Str("tag", string(pair.date)).
			Str("value", raw).
			Str("subsec", subsec).
			Msg("found image date")
		return Normalize(raw), true
	}
	return "", false
}

func tagString(x *exif.Exif, name exif.FieldName) (string, bool) {
	tag, err := x.Get(name)
	if err != nil {
		return "", false
	}
	s, err := tag.StringVal()
	if err != nil {
		return "", false
	}
	s = strings.TrimRight(s, "\x00 ")
	if s == "" {
		return "", false
	}
	return s, true
}

// Normalize turns an EXIF timestamp ("2024:03:09 14:05:59") into a name-safe
// string ("2024-03-09_14-05-59").
func Normalize(raw string) string {
	return strings.ReplaceAll(strings.ReplaceAll(raw, ":", "-"), " ", "_")
}
