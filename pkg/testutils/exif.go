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

// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"bytes"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EXIF tag IDs used by the fixtures.
const (
	TagMake                uint16 = 0x010F
	TagDateTime            uint16 = 0x0132
	TagExifIFDPointer      uint16 = 0x8769
	TagDateTimeOriginal    uint16 = 0x9003
	TagDateTimeDigitized   uint16 = 0x9004
	TagSubSecTime          uint16 = 0x9290
	TagSubSecTimeOriginal  uint16 = 0x9291
	TagSubSecTimeDigitized uint16 = 0x9292
)

const (
	tiffTypeASCII = 2
	tiffTypeLong  = 4
	ifdEntrySize  = 12
)

// Tag is an ASCII EXIF tag.
type Tag struct {
	ID    uint16
	Value string
}

// Image describes the metadata of a fixture image. IFD0 holds DateTime and
// SubSecTime style tags; Exif holds the capture tags of the Exif sub-IFD.
type Image struct {
	IFD0 []Tag
	Exif []Tag
}

// TIFF encodes img as a little-endian TIFF stream, which goexif accepts in
// place of a JPEG.
func (img Image) TIFF() []byte {
	le := binary.LittleEndian

	ifd0 := sortedTags(img.IFD0)
	sub := sortedTags(img.Exif)

	ifd0Count := len(ifd0)
	if len(sub) > 0 {
		ifd0Count++
	}
	ifd0Off := 8
	subOff := ifd0Off + ifdSize(ifd0Count)
	dataOff := subOff
	if len(sub) > 0 {
		dataOff += ifdSize(len(sub))
	}

	var data bytes.Buffer
	writeIFD := func(buf *bytes.Buffer, tags []Tag, pointer uint32) {
		count := len(tags)
		if pointer != 0 {
			count++
		}
		_ = binary.Write(buf, le, uint16(count))
		for _, tg := range tags {
			val := append([]byte(tg.Value), 0)
			_ = binary.Write(buf, le, tg.ID)
			_ = binary.Write(buf, le, uint16(tiffTypeASCII))
			_ = binary.Write(buf, le, uint32(len(val)))
			if len(val) <= 4 {
				var inline [4]byte
				copy(inline[:], val)
				buf.Write(inline[:])
				continue
			}
			_ = binary.Write(buf, le, uint32(dataOff+data.Len()))
			data.Write(val)
		}
		if pointer != 0 {
			_ = binary.Write(buf, le, TagExifIFDPointer)
			_ = binary.Write(buf, le, uint16(tiffTypeLong))
			_ = binary.Write(buf, le, uint32(1))
			_ = binary.Write(buf, le, pointer)
		}
		_ = binary.Write(buf, le, uint32(0))
	}

	var out bytes.Buffer
	out.WriteString("II")
	_ = binary.Write(&out, le, uint16(42))
	_ = binary.Write(&out, le, uint32(ifd0Off))

	var pointer uint32
	if len(sub) > 0 {
		pointer = uint32(subOff)
	}
	writeIFD(&out, ifd0, pointer)
	if len(sub) > 0 {
		writeIFD(&out, sub, 0)
	}
	out.Write(data.Bytes())
	return out.Bytes()
}

// WriteImage writes img to path on fs.
func WriteImage(t testing.TB, fs afero.Fs, path string, img Image) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, img.TIFF(), 0o644), "writing fixture image")
}

func ifdSize(entries int) int {
	return 2 + ifdEntrySize*entries + 4
}

func sortedTags(tags []Tag) []Tag {
	out := append([]Tag(nil), tags...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
