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

package naming_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/renamerc/pkg/exifdate"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/method"
	"github.com/walteh/renamerc/pkg/naming"
	"github.com/walteh/renamerc/pkg/testutils"
	"gitlab.com/tozd/go/errors"
)

var fixtureMtime = time.Date(2021, time.June, 30, 23, 59, 1, 0, time.UTC)

// 🧪 createTestEnv creates an in-memory filesystem, a builder and a context whose
// console output lands in the returned buffer
func createTestEnv(t *testing.T) (context.Context, afero.Fs, *naming.Builder, *bytes.Buffer) {
	t.Helper()

	color.NoColor = true
	t.Cleanup(func() { color.NoColor = false })

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/photos", 0o755))

	zlog := zerolog.New(zerolog.NewTestWriter(t))
	console := &bytes.Buffer{}
	ctx := log.NewContext(zlog.WithContext(context.Background()), log.New(console, zlog))

	return ctx, fs, naming.NewBuilder(fs, exifdate.New(fs)), console
}

func writeFile(t *testing.T, fs afero.Fs, path string) {
	t.Helper()
	require.NoError(t, afero.WriteFile(fs, path, []byte("data"), 0o644))
	require.NoError(t, fs.Chtimes(path, fixtureMtime, fixtureMtime))
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		file string
		spec string
		seq  int
		want string
	}{
		{name: "modification_date", file: "/photos/IMG_0001.JPG", spec: "mdate", seq: 1, want: "2021-06-30_23-59-01"},
		{name: "creation_date_in_memory_uses_mtime", file: "/photos/IMG_0001.JPG", spec: "cdate", seq: 1, want: "2021-06-30_23-59-01"},
		{name: "original_name", file: "/photos/IMG_0001.JPG", spec: "name", seq: 1, want: "IMG_0001"},
		{name: "lower_name", file: "/photos/Été_Plage.JPG", spec: "lname", seq: 1, want: "été_plage"},
		{name: "upper_name", file: "/photos/été_plage.jpg", spec: "uname", seq: 1, want: "ÉTÉ_PLAGE"},
		{name: "literal", file: "/photos/IMG_0001.JPG", spec: "holiday", seq: 1, want: "holiday"},
		{name: "sequence_padded_7th", file: "/photos/IMG_0001.JPG", spec: "num3", seq: 7, want: "007"},
		{name: "sequence_padded_1000th", file: "/photos/IMG_0001.JPG", spec: "num3", seq: 1000, want: "1000"},
		{name: "sequence_bad_pad", file: "/photos/IMG_0001.JPG", spec: "numz", seq: 7, want: "7"},
		{name: "joined_in_order", file: "/photos/IMG_0001.JPG", spec: "trip+num2+lname", seq: 3, want: "trip_03_img_0001"},
		{name: "no_extension", file: "/photos/README", spec: "name+mdate", seq: 1, want: "README_2021-06-30_23-59-01"},
		{name: "multi_dot_keeps_inner_dots", file: "/photos/archive.tar.gz", spec: "name", seq: 1, want: "archive.tar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, fs, builder, _ := createTestEnv(t)
			writeFile(t, fs, tt.file)

			spec, err := method.Parse(tt.spec)
			require.NoError(t, err)

			got, err := builder.Build(ctx, tt.file, spec, tt.seq)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSkipsEmptyComponents(t *testing.T) {
	ctx, fs, builder, _ := createTestEnv(t)
	writeFile(t, fs, "/photos/.hidden")

	spec := method.Spec{method.OriginalName{}, method.Literal{Text: "x"}, method.Literal{}, method.Literal{Text: "y"}}

	got, err := builder.Build(ctx, "/photos/.hidden", spec, 1)
	require.NoError(t, err)
	assert.Equal(t, "x_y", got)
}

func TestBuildEmptyName(t *testing.T) {
	ctx, fs, builder, _ := createTestEnv(t)
	writeFile(t, fs, "/photos/.hidden")

	_, err := builder.Build(ctx, "/photos/.hidden", method.Spec{method.OriginalName{}}, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, naming.ErrEmptyName))
}

func TestBuildMissingFile(t *testing.T) {
	ctx, _, builder, _ := createTestEnv(t)

	_, err := builder.Build(ctx, "/photos/gone.jpg", method.Spec{method.OriginalName{}}, 1)
	assert.Error(t, err)
}

func TestBuildImageDate(t *testing.T) {
	t.Run("embedded_date", func(t *testing.T) {
		ctx, fs, builder, console := createTestEnv(t)
		testutils.WriteImage(t, fs, "/photos/IMG_0002.jpg", testutils.Image{
			IFD0: []testutils.Tag{{ID: testutils.TagDateTime, Value: "2022:01:01 00:00:00"}},
			Exif: []testutils.Tag{{ID: testutils.TagDateTimeOriginal, Value: "2019:07:14 09:30:01"}},
		})

		got, err := builder.Build(ctx, "/photos/IMG_0002.jpg", method.Spec{method.ImageDate{}, method.OriginalName{}}, 1)
		require.NoError(t, err)
		assert.Equal(t, "2019-07-14_09-30-01_IMG_0002", got)
		assert.Empty(t, console.String(), "no warning expected")
	})

	t.Run("falls_back_to_mtime", func(t *testing.T) {
		ctx, fs, builder, console := createTestEnv(t)
		writeFile(t, fs, "/photos/scan.png")

		got, err := builder.Build(ctx, "/photos/scan.png", method.Spec{method.ImageDate{}}, 1)
		require.NoError(t, err)
		assert.Equal(t, "2021-06-30_23-59-01", got)
		assert.Contains(t, console.String(), "WARNING - /photos/scan.png does not include any image date")
	})
}

func TestStem(t *testing.T) {
	assert.Equal(t, "IMG_0001", naming.Stem("/a/b/IMG_0001.JPG"))
	assert.Equal(t, "README", naming.Stem("README"))
	assert.Equal(t, "", naming.Stem("/a/.bashrc"))
}
