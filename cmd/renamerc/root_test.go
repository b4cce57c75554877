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

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🧪 execute runs the command against fs and returns stdout
func execute(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	cmd := newCommand(fs)
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func memFs(t *testing.T, paths ...string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for _, p := range paths {
		require.NoError(t, afero.WriteFile(fs, p, []byte(p), 0o644))
	}
	return fs
}

func assertContent(t *testing.T, fs afero.Fs, path, want string) {
	t.Helper()
	got, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestCommandRenames(t *testing.T) {
	fs := memFs(t, "/photos/b.jpg", "/photos/a.jpg", "/photos/notes.txt")

	out, err := execute(t, fs, "-e", "jpg", "/photos", "trip+num2")
	require.NoError(t, err)

	assertContent(t, fs, "/photos/trip_01.jpg", "/photos/a.jpg")
	assertContent(t, fs, "/photos/trip_02.jpg", "/photos/b.jpg")
	assertContent(t, fs, "/photos/notes.txt", "/photos/notes.txt")

	assert.Contains(t, out, "/photos/a.jpg will be renamed to /photos/trip_01.jpg")
	assert.Contains(t, out, "Renamed")
}

func TestCommandShow(t *testing.T) {
	fs := memFs(t, "/photos/a.jpg")

	out, err := execute(t, fs, "--show", "/photos", "holiday")
	require.NoError(t, err)

	assertContent(t, fs, "/photos/a.jpg", "/photos/a.jpg")
	exists, err := afero.Exists(fs, "/photos/holiday.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Contains(t, out, "/photos/a.jpg will be renamed to /photos/holiday.jpg")
	assert.Contains(t, out, "Planned")
}

func TestCommandConfigFile(t *testing.T) {
	fs := memFs(t, "/photos/a.jpg", "/photos/b.jpg", "/photos/A/c.jpg")
	require.NoError(t, afero.WriteFile(fs, "/renamerc.yaml", []byte(`
recursive: true
collision: 2
methods: trip
out_ext: .jpeg
`), 0o644))

	_, err := execute(t, fs, "--config", "/renamerc.yaml", "/photos")
	require.NoError(t, err)

	assertContent(t, fs, "/photos/trip_00.jpeg", "/photos/a.jpg")
	assertContent(t, fs, "/photos/trip_01.jpeg", "/photos/b.jpg")
	assertContent(t, fs, "/photos/A/trip_00.jpeg", "/photos/A/c.jpg")
}

func TestCommandFlagOverridesConfig(t *testing.T) {
	fs := memFs(t, "/photos/a.jpg", "/photos/A/c.jpg")
	require.NoError(t, afero.WriteFile(fs, "/renamerc.toml", []byte("recursive = true\nmethods = \"trip\"\n"), 0o644))

	_, err := execute(t, fs, "--config", "/renamerc.toml", "--recursive=false", "/photos", "name+x")
	require.NoError(t, err)

	assertContent(t, fs, "/photos/a_x.jpg", "/photos/a.jpg")
	assertContent(t, fs, "/photos/A/c.jpg", "/photos/A/c.jpg")
}

func TestCommandErrors(t *testing.T) {
	tests := []struct {
		name        string
		setup       func(t *testing.T) afero.Fs
		args        []string
		errContains string
	}{
		{
			name:        "missing_methods",
			setup:       func(t *testing.T) afero.Fs { return memFs(t, "/photos/a.jpg") },
			args:        []string{"/photos"},
			errContains: "naming methods are required",
		},
		{
			name:        "not_a_directory",
			setup:       func(t *testing.T) afero.Fs { return memFs(t, "/photos/a.jpg") },
			args:        []string{"/photos/a.jpg", "name"},
			errContains: "is not a directory",
		},
		{
			name:        "missing_directory",
			setup:       func(t *testing.T) afero.Fs { return afero.NewMemMapFs() },
			args:        []string{"/nope", "name"},
			errContains: "reading directory",
		},
		{
			name:        "negative_collision",
			setup:       func(t *testing.T) afero.Fs { return memFs(t, "/photos/a.jpg") },
			args:        []string{"-c", "-1", "/photos", "name"},
			errContains: "collision must not be negative",
		},
		{
			name:        "bad_config",
			setup:       func(t *testing.T) afero.Fs { return memFs(t, "/photos/a.jpg", "/cfg.yaml") },
			args:        []string{"--config", "/cfg.yaml", "/photos", "name"},
			errContains: "loading config",
		},
		{
			name:        "too_many_args",
			setup:       func(t *testing.T) afero.Fs { return afero.NewMemMapFs() },
			args:        []string{"/photos", "name", "extra"},
			errContains: "accepts between 1 and 2 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.setup(t), tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestCommandRealFilesystem(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"IMG_0001.JPG", "IMG_0002.JPG", "taken.JPG"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "x_000.JPG"), []byte("existing"), 0o644))

	_, err := execute(t, afero.NewOsFs(), "-p", "IMG_", "-c", "3", dir, "x")
	require.NoError(t, err)

	for name, want := range map[string]string{
		"x_000.JPG": "existing",
		"x_001.JPG": "IMG_0001.JPG",
		"x_002.JPG": "IMG_0002.JPG",
		"taken.JPG": "taken.JPG",
	} {
		got, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Equal(t, want, string(got), name)
	}
}

func TestCommandVersion(t *testing.T) {
	out, err := execute(t, afero.NewMemMapFs(), "--version")
	require.NoError(t, err)
	version, _ := buildVersion()
	assert.True(t, strings.HasPrefix(out, "renamerc "+version), out)
}

func TestNewCommand(t *testing.T) {
	cmd := NewCommand()
	require.NotNil(t, cmd, "command should not be nil")
	assert.Equal(t, "renamerc", cmd.Name(), "command name should match")
	assert.NotEmpty(t, cmd.Short, "should have short description")
	for _, name := range []string{"recursive", "collision", "show", "ext", "prefix", "out-ext", "max-attempts", "config", "debug"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		interrupted bool
		want        int
	}{
		{name: "success", want: 0},
		{name: "error", err: errors.New("boom"), want: exitError},
		{name: "interrupted", err: errors.New("boom"), interrupted: true, want: exitInterrupt},
		{name: "cancelled", err: errors.Errorf("processing files: %w", context.Canceled), want: exitInterrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err, tt.interrupted))
		})
	}
}

func TestRunExitStatus(t *testing.T) {
	tests := []struct {
		name       string
		cancel     bool
		args       []string
		wantCode   int
		wantStderr string
	}{
		{name: "completed", args: []string{"/photos", "trip"}, wantCode: 0},
		{name: "usage_error", args: []string{"/photos"}, wantCode: exitError, wantStderr: "ERROR - naming methods are required"},
		{name: "interrupted_is_silent", cancel: true, args: []string{"/photos", "trip"}, wantCode: exitInterrupt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := memFs(t, "/photos/a.jpg")
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			if tt.cancel {
				cancel()
			}

			cmd := newCommand(fs)
			stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
			cmd.SetOut(stdout)
			cmd.SetErr(stderr)
			cmd.SetArgs(tt.args)

			assert.Equal(t, tt.wantCode, run(ctx, cmd, stderr))

			if tt.wantStderr == "" {
				assert.Empty(t, stderr.String())
			} else {
				assert.Contains(t, stderr.String(), tt.wantStderr)
			}
			if tt.cancel {
				assert.Empty(t, stdout.String(), "no summary after an interrupt")
				assertContent(t, fs, "/photos/a.jpg", "/photos/a.jpg")
			}
		})
	}
}

func TestBuildVersionFallback(t *testing.T) {
	version, _ := buildVersion()
	assert.NotEmpty(t, version)
	assert.NotEqual(t, "(devel)", version)
}
