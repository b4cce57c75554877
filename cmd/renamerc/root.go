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
	"context"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/walteh/renamerc/cmd/renamerc/opts"
	"github.com/walteh/renamerc/pkg/config"
	"github.com/walteh/renamerc/pkg/enumerate"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/operation"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Handler runs one invocation of the command
type Handler struct {
	fs    afero.Fs
	flags opts.FlagValues
}

// NewCommand creates the root command operating on the real filesystem
func NewCommand() *cobra.Command {
	return newCommand(afero.NewOsFs())
}

func newCommand(fs afero.Fs) *cobra.Command {
	h := &Handler{fs: fs}

	cmd := &cobra.Command{
		Use:   "renamerc [flags] <dir> <method[+method...]>",
		Short: "Batch rename files from dates, counters and their own names",
		Long: `renamerc renames every file in a directory to a name built from a
sequence of naming methods joined with '+':

  cdate     file creation date
  mdate     file modification date
  imgdate   EXIF capture date, falling back to mdate
  num[N]    running file number, zero padded to N digits (1-9)
  name      original name without extension
  lname     original name in lower case
  uname     original name in upper case
  <text>    any other token is used literally

Components are joined with '_' and the original extension is kept.`,
		Example: `  renamerc ~/Pictures imgdate+name
  renamerc -r -c 3 -e jpg ~/Pictures holiday+imgdate
  renamerc -s ~/scans scan+num4`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.Run(cmd.Context(), cmd, args)
		},
	}
	cmd.Version, _ = buildVersion()
	cmd.SetVersionTemplate(versionTemplate())

	f := cmd.Flags()
	f.BoolVarP(&h.flags.Recursive, "recursive", "r", false, "recurse into subdirectories")
	f.IntVarP(&h.flags.Collision, "collision", "c", 0, "collision counter width (0 = disabled)")
	f.BoolVarP(&h.flags.Show, "show", "s", false, "print planned renames only")
	f.StringVarP(&h.flags.Ext, "ext", "e", "", "only rename files with this extension")
	f.StringVarP(&h.flags.Prefix, "prefix", "p", "", "only rename files whose name starts with this prefix")
	f.StringVarP(&h.flags.OutExt, "out-ext", "x", "", "extension of the renamed files")
	f.IntVar(&h.flags.MaxAttempts, "max-attempts", 0, "cap on rename attempts per file (0 = unbounded)")
	f.StringVar(&h.flags.ConfigFile, "config", "", "config file with flag defaults (.yaml, .hcl, .json, .toml)")
	f.BoolVarP(&h.flags.Debug, "debug", "d", false, "enable debug logging")

	return cmd
}

// Run executes the rename run described by the flags and args
func (h *Handler) Run(ctx context.Context, cmd *cobra.Command, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = h.setupLogging(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr())
	logger := zerolog.Ctx(ctx)

	var cfg *config.Config
	if h.flags.ConfigFile != "" {
		loaded, err := config.Load(ctx, h.fs, h.flags.ConfigFile)
		if err != nil {
			return errors.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	o, err := opts.Resolve(h.flags, cmd.Flags().Changed, cfg, args)
	if err != nil {
		return err
	}

	fi, err := h.fs.Stat(o.Dir)
	if err != nil {
		return errors.Errorf("reading directory: %w", err)
	}
	if !fi.IsDir() {
		return errors.Errorf("%s is not a directory", o.Dir)
	}

	runner, err := operation.NewRunner(operation.Options{
		Fs:          h.fs,
		Spec:        o.Spec,
		Collision:   o.Collision,
		OutExt:      o.OutExt,
		Show:        o.Show,
		MaxAttempts: o.MaxAttempts,
	})
	if err != nil {
		return errors.Errorf("creating runner: %w", err)
	}

	files := enumerate.New(h.fs, enumerate.Options{
		Root:      o.Dir,
		Recursive: o.Recursive,
		Filter:    enumerate.Filter{Ext: o.Ext, Prefix: o.Prefix},
	})

	logger.Debug().
		Str("dir", o.Dir).
		Str("methods", o.Spec.String()).
		Bool("recursive", o.Recursive).
		Int("collision", o.Collision).
		Bool("show", o.Show).
		Msg("starting run")

	report, err := runner.Run(ctx, files)
	if err != nil {
		return err
	}

	logger.Debug().Int("files", len(report.Files())).Msg("run complete")
	return status.RenderSummary(cmd.OutOrStdout(), report)
}

// setupLogging attaches the structured logger and the console logger to ctx.
// Structured records go to stderr and only at debug level; the console lines
// carry the same information otherwise.
func (h *Handler) setupLogging(ctx context.Context, stdout, stderr io.Writer) context.Context {
	level := zerolog.Disabled
	if h.flags.Debug {
		level = zerolog.DebugLevel
	}

	zlog := zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: !isTerminal(stderr)}).
		Level(level).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()

	color.NoColor = !isTerminal(stdout)

	ctx = zlog.WithContext(ctx)
	return log.NewContext(ctx, log.New(stdout, zlog))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
