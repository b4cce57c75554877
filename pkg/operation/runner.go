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

	"github.com/rs/zerolog"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/naming"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// 🏃 Runner renames every file a Source yields
type Runner struct {
	opts    Options
	builder *naming.Builder
	renamer *Renamer
}

// 🏃 Run processes the files of src in order. The returned report holds one
// record per file. Per-file failures are logged and recorded, they do not
// stop the run; a cancelled context does, and its error is returned.
func (r *Runner) Run(ctx context.Context, src Source) (*status.Report, error) {
	report := status.NewReport()

	seq := 1
	err := src.Each(ctx, func(path string) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		rec := r.processFile(ctx, path, seq)
		seq++
		report.Track(rec)
		if rec.Err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		return nil
	})
	if err != nil {
		return report, errors.Errorf("processing files: %w", err)
	}

	return report, nil
}

// 📄 processFile builds, plans and executes the rename of one file
func (r *Runner) processFile(ctx context.Context, path string, seq int) status.FileRecord {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Int("seq", seq).Logger()
	rec := status.FileRecord{Seq: seq, Source: path}

	base, err := r.builder.Build(ctx, path, r.opts.Spec, seq)
	if err != nil {
		log.FromContext(ctx).Errorf("Unable to build a name for %s (%v)", path, err)
		rec.Outcome = status.OutcomeFailed
		rec.Err = err
		return rec
	}

	plan := NewPlan(path, base, r.opts.OutExt, r.opts.Collision, r.opts.Spec)
	res, err := r.renamer.Execute(ctx, plan)
	rec.Target = res.Target
	rec.Attempts = res.Attempts
	rec.Outcome = res.Outcome
	if err != nil {
		rec.Outcome = status.OutcomeFailed
		rec.Err = err
		logger.Debug().Err(err).Msg("file abandoned")
		return rec
	}

	logger.Debug().Str("target", res.Target).Stringer("outcome", res.Outcome).Msg("file done")
	return rec
}
