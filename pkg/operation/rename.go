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
	"os"

	"github.com/spf13/afero"
	"github.com/walteh/renamerc/pkg/log"
	"github.com/walteh/renamerc/pkg/status"
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrTargetExists is returned when the target path is already taken.
	ErrTargetExists = errors.Base("target already exists")
	// ErrAttemptsExhausted is returned when MaxAttempts is reached.
	ErrAttemptsExhausted = errors.Base("rename attempts exhausted")
)

// Result is what Execute did with a plan.
type Result struct {
	Target   string
	Attempts int
	Outcome  status.Outcome
}

// Renamer executes rename plans without overwriting existing files.
type Renamer struct {
	fs          afero.Fs
	show        bool
	maxAttempts int
}

// NewRenamer creates a Renamer. In show mode nothing is renamed.
// maxAttempts of zero means unbounded.
func NewRenamer(fs afero.Fs, show bool, maxAttempts int) *Renamer {
	return &Renamer{fs: fs, show: show, maxAttempts: maxAttempts}
}

// Execute renames plan.Source to the first free candidate. A taken target is
// retried with the next collision suffix when collisions are enabled; any
// other failure, or a conflict without collisions, abandons the file. The
// returned Result always carries the last attempted target.
func (r *Renamer) Execute(ctx context.Context, plan RenamePlan) (Result, error) {
	logger := log.FromContext(ctx)

	res := Result{Target: plan.First()}
	logger.LogRename(log.RenameOperation{From: plan.Source, To: res.Target, Attempt: 1, Show: r.show})

	if r.show {
		res.Outcome = status.OutcomePlanned
		return res, nil
	}

	for n := 0; ; n++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		res.Attempts = n + 1
		if res.Target == plan.Source {
			res.Outcome = status.OutcomeUnchanged
			return res, nil
		}

		err := r.rename(plan.Source, res.Target)
		if err == nil {
			res.Outcome = status.OutcomeRenamed
			return res, nil
		}

		logger.Errorf("Unable to rename file (%v)", err)

		if !plan.Collisions() || !errors.Is(err, ErrTargetExists) {
			res.Outcome = status.OutcomeFailed
			return res, errors.Errorf("renaming %s: %w", plan.Source, err)
		}
		if r.maxAttempts > 0 && res.Attempts >= r.maxAttempts {
			res.Outcome = status.OutcomeFailed
			return res, errors.Errorf("renaming %s after %d attempts: %w", plan.Source, res.Attempts, ErrAttemptsExhausted)
		}

		res.Target = plan.Candidate(n + 1)
		logger.LogRename(log.RenameOperation{From: plan.Source, To: res.Target, Attempt: n + 2})
	}
}

// rename moves src to dst unless dst already exists. The existence check and
// the rename are not atomic.
func (r *Renamer) rename(src, dst string) error {
	dstInfo, err := r.fs.Stat(dst)
	switch {
	case err == nil:
		// case-only renames on case-insensitive filesystems resolve to src itself
		srcInfo, srcErr := r.fs.Stat(src)
		if srcErr != nil || !os.SameFile(srcInfo, dstInfo) {
			return errors.WithDetails(ErrTargetExists, "target", dst)
		}
	case !os.IsNotExist(err):
		return errors.Errorf("checking target: %w", err)
	}

	if err := r.fs.Rename(src, dst); err != nil {
		return errors.Errorf("rename: %w", err)
	}
	return nil
}
