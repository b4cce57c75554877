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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/walteh/renamerc/pkg/method"
	"github.com/walteh/renamerc/pkg/naming"
)

// RenamePlan is the resolved target of one file.
type RenamePlan struct {
	Source string // Path being renamed
	Dir    string // Directory of Source, targets stay in it
	Base   string // Built name without collision suffix or extension
	Ext    string // Target extension without the dot, empty for none
	Width  int    // Collision counter width, zero when disabled
}

// NewPlan resolves the plan for source. outExt overrides the extension of
// source when non-empty. A spec containing a sequence number forces the
// collision width to zero.
func NewPlan(source, base, outExt string, width int, spec method.Spec) RenamePlan {
	ext := strings.TrimPrefix(outExt, ".")
	if ext == "" {
		ext = strings.TrimPrefix(filepath.Ext(source), ".")
	}
	if spec.HasSequence() {
		width = 0
	}
	return RenamePlan{
		Source: source,
		Dir:    filepath.Dir(source),
		Base:   base,
		Ext:    ext,
		Width:  width,
	}
}

// Collisions reports whether collision suffixes are enabled.
func (p RenamePlan) Collisions() bool {
	return p.Width > 0
}

// Candidate renders the n-th target path. Without collisions n is ignored.
func (p RenamePlan) Candidate(n int) string {
	name := p.Base
	if p.Collisions() {
		name += naming.Separator + fmt.Sprintf("%0*d", p.Width, n)
	}
	if p.Ext != "" {
		name += "." + p.Ext
	}
	return filepath.Join(p.Dir, name)
}

// First is the first candidate, the only one show mode reports.
func (p RenamePlan) First() string {
	return p.Candidate(0)
}
