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

package status

import (
	"sync"
)

// Outcome is the final state of one file in a run.
type Outcome int

const (
	OutcomeUnknown   Outcome = iota
	OutcomePlanned           // Show mode, nothing renamed
	OutcomeRenamed           // File renamed
	OutcomeUnchanged         // Target equals source
	OutcomeFailed            // File abandoned
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlanned:
		return "planned"
	case OutcomeRenamed:
		return "renamed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// FileRecord is what happened to a single file.
type FileRecord struct {
	Seq      int     // File-sequence number the file was processed with
	Source   string  // Original path
	Target   string  // Final (or last attempted) target path
	Outcome  Outcome // Final state
	Attempts int     // Rename attempts made, zero in show mode
	Err      error   // Failure cause when Outcome is OutcomeFailed
}

// Report collects FileRecords for one run.
type Report struct {
	mu    sync.Mutex
	files []FileRecord
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Track appends rec to the report.
func (r *Report) Track(rec FileRecord) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.files = append(r.files, rec)
}

// Files returns a copy of all records in processing order.
func (r *Report) Files() []FileRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]FileRecord(nil), r.files...)
}

// Summary is the aggregate view of a report.
type Summary struct {
	Total     int
	Planned   int
	Renamed   int
	Unchanged int
	Failed    int
	Retried   int // Files that needed more than one attempt
}

// Summary aggregates the report.
func (r *Report) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := Summary{Total: len(r.files)}
	for _, f := range r.files {
		switch f.Outcome {
		case OutcomePlanned:
			s.Planned++
		case OutcomeRenamed:
			s.Renamed++
		case OutcomeUnchanged:
			s.Unchanged++
		case OutcomeFailed:
			s.Failed++
		}
		if f.Attempts > 1 {
			s.Retried++
		}
	}
	return s
}

// Failures returns the failed records in processing order.
func (r *Report) Failures() []FileRecord {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []FileRecord
	for _, f := range r.files {
		if f.Outcome == OutcomeFailed {
			out = append(out, f)
		}
	}
	return out
}
