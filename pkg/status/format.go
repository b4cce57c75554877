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
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	statusWidth = 10 // Width for outcome text
)

// FormatRecord formats a file record for display
func FormatRecord(rec FileRecord) string {
	var prefix string
	switch rec.Outcome {
	case OutcomeRenamed:
		prefix = color.GreenString("✓")
	case OutcomePlanned:
		prefix = color.CyanString("→")
	case OutcomeFailed:
		prefix = color.RedString("✗")
	default:
		prefix = color.HiBlackString("-")
	}

	line := fmt.Sprintf("%s%s %-*s %s",
		strings.Repeat(" ", fileIndent),
		prefix,
		statusWidth,
		rec.Outcome.String(),
		rec.Source,
	)

	switch {
	case rec.Err != nil:
		line += ": " + rec.Err.Error()
	case rec.Target != "" && rec.Target != rec.Source:
		line += " -> " + rec.Target
	}
	return line
}

// SummaryTable returns the summary as pterm table data, header row first
func SummaryTable(s Summary) pterm.TableData {
	return pterm.TableData{
		{"Files", "Renamed", "Planned", "Unchanged", "Failed", "Retried"},
		{
			strconv.Itoa(s.Total),
			strconv.Itoa(s.Renamed),
			strconv.Itoa(s.Planned),
			strconv.Itoa(s.Unchanged),
			strconv.Itoa(s.Failed),
			strconv.Itoa(s.Retried),
		},
	}
}

// RenderSummary writes the summary table followed by one line per failed file
func RenderSummary(w io.Writer, rep *Report) error {
	table, err := pterm.DefaultTable.WithHasHeader().WithData(SummaryTable(rep.Summary())).Srender()
	if err != nil {
		return errors.Errorf("rendering summary table: %w", err)
	}
	if _, err := fmt.Fprintln(w, table); err != nil {
		return errors.Errorf("writing summary: %w", err)
	}

	for _, rec := range rep.Failures() {
		if _, err := fmt.Fprintln(w, FormatRecord(rec)); err != nil {
			return errors.Errorf("writing failure: %w", err)
		}
	}
	return nil
}
