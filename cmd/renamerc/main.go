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
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
)

const (
	exitError     = 1
	exitInterrupt = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, NewCommand(), os.Stderr)
	stop()
	os.Exit(code)
}

// run executes cmd and returns the process exit status. An interrupted run
// exits without writing anything further.
func run(ctx context.Context, cmd *cobra.Command, stderr io.Writer) int {
	err := cmd.ExecuteContext(ctx)
	code := exitCode(err, ctx.Err() != nil)
	if code == exitError {
		fmt.Fprintf(stderr, "ERROR - %s\n", color.New(color.FgRed).Sprint(err))
	}
	return code
}

// exitCode maps the outcome of a run to the process exit status
func exitCode(err error, interrupted bool) int {
	switch {
	case err == nil:
		return 0
	case interrupted || errors.Is(err, context.Canceled):
		return exitInterrupt
	default:
		return exitError
	}
}
