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

/*
Package operation turns enumerated files into renames.

	+------------+     +-----------+     +-----------+     +-----------+
	| Enumerator | --> |  Builder  | --> |   Plan    | --> |  Renamer  |
	|  (files)   |     |  (name)   |     | (target)  |     | (rename)  |
	+------------+     +-----------+     +-----------+     +-----------+

🎯 Purpose:
- Thread the file-sequence counter through a run (Runner)
- Resolve the first candidate target of a file (RenamePlan)
- Rename without overwriting, retrying with the next collision suffix when the
  target is taken (Renamer)

⚡ Rules:
- The sequence counter starts at 1 and advances once per file, whatever
  happened to it, across every directory of a recursive run.
- A naming spec that contains a sequence number disables collision suffixes.
- Show mode reports the first candidate and touches nothing.
- Per-file failures are recorded and the run moves on. Only cancellation of
  the context ends a run early.

🔍 Example:

	runner, err := operation.NewRunner(operation.Options{Fs: fs, Spec: spec, Collision: 3})
	report, err := runner.Run(ctx, enumerate.New(fs, enumerate.Options{Root: dir}))
*/
package operation
