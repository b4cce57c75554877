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
Package status tracks the outcome of every file a rename run touches and
renders the end-of-run summary.

	+-----------+      Track       +----------+
	|  Runner   | ---------------> |  Report  |
	+-----------+                  +----+-----+
	                                    |
	                         +----------+----------+
	                         |                     |
	                  +------+------+       +------+------+
	                  |   Summary   |       |  Formatter  |
	                  |  (counts)   |       |   (lines)   |
	                  +-------------+       +-------------+

🎯 Purpose:
- Record one FileRecord per file considered, in processing order
- Count outcomes (renamed, planned, unchanged, failed) and retries
- Format per-file lines and the summary table for the console

The report is only rendered after a run completes. An interrupted run prints
nothing further.
*/
package status
