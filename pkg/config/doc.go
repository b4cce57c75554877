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
Package config loads optional rename run settings from a file.

🎯 Purpose:
- Reads the `--config` file of a run
- Picks a parser by file extension
- Validates and normalises the values

🔄 Flow:
1. Load reads the file through afero
2. GetParser finds the registered parser for its extension
3. The parser decodes strictly, unknown keys are errors
4. Validate rejects negative widths and strips leading dots from extensions

🤝 Formats:
  - .yaml / .yml
  - .hcl
  - .json
  - .toml

Example (YAML):

	recursive: true
	collision: 3
	ext: jpg
	methods: imgdate+name

Values set here are overridden by flags given explicitly on the command line.
*/
package config
