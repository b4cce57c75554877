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

// Package filetime reads file timestamps and renders them in the layout used
// for date-based names.
package filetime

import (
	"os"
	"time"
)

// Layout is the name-safe timestamp layout, e.g. 2024-03-09_14-05-59.
const Layout = "2006-01-02_15-04-05"

// Format renders t in UTC using Layout.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// Created returns the creation time of the file described by fi. On Unix this
// is the inode change time; on Windows the creation time. When the platform
// data is unavailable (in-memory filesystems) the modification time is used.
func Created(fi os.FileInfo) time.Time {
	if t, ok := changeTime(fi); ok {
		return t
	}
	return fi.ModTime()
}

// Modified returns the modification time of the file described by fi.
func Modified(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
