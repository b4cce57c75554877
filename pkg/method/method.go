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

// Package method defines the naming methods a rename run can combine and
// parses them from the `method[+method...]` syntax used on the command line.
package method

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrEmptySpec is returned when a naming spec contains no tokens.
var ErrEmptySpec = errors.Base("naming spec is empty")

// Method is one naming strategy. The set of implementations is closed:
// CreationDate, ModificationDate, ImageDate, SequenceNumber, OriginalName,
// LowercaseName, UppercaseName and Literal.
type Method interface {
	// Token returns the spec token that parses back to this method.
	Token() string

	method()
}

// CreationDate renders the file creation time.
type CreationDate struct{}

// ModificationDate renders the file modification time.
type ModificationDate struct{}

// ImageDate renders the capture date embedded in image metadata.
type ImageDate struct{}

// SequenceNumber renders the running file number. Pad is the zero-padding
// width; zero means no padding.
type SequenceNumber struct {
	Pad int
}

// OriginalName renders the base name without its extension.
type OriginalName struct{}

// LowercaseName renders OriginalName in lower case.
type LowercaseName struct{}

// UppercaseName renders OriginalName in upper case.
type UppercaseName struct{}

// Literal renders Text as is.
type Literal struct {
	Text string
}

func (CreationDate) method()     {}
func (ModificationDate) method() {}
func (ImageDate) method()        {}
func (SequenceNumber) method()   {}
func (OriginalName) method()     {}
func (LowercaseName) method()    {}
func (UppercaseName) method()    {}
func (Literal) method()          {}

func (CreationDate) Token() string     { return "cdate" }
func (ModificationDate) Token() string { return "mdate" }
func (ImageDate) Token() string        { return "imgdate" }
func (OriginalName) Token() string     { return "name" }
func (LowercaseName) Token() string    { return "lname" }
func (UppercaseName) Token() string    { return "uname" }
func (l Literal) Token() string        { return l.Text }

func (s SequenceNumber) Token() string {
	if s.Pad > 0 {
		return "num" + strconv.Itoa(s.Pad)
	}
	return "num"
}

// Render formats n, left-padded with zeros to Pad digits. Numbers wider than
// Pad are never truncated.
func (s SequenceNumber) Render(n int) string {
	if s.Pad <= 0 {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%0*d", s.Pad, n)
}

const sequencePrefix = "num"

// ParseToken maps a single spec token to its Method. Unknown tokens become
// literals.
func ParseToken(tok string) Method {
	switch tok {
	case "cdate":
		return CreationDate{}
	case "mdate":
		return ModificationDate{}
	case "imgdate":
		return ImageDate{}
	case "name":
		return OriginalName{}
	case "lname":
		return LowercaseName{}
	case "uname":
		return UppercaseName{}
	}
	if rest, ok := strings.CutPrefix(tok, sequencePrefix); ok {
		return SequenceNumber{Pad: parsePad(rest)}
	}
	return Literal{Text: tok}
}

// parsePad reads the pad digit that follows "num". Only the first character
// counts; anything other than 1-9 means no padding.
func parsePad(rest string) int {
	if rest == "" {
		return 0
	}
	c := rest[0]
	if c < '1' || c > '9' {
		return 0
	}
	return int(c - '0')
}

// Spec is an ordered list of naming methods.
type Spec []Method

// Parse splits s on '+' and parses each token. Empty tokens are dropped.
func Parse(s string) (Spec, error) {
	var spec Spec
	for _, tok := range strings.Split(s, "+") {
		if tok == "" {
			continue
		}
		spec = append(spec, ParseToken(tok))
	}
	if len(spec) == 0 {
		return nil, errors.WithDetails(ErrEmptySpec, "spec", s)
	}
	return spec, nil
}

// HasSequence reports whether any method is a SequenceNumber.
func (s Spec) HasSequence() bool {
	for _, m := range s {
		if _, ok := m.(SequenceNumber); ok {
			return true
		}
	}
	return false
}

// String joins the method tokens back into spec syntax.
func (s Spec) String() string {
	toks := make([]string, len(s))
	for i, m := range s {
		toks[i] = m.Token()
	}
	return strings.Join(toks, "+")
}
