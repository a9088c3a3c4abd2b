/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package version provides leaf helpers for opaque version tokens: ordering,
// validation and floor selection over sorted histories. Tokens compare in
// plain byte order; by convention they are date-like digit strings such as
// "20200721", but nothing here interprets them as dates.
package version

import (
	"errors"
	"sort"
	"strings"
	"time"
)

var (
	// ErrEmptyToken is returned when an empty version token is provided.
	ErrEmptyToken = errors.New("vcx(version): empty version token")
	// ErrNonDigitToken is returned in strict mode for tokens containing
	// anything but ASCII digits.
	ErrNonDigitToken = errors.New("vcx(version): token is not digit-only")
)

// Validate checks a version token. In strict mode the token must consist of
// ASCII digits only.
func Validate(token string, strict bool) error {
	if token == "" {
		return ErrEmptyToken
	}
	if !strict {
		return nil
	}
	for i := 0; i < len(token); i++ {
		if token[i] < '0' || token[i] > '9' {
			return ErrNonDigitToken
		}
	}
	return nil
}

// Compare orders two tokens in plain byte order.
// It returns -1, 0 or +1.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Sorted returns a copy of tokens sorted ascending.
func Sorted(tokens []string) []string {
	out := make([]string, len(tokens))
	copy(out, tokens)
	sort.Strings(out)
	return out
}

// Floor returns the greatest token in sorted (ascending) that is <= requested.
// It returns ("", false) when every token is newer than requested or sorted
// is empty.
func Floor(sorted []string, requested string) (string, bool) {
	// bisect-right, then step one back.
	idx := sort.SearchStrings(sorted, requested)
	if idx < len(sorted) && sorted[idx] == requested {
		return sorted[idx], true
	}
	if idx == 0 {
		return "", false
	}
	return sorted[idx-1], true
}

// Today returns the conventional date token for the current day (yyyymmdd).
func Today() string {
	return time.Now().Format("20060102")
}
