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

package strategy

import (
	"sort"

	"dirpx.dev/vcx/apis"
)

// NewExactStrategy creates an apis.Strategy that only handles requests whose
// token is itself registered.
func NewExactStrategy() apis.Strategy {
	return &exactStrategy{}
}

// exactStrategy is a zero-cost fast path: if the requested token is present
// in the history, return it and stop the chain.
type exactStrategy struct{}

// Ensure exactStrategy implements apis.Strategy.
var _ apis.Strategy = (*exactStrategy)(nil)

// TrySelect returns the requested token when it is registered.
func (*exactStrategy) TrySelect(versions []string, requested string, _ apis.Config) (string, bool) {
	if len(versions) == 0 || requested == "" {
		return "", false
	}
	idx := sort.SearchStrings(versions, requested)
	if idx < len(versions) && versions[idx] == requested {
		return requested, true
	}
	return "", false
}
