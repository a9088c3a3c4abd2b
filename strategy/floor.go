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
	"dirpx.dev/vcx/apis"
	uver "dirpx.dev/vcx/utils/version"
)

// NewFloorStrategy creates an apis.Strategy that picks the greatest
// registered token not exceeding the requested one.
func NewFloorStrategy() apis.Strategy {
	return &floorStrategy{}
}

// floorStrategy implements the backward-compatibility rule: a caller pinned
// to an old version keeps getting the implementation that was current back
// then, even after newer versions are registered.
type floorStrategy struct{}

// Ensure floorStrategy implements apis.Strategy.
var _ apis.Strategy = (*floorStrategy)(nil)

// TrySelect bisects the sorted history for the greatest token <= requested.
// It falls through when the whole history is newer than the request.
func (*floorStrategy) TrySelect(versions []string, requested string, _ apis.Config) (string, bool) {
	if len(versions) == 0 || requested == "" {
		return "", false
	}
	return uver.Floor(versions, requested)
}
