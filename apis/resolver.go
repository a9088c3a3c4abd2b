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

package apis

// Resolver answers "which Descriptor serves base name X at version V?".
// Typical chain: ExactStrategy -> FloorStrategy.
//
// Resolution is a pure function of the registry snapshot and the two inputs:
// repeated calls with the same inputs against an unchanged registry return
// the same Descriptor.
type Resolver interface {
	// Resolve returns the Descriptor selected for (name, version).
	// Unknown base names and versions predating the whole history fail with
	// the resolution errors defined by the implementation package.
	Resolve(name, version string, cfg Config) (Descriptor, error)
}
