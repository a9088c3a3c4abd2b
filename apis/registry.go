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

// Registry is the per-namespace mapping from base names to their ordered
// version histories. It is built once at registration time and read-only
// afterwards, so implementations need no locking on the lookup path.
type Registry interface {
	// Names returns all registered base names in ascending order.
	Names() []string
	// Versions returns the version tokens registered under name, ascending.
	// The returned slice must not be mutated by the caller.
	Versions(name string) []string
	// Lookup returns the Descriptor for an exact (name, version) pair.
	Lookup(name, version string) (Descriptor, bool)
	// Entries returns a snapshot of all descriptors for diagnostics/docs,
	// ordered by name then version.
	Entries() []Descriptor
	// Count returns the total number of registered descriptors.
	Count() int
}
