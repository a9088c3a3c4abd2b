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

// Builder composes Registry and Resolver instances for a namespace
// registration. Swapping the Builder lets a process replace the resolution
// policy (different strategies, different version ordering) without touching
// the registration call sites.
type Builder interface {
	// BuildRegistry constructs an immutable Registry from the submitted
	// descriptors, validating them against cfg. Registration-time errors
	// (duplicate versions, reserved parameters, malformed tokens) abort the
	// build.
	BuildRegistry(cfg Config, entries []Descriptor) (Registry, error)
	// BuildResolver constructs a Resolver over reg for cfg.
	BuildResolver(cfg Config, reg Registry) Resolver
}
