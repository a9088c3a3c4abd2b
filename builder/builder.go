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

package builder

import (
	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/registry"
	"dirpx.dev/vcx/resolver"
	"dirpx.dev/vcx/strategy"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildRegistry builds and returns a new apis.Registry from the submitted
// descriptors, validating them against the provided configuration.
func (b *builder) BuildRegistry(cfg apis.Config, entries []apis.Descriptor) (apis.Registry, error) {
	return registry.New(cfg, entries)
}

// BuildResolver builds and returns a new apis.Resolver over the provided
// registry. The default chain tries an exact version hit first, then falls
// back to the greatest registered version at or below the request.
func (b *builder) BuildResolver(cfg apis.Config, reg apis.Registry) apis.Resolver {
	return resolver.New(
		reg,
		strategy.NewExactStrategy(),
		strategy.NewFloorStrategy(),
	)
}
