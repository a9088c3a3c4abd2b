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

package resolver

import (
	"errors"
	"fmt"

	"dirpx.dev/vcx/apis"
)

var (
	// ErrUnknownOperation is returned when the base name is not registered.
	ErrUnknownOperation = errors.New("vcx(resolver): unknown operation")
	// ErrNoEligibleVersion is returned when every registered version of the
	// base name is newer than the requested one.
	ErrNoEligibleVersion = errors.New("vcx(resolver): no version at or below requested")
)

// New constructs an apis.Resolver over reg that tries the given strategies in
// order. Nil strategies are ignored. The returned resolver is read-only and
// safe for concurrent use.
func New(reg apis.Registry, strategies ...apis.Strategy) apis.Resolver {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{reg: reg, strats: out}
}

// chain is an immutable, order-preserving resolver over a set of strategies.
type chain struct {
	reg    apis.Registry
	strats []apis.Strategy
}

// Resolve selects the descriptor serving (name, version). Strategies run in
// order until one picks a token; the token is then looked up exactly.
func (r chain) Resolve(name, version string, cfg apis.Config) (apis.Descriptor, error) {
	versions := r.reg.Versions(name)
	if len(versions) == 0 {
		return apis.Descriptor{}, fmt.Errorf("%w: %s", ErrUnknownOperation, name)
	}
	for _, s := range r.strats {
		token, ok := s.TrySelect(versions, version, cfg)
		if !ok {
			continue
		}
		d, found := r.reg.Lookup(name, token)
		if !found {
			// Strategy returned a token outside the history; treat as
			// unhandled and keep trying.
			continue
		}
		return d, nil
	}
	return apis.Descriptor{}, fmt.Errorf(
		"%w: %s at version %s (first available is %s)",
		ErrNoEligibleVersion, name, version, versions[0],
	)
}
