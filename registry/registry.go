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

package registry

import (
	"errors"
	"fmt"
	"sort"

	"dirpx.dev/vcx/apis"
	uver "dirpx.dev/vcx/utils/version"
)

var (
	// ErrEmptyName is returned when a descriptor has an empty base name.
	ErrEmptyName = errors.New("vcx(registry): empty base name")
	// ErrNilImpl is returned when a descriptor has no implementation.
	ErrNilImpl = errors.New("vcx(registry): nil implementation")
	// ErrBadVersion is returned when a descriptor carries a malformed
	// version token.
	ErrBadVersion = errors.New("vcx(registry): malformed version token")
	// ErrDuplicateVersion indicates two descriptors sharing (name, version).
	ErrDuplicateVersion = errors.New("vcx(registry): duplicate (name, version)")
	// ErrReservedParameter indicates a descriptor declaring the reserved
	// "version" parameter, which is owned by the dispatcher.
	ErrReservedParameter = errors.New("vcx(registry): reserved parameter declared")
)

// New constructs an immutable Registry from the given descriptors.
// Entries are grouped by base name and sorted by version ascending.
// Any validation failure aborts the build; no partial registry is returned.
func New(cfg apis.Config, entries []apis.Descriptor) (apis.Registry, error) {
	r := &registry{
		byName: make(map[string]*history, len(entries)),
	}
	for _, d := range entries {
		if err := validate(cfg, d); err != nil {
			return nil, err
		}
		h, ok := r.byName[d.Name]
		if !ok {
			h = &history{byVersion: make(map[string]apis.Descriptor)}
			r.byName[d.Name] = h
			r.names = append(r.names, d.Name)
		}
		if _, dup := h.byVersion[d.Version]; dup {
			return nil, fmt.Errorf("%w: %s@%s", ErrDuplicateVersion, d.Name, d.Version)
		}
		h.byVersion[d.Version] = d
		h.versions = append(h.versions, d.Version)
		r.count++
	}
	sort.Strings(r.names)
	for _, h := range r.byName {
		sort.Strings(h.versions)
	}
	return r, nil
}

// validate checks one descriptor against registration-time invariants.
func validate(cfg apis.Config, d apis.Descriptor) error {
	if d.Name == "" {
		return ErrEmptyName
	}
	if d.Impl == nil {
		return fmt.Errorf("%w: %s@%s", ErrNilImpl, d.Name, d.Version)
	}
	if err := uver.Validate(d.Version, cfg.StrictTokens); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadVersion, d.Name, err)
	}
	for _, p := range d.Params {
		if p.Name == apis.VersionParam {
			return fmt.Errorf("%w: %s@%s", ErrReservedParameter, d.Name, d.Version)
		}
	}
	return nil
}

// history is the ordered version set of one base name.
type history struct {
	// versions holds tokens sorted ascending.
	versions []string
	// byVersion maps token -> descriptor.
	byVersion map[string]apis.Descriptor
}

// registry is an immutable Registry implementation. All fields are fixed at
// construction time, so reads need no synchronization.
type registry struct {
	// names holds base names sorted ascending.
	names []string
	// byName maps base name -> version history.
	byName map[string]*history
	// count is the total number of descriptors.
	count int
}

// Names returns all registered base names in ascending order.
func (r *registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

// Versions returns the sorted version tokens registered under name.
func (r *registry) Versions(name string) []string {
	h, ok := r.byName[name]
	if !ok {
		return nil
	}
	return h.versions
}

// Lookup returns the descriptor for an exact (name, version) pair.
func (r *registry) Lookup(name, version string) (apis.Descriptor, bool) {
	h, ok := r.byName[name]
	if !ok {
		return apis.Descriptor{}, false
	}
	d, ok := h.byVersion[version]
	return d, ok
}

// Entries returns a snapshot of all descriptors, ordered by name then version.
func (r *registry) Entries() []apis.Descriptor {
	out := make([]apis.Descriptor, 0, r.count)
	for _, name := range r.names {
		h := r.byName[name]
		for _, v := range h.versions {
			out = append(out, h.byVersion[v])
		}
	}
	return out
}

// Count returns the total number of registered descriptors.
func (r *registry) Count() int {
	return r.count
}
