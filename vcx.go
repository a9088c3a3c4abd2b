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

package vcx

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/builder"
	"dirpx.dev/vcx/config"
	uver "dirpx.dev/vcx/utils/version"
)

// init initializes the global process snapshot.
func init() {
	st.Store(
		&state{
			cfg:    config.DefaultConfig(),
			bld:    builder.New(),
			defver: uver.Today(),
			spaces: map[string]*Namespace{},
		},
	)
}

var (
	// ErrNamespaceExists is returned when registering a namespace under a
	// name that is already taken.
	ErrNamespaceExists = errors.New("vcx: namespace already registered")
	// ErrNilBuilder is returned when a nil builder would be installed.
	ErrNilBuilder = errors.New("vcx: nil builder")
)

// RegisterOption customizes one namespace registration.
type RegisterOption func(*regOpts)

// regOpts collects per-registration settings.
type regOpts struct {
	version        string
	displayVersion string
}

// WithVersion sets the namespace's initial current version. When omitted,
// the process default version applies.
func WithVersion(version string) RegisterOption {
	return func(o *regOpts) {
		o.version = version
	}
}

// WithDisplayVersion attaches a human-facing release tag to the namespace.
// It is shown on the command surface and has no effect on resolution.
func WithDisplayVersion(version string) RegisterOption {
	return func(o *regOpts) {
		o.displayVersion = version
	}
}

// Register builds a namespace from the given descriptors and publishes it
// process-wide. It is a one-time setup step: registration either completes
// fully or fails without exposing a partially built namespace.
//
// The registry and resolver are constructed by the currently installed
// Builder under the current Config; both are fixed for the lifetime of the
// namespace.
func Register(name string, entries []apis.Descriptor, opts ...RegisterOption) (*Namespace, error) {
	if name == "" {
		return nil, fmt.Errorf("vcx: empty namespace name")
	}
	var ro regOpts
	for _, opt := range opts {
		opt(&ro)
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if _, exists := old.spaces[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrNamespaceExists, name)
	}

	cur := ro.version
	if cur == "" {
		cur = old.defver
	}
	if err := uver.Validate(cur, old.cfg.StrictTokens); err != nil {
		return nil, fmt.Errorf("vcx: invalid initial version for %s: %w", name, err)
	}

	reg, err := old.bld.BuildRegistry(old.cfg, entries)
	if err != nil {
		return nil, fmt.Errorf("vcx: register %s: %w", name, err)
	}
	res := old.bld.BuildResolver(old.cfg, reg)

	ns := newNamespace(name, ro.displayVersion, old.cfg, reg, res, cur)

	// Publish a fresh snapshot; readers never observe the map mid-update.
	spaces := make(map[string]*Namespace, len(old.spaces)+1)
	for k, v := range old.spaces {
		spaces[k] = v
	}
	spaces[name] = ns
	st.Store(
		&state{
			cfg:    old.cfg,
			bld:    old.bld,
			defver: old.defver,
			spaces: spaces,
		},
	)
	return ns, nil
}

// Find returns a registered namespace by name.
func Find(name string) (*Namespace, bool) {
	ns, ok := st.Load().spaces[name]
	return ns, ok
}

// Names returns the names of all registered namespaces (order unspecified).
func Names() []string {
	spaces := st.Load().spaces
	out := make([]string, 0, len(spaces))
	for name := range spaces {
		out = append(out, name)
	}
	return out
}

// DefaultVersion returns the process-wide default version token applied to
// namespaces registered without an explicit initial version.
func DefaultVersion() string {
	return st.Load().defver
}

// SetDefaultVersion sets the process-wide default version token. It affects
// namespaces registered afterwards; already registered namespaces keep their
// own current version.
func SetDefaultVersion(version string) error {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	if err := uver.Validate(version, old.cfg.StrictTokens); err != nil {
		return err
	}
	st.Store(
		&state{
			cfg:    old.cfg,
			bld:    old.bld,
			defver: version,
			spaces: old.spaces,
		},
	)
	return nil
}

// Config returns the global vcx configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global vcx configuration. Registries are immutable once
// built, so the new configuration applies to future registrations only.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:    cfg,
			bld:    old.bld,
			defver: old.defver,
			spaces: old.spaces,
		},
	)
}

// Builder returns the global vcx builder.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder installs the builder used for future registrations.
func SetBuilder(b apis.Builder) error {
	if b == nil {
		return ErrNilBuilder
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	old := st.Load()
	st.Store(
		&state{
			cfg:    old.cfg,
			bld:    b,
			defver: old.defver,
			spaces: old.spaces,
		},
	)
	return nil
}

// Reset restores the initial process snapshot: default config, default
// builder, today's default version, no namespaces. Intended for tests.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()

	st.Store(
		&state{
			cfg:    config.DefaultConfig(),
			bld:    builder.New(),
			defver: uver.Today(),
			spaces: map[string]*Namespace{},
		},
	)
}

// buildMu serializes writers (registrations/reconfigurations) so we never
// publish partially-built snapshots.
var buildMu sync.Mutex

// st is the global vcx state.
var st atomic.Pointer[state]

// state is the global vcx state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the configuration applied to future registrations.
	cfg apis.Config
	// bld constructs registries and resolvers at registration time.
	bld apis.Builder
	// defver is the default initial version for new namespaces.
	defver string
	// spaces maps namespace name -> published namespace.
	spaces map[string]*Namespace
}
