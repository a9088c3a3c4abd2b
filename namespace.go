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
	"fmt"
	"sync"

	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/dispatch"
	"dirpx.dev/vcx/resolver"
	uver "dirpx.dev/vcx/utils/version"
)

// Namespace is a published collection of base names, each backed by one or
// more descriptors, plus a mutable current-version default.
//
// Everything except the current version is fixed at registration time:
// registry, resolver and dispatchers are read-only and safe for concurrent
// calls. The current version follows a shared-read/exclusive-write
// discipline; each call observes one consistent value for the duration of
// its resolution.
type Namespace struct {
	name           string
	displayVersion string
	cfg            apis.Config
	reg            apis.Registry
	res            apis.Resolver
	dispatchers    map[string]apis.Dispatcher

	mu  sync.RWMutex
	cur string
}

// newNamespace wires one dispatcher per base name. Called under the global
// build lock before the namespace is published.
func newNamespace(name, displayVersion string, cfg apis.Config, reg apis.Registry, res apis.Resolver, cur string) *Namespace {
	ns := &Namespace{
		name:           name,
		displayVersion: displayVersion,
		cfg:            cfg,
		reg:            reg,
		res:            res,
		cur:            cur,
	}
	names := reg.Names()
	ns.dispatchers = make(map[string]apis.Dispatcher, len(names))
	for _, base := range names {
		ns.dispatchers[base] = dispatch.New(base, res, ns, cfg)
	}
	return ns
}

// Name returns the namespace name.
func (ns *Namespace) Name() string { return ns.name }

// DisplayVersion returns the human-facing release tag, or "" when unset.
func (ns *Namespace) DisplayVersion() string { return ns.displayVersion }

// Registry returns the namespace's immutable registry.
func (ns *Namespace) Registry() apis.Registry { return ns.reg }

// Resolver returns the namespace's resolver.
func (ns *Namespace) Resolver() apis.Resolver { return ns.res }

// Config returns the configuration the namespace was registered under.
func (ns *Namespace) Config() apis.Config { return ns.cfg }

// Version returns the current default version token.
func (ns *Namespace) Version() string {
	ns.mu.RLock()
	defer ns.mu.RUnlock()
	return ns.cur
}

// SetVersion sets the current default version token. Calls without an
// explicit version argument resolve against this value.
func (ns *Namespace) SetVersion(version string) error {
	if err := uver.Validate(version, ns.cfg.StrictTokens); err != nil {
		return err
	}
	ns.mu.Lock()
	ns.cur = version
	ns.mu.Unlock()
	return nil
}

// Dispatcher returns the dispatcher installed for a base name.
func (ns *Namespace) Dispatcher(base string) (apis.Dispatcher, bool) {
	d, ok := ns.dispatchers[base]
	return d, ok
}

// Call invokes the dispatcher for base with args. args may carry the
// reserved "version" key to pin a specific version for this call.
func (ns *Namespace) Call(base string, args apis.Args) (any, error) {
	d, ok := ns.dispatchers[base]
	if !ok {
		return nil, fmt.Errorf("%w: %s", resolver.ErrUnknownOperation, base)
	}
	return d.Call(args)
}
