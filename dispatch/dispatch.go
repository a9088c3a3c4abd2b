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

// Package dispatch implements the per-base-name callable that resolves a
// version and forwards the remaining arguments to the selected
// implementation.
package dispatch

import (
	"errors"
	"fmt"

	"dirpx.dev/vcx/apis"
)

var (
	// ErrArgumentMismatch indicates arguments the selected implementation's
	// parameter contract rejects: an unknown name or a missing required
	// value.
	ErrArgumentMismatch = errors.New("vcx(dispatch): argument mismatch")
	// ErrBadVersionValue indicates a non-string value under the reserved
	// "version" key.
	ErrBadVersionValue = errors.New("vcx(dispatch): version argument must be a string")
)

// New constructs an apis.Dispatcher for one base name. src supplies the
// effective version for calls without an explicit version argument.
func New(name string, res apis.Resolver, src apis.VersionSource, cfg apis.Config) apis.Dispatcher {
	return &dispatcher{name: name, res: res, src: src, cfg: cfg}
}

// dispatcher is a read-only callable: it never mutates the registry, so any
// number of calls may run concurrently.
type dispatcher struct {
	name string
	res  apis.Resolver
	src  apis.VersionSource
	cfg  apis.Config
}

// Ensure dispatcher implements apis.Dispatcher.
var _ apis.Dispatcher = (*dispatcher)(nil)

// Name returns the base name this dispatcher serves.
func (d *dispatcher) Name() string { return d.name }

// Call strips the reserved version key, resolves the effective version, and
// forwards everything else to the selected implementation. Implementation
// errors are surfaced unchanged.
func (d *dispatcher) Call(args apis.Args) (any, error) {
	version := ""
	if raw, ok := args[apis.VersionParam]; ok {
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s (%T)", ErrBadVersionValue, d.name, raw)
		}
		version = s
	}
	if version == "" {
		version = d.src.Version()
	}

	desc, err := d.res.Resolve(d.name, version, d.cfg)
	if err != nil {
		return nil, err
	}

	fwd, err := bind(desc, args)
	if err != nil {
		return nil, err
	}
	return desc.Impl(fwd)
}

// bind checks args against the descriptor's parameter contract and fills in
// declared defaults. The reserved version key is dropped; everything else
// must match a declared parameter by name.
func bind(desc apis.Descriptor, args apis.Args) (apis.Args, error) {
	fwd := make(apis.Args, len(desc.Params))
	for name, value := range args {
		if name == apis.VersionParam {
			continue
		}
		if _, ok := desc.ParamNamed(name); !ok {
			return nil, fmt.Errorf("%w: %s@%s: unknown argument %q",
				ErrArgumentMismatch, desc.Name, desc.Version, name)
		}
		fwd[name] = value
	}
	for _, p := range desc.Params {
		if _, ok := fwd[p.Name]; ok {
			continue
		}
		if p.Required {
			return nil, fmt.Errorf("%w: %s@%s: missing required argument %q",
				ErrArgumentMismatch, desc.Name, desc.Version, p.Name)
		}
		if p.Default != nil {
			fwd[p.Name] = p.Default
		}
	}
	return fwd, nil
}
