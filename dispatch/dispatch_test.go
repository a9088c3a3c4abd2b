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

package dispatch_test

import (
	"errors"
	"sync"
	"testing"

	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/config"
	"dirpx.dev/vcx/dispatch"
	"dirpx.dev/vcx/registry"
	"dirpx.dev/vcx/resolver"
	"dirpx.dev/vcx/strategy"
)

// source is a test VersionSource with a settable current version.
type source struct {
	mu  sync.RWMutex
	cur string
}

func (s *source) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

func (s *source) set(v string) {
	s.mu.Lock()
	s.cur = v
	s.mu.Unlock()
}

var errBody = errors.New("body failed")

// newDispatcher wires a dispatcher over a two-version echo history.
// Both implementations return their own version token plus the forwarded
// args, so tests can observe exactly what was selected and passed.
func newDispatcher(t *testing.T, src apis.VersionSource) apis.Dispatcher {
	t.Helper()
	cfg := config.DefaultConfig()
	echo := func(version string) apis.Impl {
		return func(args apis.Args) (any, error) {
			return map[string]any{"version": version, "args": args}, nil
		}
	}
	reg, err := registry.New(cfg, []apis.Descriptor{
		{
			Name: "some_method", Version: "20200601", Impl: echo("20200601"),
			Params: []apis.Param{
				{Name: "a", Required: true},
				{Name: "b", Required: true},
				{Name: "c", Default: "fallback"},
			},
		},
		{
			Name: "some_method", Version: "20200721", Impl: echo("20200721"),
			Params: []apis.Param{
				{Name: "a", Required: true},
				{Name: "b", Required: true},
				{Name: "c", Required: true},
				{Name: "d", Required: true},
			},
		},
		{
			Name: "failing_method", Version: "20200601",
			Impl: func(apis.Args) (any, error) { return nil, errBody },
		},
	})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	res := resolver.New(reg, strategy.NewExactStrategy(), strategy.NewFloorStrategy())
	return dispatch.New("some_method", res, src, cfg)
}

// result unpacks the echo implementation's return value.
func result(t *testing.T, out any) (string, apis.Args) {
	t.Helper()
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result shape: %T", out)
	}
	return m["version"].(string), m["args"].(apis.Args)
}

func TestCall_ExplicitVersionStripped(t *testing.T) {
	src := &source{cur: "20200801"}
	d := newDispatcher(t, src)

	out, err := d.Call(apis.Args{"a": 1, "b": 2, "version": "20200615"})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	version, fwd := result(t, out)
	if version != "20200601" {
		t.Fatalf("selected %s, want 20200601", version)
	}
	// The reserved key never reaches the implementation.
	if _, ok := fwd[apis.VersionParam]; ok {
		t.Fatal("version argument leaked into the implementation")
	}
	if fwd["a"] != 1 || fwd["b"] != 2 {
		t.Fatalf("arguments not forwarded unmodified: %v", fwd)
	}
	// Declared default fills the omitted optional parameter.
	if fwd["c"] != "fallback" {
		t.Fatalf("default not applied: %v", fwd["c"])
	}
}

func TestCall_CurrentVersionDefault(t *testing.T) {
	src := &source{cur: "20200801"}
	d := newDispatcher(t, src)

	out, err := d.Call(apis.Args{"a": 1, "b": 2, "c": 3, "d": 4})
	if err != nil {
		t.Fatalf("Call: %v", err)
	}
	version, _ := result(t, out)
	if version != "20200721" {
		t.Fatalf("selected %s, want 20200721 (current 20200801)", version)
	}

	// Rolling the namespace default back changes selection on the next call.
	src.set("20200615")
	out, err = d.Call(apis.Args{"a": 1, "b": 2})
	if err != nil {
		t.Fatalf("Call after rollback: %v", err)
	}
	version, _ = result(t, out)
	if version != "20200601" {
		t.Fatalf("selected %s after rollback, want 20200601", version)
	}
}

func TestCall_ArgumentMismatch(t *testing.T) {
	src := &source{cur: "20200615"}
	d := newDispatcher(t, src)

	// Unknown argument for the selected version.
	_, err := d.Call(apis.Args{"a": 1, "b": 2, "nope": 3})
	if !errors.Is(err, dispatch.ErrArgumentMismatch) {
		t.Fatalf("unknown argument: expected ErrArgumentMismatch, got: %v", err)
	}

	// Missing required argument.
	_, err = d.Call(apis.Args{"a": 1})
	if !errors.Is(err, dispatch.ErrArgumentMismatch) {
		t.Fatalf("missing required: expected ErrArgumentMismatch, got: %v", err)
	}
}

func TestCall_BadVersionValue(t *testing.T) {
	src := &source{cur: "20200801"}
	d := newDispatcher(t, src)

	_, err := d.Call(apis.Args{"a": 1, "b": 2, "version": 20200615})
	if !errors.Is(err, dispatch.ErrBadVersionValue) {
		t.Fatalf("expected ErrBadVersionValue, got: %v", err)
	}
}

func TestCall_ResolutionErrorsPropagate(t *testing.T) {
	src := &source{cur: "20200501"}
	d := newDispatcher(t, src)

	_, err := d.Call(apis.Args{"a": 1, "b": 2})
	if !errors.Is(err, resolver.ErrNoEligibleVersion) {
		t.Fatalf("expected ErrNoEligibleVersion, got: %v", err)
	}
}

func TestCall_ImplementationErrorPassThrough(t *testing.T) {
	cfg := config.DefaultConfig()
	reg, err := registry.New(cfg, []apis.Descriptor{
		{
			Name: "failing_method", Version: "20200601",
			Impl: func(apis.Args) (any, error) { return nil, errBody },
		},
	})
	if err != nil {
		t.Fatalf("registry.New: %v", err)
	}
	res := resolver.New(reg, strategy.NewExactStrategy(), strategy.NewFloorStrategy())
	d := dispatch.New("failing_method", res, &source{cur: "20200801"}, cfg)

	_, err = d.Call(nil)
	if err != errBody {
		t.Fatalf("implementation error was not surfaced unchanged: %v", err)
	}
}
