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

package builder_test

import (
	"errors"
	"testing"

	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/builder"
	"dirpx.dev/vcx/config"
	"dirpx.dev/vcx/registry"
)

func noop(apis.Args) (any, error) { return nil, nil }

// TestBuildRegistry_Basic asserts that BuildRegistry returns a working,
// validated registry.
func TestBuildRegistry_Basic(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg, err := b.BuildRegistry(cfg, []apis.Descriptor{
		{Name: "m", Version: "20200601", Impl: noop},
		{Name: "m", Version: "20200721", Impl: noop},
	})
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	if reg == nil {
		t.Fatal("BuildRegistry returned nil")
	}
	if reg.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", reg.Count())
	}

	// Validation failures propagate unchanged.
	_, err = b.BuildRegistry(cfg, []apis.Descriptor{
		{Name: "m", Version: "20200601", Impl: noop},
		{Name: "m", Version: "20200601", Impl: noop},
	})
	if !errors.Is(err, registry.ErrDuplicateVersion) {
		t.Fatalf("expected ErrDuplicateVersion, got: %v", err)
	}
}

// TestBuildResolver_ExactThenFloor verifies the default strategy order:
// an exact version hit wins, otherwise the greatest version at or below the
// request serves, otherwise resolution fails.
func TestBuildResolver_ExactThenFloor(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	reg, err := b.BuildRegistry(cfg, []apis.Descriptor{
		{Name: "m", Version: "20200601", Impl: noop},
		{Name: "m", Version: "20200721", Impl: noop},
	})
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	res := b.BuildResolver(cfg, reg)
	if res == nil {
		t.Fatal("BuildResolver returned nil")
	}

	if d, err := res.Resolve("m", "20200721", cfg); err != nil || d.Version != "20200721" {
		t.Fatalf("exact: got (%s,%v), want 20200721", d.Version, err)
	}
	if d, err := res.Resolve("m", "20200801", cfg); err != nil || d.Version != "20200721" {
		t.Fatalf("floor: got (%s,%v), want 20200721", d.Version, err)
	}
	if _, err := res.Resolve("m", "20200501", cfg); err == nil {
		t.Fatal("request older than the history resolved")
	}
}
