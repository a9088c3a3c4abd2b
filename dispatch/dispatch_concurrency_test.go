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
	"runtime"
	"sync"
	"testing"

	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/dispatch"
)

// TestConcurrentCalls verifies that dispatch is race-free while a writer
// keeps flipping the namespace default version: every call must land on one
// of the two registered versions, with arguments intact.
func TestConcurrentCalls(t *testing.T) {
	src := &source{cur: "20200801"}
	d := newDispatcher(t, src)

	wg := sync.WaitGroup{}
	workers := runtime.GOMAXPROCS(0) * 4

	// Readers: explicit-version calls must be fully deterministic.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				out, err := d.Call(apis.Args{"a": 1, "b": 2, "version": "20200615"})
				if err != nil {
					t.Errorf("pinned call failed: %v", err)
					return
				}
				version, _ := result(t, out)
				if version != "20200601" {
					t.Errorf("pinned call landed on %s, want 20200601", version)
					return
				}
			}
		}()
	}

	// Readers: default-version calls with the four-parameter shape either
	// land on the newer version or, when the writer has rolled the default
	// back, fail the older version's parameter contract. Nothing else is
	// acceptable.
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 2000; i++ {
				out, err := d.Call(apis.Args{"a": 1, "b": 2, "c": 3, "d": 4})
				if err != nil {
					if !errors.Is(err, dispatch.ErrArgumentMismatch) {
						t.Errorf("default call failed unexpectedly: %v", err)
						return
					}
					continue
				}
				version, fwd := result(t, out)
				if version != "20200721" {
					t.Errorf("default call landed on %q, want 20200721", version)
					return
				}
				if fwd["a"] != 1 || fwd["b"] != 2 {
					t.Errorf("arguments corrupted: %v", fwd)
					return
				}
			}
		}()
	}

	// Writer: flip the default version back and forth.
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 4000; i++ {
			if i%2 == 0 {
				src.set("20200615")
			} else {
				src.set("20200801")
			}
		}
	}()

	wg.Wait()
}
