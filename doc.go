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

// Package vcx provides a process-wide registry of versioned operations with
// deterministic version selection and a metadata-driven command surface.
//
// vcx lets an author keep several versions of the same logical operation
// registered under one stable public name, and lets a caller select, at
// runtime, exactly which version executes. Old versions are never deleted or
// mutated; "updating" an operation means registering a new descriptor under
// a newer version token. There is no guarantee that two versions behave the
// same; vcx only guarantees that a caller pinned to a version keeps getting
// the implementation that served that version.
//
// # Design
//
// A namespace is built once from a list of descriptors and is read-only
// afterwards, except for one mutable cell, the current version default.
// Four pieces cooperate:
//
//   - Registry: the per-namespace mapping from base name to its ordered
//     version history. Built by the registration call, immutable afterwards.
//     Duplicate (name, version) pairs and descriptors declaring the reserved
//     "version" parameter abort registration.
//
//   - Resolver: answers "which descriptor serves base name X at version V?".
//     The default resolver chains two strategies:
//     1. Exact: if V itself is registered, use it.
//     2. Floor: otherwise use the greatest registered version <= V.
//     If the whole history is newer than V, resolution fails. Resolution is
//     a pure function of the registry snapshot and its inputs.
//
//   - Dispatcher: the externally visible callable per base name. It strips
//     the reserved "version" argument (falling back to the namespace's
//     current version), resolves, and forwards the remaining arguments to
//     the selected implementation unmodified.
//
//   - Builder: a pluggable factory that constructs Registry and Resolver
//     instances for a given Config. Swapping the Builder replaces the
//     resolution policy process-wide for future registrations.
//
// The command surface lives in the cli subpackage: it derives a cobra
// subcommand tree and a Markdown manual from descriptors carrying CLI
// metadata, without ever executing an implementation.
//
// # Global API
//
// The package holds an atomic pointer to an immutable snapshot carrying the
// active Config, Builder, the process default version and the table of
// registered namespaces. Readers load the pointer and never lock:
//
//	ns, _ := vcx.Find("pipeline")
//	out, err := ns.Call("some_method", apis.Args{"a": 1, "version": "20200615"})
//
// Writers (Register, SetConfig, SetBuilder, SetDefaultVersion, Reset) take a
// short build mutex, assemble a brand-new snapshot and publish it atomically.
//
// # Concurrency model
//
// Registration is a one-time, single-threaded setup step per namespace; no
// dispatcher is exposed before it completes. Once published, registry,
// resolver and dispatchers are read-only, so calls may run concurrently
// without synchronization. The namespace's current version is the one piece
// of shared mutable state; it is guarded by an RWMutex so each call observes
// one consistent value for the duration of its resolution.
//
// No operation in this core blocks on I/O; any blocking belongs to the
// registered implementation bodies.
//
// # Usage pattern
//
// A typical author does:
//
//  1. Declare one apis.Descriptor per (base name, version), attaching
//     apis.CLIMeta to the operations that should be reachable from a shell.
//
//  2. Register them once at startup:
//
//     ns, err := vcx.Register("pipeline", entries,
//     vcx.WithVersion("20200801"))
//
//  3. Call operations through the namespace, optionally pinning versions:
//
//     ns.Call("copy_file", apis.Args{"srcfile": s, "dstfile": d})
//     ns.Call("some_method", apis.Args{"a": 1, "version": "20200615"})
//
//  4. Expose the shell surface:
//
//     root, err := cli.New(ns)
//     root.Execute()
//
//  5. In tests, call vcx.Reset() to get a clean deterministic snapshot.
//
// # Scope
//
// vcx is intentionally small. It is not a durable version-control system:
// it performs no diffing, keeps no history beyond what stays registered, and
// never inspects implementation bodies. Argument persistence, logging and
// process-argument parsing belong to the embedding binary.
package vcx
