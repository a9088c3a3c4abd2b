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

package apis

// VersionParam is the reserved argument name used to select a version at
// call time. It is owned by the Dispatcher and must never appear in a
// Descriptor's parameter list.
const VersionParam = "version"

// Args carries the named arguments of one call. The Dispatcher strips the
// reserved VersionParam key before forwarding; everything else is passed to
// the implementation unmodified.
type Args map[string]any

// Impl is the callable body of one versioned implementation. The core never
// inspects its behavior; errors it returns are surfaced to the caller
// unchanged.
type Impl func(args Args) (any, error)

// TypeHint tells the command surface how to parse and coerce a parameter
// value from the command line. It has no effect on programmatic calls.
type TypeHint string

const (
	// TypeString is the default hint; values are taken verbatim.
	TypeString TypeHint = "string"
	// TypeInt coerces the flag value to int.
	TypeInt TypeHint = "int"
	// TypeFloat coerces the flag value to float64.
	TypeFloat TypeHint = "float"
	// TypeBool coerces the flag value to bool.
	TypeBool TypeHint = "bool"
	// TypeDuration coerces the flag value to time.Duration.
	TypeDuration TypeHint = "duration"
	// TypeStringSlice collects repeated flag values into []string.
	TypeStringSlice TypeHint = "strings"
)

// Param describes one declared parameter of a versioned implementation.
type Param struct {
	// Name is the parameter name. Must not equal VersionParam.
	Name string
	// Required reports whether a caller must supply a value.
	Required bool
	// Default is the value used when an optional parameter is omitted.
	Default any
	// Type is an optional hint for command-line coercion.
	Type TypeHint
}

// Sink is an optional post-processing routine for command-line invocations.
// Its parameters become additional flags on the subcommand; they are bound to
// the sink, never forwarded to the implementation. Run receives the
// implementation's result together with the sink's own arguments.
type Sink struct {
	// Params are the sink-only parameters.
	Params []Param
	// Run consumes the call result.
	Run func(result any, args Args) error
}

// CLIMeta is the optional metadata that exposes a versioned implementation on
// the command surface. Descriptors without CLIMeta remain callable
// programmatically but are excluded from the command tree and the manual.
type CLIMeta struct {
	// Description is the subcommand/manual description.
	Description string
	// Help maps parameter names to help text. Missing entries fall back to
	// the configured placeholder.
	Help map[string]string
	// Sink, if set, post-processes the call result on the command line.
	Sink *Sink
}

// Descriptor is the immutable record of one versioned implementation.
// "Updating" a version means registering a new Descriptor under a different
// Version token, never mutating an existing one.
type Descriptor struct {
	// Name is the stable, version-independent base name. Unique together
	// with Version within a namespace.
	Name string
	// Version is an opaque, totally ordered token. Tokens compare in plain
	// byte order; date-like digit strings (e.g. "20200721") are the
	// conventional choice.
	Version string
	// Params is the declared parameter list, in declaration order.
	// Different versions of the same base name may differ arbitrarily.
	Params []Param
	// Doc is free documentation text attached at registration time.
	Doc string
	// CLI is the optional command-surface metadata.
	CLI *CLIMeta
	// Impl is the callable body.
	Impl Impl
}

// ParamNamed returns the declared parameter with the given name.
func (d Descriptor) ParamNamed(name string) (Param, bool) {
	for _, p := range d.Params {
		if p.Name == name {
			return p, true
		}
	}
	return Param{}, false
}
