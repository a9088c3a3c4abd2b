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

// Dispatcher is the externally visible callable for one base name. It owns
// the reserved VersionParam argument: the version key is stripped from the
// call, fed to the Resolver, and everything else is forwarded to the selected
// implementation unmodified.
//
// Dispatchers only read the registry; concurrent calls are safe.
type Dispatcher interface {
	// Name returns the base name this dispatcher serves.
	Name() string
	// Call resolves the effective version and invokes the selected
	// implementation with the remaining arguments. args may be nil.
	Call(args Args) (any, error)
}

// VersionSource supplies the effective version for calls that do not carry
// an explicit VersionParam argument. A Namespace implements it with its
// mutable current-version default.
type VersionSource interface {
	// Version returns the current default version token.
	Version() string
}
