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

// Strategy is a pluggable version-selection step. A Resolver chains multiple
// strategies in order (e.g., Exact -> Floor) and stops at the first one that
// handles the request.
type Strategy interface {
	// TrySelect attempts to pick one token from versions (sorted ascending)
	// for the requested version. It returns (token, true) if handled;
	// otherwise ("", false) to fall through to the next strategy.
	TrySelect(versions []string, requested string, cfg Config) (token string, handled bool)
}
