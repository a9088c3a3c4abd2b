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

package cli

import (
	"fmt"
	"strings"

	"dirpx.dev/vcx"
	"dirpx.dev/vcx/apis"
)

// Manual generates the Markdown manual of a namespace's documented tools.
// Each tool appears at its latest documented version at or below the given
// version; an empty version means the namespace's current version. Tools
// whose whole documented history is newer are omitted.
//
// The output shape, per tool: a heading with the base name, a version line,
// the description, and one bullet per parameter in declared order.
func Manual(ns *vcx.Namespace, version string) string {
	if ns == nil {
		return ""
	}
	cfg := ns.Config()
	if version == "" {
		version = ns.Version()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n", cfg.ManualHeading)
	for _, desc := range documented(ns, version) {
		fmt.Fprintf(&b, "### %s\n", desc.Name)
		fmt.Fprintf(&b, "*version: %s*\n", desc.Version)
		fmt.Fprintf(&b, "%s\n", desc.CLI.Description)
		fmt.Fprintf(&b, "#### Parameters\n")
		for _, p := range desc.Params {
			b.WriteString(bullet(cfg, desc.CLI, p))
		}
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// bullet renders one parameter line: flag name, optionality, help text and
// declared default.
func bullet(cfg apis.Config, meta *apis.CLIMeta, p apis.Param) string {
	optional := ""
	if !p.Required {
		optional = "[optional] "
	}
	def := ""
	if p.Default != nil {
		def = fmt.Sprintf(" [default: %v]", p.Default)
	}
	return fmt.Sprintf("- **-%s**: %s%s%s\n", p.Name, optional, helpFor(cfg, meta, p.Name), def)
}
