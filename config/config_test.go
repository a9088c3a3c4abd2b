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

package config_test

import (
	"testing"

	"dirpx.dev/vcx/config"
)

func TestDefaultConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	if cfg.StrictTokens != config.DefaultStrictTokens {
		t.Fatalf("StrictTokens = %v, want %v", cfg.StrictTokens, config.DefaultStrictTokens)
	}
	if cfg.HelpPlaceholder != config.DefaultHelpPlaceholder {
		t.Fatalf("HelpPlaceholder = %q, want %q", cfg.HelpPlaceholder, config.DefaultHelpPlaceholder)
	}
	if cfg.ManualHeading != config.DefaultManualHeading {
		t.Fatalf("ManualHeading = %q, want %q", cfg.ManualHeading, config.DefaultManualHeading)
	}
}

func TestNewConfig_Options(t *testing.T) {
	cfg := config.NewConfig(
		config.WithStrictTokens(true),
		config.WithHelpPlaceholder("n/a"),
		config.WithManualHeading("Tools"),
	)
	if !cfg.StrictTokens {
		t.Fatal("WithStrictTokens(true) not applied")
	}
	if cfg.HelpPlaceholder != "n/a" {
		t.Fatalf("HelpPlaceholder = %q, want n/a", cfg.HelpPlaceholder)
	}
	if cfg.ManualHeading != "Tools" {
		t.Fatalf("ManualHeading = %q, want Tools", cfg.ManualHeading)
	}
}

func TestNewConfig_EmptyPlaceholderResets(t *testing.T) {
	cfg := config.NewConfig(config.WithHelpPlaceholder(""))
	if cfg.HelpPlaceholder != config.DefaultHelpPlaceholder {
		t.Fatalf("HelpPlaceholder = %q, want default %q",
			cfg.HelpPlaceholder, config.DefaultHelpPlaceholder)
	}
}
