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

package config

import (
	"dirpx.dev/vcx/apis"
)

const (
	// DefaultStrictTokens represents the default for StrictTokens.
	// Tokens are opaque orderable keys; digit-only enforcement is opt-in.
	DefaultStrictTokens = false
	// DefaultHelpPlaceholder represents the default for HelpPlaceholder.
	// A bare underscore marks parameters that carry no help text.
	DefaultHelpPlaceholder = "_"
	// DefaultManualHeading represents the default for ManualHeading.
	DefaultManualHeading = "All tools"
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure the placeholder is usable.
	if cfg.HelpPlaceholder == "" {
		cfg.HelpPlaceholder = DefaultHelpPlaceholder
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		StrictTokens:    DefaultStrictTokens,
		HelpPlaceholder: DefaultHelpPlaceholder,
		ManualHeading:   DefaultManualHeading,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithStrictTokens sets the StrictTokens option.
func WithStrictTokens(strict bool) Option {
	return func(c *apis.Config) {
		c.StrictTokens = strict
	}
}

// WithHelpPlaceholder sets the HelpPlaceholder option.
// An empty value resets to the default.
func WithHelpPlaceholder(placeholder string) Option {
	return func(c *apis.Config) {
		if placeholder == "" {
			c.HelpPlaceholder = DefaultHelpPlaceholder
			return
		}
		c.HelpPlaceholder = placeholder
	}
}

// WithManualHeading sets the ManualHeading option.
func WithManualHeading(heading string) Option {
	return func(c *apis.Config) {
		c.ManualHeading = heading
	}
}
