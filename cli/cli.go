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

// Package cli derives a command surface from descriptor metadata: one
// subcommand per documented base name, flags generated from the parameter
// list, plus a Markdown manual. Building the surface is pure metadata
// traversal; no implementation runs until a subcommand is invoked.
package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"dirpx.dev/vcx"
	"dirpx.dev/vcx/apis"
	uver "dirpx.dev/vcx/utils/version"
)

var (
	// ErrNilNamespace is returned when no namespace is provided.
	ErrNilNamespace = errors.New("vcx(cli): nil namespace")
	// ErrBadDefault indicates a parameter default that does not match the
	// parameter's type hint.
	ErrBadDefault = errors.New("vcx(cli): default value does not match type hint")
)

// Option customizes command-tree construction.
type Option func(*buildOpts)

// buildOpts collects build-time settings.
type buildOpts struct {
	version string
}

// WithVersion pins the command tree to a specific version instead of the
// namespace's current version at build time.
func WithVersion(version string) Option {
	return func(o *buildOpts) {
		o.version = version
	}
}

// New builds the command tree for a namespace: the root command is named
// after the namespace and carries one subcommand per base name that has at
// least one descriptor with CLI metadata.
//
// Each subcommand is pinned to the latest documented version at or below the
// build version; invoking it performs exactly one dispatcher call with the
// reserved version argument fixed to that pinned token. The root's
// persistent -v flag overrides the dispatch version for a single run.
func New(ns *vcx.Namespace, opts ...Option) (*cobra.Command, error) {
	if ns == nil {
		return nil, ErrNilNamespace
	}
	var bo buildOpts
	for _, opt := range opts {
		opt(&bo)
	}
	buildVersion := bo.version
	if buildVersion == "" {
		buildVersion = ns.Version()
	}

	short := ""
	if dv := ns.DisplayVersion(); dv != "" {
		short = "version-" + dv
	}
	root := &cobra.Command{
		Use:           ns.Name(),
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// Shared across subcommands; parsed before any RunE fires.
	var runVersion string
	root.PersistentFlags().StringVarP(&runVersion, "version", "v", "",
		"override the dispatch version for this run")

	for _, tool := range documented(ns, buildVersion) {
		sub, err := subcommand(ns, tool, &runVersion)
		if err != nil {
			return nil, err
		}
		root.AddCommand(sub)
	}
	return root, nil
}

// documented returns, per base name, the descriptor of the latest
// CLI-documented version at or below buildVersion. Base names without
// eligible documented versions are excluded; this never fails.
func documented(ns *vcx.Namespace, buildVersion string) []apis.Descriptor {
	reg := ns.Registry()
	var out []apis.Descriptor
	for _, name := range reg.Names() {
		var tokens []string
		for _, v := range reg.Versions(name) {
			if d, ok := reg.Lookup(name, v); ok && d.CLI != nil {
				tokens = append(tokens, v)
			}
		}
		token, ok := uver.Floor(tokens, buildVersion)
		if !ok {
			continue
		}
		d, _ := reg.Lookup(name, token)
		out = append(out, d)
	}
	return out
}

// subcommand builds one cobra command pinned to desc's version.
func subcommand(ns *vcx.Namespace, desc apis.Descriptor, runVersion *string) (*cobra.Command, error) {
	meta := desc.CLI
	cmd := &cobra.Command{
		Use:   desc.Name,
		Short: "version-" + desc.Version,
		Long:  meta.Description,
	}
	cfg := ns.Config()

	for _, p := range desc.Params {
		if err := addFlag(cmd.Flags(), p, helpFor(cfg, meta, p.Name)); err != nil {
			return nil, fmt.Errorf("%s@%s: %w", desc.Name, desc.Version, err)
		}
		if p.Required {
			_ = cmd.MarkFlagRequired(p.Name)
		}
	}
	var sinkParams []apis.Param
	if meta.Sink != nil {
		sinkParams = meta.Sink.Params
		for _, p := range sinkParams {
			if err := addFlag(cmd.Flags(), p, helpFor(cfg, meta, p.Name)); err != nil {
				return nil, fmt.Errorf("%s@%s (sink): %w", desc.Name, desc.Version, err)
			}
			if p.Required {
				_ = cmd.MarkFlagRequired(p.Name)
			}
		}
	}

	pinned := desc.Version
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		args, err := argsFrom(cmd.Flags(), desc.Params)
		if err != nil {
			return err
		}
		args[apis.VersionParam] = pinned
		if *runVersion != "" {
			args[apis.VersionParam] = *runVersion
		}
		result, err := ns.Call(desc.Name, args)
		if err != nil {
			return err
		}
		if meta.Sink == nil {
			return nil
		}
		sinkArgs, err := argsFrom(cmd.Flags(), sinkParams)
		if err != nil {
			return err
		}
		return meta.Sink.Run(result, sinkArgs)
	}
	return cmd, nil
}

// helpFor returns the help text for a parameter, falling back to the
// configured placeholder.
func helpFor(cfg apis.Config, meta *apis.CLIMeta, name string) string {
	if h, ok := meta.Help[name]; ok && h != "" {
		return h
	}
	return cfg.HelpPlaceholder
}

// addFlag registers one typed flag for a parameter. Declared defaults must
// match the type hint.
func addFlag(fs *pflag.FlagSet, p apis.Param, help string) error {
	switch p.Type {
	case apis.TypeInt:
		def := 0
		if p.Default != nil {
			v, ok := p.Default.(int)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.Int(p.Name, def, help)
	case apis.TypeFloat:
		def := 0.0
		if p.Default != nil {
			v, ok := p.Default.(float64)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.Float64(p.Name, def, help)
	case apis.TypeBool:
		def := false
		if p.Default != nil {
			v, ok := p.Default.(bool)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.Bool(p.Name, def, help)
	case apis.TypeDuration:
		var def time.Duration
		if p.Default != nil {
			v, ok := p.Default.(time.Duration)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.Duration(p.Name, def, help)
	case apis.TypeStringSlice:
		var def []string
		if p.Default != nil {
			v, ok := p.Default.([]string)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.StringSlice(p.Name, def, help)
	default: // apis.TypeString and unhinted parameters
		def := ""
		if p.Default != nil {
			v, ok := p.Default.(string)
			if !ok {
				return fmt.Errorf("%w: %s", ErrBadDefault, p.Name)
			}
			def = v
		}
		fs.String(p.Name, def, help)
	}
	return nil
}

// argsFrom collects the typed values of the given parameters from parsed
// flags. Untouched flags are omitted entirely: the dispatcher binds the
// selected version's own declared defaults, which keeps a -v override to an
// older version from dragging newer parameters along.
func argsFrom(fs *pflag.FlagSet, params []apis.Param) (apis.Args, error) {
	args := make(apis.Args, len(params))
	for _, p := range params {
		f := fs.Lookup(p.Name)
		if f == nil || !f.Changed {
			continue
		}
		var (
			v   any
			err error
		)
		switch p.Type {
		case apis.TypeInt:
			v, err = fs.GetInt(p.Name)
		case apis.TypeFloat:
			v, err = fs.GetFloat64(p.Name)
		case apis.TypeBool:
			v, err = fs.GetBool(p.Name)
		case apis.TypeDuration:
			v, err = fs.GetDuration(p.Name)
		case apis.TypeStringSlice:
			v, err = fs.GetStringSlice(p.Name)
		default:
			v, err = fs.GetString(p.Name)
		}
		if err != nil {
			return nil, err
		}
		args[p.Name] = v
	}
	return args, nil
}
