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

// Command filetool is a small demonstration binary: a pipeline module with a
// versioned operation history, runnable both programmatically and from the
// shell through the generated command surface.
package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"dirpx.dev/vcx"
	"dirpx.dev/vcx/apis"
	"dirpx.dev/vcx/cli"
)

// fileConfig is the optional TOML configuration for the binary.
type fileConfig struct {
	// DefaultVersion pins the namespace version at startup.
	DefaultVersion string `toml:"default_version"`
	// DisplayVersion is the human-facing release tag.
	DisplayVersion string `toml:"display_version"`
	// LogLevel is a logrus level name ("info", "debug", ...).
	LogLevel string `toml:"log_level"`
}

// loadConfig reads filetool.toml when present; absence is not an error.
func loadConfig(path string) (fileConfig, error) {
	var cfg fileConfig
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg, nil
}

var log = logrus.New()

func main() {
	cfg, err := loadConfig("filetool.toml")
	if err != nil {
		log.WithError(err).Fatal("loading config")
	}
	if cfg.LogLevel != "" {
		lvl, err := logrus.ParseLevel(cfg.LogLevel)
		if err != nil {
			log.WithError(err).Fatal("parsing log level")
		}
		log.SetLevel(lvl)
	}

	var opts []vcx.RegisterOption
	if cfg.DefaultVersion != "" {
		opts = append(opts, vcx.WithVersion(cfg.DefaultVersion))
	}
	if cfg.DisplayVersion != "" {
		opts = append(opts, vcx.WithDisplayVersion(cfg.DisplayVersion))
	}

	ns, err := vcx.Register("filetool", entries(), opts...)
	if err != nil {
		log.WithError(err).Fatal("registering namespace")
	}

	root, err := cli.New(ns)
	if err != nil {
		log.WithError(err).Fatal("building command tree")
	}
	root.AddCommand(manualCmd(ns))

	if err := root.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

// manualCmd prints the generated tool manual.
func manualCmd(ns *vcx.Namespace) *cobra.Command {
	var atVersion string
	cmd := &cobra.Command{
		Use:   "manual",
		Short: "print the tool manual",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), cli.Manual(ns, atVersion))
		},
	}
	cmd.Flags().StringVar(&atVersion, "at", "", "generate the manual as of this version")
	return cmd
}

// entries declares the versioned operation history of the module.
func entries() []apis.Descriptor {
	return []apis.Descriptor{
		{
			Name:    "some_method",
			Version: "20200601",
			Doc:     "First cut; takes three values.",
			Params: []apis.Param{
				{Name: "a", Required: true},
				{Name: "b", Required: true},
				{Name: "c", Required: true},
			},
			Impl: func(args apis.Args) (any, error) {
				log.WithFields(logrus.Fields{
					"a": args["a"], "b": args["b"], "c": args["c"],
				}).Info("some_method 20200601")
				return nil, nil
			},
		},
		{
			Name:    "some_method",
			Version: "20200721",
			Doc:     "Adds the d value.",
			Params: []apis.Param{
				{Name: "a", Required: true},
				{Name: "b", Required: true},
				{Name: "c", Required: true},
				{Name: "d", Required: true},
			},
			Impl: func(args apis.Args) (any, error) {
				log.WithFields(logrus.Fields{
					"a": args["a"], "b": args["b"], "c": args["c"], "d": args["d"],
				}).Info("some_method 20200721")
				return nil, nil
			},
		},
		{
			Name:    "copy_file",
			Version: "20200701",
			Doc:     "Copy srcfile to dstfile.",
			Params: []apis.Param{
				{Name: "srcfile", Required: true, Type: apis.TypeString},
				{Name: "dstfile", Required: true, Type: apis.TypeString},
			},
			CLI: &apis.CLIMeta{
				Description: "File copy method",
				Help: map[string]string{
					"srcfile": "Input source file",
					"dstfile": "Output source file",
				},
			},
			Impl: func(args apis.Args) (any, error) {
				return nil, copyFile(args["srcfile"].(string), args["dstfile"].(string), true)
			},
		},
		{
			Name:    "copy_file",
			Version: "20210315",
			Doc:     "Copy srcfile to dstfile; refuses to clobber unless asked.",
			Params: []apis.Param{
				{Name: "srcfile", Required: true, Type: apis.TypeString},
				{Name: "dstfile", Required: true, Type: apis.TypeString},
				{Name: "overwrite", Default: false, Type: apis.TypeBool},
			},
			CLI: &apis.CLIMeta{
				Description: "File copy method",
				Help: map[string]string{
					"srcfile":   "Input source file",
					"dstfile":   "Output source file",
					"overwrite": "Replace dstfile if it exists",
				},
			},
			Impl: func(args apis.Args) (any, error) {
				overwrite, _ := args["overwrite"].(bool)
				return nil, copyFile(args["srcfile"].(string), args["dstfile"].(string), overwrite)
			},
		},
		{
			Name:    "checksum",
			Version: "20210102",
			Doc:     "SHA-256 digest of a file.",
			Params: []apis.Param{
				{Name: "file", Required: true, Type: apis.TypeString},
			},
			CLI: &apis.CLIMeta{
				Description: "File checksum method",
				Help: map[string]string{
					"file":    "File to digest",
					"outfile": "Write the digest here instead of stdout",
				},
				Sink: &apis.Sink{
					Params: []apis.Param{
						{Name: "outfile", Type: apis.TypeString},
					},
					Run: func(result any, args apis.Args) error {
						digest := result.(string)
						out, _ := args["outfile"].(string)
						if out == "" {
							fmt.Println(digest)
							return nil
						}
						return os.WriteFile(out, []byte(digest+"\n"), 0o644)
					},
				},
			},
			Impl: func(args apis.Args) (any, error) {
				f, err := os.Open(args["file"].(string))
				if err != nil {
					return nil, err
				}
				defer f.Close()
				h := sha256.New()
				if _, err := io.Copy(h, f); err != nil {
					return nil, err
				}
				return hex.EncodeToString(h.Sum(nil)), nil
			},
		},
	}
}

// copyFile copies src to dst. When overwrite is false an existing dst is an
// error.
func copyFile(src, dst string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination %s already exists", dst)
		}
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
