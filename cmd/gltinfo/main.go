// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gltinfo opens a hidden window and reports on its GL context.
// It can also check the shading language version and that a pair of
// shader files compile and link.
package main

import (
	"os"

	"cogentcore.org/glt/base/logx"
	"cogentcore.org/glt/config"
	"cogentcore.org/glt/internal/report"
	"cogentcore.org/glt/window"
	"github.com/spf13/cobra"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var (
		cfgPath    string
		saveConfig string
		vv, v, q   bool
		opts       report.Options
	)
	cmd := &cobra.Command{
		Use:          "gltinfo",
		Short:        "Report on the OpenGL context of this machine",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logx.UserLevel = logx.LevelFromFlags(vv, v, q)
			logx.SetDefaultLogger()

			cfg := config.Defaults()
			if cfgPath != "" {
				var err error
				if cfg, err = config.Open(cfgPath); err != nil {
					return err
				}
			}
			if saveConfig != "" {
				if err := config.Save(saveConfig, cfg); err != nil {
					return err
				}
			}
			cfg.Visible = false

			w, err := window.New(cfg)
			if err != nil {
				return err
			}
			defer w.Destroy()
			return report.Run(w.Context(), opts, cmd.OutOrStdout())
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfgPath, "config", "c", "", "window configuration file (.toml or .yaml)")
	f.StringVar(&saveConfig, "save-config", "", "write the effective configuration to this file")
	f.BoolVar(&vv, "vv", false, "show debug messages")
	f.BoolVarP(&v, "verbose", "v", false, "show info messages")
	f.BoolVarP(&q, "quiet", "q", false, "only show errors")
	f.StringVar(&opts.RequireGLSL, "require-glsl", "", `GLSL version constraint, for example ">= 4.10"`)
	f.StringVar(&opts.Vert, "vert", "", "vertex shader file to compile")
	f.StringVar(&opts.Frag, "frag", "", "fragment shader file to compile")
	return cmd
}
