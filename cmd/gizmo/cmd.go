// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cogentcore.org/gizmo/base/errors"
	"cogentcore.org/gizmo/config"
	"cogentcore.org/gizmo/logx"
	"cogentcore.org/gizmo/math32"
	"cogentcore.org/gizmo/scene"
	"cogentcore.org/gizmo/session"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	config   string
	logLevel string
	dump     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "gizmo",
		Short:        "Replay manipulation widget drag scripts",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "settings file (.toml, .yaml or .yml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.AddCommand(newReplayCmd(opts), newWatchCmd(opts), newConfigCmd(opts))
	return root
}

// settings returns the settings from the config flag, or the defaults,
// and sets the log level.
func (o *options) settings() (*config.Settings, error) {
	s := config.NewSettings()
	if o.config != "" {
		var err error
		if s, err = config.Open(o.config); err != nil {
			return nil, err
		}
	}
	level := s.LogLevel
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err := logx.SetLevel(level); err != nil {
		return nil, err
	}
	return s, nil
}

func newReplayCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <script>",
		Short: "Replay a drag script and print the resulting poses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}
			sc, err := session.OpenScript(args[0])
			if err != nil {
				return err
			}
			return replay(cmd.OutOrStdout(), session.New(s), sc, opts.dump)
		},
	}
	cmd.Flags().BoolVar(&opts.dump, "dump", false, "dump the selected node and widget in detail")
	return cmd
}

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <script>",
		Short: "Replay a drag script every time the settings file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.config == "" {
				return fmt.Errorf("watch needs a --config settings file")
			}
			s, err := opts.settings()
			if err != nil {
				return err
			}
			sc, err := session.OpenScript(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			ss := session.New(s)
			if err := replay(out, ss, sc, false); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			err = config.Watch(ctx, opts.config, func(ns *config.Settings, err error) {
				if errors.Log(err) != nil {
					return
				}
				if errors.Log(ss.ApplySettings(ns)) != nil {
					return
				}
				errors.Log(logx.SetLevel(ns.LogLevel))
				logx.PrintlnInfo("settings changed, replaying", args[0])
				ss.Reset()
				errors.Log(replay(out, ss, sc, false))
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
}

func newConfigCmd(opts *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the settings in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.settings()
			if err != nil {
				return err
			}
			f := config.TOML
			switch format {
			case "toml":
			case "yaml", "yml":
				f = config.YAML
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			b, err := s.Write(f)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	return cmd
}

// replay builds the scene of the script, replays it, and prints the
// poses of all the objects.
func replay(w io.Writer, ss *session.Session, sc *session.Script, dump bool) error {
	root, err := sc.Scene()
	if err != nil {
		return err
	}
	if err := ss.Replay(sc, root); err != nil {
		return err
	}
	printPoses(w, root)
	if dump {
		cfg := spew.ConfigState{Indent: "  ", DisableMethods: true, DisablePointerAddresses: true, MaxDepth: 3}
		fmt.Fprintf(w, "selection: %s\n", ss.Selection().Path())
		cfg.Fdump(w, ss.Selection().Transform())
		fmt.Fprintf(w, "widget: %s, handle: %v\n", ss.Mode(), ss.Active().SelectedHandle())
		cfg.Fdump(w, ss.Active().RootNode().Transform())
		bb := ss.Active().RootNode().Bounds()
		fmt.Fprintf(w, "widget bounds: %v - %v\n", bb.Min, bb.Max)
	}
	return nil
}

// printPoses prints the translation and rotation of every node under
// root, one per line.
func printPoses(w io.Writer, root *scene.Node) {
	root.WalkDown(func(n *scene.Node) bool {
		if n == root {
			return scene.Continue
		}
		tr := n.Transform()
		t := tr.Translation()
		x, y, z, err := tr.EulerAngles()
		if err != nil {
			fmt.Fprintf(w, "%s\tpos %.4g %.4g %.4g\trot (%v)\n", n.Path(), t.X, t.Y, t.Z, err)
			return scene.Continue
		}
		fmt.Fprintf(w, "%s\tpos %.4g %.4g %.4g\trot %.4g %.4g %.4g\n", n.Path(), t.X+0, t.Y+0, t.Z+0,
			deg(x), deg(y), deg(z))
		return scene.Continue
	})
}

// deg converts radians to degrees for printing; adding 0 turns -0 into 0.
func deg(rad float32) float32 {
	return math32.RadToDeg(rad) + 0
}
