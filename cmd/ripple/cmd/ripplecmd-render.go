// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/ripple/demo"
	"github.com/wavetermdev/ripple/engine"
	"github.com/wavetermdev/ripple/host/memhost"
	"github.com/wavetermdev/ripple/host/termhost"
	"github.com/wavetermdev/ripple/vdom"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "render a markup file and print the host tree",
	Long: `Binds FILE (html-like markup, <bindparam key="..."/> and #param:name values are
filled from --param) and renders it in slices of --budget, printing the resulting
host tree and render stats.  Capitalized tags resolve to the demo components.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var renderBudget time.Duration
var renderParams []string
var renderTerm bool

func init() {
	renderCmd.Flags().DurationVar(&renderBudget, "budget", 0, "time budget per slice (0 runs one unit of work per slice)")
	renderCmd.Flags().StringArrayVarP(&renderParams, "param", "p", nil, "bind parameter as key=value (repeatable)")
	renderCmd.Flags().BoolVar(&renderTerm, "term", false, "draw the result as the terminal host would")
	rootCmd.AddCommand(renderCmd)
}

func parseParams(pairs []string) (map[string]any, error) {
	params := make(map[string]any)
	for _, pair := range pairs {
		key, val, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --param %q (expected key=value)", pair)
		}
		params[key] = val
	}
	return params, nil
}

func registerDemoComponents(sess *engine.RendererSession) error {
	for _, comp := range []*vdom.Component{demo.Counter, demo.TodoList, demo.Badge} {
		if err := sess.RegisterComponent(comp.Name, comp); err != nil {
			return err
		}
	}
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	markup, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading markup: %w", err)
	}
	params, err := parseParams(renderParams)
	if err != nil {
		return err
	}
	elem := vdom.Bind(string(markup), params)
	var host *memhost.Host
	var container *memhost.Node
	var screen *termhost.Screen
	if renderTerm {
		screen = termhost.MakeScreen(lipgloss.NewRenderer(WrappedStdout), themeFromSettings())
		host, container = screen.Host, screen.Root
	} else {
		host = memhost.MakeHost()
		container = host.NewContainer("root")
	}
	sess := engine.MakeSession(host, Settings.EngineConfig(makeLogger()))
	if err := registerDemoComponents(sess); err != nil {
		return err
	}
	sess.ScheduleRender(elem, container)
	slices := 1
	for sess.DriveWork(renderBudget) {
		slices++
	}
	if screen != nil {
		WriteStdout("%s\n", screen.Render())
	} else {
		WriteStdout("%s\n", container.String())
	}
	stats := sess.Stats()
	WriteStderr("slices=%d units=%d placements=%d hostops=%d livefibers=%d\n",
		slices, stats.Units, stats.Placements, host.CountOps(), stats.LiveFibers)
	return nil
}
