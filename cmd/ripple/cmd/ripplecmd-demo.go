// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/wavetermdev/ripple/app"
	"github.com/wavetermdev/ripple/demo"
	"github.com/wavetermdev/ripple/host/memhost"
	"github.com/wavetermdev/ripple/host/termhost"
	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "run the counter + todo demo",
	Long: `Runs the demo app in the terminal.  When stdout is not a terminal (or with
--plain) the clicks in --script are replayed and every committed frame is printed.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

var demoPlain bool
var demoScript string

func init() {
	demoCmd.Flags().BoolVar(&demoPlain, "plain", false, "print frames instead of running interactively")
	demoCmd.Flags().StringVar(&demoScript, "script", "+1,+1,add", "comma separated button labels to click in plain mode")
	rootCmd.AddCommand(demoCmd)
}

func themeFromSettings() termhost.Theme {
	theme := Settings.Demo.Theme
	return termhost.Theme{
		Accent: lipgloss.Color(theme.Accent),
		Muted:  lipgloss.Color(theme.Muted),
		Error:  lipgloss.Color(theme.Error),
		Focus:  lipgloss.Color(theme.Focus),
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	if demoPlain || !getIsTty() {
		return runPlainDemo(demoScript)
	}
	screen := termhost.MakeScreen(lipgloss.NewRenderer(os.Stdout), themeFromSettings())
	// log lines would tear the alt screen
	logger := util.DiscardLogger
	a := app.MakeApp(screen.Host, Settings.EngineConfig(logger))
	a.Render(demo.App(), screen.Root)
	model := termhost.MakeModel(a, screen, Settings.Demo.FrameInterval, Settings.Demo.FrameBudget)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running demo: %w", err)
	}
	return nil
}

func runPlainDemo(script string) error {
	screen := termhost.MakeScreen(lipgloss.NewRenderer(WrappedStdout), themeFromSettings())
	a := app.MakeApp(screen.Host, Settings.EngineConfig(makeLogger()))
	a.Render(demo.App(), screen.Root)
	printFrame := func(label string) {
		frames := 0
		for !a.Settled() {
			a.Scheduler.RunFrame(Settings.Demo.FrameBudget)
			frames++
		}
		WriteStdout("--- %s (%d frames, commit %d) ---\n%s\n", label, frames, a.Session.Stats().Commits, screen.Render())
	}
	printFrame("initial")
	for _, label := range strings.Split(script, ",") {
		label = strings.TrimSpace(label)
		if label == "" {
			continue
		}
		btn := screen.Root.Find(func(n *memhost.Node) bool {
			return n.Tag == "button" && strings.TrimSpace(n.TextContent()) == label
		})
		if btn == nil {
			return fmt.Errorf("no button labeled %q", label)
		}
		screen.Host.Dispatch(btn, termhost.ClickEvent, vdom.VDomEvent{EventType: termhost.ClickEvent})
		printFrame("click " + label)
	}
	return nil
}
