// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package termhost

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/wavetermdev/ripple/app"
)

type frameMsg time.Time

// Model runs an app inside a bubbletea program.  every tick hands the app's
// scheduler one frame, keys drive focus and clicks.
type Model struct {
	App    *app.App
	Screen *Screen

	FrameInterval time.Duration
	FrameBudget   time.Duration

	quitting bool
}

func MakeModel(a *app.App, screen *Screen, interval time.Duration, budget time.Duration) *Model {
	return &Model{App: a, Screen: screen, FrameInterval: interval, FrameBudget: budget}
}

func (m *Model) frame() tea.Cmd {
	return tea.Tick(m.FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) Init() tea.Cmd {
	return m.frame()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.App.Scheduler.RunFrame(m.FrameBudget)
		return m, m.frame()
	case tea.WindowSizeMsg:
		m.Screen.Width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "tab", "down", "j":
			m.Screen.FocusNext()
		case "shift+tab", "up", "k":
			m.Screen.FocusPrev()
		case "enter", " ":
			m.Screen.Activate()
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	help := m.Screen.Renderer.NewStyle().Foreground(m.Screen.Theme.Muted).Render("tab: focus • enter: click • q: quit")
	return m.Screen.Render() + "\n\n" + help + "\n"
}
