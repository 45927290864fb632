// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package termhost

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/wavetermdev/ripple/app"
	"github.com/wavetermdev/ripple/engine"
	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

var Clicker = vdom.DefineComponent("Clicker", func(props map[string]any) *vdom.VDomElem {
	n, _, update := app.UseState(0)
	return vdom.H("div", nil,
		vdom.H("h1", nil, "Clicker"),
		vdom.H("p", nil, "Count: ", n),
		vdom.H("button", map[string]any{"onClick": func() { update(func(x int) int { return x + 1 }) }}, "inc"),
		vdom.H("button", map[string]any{"onClick": func() { update(func(x int) int { return x - 1 }) }}, "dec"),
	)
})

func makeTestModel(t *testing.T) *Model {
	screen := MakeScreen(lipgloss.NewRenderer(io.Discard), DefaultTheme())
	a := app.MakeApp(screen.Host, &engine.Config{Logger: util.DiscardLogger})
	a.Render(vdom.H(Clicker, nil), screen.Root)
	m := MakeModel(a, screen, time.Millisecond, time.Second)
	m.Update(frameMsg(time.Now()))
	if !a.Settled() {
		t.Fatalf("one generous frame should settle the first render")
	}
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestScreenRender(t *testing.T) {
	m := makeTestModel(t)
	out := m.Screen.Render()
	for _, want := range []string{"Clicker", "Count: 0", "inc", "dec", "╭"} {
		if !strings.Contains(out, want) {
			t.Fatalf("render missing %q:\n%s", want, out)
		}
	}
	// h1 and p are blocks
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[0], "Clicker") || !strings.Contains(lines[1], "Count: 0") {
		t.Fatalf("unexpected layout:\n%s", out)
	}
}

func TestFocusAndActivate(t *testing.T) {
	m := makeTestModel(t)
	buttons := m.Screen.Focusable()
	if len(buttons) != 2 {
		t.Fatalf("expected 2 focusable buttons, got %d", len(buttons))
	}
	if m.Screen.Focused() != buttons[0] {
		t.Fatalf("focus should default to the first button")
	}
	m.Update(keyMsg("enter"))
	m.Update(keyMsg(" "))
	m.Update(frameMsg(time.Now()))
	if out := m.Screen.Render(); !strings.Contains(out, "Count: 2") {
		t.Fatalf("expected count 2:\n%s", out)
	}

	m.Update(keyMsg("tab"))
	if m.Screen.Focused() != buttons[1] {
		t.Fatalf("tab should move focus to dec")
	}
	m.Update(keyMsg("tab"))
	if m.Screen.Focused() != buttons[0] {
		t.Fatalf("focus should wrap around")
	}
	m.Update(keyMsg("shift+tab"))
	m.Update(keyMsg("enter"))
	m.Update(frameMsg(time.Now()))
	if out := m.Screen.Render(); !strings.Contains(out, "Count: 1") {
		t.Fatalf("expected count 1:\n%s", out)
	}
}

func TestQuit(t *testing.T) {
	m := makeTestModel(t)
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
	if m.View() != "" {
		t.Fatalf("view should be empty after quitting")
	}
}

func TestErrorClassStyled(t *testing.T) {
	screen := MakeScreen(lipgloss.NewRenderer(io.Discard), DefaultTheme())
	sess := engine.MakeSession(screen.Host, &engine.Config{Logger: util.DiscardLogger})
	sess.ScheduleRender(vdom.H("div", map[string]any{"class": "ripple-error"}, "broken"), screen.Root)
	sess.Flush()
	out := screen.Render()
	if !strings.Contains(out, "broken") || !strings.Contains(out, "┌") {
		t.Fatalf("error view should be boxed:\n%s", out)
	}
	if screen.Activate() {
		t.Fatalf("nothing focusable, Activate should return false")
	}
}
