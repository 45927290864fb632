// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package termhost shows a memhost tree in a terminal.
package termhost

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/wavetermdev/ripple/host/memhost"
	"github.com/wavetermdev/ripple/vdom"
)

const ClickEvent = "click"

var blockTags = map[string]bool{
	"div": true, "p": true, "ul": true, "ol": true, "li": true,
	"section": true, "main": true, "header": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "hr": true, "screen": true,
}

type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
	Focus  lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{Accent: "12", Muted: "8", Error: "9", Focus: "11"}
}

// Screen owns the host tree and the focus.  the engine mutates the tree
// through Host, Render draws whatever is committed.
type Screen struct {
	Host     *memhost.Host
	Root     *memhost.Node
	Theme    Theme
	Renderer *lipgloss.Renderer
	Width    int

	focused *memhost.Node
}

func MakeScreen(renderer *lipgloss.Renderer, theme Theme) *Screen {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	host := memhost.MakeHost()
	return &Screen{
		Host:     host,
		Root:     host.NewContainer("screen"),
		Theme:    theme,
		Renderer: renderer,
	}
}

// Focusable lists the nodes listening for clicks, in document order
func (s *Screen) Focusable() []*memhost.Node {
	return s.Root.FindAll(func(n *memhost.Node) bool {
		return len(n.Listeners[ClickEvent]) > 0
	})
}

// Focused returns the focused node, moving focus to the first focusable
// node when the previous one is gone
func (s *Screen) Focused() *memhost.Node {
	nodes := s.Focusable()
	if len(nodes) == 0 {
		s.focused = nil
		return nil
	}
	if !slices.Contains(nodes, s.focused) {
		s.focused = nodes[0]
	}
	return s.focused
}

func (s *Screen) FocusNext() {
	s.moveFocus(1)
}

func (s *Screen) FocusPrev() {
	s.moveFocus(-1)
}

func (s *Screen) moveFocus(delta int) {
	nodes := s.Focusable()
	if len(nodes) == 0 {
		s.focused = nil
		return
	}
	idx := slices.Index(nodes, s.focused)
	if idx < 0 {
		s.focused = nodes[0]
		return
	}
	s.focused = nodes[(idx+delta+len(nodes))%len(nodes)]
}

// Activate dispatches a click on the focused node.  returns false if nothing
// is focused.
func (s *Screen) Activate() bool {
	node := s.Focused()
	if node == nil {
		return false
	}
	s.Host.Dispatch(node, ClickEvent, vdom.VDomEvent{EventType: ClickEvent})
	return true
}

func (s *Screen) Render() string {
	focused := s.Focused()
	out := s.renderNode(s.Root, focused)
	if s.Width > 0 {
		out = s.Renderer.NewStyle().MaxWidth(s.Width).Render(out)
	}
	return out
}

func (s *Screen) renderNode(node *memhost.Node, focused *memhost.Node) string {
	if node.IsText() {
		return fmt.Sprint(node.Props[vdom.TextPropKey])
	}
	var body string
	if blockTags[node.Tag] {
		body = s.renderBlockChildren(node, focused)
	} else {
		var parts []string
		for _, c := range node.Children {
			parts = append(parts, s.renderNode(c, focused))
		}
		body = lipgloss.JoinHorizontal(lipgloss.Top, parts...)
	}
	return s.styleFor(node, node == focused).Render(s.decorate(node, body))
}

// block children stack vertically, runs of inline children share a line
func (s *Screen) renderBlockChildren(node *memhost.Node, focused *memhost.Node) string {
	var lines []string
	var inline []string
	flush := func() {
		if len(inline) > 0 {
			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, inline...))
			inline = nil
		}
	}
	for _, c := range node.Children {
		rendered := s.renderNode(c, focused)
		if blockTags[c.Tag] {
			flush()
			lines = append(lines, rendered)
			continue
		}
		inline = append(inline, rendered)
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (s *Screen) decorate(node *memhost.Node, body string) string {
	switch node.Tag {
	case "li":
		return "• " + body
	case "hr":
		return strings.Repeat("─", max(s.Width, 20))
	case "input":
		return fmt.Sprintf("[%v]", node.Props["value"])
	}
	return body
}

func (s *Screen) styleFor(node *memhost.Node, focused bool) lipgloss.Style {
	style := s.Renderer.NewStyle()
	switch node.Tag {
	case "h1", "h2", "h3":
		style = style.Bold(true).Foreground(s.Theme.Accent)
	case "b", "strong":
		style = style.Bold(true)
	case "i", "em":
		style = style.Italic(true)
	case "button":
		style = style.Border(lipgloss.RoundedBorder()).Padding(0, 1).BorderForeground(s.Theme.Muted)
		if focused {
			style = style.Bold(true).BorderForeground(s.Theme.Focus).Foreground(s.Theme.Focus)
		}
	}
	if class, _ := node.Props["class"].(string); class != "" {
		for _, c := range strings.Fields(class) {
			switch c {
			case "muted", "done":
				style = style.Foreground(s.Theme.Muted)
			case "ripple-error":
				style = style.Foreground(s.Theme.Error).Border(lipgloss.NormalBorder()).BorderForeground(s.Theme.Error)
			}
		}
	}
	if color, ok := node.Props["color"].(string); ok && color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	if bold, ok := node.Props["bold"].(bool); ok {
		style = style.Bold(bold)
	}
	return style
}
