// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package demo

import (
	"strings"
	"testing"

	"github.com/wavetermdev/ripple/app"
	"github.com/wavetermdev/ripple/engine"
	"github.com/wavetermdev/ripple/host/memhost"
	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

type demoHarness struct {
	t         *testing.T
	host      *memhost.Host
	container *memhost.Node
	app       *app.App
}

func makeHarness(t *testing.T) *demoHarness {
	host := memhost.MakeHost()
	h := &demoHarness{
		t:         t,
		host:      host,
		container: host.NewContainer("root"),
		app:       app.MakeApp(host, &engine.Config{Logger: util.DiscardLogger}),
	}
	h.app.Render(App(), h.container)
	h.app.Session.Flush()
	return h
}

func (h *demoHarness) click(label string) {
	btn := h.container.Find(func(n *memhost.Node) bool {
		return n.Tag == "button" && n.TextContent() == label
	})
	if btn == nil {
		h.t.Fatalf("no button %q in %s", label, h.container.String())
	}
	h.host.Dispatch(btn, "click", vdom.VDomEvent{})
	h.app.Session.Flush()
}

func (h *demoHarness) items() []string {
	var rtn []string
	for _, li := range h.container.FindAll(func(n *memhost.Node) bool { return n.Tag == "li" }) {
		rtn = append(rtn, li.TextContent())
	}
	return rtn
}

func TestCounter(t *testing.T) {
	h := makeHarness(t)
	h.click("+1")
	h.click("+1")
	h.click("-1")
	if !strings.Contains(h.container.TextContent(), "Count: 1") {
		t.Fatalf("expected count 1: %s", h.container.String())
	}
	h.click("reset")
	if !strings.Contains(h.container.TextContent(), "Count: 0") {
		t.Fatalf("expected count 0: %s", h.container.String())
	}
}

func TestTodos(t *testing.T) {
	h := makeHarness(t)
	if items := h.items(); len(items) != 2 || !strings.HasSuffix(items[0], "read the reconciler") {
		t.Fatalf("unexpected initial items %q", items)
	}
	if !strings.Contains(h.container.TextContent(), "[left: 2]") {
		t.Fatalf("badge missing: %s", h.container.String())
	}
	h.click("add")
	if items := h.items(); len(items) != 3 || !strings.HasSuffix(items[2], "task 3") {
		t.Fatalf("add failed: %q", h.items())
	}

	// toggle the first item
	first := h.container.FindByTag("li")
	h.host.Dispatch(first.FindByTag("button"), "click", vdom.VDomEvent{})
	h.app.Session.Flush()
	if first.Props["class"] != "done" || !strings.Contains(h.container.TextContent(), "[left: 2]") {
		t.Fatalf("toggle failed: %s", h.container.String())
	}

	h.click("clear done")
	if items := h.items(); len(items) != 2 || !strings.HasSuffix(items[0], "write a component") {
		t.Fatalf("clear done failed: %q", items)
	}
	if h.app.Session.Stats().DroppedUpdates != 0 {
		t.Fatalf("no updates should be dropped")
	}
}
