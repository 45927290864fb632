// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package memhost

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/wavetermdev/ripple/vdom"
)

func TestTreeOps(t *testing.T) {
	h := MakeHost()
	root := h.NewContainer("root")
	if h.CountOps() != 0 {
		t.Fatalf("NewContainer should not be recorded, got %v", h.Ops())
	}
	a := h.CreateNode("a").(*Node)
	b := h.CreateNode("b").(*Node)
	c := h.CreateNode("c").(*Node)
	h.AppendChild(root, a)
	h.AppendChild(root, c)
	h.InsertBefore(root, b, c)
	if got := root.String(); got != "<root><a></a><b></b><c></c></root>" {
		t.Fatalf("unexpected tree: %s", got)
	}
	h.RemoveChild(root, b)
	if b.Parent != nil || len(root.Children) != 2 {
		t.Fatalf("remove failed: %s", root.String())
	}
	// appending an attached node moves it
	h.AppendChild(root, a)
	if got := root.String(); got != "<root><c></c><a></a></root>" {
		t.Fatalf("unexpected tree after move: %s", got)
	}
	if got := h.StructuralOps(); got != 5 {
		t.Fatalf("expected 5 structural ops, got %d", got)
	}
	if got := h.CountOps(OpCreate); got != 3 {
		t.Fatalf("expected 3 creates, got %d", got)
	}
	h.ResetOps()
	if len(h.Ops()) != 0 {
		t.Fatalf("ResetOps left %d ops", len(h.Ops()))
	}
}

func TestRemoveNonChildPanics(t *testing.T) {
	h := MakeHost()
	root := h.NewContainer("root")
	stray := h.CreateNode("p")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic removing a node that is not a child")
		}
	}()
	h.RemoveChild(root, stray)
}

func TestPropsAndListeners(t *testing.T) {
	h := MakeHost()
	root := h.NewContainer("root")
	btn := h.CreateNode("button").(*Node)
	h.AppendChild(root, btn)
	text := h.CreateNode(vdom.TextTag).(*Node)
	h.SetProperty(text, vdom.TextPropKey, "go <now>")
	h.AppendChild(btn, text)
	h.SetProperty(btn, "class", "primary")

	clicks := 0
	handler := vdom.Handler(func() { clicks++ })
	h.AddEventListener(btn, "click", handler)
	if got := root.String(); got != `<root><button class="primary" on:click>go &lt;now&gt;</button></root>` {
		t.Fatalf("unexpected markup: %s", got)
	}
	if n := h.Dispatch(btn, "click", vdom.VDomEvent{}); n != 1 || clicks != 1 {
		t.Fatalf("dispatch ran %d listeners, clicks=%d", n, clicks)
	}
	h.RemoveEventListener(btn, "click", handler)
	if n := h.Dispatch(btn, "click", vdom.VDomEvent{}); n != 0 || clicks != 1 {
		t.Fatalf("listener should be gone, ran %d", n)
	}
	h.RemoveProperty(btn, "class")

	want := &vdom.VDomElem{
		Kind: vdom.HostKind("root"),
		Children: []vdom.VDomElem{
			{Kind: vdom.HostKind("button"), Children: []vdom.VDomElem{vdom.TextElem("go <now>")}},
		},
	}
	if diff := cmp.Diff(want, root.ToElem()); diff != "" {
		t.Fatalf("ToElem mismatch (-want +got):\n%s", diff)
	}
	if got := root.TextContent(); got != "go <now>" {
		t.Fatalf("TextContent = %q", got)
	}
	if root.FindByTag("button") != btn || root.FindByProp(vdom.TextPropKey, "go <now>") != text {
		t.Fatalf("find helpers did not locate nodes")
	}
}
