// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package memhost

import (
	"fmt"
	"html"
	"maps"
	"slices"
	"strings"

	"github.com/wavetermdev/ripple/vdom"
)

type Node struct {
	Id        int
	Tag       string
	Props     map[string]any
	Listeners map[string][]*vdom.VDomFunc
	Children  []*Node
	Parent    *Node
}

func (n *Node) Label() string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s#%d", n.Tag, n.Id)
}

func (n *Node) IsText() bool {
	return n.Tag == vdom.TextTag
}

func (n *Node) detach() {
	if n.Parent == nil {
		return
	}
	n.Parent.Children = slices.DeleteFunc(n.Parent.Children, func(c *Node) bool { return c == n })
	n.Parent = nil
}

// TextContent concatenates the text of every text node beneath n
func (n *Node) TextContent() string {
	var buf strings.Builder
	n.walk(func(node *Node) bool {
		if node.IsText() {
			fmt.Fprint(&buf, node.Props[vdom.TextPropKey])
		}
		return true
	})
	return buf.String()
}

// pre-order walk, fn returning false prunes the subtree
func (n *Node) walk(fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, c := range n.Children {
		c.walk(fn)
	}
}

func (n *Node) FindAll(pred func(*Node) bool) []*Node {
	var rtn []*Node
	n.walk(func(node *Node) bool {
		if pred(node) {
			rtn = append(rtn, node)
		}
		return true
	})
	return rtn
}

func (n *Node) Find(pred func(*Node) bool) *Node {
	all := n.FindAll(pred)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func (n *Node) FindByTag(tag string) *Node {
	return n.Find(func(node *Node) bool { return node.Tag == tag })
}

func (n *Node) FindByProp(name string, val any) *Node {
	return n.Find(func(node *Node) bool {
		v, ok := node.Props[name]
		return ok && v == val
	})
}

// ToElem converts the host subtree back into an element (listeners omitted)
func (n *Node) ToElem() *vdom.VDomElem {
	elem := &vdom.VDomElem{Kind: vdom.HostKind(n.Tag)}
	if len(n.Props) > 0 {
		elem.Props = maps.Clone(n.Props)
	}
	for _, c := range n.Children {
		elem.Children = append(elem.Children, *c.ToElem())
	}
	return elem
}

// String serializes the subtree as markup with sorted attributes
func (n *Node) String() string {
	var buf strings.Builder
	n.writeTo(&buf)
	return buf.String()
}

func (n *Node) writeTo(buf *strings.Builder) {
	if n.IsText() {
		buf.WriteString(html.EscapeString(fmt.Sprint(n.Props[vdom.TextPropKey])))
		return
	}
	buf.WriteString("<" + n.Tag)
	for _, name := range slices.Sorted(maps.Keys(n.Props)) {
		fmt.Fprintf(buf, " %s=%q", name, fmt.Sprint(n.Props[name]))
	}
	for _, event := range slices.Sorted(maps.Keys(n.Listeners)) {
		fmt.Fprintf(buf, " on:%s", event)
	}
	buf.WriteString(">")
	for _, c := range n.Children {
		c.writeTo(buf)
	}
	buf.WriteString("</" + n.Tag + ">")
}
