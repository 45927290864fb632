// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import "github.com/wavetermdev/ripple/vdom"

// Rendered describes the committed tree at host level (components flattened
// away) as a #root element.  nil before the first commit.
func (s *RendererSession) Rendered() *vdom.VDomElem {
	root := s.arena.get(s.currentRoot)
	if root == nil {
		return nil
	}
	return &vdom.VDomElem{
		Kind:     root.Kind,
		Children: s.renderedChildren(root.Child),
	}
}

func (s *RendererSession) renderedChildren(id FiberId) []vdom.VDomElem {
	var rtn []vdom.VDomElem
	for ; id != NoFiber; id = s.arena.get(id).Sibling {
		fiber := s.arena.get(id)
		if !fiber.isHost() {
			rtn = append(rtn, s.renderedChildren(fiber.Child)...)
			continue
		}
		rtn = append(rtn, vdom.VDomElem{
			Kind:     fiber.Kind,
			Props:    fiber.Props,
			Children: s.renderedChildren(fiber.Child),
		})
	}
	return rtn
}
