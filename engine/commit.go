// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
)

// commitRoot applies every queued effect in one pass and promotes the
// work-in-progress tree to current.  it never yields.
func (s *RendererSession) commitRoot() {
	for _, id := range s.deletions {
		s.commitDeletion(id, s.hostParent(id))
	}
	s.deletions = nil
	root := s.wipRoot
	for id := s.arena.get(root).Child; id != NoFiber; id = s.nextInTree(id, root) {
		s.commitWork(id)
	}
	s.currentRoot = root
	s.wipRoot = NoFiber
	s.nextUnit = NoFiber
	s.instances = s.arena.sweep(root)
	s.stats.Commits++
	s.verbosef("session %s commit #%d done (%d live fibers)\n", s.SessionId, s.stats.Commits, s.arena.live())
}

func (s *RendererSession) commitWork(id FiberId) {
	fiber := s.arena.get(id)
	if fiber.isHost() {
		switch fiber.Effect {
		case EffectPlacement:
			s.commitPlacement(id)
		case EffectUpdate:
			alt := s.arena.get(fiber.Alternate)
			if alt == nil {
				panic(&InvariantError{Op: "commit", Fiber: id, Msg: "update without an alternate"})
			}
			s.updateHostProps(fiber.HostNode, alt.Props, fiber.Props)
			s.stats.Updates++
		}
	}
	fiber.Effect = EffectNone
}

func (s *RendererSession) commitPlacement(id FiberId) {
	fiber := s.arena.get(id)
	node := s.Host.CreateNode(fiber.Kind.Tag)
	if node == nil {
		panic(&InvariantError{Op: "commit", Fiber: id, Msg: fmt.Sprintf("host returned no node for %q", fiber.Kind.Tag)})
	}
	fiber.HostNode = node
	s.updateHostProps(node, nil, fiber.Props)
	parent := s.hostParent(id)
	if before := s.hostSibling(id); before != nil {
		s.Host.InsertBefore(parent, node, before)
	} else {
		s.Host.AppendChild(parent, node)
	}
	s.stats.Placements++
}

// removes the host nodes of a deleted fiber.  component fibers own no node,
// so their deletion cascades to the first host fibers beneath them.
func (s *RendererSession) commitDeletion(id FiberId, parentNode HostNode) {
	fiber := s.arena.get(id)
	if fiber.isHost() {
		if fiber.HostNode != nil {
			s.Host.RemoveChild(parentNode, fiber.HostNode)
			s.stats.Deletions++
		}
		return
	}
	for c := fiber.Child; c != NoFiber; c = s.arena.get(c).Sibling {
		s.commitDeletion(c, parentNode)
	}
}

// nearest ancestor owning a host node.  the root always owns the container,
// so walking off the top means the tree is corrupt.
func (s *RendererSession) hostParent(id FiberId) HostNode {
	for p := s.arena.get(id).Parent; p != NoFiber; {
		parent := s.arena.get(p)
		if parent == nil {
			break
		}
		if parent.isHost() && parent.HostNode != nil {
			return parent.HostNode
		}
		p = parent.Parent
	}
	panic(&InvariantError{Op: "commit", Fiber: id, Msg: "no host-owning ancestor"})
}

// hostSibling finds the host node that a placed fiber must go in front of: the
// next node in document order, under the same host parent, that is already
// attached.  returns nil when the fiber belongs at the end.
func (s *RendererSession) hostSibling(id FiberId) HostNode {
	node := id
siblings:
	for {
		fiber := s.arena.get(node)
		for fiber.Sibling == NoFiber {
			parent := s.arena.get(fiber.Parent)
			if parent == nil || parent.isHost() {
				return nil
			}
			node = fiber.Parent
			fiber = parent
		}
		node = fiber.Sibling
		cur := s.arena.get(node)
		for !cur.isHost() {
			if cur.Effect == EffectPlacement || cur.Child == NoFiber {
				continue siblings
			}
			node = cur.Child
			cur = s.arena.get(node)
		}
		if cur.Effect != EffectPlacement && cur.HostNode != nil {
			return cur.HostNode
		}
	}
}
