// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"github.com/google/uuid"
	"github.com/wavetermdev/ripple/vdom"
)

// reconcileChildren diffs elems against the alternate's children by position
// (there are no keys).  same kind at an index is an update that keeps the host
// node, a new kind is a placement, and an old fiber without a same-kind match is
// queued in s.deletions since nothing in the new tree points at it.
//
// prepending to a list therefore updates every existing position and places
// the last one again.
func (s *RendererSession) reconcileChildren(wipId FiberId, elems []vdom.VDomElem) {
	wip := s.arena.get(wipId)
	oldId := NoFiber
	if alt := s.arena.get(wip.Alternate); alt != nil {
		oldId = alt.Child
	}
	wip.Child = NoFiber
	prevId := NoFiber
	for idx := 0; idx < len(elems) || oldId != NoFiber; idx++ {
		var elem *vdom.VDomElem
		if idx < len(elems) {
			elem = &elems[idx]
		}
		old := s.arena.get(oldId)
		sameKind := old != nil && elem != nil && old.Kind == elem.Kind
		newId := NoFiber
		if sameKind {
			newId = s.arena.alloc(&Fiber{
				Kind:       old.Kind,
				Comp:       s.resolveComponent(elem.Kind),
				Props:      elem.Props,
				Children:   elem.Children,
				HostNode:   old.HostNode,
				Parent:     wipId,
				Alternate:  oldId,
				Effect:     EffectUpdate,
				InstanceId: old.InstanceId,
			})
		}
		if elem != nil && !sameKind {
			comp := s.resolveComponent(elem.Kind)
			instanceId := ""
			if comp != nil {
				instanceId = uuid.New().String()
			}
			newId = s.arena.alloc(&Fiber{
				Kind:       elem.Kind,
				Comp:       comp,
				Props:      elem.Props,
				Children:   elem.Children,
				Parent:     wipId,
				Effect:     EffectPlacement,
				InstanceId: instanceId,
			})
		}
		// the old fiber belongs to the committed tree, it is only queued here
		if old != nil && !sameKind {
			s.deletions = append(s.deletions, oldId)
		}
		if old != nil {
			oldId = old.Sibling
		}
		if newId == NoFiber {
			continue
		}
		if prevId == NoFiber {
			wip.Child = newId
		} else {
			s.arena.get(prevId).Sibling = newId
		}
		prevId = newId
	}
}
