// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/wavetermdev/ripple/vdom"
)

// FiberId indexes the session's fiber arena.  NoFiber is the null link.
type FiberId int32

const NoFiber FiberId = 0

type EffectTag int

const (
	EffectNone EffectTag = iota
	EffectPlacement
	EffectUpdate
	EffectDeletion
)

func (e EffectTag) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectPlacement:
		return "placement"
	case EffectUpdate:
		return "update"
	case EffectDeletion:
		return "deletion"
	default:
		return "unknown"
	}
}

// Fiber is the per-position work record.  a fiber lives for one render + commit
// and then serves as the Alternate of the fiber rendered at its position next.
type Fiber struct {
	Kind     vdom.Kind
	Comp     *vdom.Component // resolved component, nil for host fibers
	Props    map[string]any
	Children []vdom.VDomElem // view children (props.children for components)
	HostNode HostNode        // nil for components, and for placements until commit

	Parent    FiberId
	Child     FiberId
	Sibling   FiberId
	Alternate FiberId

	Effect     EffectTag
	Hooks      []*HookCell
	InstanceId string // stable component identity, carried across alternates

	hooksUnset bool // no render of this instance has completed, Hooks holds no usable count
}

func (f *Fiber) isHost() bool {
	return f.Comp == nil
}

type fiberArena struct {
	fibers []*Fiber // slot 0 is never used
	free   *arraystack.Stack
}

func makeFiberArena() *fiberArena {
	return &fiberArena{fibers: make([]*Fiber, 1), free: arraystack.New()}
}

func (a *fiberArena) alloc(f *Fiber) FiberId {
	if v, ok := a.free.Pop(); ok {
		id := v.(FiberId)
		a.fibers[id] = f
		return id
	}
	a.fibers = append(a.fibers, f)
	return FiberId(len(a.fibers) - 1)
}

// returns nil for NoFiber and for released slots
func (a *fiberArena) get(id FiberId) *Fiber {
	if id <= NoFiber || int(id) >= len(a.fibers) {
		return nil
	}
	return a.fibers[id]
}

func (a *fiberArena) release(id FiberId) {
	if a.get(id) == nil {
		return
	}
	a.fibers[id] = nil
	a.free.Push(id)
}

func (a *fiberArena) live() int {
	return len(a.fibers) - 1 - a.free.Size()
}

// sweep keeps the tree under root and releases every other fiber.  surviving
// fibers lose their alternate (it is released) and their effect.
// returns the instance registry of the surviving component fibers.
func (a *fiberArena) sweep(root FiberId) map[string]FiberId {
	instances := make(map[string]FiberId)
	marked := make([]bool, len(a.fibers))
	stack := []FiberId{root}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f := a.get(id)
		if f == nil {
			continue
		}
		marked[id] = true
		f.Alternate = NoFiber
		f.Effect = EffectNone
		if f.InstanceId != "" {
			instances[f.InstanceId] = id
		}
		for c := f.Child; c != NoFiber; c = a.get(c).Sibling {
			stack = append(stack, c)
		}
	}
	for id := 1; id < len(a.fibers); id++ {
		if !marked[id] && a.fibers[id] != nil {
			a.release(FiberId(id))
		}
	}
	return instances
}
