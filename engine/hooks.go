// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

// HookCell is one positional state slot of a component instance.
type HookCell struct {
	State   any
	Pending []func(any) any // actions queued since this cell was committed
}

type RenderContextImpl struct {
	Session *RendererSession
	FiberId FiberId
	HookIdx int
}

func makeContextVal(s *RendererSession, id FiberId) *RenderContextImpl {
	return &RenderContextImpl{Session: s, FiberId: id}
}

func (vc *RenderContextImpl) fiber() *Fiber {
	if vc == nil || vc.Session == nil {
		panic("ripple hooks must be called within a component (no render context)")
	}
	fiber := vc.Session.arena.get(vc.FiberId)
	if fiber == nil || fiber.Comp == nil {
		panic("ripple hooks must be called within a component")
	}
	return fiber
}

func (vc *RenderContextImpl) checkHookCount() error {
	fiber := vc.fiber()
	alt := vc.Session.arena.get(fiber.Alternate)
	if alt == nil || alt.hooksUnset || len(alt.Hooks) == len(fiber.Hooks) {
		return nil
	}
	return &HookMismatchError{
		Component:  fiber.Comp.Name,
		InstanceId: fiber.InstanceId,
		Expected:   len(alt.Hooks),
		Got:        len(fiber.Hooks),
	}
}

// UseState returns the current state of the next hook slot and an updater.
// The state is the committed state with every pending action applied in order.
// The updater queues an action on the committed cell and schedules a render of
// the whole tree; updates to unmounted instances are dropped.
func UseState(vc *RenderContextImpl, initialVal any) (any, func(func(any) any)) {
	fiber := vc.fiber()
	s := vc.Session
	idx := vc.HookIdx
	vc.HookIdx++
	state := initialVal
	if alt := s.arena.get(fiber.Alternate); alt != nil && idx < len(alt.Hooks) {
		oldCell := alt.Hooks[idx]
		state = oldCell.State
		for _, action := range oldCell.Pending {
			state = action(state)
		}
	}
	fiber.Hooks = append(fiber.Hooks, &HookCell{State: state})
	instanceId := fiber.InstanceId
	setFn := func(action func(any) any) {
		s.enqueueAction(instanceId, idx, action)
	}
	return state, setFn
}

// UseId returns the stable id of the component instance being rendered
func UseId(vc *RenderContextImpl) string {
	return vc.fiber().InstanceId
}

func (s *RendererSession) enqueueAction(instanceId string, hookIdx int, action func(any) any) {
	if action == nil {
		return
	}
	fiber := s.arena.get(s.instances[instanceId])
	if fiber == nil || fiber.InstanceId != instanceId || hookIdx >= len(fiber.Hooks) {
		s.stats.DroppedUpdates++
		s.logf("dropped state update (instance %s, hook %d): %v\n", instanceId, hookIdx, ErrUnmounted)
		return
	}
	cell := fiber.Hooks[hookIdx]
	cell.Pending = append(cell.Pending, action)
	s.requestUpdate()
}

// UseRef returns the value stored in the next hook slot, creating it from
// initialVal on the instance's first render.  the stored value never changes.
func UseRef(vc *RenderContextImpl, initialVal any) any {
	fiber := vc.fiber()
	idx := vc.HookIdx
	vc.HookIdx++
	if alt := vc.Session.arena.get(fiber.Alternate); alt != nil && idx < len(alt.Hooks) {
		cell := alt.Hooks[idx]
		fiber.Hooks = append(fiber.Hooks, &HookCell{State: cell.State})
		return cell.State
	}
	fiber.Hooks = append(fiber.Hooks, &HookCell{State: initialVal})
	return initialVal
}
