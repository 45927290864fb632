// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"unicode"

	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

// see reconcile.go for the diff and commit.go for how effects are applied

func (s *RendererSession) performUnitOfWork(id FiberId) FiberId {
	fiber := s.arena.get(id)
	if fiber.Comp != nil {
		s.updateFunctionComponent(id)
	} else {
		s.updateHostComponent(id)
	}
	return s.nextInTree(id, s.wipRoot)
}

// pre-order successor of id, bounded by root
func (s *RendererSession) nextInTree(id FiberId, root FiberId) FiberId {
	fiber := s.arena.get(id)
	if fiber.Child != NoFiber {
		return fiber.Child
	}
	for id != root && id != NoFiber {
		fiber = s.arena.get(id)
		if fiber.Sibling != NoFiber {
			return fiber.Sibling
		}
		id = fiber.Parent
	}
	return NoFiber
}

// host nodes are created at commit, so this only diffs the children
func (s *RendererSession) updateHostComponent(id FiberId) {
	fiber := s.arena.get(id)
	s.reconcileChildren(id, fiber.Children)
}

func (s *RendererSession) updateFunctionComponent(id FiberId) {
	fiber := s.arena.get(id)
	fiber.Hooks = nil
	fiber.hooksUnset = false
	vc := makeContextVal(s, id)
	rendered := withGlobalCtx(vc, func() *vdom.VDomElem {
		return s.callCFuncWithErrorGuard(fiber, vc)
	})
	var children []vdom.VDomElem
	if rendered != nil {
		children = []vdom.VDomElem{*rendered}
	}
	s.reconcileChildren(id, children)
}

// safely calls the component function with panic recovery
func (s *RendererSession) callCFuncWithErrorGuard(fiber *Fiber, vc *RenderContextImpl) (result *vdom.VDomElem) {
	compName := fiber.Comp.Name
	defer func() {
		panicErr := util.PanicHandlerWithLogger(s.logger(), fmt.Sprintf("render component '%s'", compName), recover())
		if panicErr == nil {
			return
		}
		// keep the committed state so the next render starts from it.  hooks
		// created before the panic are partial and must not be compared against.
		if alt := s.arena.get(fiber.Alternate); alt != nil {
			fiber.Hooks = alt.Hooks
			fiber.hooksUnset = alt.hooksUnset
		} else {
			fiber.Hooks = nil
			fiber.hooksUnset = true
		}
		result = renderErrorComponent(compName, panicErr.Error())
	}()
	props := make(map[string]any, len(fiber.Props)+1)
	for k, v := range fiber.Props {
		props[k] = v
	}
	props[vdom.ChildrenPropKey] = fiber.Children
	result = fiber.Comp.Fn(props)
	if err := vc.checkHookCount(); err != nil {
		if !s.Config.LenientHooks {
			panic(err)
		}
		s.logf("%v\n", err)
	}
	return result
}

// creates an error component for display when a component panics
func renderErrorComponent(componentName string, errorMsg string) *vdom.VDomElem {
	return vdom.H("div", map[string]any{"class": "ripple-error"},
		vdom.H("b", nil, fmt.Sprintf("Component Error: %s", componentName)),
		vdom.H("span", nil, errorMsg),
	)
}

// resolveComponent returns nil for host kinds.  capitalized string tags are
// looked up in the registry, unknown ones render as "<Name>".
func (s *RendererSession) resolveComponent(kind vdom.Kind) *vdom.Component {
	if kind.Comp != nil {
		return kind.Comp
	}
	if isBaseTag(kind.Tag) {
		return nil
	}
	if comp := s.CFuncs[kind.Tag]; comp != nil {
		return comp
	}
	text := fmt.Sprintf("<%s>", kind.Tag)
	return vdom.DefineComponent(kind.Tag, func(map[string]any) *vdom.VDomElem {
		elem := vdom.TextElem(text)
		return &elem
	})
}

func isBaseTag(tag string) bool {
	if tag == "" || tag[0] == '#' {
		return true
	}
	return !unicode.IsUpper(rune(tag[0]))
}
