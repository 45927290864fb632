// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"maps"
	"slices"

	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

func (s *RendererSession) isEvent(name string, val any) bool {
	return vdom.IsEventProp(name, s.Config.EventPrefix, val)
}

func (s *RendererSession) isProperty(name string, val any) bool {
	return name != vdom.ChildrenPropKey && !s.isEvent(name, val)
}

// updateHostProps applies the difference between prevProps and nextProps.
// a nil prevProps applies everything (node creation).  unchanged values and
// unchanged handlers produce no host calls.
func (s *RendererSession) updateHostProps(node HostNode, prevProps map[string]any, nextProps map[string]any) {
	prefix := s.Config.EventPrefix
	prevKeys := slices.Sorted(maps.Keys(prevProps))
	nextKeys := slices.Sorted(maps.Keys(nextProps))

	// remove old or changed event listeners
	for _, name := range prevKeys {
		prevVal := prevProps[name]
		if !s.isEvent(name, prevVal) {
			continue
		}
		if nextVal, ok := nextProps[name]; ok && nextVal == prevVal {
			continue
		}
		s.Host.RemoveEventListener(node, vdom.EventName(name, prefix), prevVal.(*vdom.VDomFunc))
	}

	// remove old properties
	for _, name := range prevKeys {
		if !s.isProperty(name, prevProps[name]) {
			continue
		}
		if nextVal, ok := nextProps[name]; ok && s.isProperty(name, nextVal) {
			continue
		}
		s.Host.RemoveProperty(node, name)
	}

	// set new or changed properties
	for _, name := range nextKeys {
		nextVal := nextProps[name]
		if !s.isProperty(name, nextVal) {
			continue
		}
		if prevVal, ok := prevProps[name]; ok && s.isProperty(name, prevVal) && util.JsonValEqual(prevVal, nextVal) {
			continue
		}
		s.Host.SetProperty(node, name, nextVal)
	}

	// add event listeners
	for _, name := range nextKeys {
		nextVal := nextProps[name]
		if !s.isEvent(name, nextVal) {
			continue
		}
		if prevVal, ok := prevProps[name]; ok && prevVal == nextVal {
			continue
		}
		s.Host.AddEventListener(node, vdom.EventName(name, prefix), nextVal.(*vdom.VDomFunc))
	}
}
