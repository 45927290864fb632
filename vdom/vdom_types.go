// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

const TextTag = "#text"
const RootTag = "#root"

const TextPropKey = "nodeValue"
const ChildrenPropKey = "children"

// EventPrefix marks handler props (onClick, onInput, ...)
const EventPrefix = "on"

const ObjectType_Func = "func"

// Kind is either a host tag or a component reference, never both.
// Kinds are comparable, components compare by pointer identity.
type Kind struct {
	Tag  string
	Comp *Component
}

func HostKind(tag string) Kind {
	return Kind{Tag: tag}
}

func CompKind(comp *Component) Kind {
	return Kind{Comp: comp}
}

func (k Kind) IsComponent() bool {
	return k.Comp != nil
}

func (k Kind) IsText() bool {
	return k.Comp == nil && k.Tag == TextTag
}

func (k Kind) String() string {
	if k.Comp != nil {
		return k.Comp.Name
	}
	return k.Tag
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ComponentFunc renders a component from its props.  props always carries the
// reserved "children" entry ([]VDomElem).
type ComponentFunc func(props map[string]any) *VDomElem

type Component struct {
	Name string
	Fn   ComponentFunc
}

// vdom element.  elements are treated as immutable once built.
type VDomElem struct {
	Kind     Kind           `json:"kind"`
	Props    map[string]any `json:"props,omitempty"`
	Children []VDomElem     `json:"children,omitempty"`
}

// used in props for event handlers.  handler identity is the pointer.
type VDomFunc struct {
	Fn   any    `json:"-"`
	Type string `json:"type"`
}

type VDomEvent struct {
	EventType     string `json:"eventtype"`
	TargetValue   string `json:"targetvalue,omitempty"`
	TargetChecked bool   `json:"targetchecked,omitempty"`
	Data          any    `json:"data,omitempty"`
}
