// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package vdom

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/wavetermdev/ripple/util"
)

func TextElem(text string) VDomElem {
	return VDomElem{Kind: HostKind(TextTag), Props: map[string]any{TextPropKey: text}}
}

// Text returns the text of a text element ("" for anything else)
func (e *VDomElem) Text() string {
	if e == nil || !e.Kind.IsText() {
		return ""
	}
	s, _ := e.Props[TextPropKey].(string)
	return s
}

// H builds an element.  kind is a tag string, a *Component or a Kind.
// children may be nil, scalars (become text), elements, or slices of those.
//
// func prop values are wrapped in a new *VDomFunc on every call, and a new
// wrapper is a new handler to the engine (the listener is swapped at commit).
// pass a *VDomFunc made once with Handler to keep a listener attached across
// renders.
func H(kind any, props map[string]any, children ...any) *VDomElem {
	rtn := &VDomElem{Kind: toKind(kind), Props: copyProps(props)}
	for _, part := range children {
		rtn.Children = append(rtn.Children, PartToElems(part)...)
	}
	return rtn
}

func toKind(kind any) Kind {
	switch k := kind.(type) {
	case string:
		return HostKind(k)
	case *Component:
		if k == nil {
			panic("vdom.H called with a nil component")
		}
		return CompKind(k)
	case Kind:
		return k
	}
	panic(fmt.Sprintf("vdom.H invalid kind type %T", kind))
}

func copyProps(props map[string]any) map[string]any {
	if len(props) == 0 {
		return nil
	}
	rtn := make(map[string]any, len(props))
	for k, v := range props {
		if v == nil || k == ChildrenPropKey {
			continue
		}
		rtn[k] = normalizePropVal(v)
	}
	if len(rtn) == 0 {
		return nil
	}
	return rtn
}

// go funcs become *VDomFunc so handlers have a comparable identity
func normalizePropVal(v any) any {
	switch fv := v.(type) {
	case *VDomFunc:
		return fv
	case VDomFunc:
		return &fv
	}
	if reflect.ValueOf(v).Kind() == reflect.Func {
		return Handler(v)
	}
	return v
}

func Handler(fn any) *VDomFunc {
	return &VDomFunc{Fn: fn, Type: ObjectType_Func}
}

// Call runs the handler.  fn may take no args or a single VDomEvent.
// a panicking handler is recovered and returned as an error.
func (f *VDomFunc) Call(event VDomEvent) (rtnErr error) {
	if f == nil || f.Fn == nil {
		return nil
	}
	rval := reflect.ValueOf(f.Fn)
	if rval.Kind() != reflect.Func {
		return fmt.Errorf("handler is not a function (%T)", f.Fn)
	}
	defer func() {
		if panicErr := util.PanicHandler(fmt.Sprintf("event handler %s", event.EventType), recover()); panicErr != nil {
			rtnErr = panicErr
		}
	}()
	rtype := rval.Type()
	switch rtype.NumIn() {
	case 0:
		rval.Call(nil)
	case 1:
		if !reflect.TypeOf(event).AssignableTo(rtype.In(0)) {
			return fmt.Errorf("handler argument must accept a VDomEvent (got %v)", rtype.In(0))
		}
		rval.Call([]reflect.Value{reflect.ValueOf(event)})
	default:
		return fmt.Errorf("handler must take 0 or 1 arguments")
	}
	return nil
}

// IsEventProp reports whether name/val is an event handler prop
func IsEventProp(name string, prefix string, val any) bool {
	if len(name) <= len(prefix) || !strings.HasPrefix(name, prefix) {
		return false
	}
	_, ok := val.(*VDomFunc)
	return ok
}

// EventName converts a handler prop name to its host event name (onClick => click)
func EventName(propName string, prefix string) string {
	return strings.ToLower(strings.TrimPrefix(propName, prefix))
}

func PartToElems(part any) []VDomElem {
	if part == nil {
		return nil
	}
	switch p := part.(type) {
	case VDomElem:
		return []VDomElem{p}
	case *VDomElem:
		if p == nil {
			return nil
		}
		return []VDomElem{*p}
	case []VDomElem:
		return p
	case []*VDomElem:
		var rtn []VDomElem
		for _, e := range p {
			if e != nil {
				rtn = append(rtn, *e)
			}
		}
		return rtn
	case []any:
		var rtn []VDomElem
		for _, sub := range p {
			rtn = append(rtn, PartToElems(sub)...)
		}
		return rtn
	}
	if s, ok := util.ScalarToString(part); ok {
		return []VDomElem{TextElem(s)}
	}
	return []VDomElem{TextElem(fmt.Sprint(part))}
}

func If(cond bool, part any) any {
	if cond {
		return part
	}
	return nil
}

func IfElse(cond bool, part any, elsePart any) any {
	if cond {
		return part
	}
	return elsePart
}

func Ternary[T any](cond bool, trueRtn T, falseRtn T) T {
	if cond {
		return trueRtn
	}
	return falseRtn
}

func ForEach[T any](items []T, fn func(T, int) any) []any {
	elems := make([]any, 0, len(items))
	for idx, item := range items {
		elems = append(elems, fn(item, idx))
	}
	return elems
}

func Classes(classes ...any) string {
	var parts []string
	for _, class := range classes {
		if c, ok := class.(string); ok && c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
