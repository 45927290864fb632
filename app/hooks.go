// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/wavetermdev/ripple/engine"
)

// UseState is ripple's analog to React's useState hook.
// It provides persistent state within a component, returning the current
// state value, a setter function, and an updater function.
// Setting a new value schedules a re-render of the whole tree.
// This hook must be called within a component context.
func UseState[T any](initialVal T) (T, func(T), func(func(T) T)) {
	rc := engine.GetGlobalContext()
	if rc == nil {
		panic("UseState must be called within a component (no context)")
	}
	val, setFn := engine.UseState(rc, initialVal)

	// Adapt the "any" values to type "T"
	rtnVal, ok := castState[T](val)
	if !ok {
		panic("UseState hook value is not a state (possible out of order or conditional hooks)")
	}
	typedSetVal := func(newVal T) {
		setFn(func(any) any {
			return newVal
		})
	}
	typedSetFuncVal := func(updateFunc func(T) T) {
		setFn(func(oldVal any) any {
			typedVal, _ := castState[T](oldVal)
			return updateFunc(typedVal)
		})
	}
	return rtnVal, typedSetVal, typedSetFuncVal
}

// nil is a valid state for interface and pointer types
func castState[T any](val any) (T, bool) {
	if val == nil {
		var zero T
		return zero, true
	}
	rtn, ok := val.(T)
	return rtn, ok
}

// Ref holds a mutable value that persists across re-renders
type Ref[T any] struct {
	Current T
}

// UseRef is ripple's analog to React's useRef hook.
// Mutating Current does not cause a re-render.
// This hook must be called within a component context.
func UseRef[T any](val T) *Ref[T] {
	rc := engine.GetGlobalContext()
	if rc == nil {
		panic("UseRef must be called within a component (no context)")
	}
	refVal := engine.UseRef(rc, &Ref[T]{Current: val})
	typedRef, ok := refVal.(*Ref[T])
	if !ok {
		panic("UseRef hook value is not a ref (possible out of order or conditional hooks)")
	}
	return typedRef
}

// UseId returns the underlying component's unique identifier (UUID).
// The ID persists across re-renders but is recreated when the component
// is unmounted and mounted again.
// This hook must be called within a component context.
func UseId() string {
	rc := engine.GetGlobalContext()
	if rc == nil {
		panic("UseId must be called within a component (no context)")
	}
	return engine.UseId(rc)
}
