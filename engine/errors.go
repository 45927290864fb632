// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"errors"
	"fmt"
)

var ErrUnmounted = errors.New("component is no longer mounted")

// InvariantError signals a corrupted fiber tree.  it is always fatal.
type InvariantError struct {
	Op    string
	Fiber FiberId
	Msg   string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("ripple invariant violated in %s (fiber %d): %s", e.Op, e.Fiber, e.Msg)
}

// HookMismatchError is raised when a component instance calls a different
// number of hooks than it did on its previous render.
type HookMismatchError struct {
	Component  string
	InstanceId string
	Expected   int
	Got        int
}

func (e *HookMismatchError) Error() string {
	return fmt.Sprintf("component %q called %d hooks, expected %d (hooks must not be called conditionally)", e.Component, e.Got, e.Expected)
}
