// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"sync"

	"github.com/outrigdev/goid"
)

// render contexts are set ONLY while a component function runs, keyed by the
// rendering goroutine so sessions on different goroutines don't see each other
var globalRenderCtx = make(map[uint64]*RenderContextImpl)
var globalCtxMutex sync.Mutex

func withGlobalCtx[T any](vc *RenderContextImpl, fn func() T) T {
	gid := goid.Get()
	globalCtxMutex.Lock()
	prev := globalRenderCtx[gid]
	globalRenderCtx[gid] = vc
	globalCtxMutex.Unlock()
	defer func() {
		globalCtxMutex.Lock()
		defer globalCtxMutex.Unlock()
		if prev == nil {
			delete(globalRenderCtx, gid)
		} else {
			globalRenderCtx[gid] = prev
		}
	}()
	return fn()
}

// GetGlobalContext returns the render context of the component currently
// rendering on this goroutine, or nil outside of a render.
func GetGlobalContext() *RenderContextImpl {
	globalCtxMutex.Lock()
	defer globalCtxMutex.Unlock()
	return globalRenderCtx[goid.Get()]
}
