// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"time"

	"github.com/wavetermdev/ripple/vdom"
)

// HostNode is an opaque handle owned by the host.  handles must be comparable.
type HostNode = any

// Host is the set of node primitives the commit phase drives.
// the engine only ever calls these from within a commit.
type Host interface {
	CreateNode(tag string) HostNode
	SetProperty(node HostNode, name string, val any)
	RemoveProperty(node HostNode, name string)
	AddEventListener(node HostNode, event string, handler *vdom.VDomFunc)
	RemoveEventListener(node HostNode, event string, handler *vdom.VDomFunc)
	AppendChild(parent HostNode, child HostNode)
	InsertBefore(parent HostNode, child HostNode, before HostNode)
	RemoveChild(parent HostNode, child HostNode)
}

// IdleScheduler is the host's idle-time primitive.  cb is invoked once with an
// estimate of the time left before the host needs the thread back.
type IdleScheduler interface {
	ScheduleIdleWork(cb func(timeRemaining time.Duration))
}
