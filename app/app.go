// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"github.com/wavetermdev/ripple/engine"
	"github.com/wavetermdev/ripple/vdom"
)

// RenderView schedules a render of elem into container.  the work happens
// as the session is driven (DriveWork, Flush or RunOnIdle).
func RenderView(sess *engine.RendererSession, elem *vdom.VDomElem, container engine.HostNode) {
	sess.ScheduleRender(elem, container)
}

// App pairs a session with a FrameScheduler that drives it.
type App struct {
	Session   *engine.RendererSession
	Scheduler *FrameScheduler

	attached bool
}

func MakeApp(host engine.Host, cfg *engine.Config) *App {
	return &App{
		Session:   engine.MakeSession(host, cfg),
		Scheduler: MakeFrameScheduler(),
	}
}

// Render schedules elem into container, attaching the session to the
// scheduler on first use.
func (a *App) Render(elem *vdom.VDomElem, container engine.HostNode) {
	RenderView(a.Session, elem, container)
	if !a.attached {
		a.Session.RunOnIdle(a.Scheduler)
		a.attached = true
	}
}

// Settled reports whether every scheduled render has been committed
func (a *App) Settled() bool {
	return !a.Session.HasPendingWork()
}
