// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/wavetermdev/ripple/util"
	"github.com/wavetermdev/ripple/vdom"
)

type RenderStats struct {
	Renders        int // renders scheduled (initial + state triggered)
	Commits        int
	Abandoned      int // renders superseded before they could commit
	Units          int // units of work processed
	Yields         int // DriveWork calls that returned with work left
	Placements     int
	Updates        int
	Deletions      int
	DroppedUpdates int // state updates aimed at unmounted components
	LiveFibers     int
}

// RendererSession owns one fiber tree rendered into one host container.
// A session is single threaded: DriveWork, ScheduleRender and state updaters
// must all be called from the same goroutine.
type RendererSession struct {
	SessionId string
	Host      Host
	Config    Config
	CFuncs    map[string]*vdom.Component // component name => component (for string tags)

	container HostNode
	rootElems []vdom.VDomElem // latest requested view

	arena       *fiberArena
	nextUnit    FiberId
	wipRoot     FiberId
	currentRoot FiberId
	deletions   []FiberId
	instances   map[string]FiberId // component instance id => committed fiber

	inUnit          bool
	updateRequested bool
	stats           RenderStats
}

func MakeSession(host Host, cfg *Config) *RendererSession {
	if host == nil {
		panic("ripple: MakeSession requires a host")
	}
	var c Config
	if cfg != nil {
		c = *cfg
	}
	return &RendererSession{
		SessionId: uuid.New().String(),
		Host:      host,
		Config:    c.withDefaults(),
		CFuncs:    make(map[string]*vdom.Component),
		arena:     makeFiberArena(),
		instances: make(map[string]FiberId),
	}
}

func (s *RendererSession) logger() *log.Logger {
	return s.Config.Logger
}

func (s *RendererSession) logf(format string, args ...any) {
	s.logger().Printf("[ripple] "+format, args...)
}

func (s *RendererSession) verbosef(format string, args ...any) {
	if s.Config.Verbose {
		s.logf(format, args...)
	}
}

// RegisterComponent makes cfunc available under a capitalized tag name, so
// vdom.H("Name", ...) and <Name/> markup render it.
func (s *RendererSession) RegisterComponent(name string, cfunc any) error {
	if !util.IsUpperAscii(name) {
		return fmt.Errorf("component name %q must start with an uppercase letter", name)
	}
	comp, err := vdom.MakeComponent(name, cfunc)
	if err != nil {
		return err
	}
	s.CFuncs[name] = comp
	return nil
}

// ScheduleRender starts a render of elem into container.  any render in
// progress is abandoned.  nothing happens until DriveWork is called.
func (s *RendererSession) ScheduleRender(elem *vdom.VDomElem, container HostNode) {
	if container == nil {
		panic(&InvariantError{Op: "ScheduleRender", Msg: "a host container is required"})
	}
	s.container = container
	s.rootElems = nil
	if elem != nil {
		s.rootElems = []vdom.VDomElem{*elem}
	}
	s.startRender()
}

// re-renders the latest requested view, used by state updates
func (s *RendererSession) scheduleUpdate() {
	if s.container == nil {
		return
	}
	s.startRender()
}

func (s *RendererSession) startRender() {
	if s.wipRoot != NoFiber {
		s.stats.Abandoned++
		s.verbosef("session %s abandoning render in progress\n", s.SessionId)
	}
	root := &Fiber{
		Kind:     vdom.HostKind(vdom.RootTag),
		HostNode: s.container,
		Children: s.rootElems,
	}
	s.deletions = nil
	if cur := s.arena.get(s.currentRoot); cur != nil {
		if cur.HostNode == s.container {
			root.Alternate = s.currentRoot
		} else {
			// new container, the old tree goes away entirely
			for c := cur.Child; c != NoFiber; c = s.arena.get(c).Sibling {
				s.deletions = append(s.deletions, c)
			}
		}
	}
	s.wipRoot = s.arena.alloc(root)
	s.nextUnit = s.wipRoot
	s.stats.Renders++
	s.verbosef("session %s render #%d scheduled\n", s.SessionId, s.stats.Renders)
}

// requestUpdate defers updates fired while a unit of work is running
func (s *RendererSession) requestUpdate() {
	if s.inUnit {
		s.updateRequested = true
		return
	}
	s.scheduleUpdate()
}

// DriveWork processes units of work until none remain or less than
// Config.YieldThreshold of budget is left.  at least one unit is processed when
// work is pending, so DriveWork(0) advances exactly one unit.  when the render
// completes it is committed before returning.  returns true if work remains.
func (s *RendererSession) DriveWork(budget time.Duration) bool {
	deadline := time.Now().Add(budget)
	return s.workLoop(func() bool {
		return time.Until(deadline) < s.Config.YieldThreshold
	})
}

// Flush runs all pending work to completion, including the commit.
func (s *RendererSession) Flush() {
	s.workLoop(nil)
}

func (s *RendererSession) workLoop(shouldYield func() bool) bool {
	for s.nextUnit != NoFiber {
		s.nextUnit = s.runUnit(s.nextUnit)
		s.stats.Units++
		if s.nextUnit != NoFiber && shouldYield != nil && shouldYield() {
			s.stats.Yields++
			return true
		}
	}
	if s.wipRoot != NoFiber {
		s.commitRoot()
	}
	return s.nextUnit != NoFiber
}

func (s *RendererSession) runUnit(id FiberId) FiberId {
	s.inUnit = true
	next := s.performUnitOfWork(id)
	s.inUnit = false
	if s.updateRequested {
		s.updateRequested = false
		s.scheduleUpdate()
		return s.nextUnit
	}
	return next
}

// RunOnIdle drives this session from the host's idle callbacks, re-arming
// after every slice (the engine never runs on its own initiative).
func (s *RendererSession) RunOnIdle(idle IdleScheduler) {
	var loop func(time.Duration)
	loop = func(remaining time.Duration) {
		s.DriveWork(remaining)
		idle.ScheduleIdleWork(loop)
	}
	idle.ScheduleIdleWork(loop)
}

func (s *RendererSession) HasPendingWork() bool {
	return s.nextUnit != NoFiber || s.wipRoot != NoFiber
}

func (s *RendererSession) Stats() RenderStats {
	rtn := s.stats
	rtn.LiveFibers = s.arena.live()
	return rtn
}

func (s *RendererSession) CurrentRoot() FiberId {
	return s.currentRoot
}

// Fiber returns the fiber for id (nil if released).  callers must not mutate it.
func (s *RendererSession) Fiber(id FiberId) *Fiber {
	return s.arena.get(id)
}
