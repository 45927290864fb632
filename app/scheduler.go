// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"sync"
	"time"
)

// FrameScheduler is an engine.IdleScheduler that hands out time slices at
// frame boundaries.  callbacks queued during a frame wait for the next one.
type FrameScheduler struct {
	lock  sync.Mutex
	queue []func(time.Duration)
}

func MakeFrameScheduler() *FrameScheduler {
	return &FrameScheduler{}
}

func (fs *FrameScheduler) ScheduleIdleWork(cb func(timeRemaining time.Duration)) {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	fs.queue = append(fs.queue, cb)
}

func (fs *FrameScheduler) Pending() int {
	fs.lock.Lock()
	defer fs.lock.Unlock()
	return len(fs.queue)
}

// RunFrame runs the callbacks queued before the frame started.  they share
// budget, each one is told how much of it is left.  returns the number run.
func (fs *FrameScheduler) RunFrame(budget time.Duration) int {
	fs.lock.Lock()
	cbs := fs.queue
	fs.queue = nil
	fs.lock.Unlock()
	deadline := time.Now().Add(budget)
	for _, cb := range cbs {
		cb(max(time.Until(deadline), 0))
	}
	return len(cbs)
}

// Run calls RunFrame every interval until ctx is done.  sessions driven
// this way must only be touched from the goroutine calling Run.
func (fs *FrameScheduler) Run(ctx context.Context, interval time.Duration, budget time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			fs.RunFrame(budget)
		}
	}
}
