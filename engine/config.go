// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package engine

import (
	"log"
	"time"

	"github.com/wavetermdev/ripple/vdom"
)

const DefaultYieldThreshold = time.Millisecond

type Config struct {
	EventPrefix    string        // prefix marking handler props, "on" by default
	YieldThreshold time.Duration // DriveWork yields once less than this is left
	LenientHooks   bool          // log hook count mismatches instead of failing the component
	Verbose        bool          // log every render and commit
	Logger         *log.Logger
}

func DefaultConfig() Config {
	return Config{
		EventPrefix:    vdom.EventPrefix,
		YieldThreshold: DefaultYieldThreshold,
		Logger:         log.Default(),
	}
}

func (c Config) withDefaults() Config {
	if c.EventPrefix == "" {
		c.EventPrefix = vdom.EventPrefix
	}
	if c.YieldThreshold == 0 {
		c.YieldThreshold = DefaultYieldThreshold
	}
	if c.YieldThreshold < 0 {
		c.YieldThreshold = 0
	}
	if c.Logger == nil {
		c.Logger = log.Default()
	}
	return c
}
