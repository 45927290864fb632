// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

// Package config loads ripple settings from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/wavetermdev/ripple/engine"
	"gopkg.in/yaml.v3"
)

type Settings struct {
	Engine EngineSettings `yaml:"engine"`
	Demo   DemoSettings   `yaml:"demo"`
}

type EngineSettings struct {
	EventPrefix    string        `yaml:"eventprefix"`
	YieldThreshold time.Duration `yaml:"yieldthreshold"`
	LenientHooks   bool          `yaml:"lenienthooks"`
	Verbose        bool          `yaml:"verbose"`
}

type DemoSettings struct {
	FrameInterval time.Duration `yaml:"frameinterval"`
	FrameBudget   time.Duration `yaml:"framebudget"`
	Theme         ThemeSettings `yaml:"theme"`
}

// colors are anything lipgloss.Color accepts ("12", "#ff8800")
type ThemeSettings struct {
	Accent string `yaml:"accent"`
	Muted  string `yaml:"muted"`
	Error  string `yaml:"error"`
	Focus  string `yaml:"focus"`
}

func Default() *Settings {
	return &Settings{
		Engine: EngineSettings{
			EventPrefix:    "on",
			YieldThreshold: engine.DefaultYieldThreshold,
		},
		Demo: DemoSettings{
			FrameInterval: 16 * time.Millisecond,
			FrameBudget:   8 * time.Millisecond,
			Theme: ThemeSettings{
				Accent: "12",
				Muted:  "8",
				Error:  "9",
				Focus:  "11",
			},
		},
	}
}

// Load reads path over the defaults.  keys missing from the file keep their
// default values, unknown keys are an error.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	settings, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return settings, nil
}

func Parse(data []byte) (*Settings, error) {
	settings := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(settings); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}

func (s *Settings) Validate() error {
	if s.Engine.EventPrefix == "" {
		return fmt.Errorf("engine.eventprefix cannot be empty")
	}
	if s.Engine.YieldThreshold < 0 {
		return fmt.Errorf("engine.yieldthreshold cannot be negative (%v)", s.Engine.YieldThreshold)
	}
	if s.Demo.FrameInterval <= 0 {
		return fmt.Errorf("demo.frameinterval must be positive (%v)", s.Demo.FrameInterval)
	}
	if s.Demo.FrameBudget <= 0 || s.Demo.FrameBudget > s.Demo.FrameInterval {
		return fmt.Errorf("demo.framebudget must be positive and at most demo.frameinterval (%v)", s.Demo.FrameBudget)
	}
	return nil
}

// EngineConfig converts the engine section for engine.MakeSession
func (s *Settings) EngineConfig(logger *log.Logger) *engine.Config {
	return &engine.Config{
		EventPrefix:    s.Engine.EventPrefix,
		YieldThreshold: s.Engine.YieldThreshold,
		LenientHooks:   s.Engine.LenientHooks,
		Verbose:        s.Engine.Verbose,
		Logger:         logger,
	}
}

func (s *Settings) String() string {
	out, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("<settings: %v>", err)
	}
	return string(out)
}
