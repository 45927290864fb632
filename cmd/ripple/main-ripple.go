// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/wavetermdev/ripple/cmd/ripple/cmd"
)

// these are set at build time
var RippleVersion = "0.0.0"
var BuildTime = "0"

func main() {
	cmd.RippleVersion = RippleVersion
	cmd.BuildTime = BuildTime
	cmd.Execute()
}
