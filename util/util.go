// Copyright 2025, Command Line Inc.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"io"
	"log"
	"runtime/debug"
	"strings"
)

// DiscardLogger drops everything written to it.
var DiscardLogger = log.New(io.Discard, "", 0)

// PanicHandler handles panic recovery and logging.
// It can be called directly with recover() without checking for nil first.
// Example usage:
//
//	defer func() {
//	    util.PanicHandler("operation name", recover())
//	}()
func PanicHandler(debugStr string, recoverVal any) error {
	return PanicHandlerWithLogger(log.Default(), debugStr, recoverVal)
}

// PanicHandlerWithLogger is PanicHandler reporting to a specific logger.
// The stack is only printed for the default logger.
func PanicHandlerWithLogger(logger *log.Logger, debugStr string, recoverVal any) error {
	if recoverVal == nil {
		return nil
	}
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("[panic] in %s: %v\n", debugStr, recoverVal)
	if logger == log.Default() {
		debug.PrintStack()
	}
	if err, ok := recoverVal.(error); ok {
		return fmt.Errorf("panic in %s: %w", debugStr, err)
	}
	return fmt.Errorf("panic in %s: %v", debugStr, recoverVal)
}

func CapitalizeAscii(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func IsUpperAscii(s string) bool {
	return s != "" && s[0] >= 'A' && s[0] <= 'Z'
}
