// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging configures the process-wide logger and formats error
// chains for terminal display.
//
// Diagnostics always go to stderr through logrus so that stdout stays
// reserved for bytes relayed from the server.
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Setup applies the requested level to the process-wide logger and pins
// its output to stderr.
func Setup(level string) error {
	logrus.SetOutput(os.Stderr)
	lv, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("unknown log level %q", level)
	}
	logrus.SetLevel(lv)
	return nil
}

// Trace renders an error with its full cause chain, one cause per line.
func Trace(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(err.Error())
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(&b, "\n  caused by: %v", cause)
	}
	return b.String()
}
