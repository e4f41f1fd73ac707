// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	kgerrors "kgdebug/cli/internal/errors"
)

func TestSetupLevels(t *testing.T) {
	orig := logrus.GetLevel()
	defer logrus.SetLevel(orig)

	if err := Setup("debug"); err != nil {
		t.Fatalf("Setup(debug): %v", err)
	}
	if logrus.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %v, want debug", logrus.GetLevel())
	}
	if err := Setup("warn"); err != nil {
		t.Fatalf("Setup(warn): %v", err)
	}
	if logrus.GetLevel() != logrus.WarnLevel {
		t.Errorf("level = %v, want warn", logrus.GetLevel())
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	orig := logrus.GetLevel()
	defer logrus.SetLevel(orig)

	err := Setup("loud")
	if err == nil {
		t.Fatal("Setup accepted an unknown level")
	}
	if !strings.Contains(err.Error(), "loud") {
		t.Errorf("error %q does not name the bad level", err)
	}
	if logrus.GetLevel() != orig {
		t.Errorf("level changed to %v on bad input", logrus.GetLevel())
	}
}

func TestTraceNil(t *testing.T) {
	if got := Trace(nil); got != "" {
		t.Errorf("Trace(nil) = %q, want empty", got)
	}
}

func TestTraceSingleError(t *testing.T) {
	err := kgerrors.New(kgerrors.UnsupportedAction, "unknown action \"x\"")
	got := Trace(err)
	if got != err.Error() {
		t.Errorf("Trace() = %q, want %q", got, err.Error())
	}
	if strings.Contains(got, "caused by") {
		t.Errorf("Trace() invented a cause: %q", got)
	}
}

func TestTraceUnwrapsChain(t *testing.T) {
	root := kgerrors.New(kgerrors.IOFailed, "socket closed")
	err := kgerrors.Wrap(kgerrors.ConnectionFailed, "open connection", root)
	got := Trace(err)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("Trace() = %q, want 2 lines", got)
	}
	if !strings.HasPrefix(lines[1], "  caused by: ") {
		t.Errorf("cause line = %q", lines[1])
	}
	if !strings.Contains(lines[1], "socket closed") {
		t.Errorf("cause line %q missing root error", lines[1])
	}
}
