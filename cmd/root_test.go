// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"testing"

	"kgdebug/cli/internal/client"
)

func setInputs(t *testing.T, file, str string) {
	t.Helper()
	origFile, origStr := inputFile, inputString
	t.Cleanup(func() { inputFile, inputString = origFile, origStr })
	inputFile, inputString = file, str
}

func TestBuildInputFileWinsOverString(t *testing.T) {
	setInputs(t, "facts.nt", "SELECT ?x")
	in := buildInput()
	if _, ok := in.(client.FileInput); !ok {
		t.Errorf("buildInput() = %T, want client.FileInput", in)
	}
}

func TestBuildInputString(t *testing.T) {
	setInputs(t, "", "SELECT ?x")
	in := buildInput()
	if _, ok := in.(client.StringInput); !ok {
		t.Errorf("buildInput() = %T, want client.StringInput", in)
	}
}

func TestBuildInputEmptyValuesCountAsAbsent(t *testing.T) {
	setInputs(t, "", "")
	if in := buildInput(); in != nil {
		t.Errorf("buildInput() = %v, want nil", in)
	}
}
