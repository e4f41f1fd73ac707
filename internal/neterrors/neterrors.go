// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package neterrors provides user-friendly reporting for socket dial failures.
package neterrors

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"syscall"

	"github.com/pterm/pterm"
)

// IsConnectionRefused checks if the error is a connection refused error.
func IsConnectionRefused(err error) bool {
	if err == nil {
		return false
	}

	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return errors.Is(opErr.Err, syscall.ECONNREFUSED)
	}

	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused")
}

// ConnectionRefusedMessage renders the adb port-forward remediation for a
// server that is not listening. Every line is tab-indented so the block
// stands apart from relayed server output.
func ConnectionRefusedMessage(port int, forwardSocket string) string {
	red := pterm.NewStyle(pterm.FgRed)
	green := pterm.NewStyle(pterm.FgGreen)

	forward := fmt.Sprintf("adb forward tcp:%d localabstract:%s", port, forwardSocket)
	lines := []string{
		"\t" + red.Sprint("[ERROR]") + " Please check port " + green.Sprint(strconv.Itoa(port)) + " is available:",
		"\t$ " + green.Sprint(forward),
		"\t$ " + green.Sprint("adb forward --list"),
	}
	return strings.Join(lines, "\n")
}

// ShowConnectionRefused displays the dial error followed by the forwarding
// instructions that usually fix it.
func ShowConnectionRefused(err error, port int, forwardSocket string) {
	pterm.Println(err)
	pterm.Println(ConnectionRefusedMessage(port, forwardSocket))
}
