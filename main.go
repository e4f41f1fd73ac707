// Package main is the entry point for the kgdebug CLI application.
// It provides a manual debugging client for the knowledge provider test
// server, driven over a raw socket connection.
package main

import (
	"kgdebug/cli/cmd"
)

// main is the entry point for the kgdebug CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
