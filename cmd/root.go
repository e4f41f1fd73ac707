// Copyright (c) 2025 KGDebug
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the kgdebug CLI
// application. It implements the single-invocation surface using the Cobra
// framework: parse flags, resolve configuration, run one action against
// the knowledge provider test server, and exit.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"kgdebug/cli/internal/action"
	"kgdebug/cli/internal/client"
	"kgdebug/cli/internal/config"
	kgerrors "kgdebug/cli/internal/errors"
	"kgdebug/cli/internal/logging"
	"kgdebug/cli/internal/neterrors"
)

var (
	showVersion  bool
	debugMode    bool
	actionName   string
	datastore    string
	inputFile    string
	inputString  string
	flagHost     string
	flagPort     int
	flagLogLevel string
)

// rootCmd represents the base command. The tool has no subcommands: one
// invocation performs exactly one action and exits.
var rootCmd = &cobra.Command{
	Use:   "kgdebug",
	Short: "Debug client for the knowledge provider test server",
	Long: `kgdebug drives the knowledge provider test server over a raw socket:
it sends one action command line, optionally streams an input payload, and
prints everything the server writes back.

` + action.Describe(),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("kgdebug %s\n", Version)
			return nil
		}
		return run(cmd)
	},
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.Trace(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Activate debug info")
	rootCmd.Flags().StringVar(&actionName, "action", "", "See the list below for supported action types.")
	rootCmd.Flags().StringVar(&datastore, "datastore", "", "Name of target datastore. Default datastore will be used if not given.")
	rootCmd.Flags().StringVar(&inputFile, "input-file", "", "Path to the input file.")
	rootCmd.Flags().StringVar(&inputString, "input-string", "", "Input string to be sent.")
	rootCmd.Flags().StringVar(&flagHost, "host", "", "Server host to connect to.")
	rootCmd.Flags().IntVar(&flagPort, "port", 0, "Server port to connect to.")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	_ = rootCmd.RegisterFlagCompletionFunc("action",
		func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			return action.Names(), cobra.ShellCompDirectiveNoFileComp
		})
}

// run performs the single action selected on the command line. All
// validation happens before the socket is opened.
func run(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.LogLevel); err != nil {
		return err
	}

	if actionName == "" {
		return kgerrors.New(kgerrors.UnsupportedAction, "--action is required (see --help for the action list)")
	}
	a, err := action.Parse(actionName)
	if err != nil {
		return err
	}
	in := buildInput()
	if a.NeedsInput() && in == nil {
		return kgerrors.New(kgerrors.UnsupportedInput,
			fmt.Sprintf("action %s requires --input-file or --input-string", a))
	}

	c := client.New(cfg, nil)
	defer c.Close()

	if err := c.Open(cmd.Context()); err != nil {
		if neterrors.IsConnectionRefused(err) {
			neterrors.ShowConnectionRefused(err, cfg.Port, cfg.ForwardSocket)
			return nil
		}
		return err
	}

	if debugMode {
		if err := c.DebugBegin(); err != nil {
			return err
		}
	} else {
		if err := c.DebugEnd(); err != nil {
			return err
		}
	}

	return c.Run(a, in, datastore)
}

// resolveConfig layers flag overrides on top of the loaded configuration.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("host") {
		cfg.Host = flagHost
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = flagPort
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// buildInput selects the payload source. A file path wins over an inline
// string; empty values count as absent.
func buildInput() client.Input {
	if inputFile != "" {
		return client.NewFileInput(inputFile)
	}
	if inputString != "" {
		return client.NewStringInput(inputString)
	}
	return nil
}
