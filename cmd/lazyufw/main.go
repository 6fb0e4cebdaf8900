//go:build linux
// +build linux

package main

import (
	"flag"
	"fmt"
	"os"

	"lazyufw/internal/config"
	"lazyufw/internal/logger"
	"lazyufw/internal/ufw"
	"lazyufw/internal/ui"
	"lazyufw/internal/version"
)

func main() {
	var dryRun bool
	var showVersion bool
	var logLevel string
	var noColor bool
	flag.BoolVar(&dryRun, "dry-run", false, "show changes without applying")
	flag.BoolVar(&dryRun, "n", false, "alias for --dry-run")
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.BoolVar(&showVersion, "v", false, "alias for --version")
	flag.StringVar(&logLevel, "log-level", "", "set log level (debug|info|warn|error)")
	flag.BoolVar(&noColor, "no-color", false, "disable color output")
	flag.Parse()

	if showVersion {
		fmt.Println(version.String())
		return
	}

	cfg, warnings, cfgPath, found, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(2)
	}

	level := cfg.Advanced.LogLevel
	if logLevel != "" {
		level = logLevel
	}
	if err := logger.Init(level); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	if found {
		logger.ConfigLoaded(cfgPath, warnings)
	}

	useSudo := cfg.Behavior.UseSudo && os.Geteuid() != 0
	client, err := ufw.NewClient(ufw.ClientOptions{
		Path: cfg.Advanced.UFWPath,
		Sudo: useSudo,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		fmt.Fprintln(os.Stderr, "Make sure ufw is installed:")
		fmt.Fprintln(os.Stderr, "  sudo apt install ufw")
		os.Exit(1)
	}

	opts := ui.Options{
		DryRun:          dryRun,
		NoColor:         noColor,
		ConfirmDelete:   cfg.Behavior.ConfirmDelete,
		AutoRefreshSecs: cfg.Behavior.AutoRefreshSeconds,
	}
	if err := ui.Run(client, opts); err != nil {
		fmt.Fprintf(os.Stderr, "UI error: %v\n", err)
		os.Exit(1)
	}
}
