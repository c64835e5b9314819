// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the word frequency server and CLI application.

WordFreq counts how often words occur in a text. A word is a run of ASCII
letters, compared case-insensitively. Three queries are answered: the highest
frequency of any word, the frequency of a given word, and the N most frequent
words.

# Usage

Start the HTTP server with default settings:

	wordfreq

Listen on another address and enable debug mode:

	wordfreq -addr :9090 -d

Serve msgpack over stdin/stdout for editor and process integration:

	wordfreq -ipc

Run in CLI mode for interactive testing:

	wordfreq -c -limit 5 -word java

# HTTP API

	POST /rest/word-count/highest-frequency   {"text": "..."}
	POST /rest/word-count/frequency-for-word  {"text": "...", "word": "..."}
	POST /rest/word-count/top-frequency       {"text": "...", "n": 3}
	GET  /health
	GET  /metrics

Failures are answered with {"reason": "...", "reference": "<uuid>"}; the same
reference is logged on the server.

# Configuration

Runtime configuration lives in a TOML file, created with defaults when it
does not exist:

	[server]
	addr = ":8080"
	max_body_bytes = 1048576
	read_timeout_seconds = 10
	write_timeout_seconds = 10
	shutdown_timeout_seconds = 5
	enable_metrics = true

	[log]
	level = "info"
	formatter = "text"
	timestamp = true

	[cli]
	default_limit = 10

# Command Line Flags

	-version
	    Show current version
	-config string
	    Path to a custom config file
	-rebuild-config
	    Overwrite the default config file with defaults and exit
	-addr string
	    Listen address, overrides the config
	-d  Enable debug mode with detailed logging
	-c  Run in CLI mode instead of server mode
	-ipc
	    Serve msgpack requests over stdin/stdout
	-limit int
	    Number of words listed in CLI mode (default from config)
	-word string
	    Also count this word in CLI mode
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordfreq/internal/cli"
	"github.com/bastiangx/wordfreq/internal/logger"
	"github.com/bastiangx/wordfreq/internal/metrics"
	"github.com/bastiangx/wordfreq/pkg/analyzer"
	"github.com/bastiangx/wordfreq/pkg/config"
	"github.com/bastiangx/wordfreq/pkg/ipc"
	"github.com/bastiangx/wordfreq/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

const (
	Version = "0.3.0"
	AppName = "wordfreq"
	gh      = "https://github.com/bastiangx/wordfreq"
)

// main only manages the flow: the server, IPC and CLI packages hold the logic.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to custom config.toml file")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config.toml with defaults and exit")
	addr := flag.String("addr", "", "Listen address, overrides the config (e.g. :9090)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	ipcMode := flag.Bool("ipc", false, "Serve msgpack requests over stdin/stdout")
	limit := flag.Int("limit", 0, "Number of words listed in CLI mode (default from config)")
	word := flag.String("word", "", "Also count this word in CLI mode")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *rebuildConfig {
		if err := config.RebuildConfigFile(); err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		path, _ := config.GetDefaultConfigPath()
		log.Infof("Rebuilt config at: %s", path)
		os.Exit(0)
	}

	appConfig, configPath, err := config.LoadConfigWithPriority(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Configure(appConfig.Log)
	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(configPath))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := analyzer.New()

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		n := *limit
		if n <= 0 {
			n = appConfig.CLI.DefaultLimit
		}
		log.Debug("Input info:", "limit", n, "word", *word)

		inputHandler := cli.NewInputHandler(a, n, *word, os.Stdin, os.Stdout)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	var m *metrics.Metrics
	if appConfig.Server.EnableMetrics {
		m = metrics.New()
	}

	if *ipcMode {
		log.Debug("spawning IPC")
		if err := ipc.NewServer(a, os.Stdin, os.Stdout, m).Start(); err != nil {
			log.Fatalf("IPC error: %v", err)
		}
		return
	}

	if *addr != "" {
		appConfig.Server.Addr = *addr
	}
	if log.GetLevel() > log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := server.NewServer(a, appConfig.Server, m, logger.NewWithConfig(os.Stderr, "http", appConfig.Log))
	showStartupInfo(appConfig.Server.Addr, configPath)

	if err := srv.Start(ctx); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
	fmt.Fprintf(os.Stderr, "\nExiting...\n")
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ WordFreq ] Counts words in text, over HTTP, IPC or the terminal")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(addr, configPath string) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("==========")
	println(" WordFreq ")
	println("==========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("config: ( %s )", config.GetActiveConfigPath(configPath))
	log.Infof("listening on: ( %s )", addr)
	println("==========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
