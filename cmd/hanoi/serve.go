package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-hanoi/internal/config"
	"github.com/vovakirdan/tui-hanoi/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeDiscs  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Hanoi SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session with its own puzzle.
Results are stored per-server (all users share the same scoreboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.hanoi/host_key

Examples:
  hanoi serve                           # Listen on :23234 with auto-generated key
  hanoi serve --ssh :2222               # Listen on port 2222
  hanoi serve --host-key ./my_host_key  # Use specific host key
  hanoi serve --db ./results.db         # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagServeDiscs, "discs", 3, "Disc count each session's menu starts at")
}

func runServe(_ *cobra.Command, _ []string) {
	if flagServeDiscs < config.MinDiscs || flagServeDiscs > config.MaxDiscs {
		fmt.Fprintf(os.Stderr, "Error: --discs must be between %d and %d\n", config.MinDiscs, config.MaxDiscs)
		os.Exit(1)
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DBPath = flagDBPath
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Lang = flagLang
	cfg.TickRate = flagFPS
	cfg.Discs = flagServeDiscs

	server, err := tui.NewSSHServer(cfg, logger.WithPrefix("hanoi-ssh"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Hanoi SSH server on %s\n", cfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23234")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
