package main

import (
	"fmt"
	"net"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-boulder/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Boulder SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own level picker and its own copy of every
level. Sessions are recorded in the shared history database.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.boulder/host_key

Examples:
  boulder serve                           # Listen on :23234 with auto-generated key
  boulder serve --ssh :2222               # Listen on port 2222
  boulder serve --host-key ./my_host_key  # Use specific host key
  boulder serve --db ./sessions.db        # Use specific database

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       app.cfg.Paths.Database,
		IdleTimeout:  time.Duration(flagIdleTimeout) * time.Minute,
		TickInterval: app.cfg.TickInterval(),
		Levels:       mustLoadLevels(),
		Options:      gameOptions(),
		Logger:       app.logger.WithPrefix("boulder-ssh"),
	}

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		log.Fatal("error creating server", "error", err)
	}

	fmt.Printf("Starting Boulder SSH server on %s\n", cfg.Address)
	fmt.Printf("Connect with: ssh localhost -p %s\n", port(cfg.Address))
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		log.Fatal("server error", "error", err)
	}
}

// port returns the port part of a host:port address, or addr itself when it has none.
func port(addr string) string {
	_, p, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	return p
}
