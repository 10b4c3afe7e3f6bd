package cmd

import (
	"fmt"
	"io"
	"os"

	rwlog "github.com/msto63/rechenwerk/foundation/core/log"
	"github.com/msto63/rechenwerk/internal/client"
	"github.com/msto63/rechenwerk/internal/repl"
	"github.com/msto63/rechenwerk/internal/transport"
	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/msto63/rechenwerk/pkg/core/logging"
	"github.com/spf13/cobra"
)

var (
	replHost string
	replPort int
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Startet den interaktiven Rechner-Client",
	Long: `Startet den interaktiven Rechner-Client.

Aufgaben ("<x> + <y>", "<x> - <y>") werden an den Gauss-Dienst
geschickt. Ohne Verbindung werden Aufgaben gepuffert und nach dem
nächsten erfolgreichen Connect in Eingabereihenfolge abgearbeitet.

Beispiele:
  rechenwerk repl
  rechenwerk repl --host rechner.local --port 4242`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
	replCmd.Flags().StringVar(&replHost, "host", "", "Gauss-Host (default aus Config)")
	replCmd.Flags().IntVar(&replPort, "port", 0, "Gauss-Port (default aus Config)")
}

// engineHandle breaks the construction cycle: the REPL is the machine's
// reporter, the machine is the REPL's engine. The handle is filled in
// before the REPL starts reading input.
type engineHandle struct {
	m *client.Machine
}

func (e *engineHandle) Submit(task client.Task) {
	e.m.Submit(task)
}

func (e *engineHandle) Connect(host string, port uint16) {
	e.m.Connect(host, port)
}

func runRepl(cmd *cobra.Command, args []string) error {
	cfg := loadAppConfig()

	host := cfg.Client.Host
	port := cfg.Client.Port
	if replHost != "" {
		host = replHost
	}
	if replPort != 0 {
		port = replPort
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("ungültiger Port: %d", port)
	}

	engine := &engineHandle{}
	ui := repl.New(engine, os.Stdin, os.Stdout)

	machine := client.New(client.Config{
		TaskTimeout:    cfg.Client.TaskTimeout.Duration,
		ResolveTimeout: cfg.Client.ResolveTimeout.Duration,
		RetryLimit:     cfg.Client.RetryLimit,
		RetryBackoff:   cfg.Client.RetryBackoff.Duration,
	}, transport.NewResolver(nil), transport.NewDetector(), ui, newReplLogger(cfg))
	engine.m = machine

	machine.Start()
	defer machine.Stop()

	if cfg.Client.AutoConnect || replHost != "" || replPort != 0 {
		ui.Status(fmt.Sprintf("*** connecting to %s:%d ...", host, port))
		machine.Connect(host, uint16(port))
	}

	return ui.Run()
}

// newReplLogger builds a logger that stays out of the interactive
// session: entries go to the configured log file, or to stderr at warn
// level when no file is set.
func newReplLogger(cfg *config.Config) *rwlog.Logger {
	level := rwlog.LevelWarn
	if verbose {
		level = rwlog.LevelDebug
	}

	var output io.Writer = os.Stderr
	if cfg.General.LogFile != "" {
		// Fallback is silenced so log entries never interleave with the
		// prompt
		fw, err := logging.NewFileWriter(logging.FileWriterConfig{
			Path:     cfg.General.LogFile,
			Fallback: io.Discard,
		})
		if err == nil {
			output = fw
			level = parseReplLevel(cfg.General.LogLevel, level)
		}
	}

	return rwlog.NewWithConfig(rwlog.Config{
		Level:  level,
		Format: rwlog.FormatText,
		Output: output,
		Name:   "rechenwerk",
	})
}

func parseReplLevel(s string, fallback rwlog.Level) rwlog.Level {
	switch s {
	case "trace":
		return rwlog.LevelTrace
	case "debug":
		return rwlog.LevelDebug
	case "info":
		return rwlog.LevelInfo
	case "warn", "warning":
		return rwlog.LevelWarn
	case "error":
		return rwlog.LevelError
	default:
		return fallback
	}
}
