package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msto63/rechenwerk/internal/gauss/server"
	"github.com/msto63/rechenwerk/internal/gauss/service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Startet den Gauss-Rechendienst",
	Long: `Startet den Gauss-Rechendienst.

Der Dienst ist zustandslos: jede Aufgabe wird unabhängig berechnet,
optional mit Audit-Trail in SQLite.

Beispiele:
  rechenwerk serve
  rechenwerk serve --port 4242`,
	RunE: runServe,
}

var servePort int

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "gRPC-Port (default aus Config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	appCfg := loadAppConfig()

	cfg := server.DefaultConfig()
	cfg.Host = appCfg.Gauss.Host
	cfg.Port = appCfg.Gauss.Port
	if servePort != 0 {
		cfg.Port = servePort
	}
	if appCfg.Gauss.AuditEnabled {
		cfg.Service = service.Config{
			AuditPath:      appCfg.Gauss.AuditPath,
			AuditRetention: time.Duration(appCfg.Gauss.AuditRetentionDays) * 24 * time.Hour,
		}
	}

	srv, err := server.New(cfg)
	if err != nil {
		printError("Server konnte nicht erstellt werden", err)
		return err
	}

	if err := srv.StartAsync(); err != nil {
		printError("Server konnte nicht gestartet werden", err)
		return err
	}

	fmt.Printf("Gauss (Rechendienst) auf %s\n", srv.Address())
	fmt.Println("Drücke Ctrl+C zum Beenden")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	fmt.Println("\nStoppe Service...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	srv.StopWithTimeout(ctx)

	return nil
}
