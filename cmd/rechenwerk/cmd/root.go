package cmd

import (
	"fmt"
	"os"

	"github.com/msto63/rechenwerk/pkg/core/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rechenwerk",
	Short: "Rechenwerk - Verteilter Taschenrechner",
	Long: `Rechenwerk ist ein verteilter Taschenrechner: ein zustandsloser
Rechendienst und ein ausfallsicherer interaktiver Client.

Komponenten:
  gauss   - Rechendienst (gRPC :4242)
  repl    - Interaktiver Client`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}

// loadAppConfig loads the central configuration, falling back to defaults
// when no config file is found
func loadAppConfig() *config.Config {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			printError("Config nicht geladen", err)
			return config.Default()
		}
		return cfg
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		if verbose {
			fmt.Printf("Warnung: Config nicht geladen (%v), nutze Defaults\n", err)
		}
		return config.Default()
	}
	return cfg
}
