package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	zonelockcmd "nioslock-cli/internal/cmd/zonelock"
)

var rootCmd = &cobra.Command{
	Use:   "nioslock",
	Short: "Manage zone locks on an Infoblox NIOS grid",
	Long: `nioslock inspects and toggles the administrative lock on authoritative
zones managed by an Infoblox NIOS grid master, via the WAPI.
Connection settings are read from a gm.ini file (see --config).`,
	Version: "1.0.0",
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "gm.ini", "Grid master ini file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug messages (includes raw WAPI responses)")
	rootCmd.PersistentFlags().Duration("timeout", 30*time.Second, "Per-operation timeout when talking to the grid (0 disables)")
	rootCmd.PersistentFlags().String("env", "", "Path to .env file to load before executing")
	viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	viper.AutomaticEnv()

	zonelockcmd.Register(rootCmd)

	// Credentials may live in a local .env instead of gm.ini. A missing
	// file is fine; only real load errors are worth a warning.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Warning: Error loading .env file: %v\n", err)
		}
	}
}
