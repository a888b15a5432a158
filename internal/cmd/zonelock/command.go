// Package zonelock wires the zone lock operations into the CLI.
package zonelock

import (
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status [zone]",
	Short: "Report zone lock status",
	Long: `Report the lock status of the named zone, or of every zone on the grid
when no zone is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

var lockCmd = &cobra.Command{
	Use:   "lock [zone]",
	Short: "Lock a zone, or every zone on the grid",
	Long: `Lock the named zone (or the zone addressed by --ref). With no target,
every zone on the grid is locked; zones that are already locked are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLock,
}

var unlockCmd = &cobra.Command{
	Use:   "unlock [zone]",
	Short: "Unlock a zone, or every zone on the grid",
	Long: `Unlock the named zone (or the zone addressed by --ref). With no target,
every zone on the grid is unlocked; zones that are already unlocked are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUnlock,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <host>",
	Short: "Find the authoritative zone that owns a host",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test grid master connectivity and credentials",
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

// Register attaches the zone lock commands to parent.
func Register(parent *cobra.Command) {
	parent.AddCommand(statusCmd)
	parent.AddCommand(lockCmd)
	parent.AddCommand(unlockCmd)
	parent.AddCommand(lookupCmd)
	parent.AddCommand(testCmd)
}

func init() {
	for _, cmd := range []*cobra.Command{lockCmd, unlockCmd} {
		cmd.Flags().String("ref", "", "Operate on a zone object reference directly")
		cmd.Flags().Bool("yes", false, "Skip the confirmation prompt when acting on all zones")
	}
}
