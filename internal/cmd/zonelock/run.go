package zonelock

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	zonelock "nioslock-cli/internal/zonelock"
)

func runStatus(cmd *cobra.Command, args []string) error {
	if err := loadEnvFromFlag(cmd); err != nil {
		return err
	}
	manager, _, ctx, cancel, err := buildManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	var zone string
	if len(args) > 0 {
		zone = strings.TrimSpace(args[0])
	}
	_, err = manager.ReportStatus(ctx, zone)
	return err
}

func runLock(cmd *cobra.Command, args []string) error {
	return runControl(cmd, args, zonelock.ControlOptions{Lock: true})
}

func runUnlock(cmd *cobra.Command, args []string) error {
	return runControl(cmd, args, zonelock.ControlOptions{Unlock: true})
}

func runControl(cmd *cobra.Command, args []string, opts zonelock.ControlOptions) error {
	if err := loadEnvFromFlag(cmd); err != nil {
		return err
	}
	manager, _, ctx, cancel, err := buildManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	if len(args) > 0 {
		opts.FQDN = strings.TrimSpace(args[0])
	}
	opts.Ref = strings.TrimSpace(mustGetStringFlag(cmd, "ref"))

	if opts.FQDN == "" && opts.Ref == "" {
		action := "Lock"
		if opts.Unlock {
			action = "Unlock"
		}
		ok, err := confirmBatch(cmd, action)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
			return nil
		}
		return manager.ProcessAll(ctx, opts)
	}

	return manager.ControlZone(ctx, opts)
}

func runLookup(cmd *cobra.Command, args []string) error {
	if err := loadEnvFromFlag(cmd); err != nil {
		return err
	}
	_, client, ctx, cancel, err := buildManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	zone, err := client.ResolveZone(ctx, args[0])
	if err != nil {
		return err
	}
	line := fmt.Sprintf("Zone: %s, Locked: %t", zone.FQDN, zone.Locked)
	if zone.Locked {
		line += fmt.Sprintf(", Locked by: %s", zone.LockedBy)
	}
	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}

func runTest(cmd *cobra.Command, _ []string) error {
	if err := loadEnvFromFlag(cmd); err != nil {
		return err
	}
	_, client, ctx, cancel, err := buildManager(cmd)
	if err != nil {
		return err
	}
	defer cancel()

	if err := client.Ping(ctx); err != nil {
		return fmt.Errorf("grid master check failed: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Grid master reachable, credentials accepted")
	return nil
}
