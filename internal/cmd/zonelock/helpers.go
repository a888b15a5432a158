package zonelock

import (
	"context"
	"fmt"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nioslock-cli/internal/config"
	"nioslock-cli/internal/logging"
	"nioslock-cli/internal/wapi"
	zonelock "nioslock-cli/internal/zonelock"
)

// mustGetStringFlag retrieves a string flag value.
// Errors are ignored because cobra guarantees flags exist if they're defined.
func mustGetStringFlag(cmd *cobra.Command, name string) string {
	val, _ := cmd.Flags().GetString(name)
	return val
}

// mustGetBoolFlag retrieves a bool flag value.
// Errors are ignored because cobra guarantees flags exist if they're defined.
func mustGetBoolFlag(cmd *cobra.Command, name string) bool {
	val, _ := cmd.Flags().GetBool(name)
	return val
}

// mustGetDurationFlag retrieves a duration flag value.
// Errors are ignored because cobra guarantees flags exist if they're defined.
func mustGetDurationFlag(cmd *cobra.Command, name string) time.Duration {
	val, _ := cmd.Flags().GetDuration(name)
	return val
}

func loadEnvFromFlag(cmd *cobra.Command) error {
	path := mustGetStringFlag(cmd, "env")
	if path == "" {
		return nil
	}
	if err := godotenv.Overload(path); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// buildManager assembles logger, config, WAPI client and manager for a
// command invocation, plus a context honoring the --timeout flag.
// Debug verbosity is read through viper so the bound flag and a DEBUG
// environment variable both flip it.
func buildManager(cmd *cobra.Command) (*zonelock.Manager, *wapi.Client, context.Context, context.CancelFunc, error) {
	logger := logging.Configure(viper.GetBool("debug"), cmd.ErrOrStderr())

	cfg, err := config.Load(mustGetStringFlag(cmd, "config"), logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	client, err := wapi.NewClient(wapi.Config{
		GridMaster:   cfg.GridMaster,
		APIVersion:   cfg.APIVersion,
		Username:     cfg.Username,
		Password:     cfg.Password,
		ValidateCert: cfg.ValidateCert,
	}, logger)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	var ctx context.Context
	var cancel context.CancelFunc
	if timeout := mustGetDurationFlag(cmd, "timeout"); timeout > 0 {
		ctx, cancel = context.WithTimeout(cmd.Context(), timeout)
	} else {
		ctx, cancel = context.WithCancel(cmd.Context())
	}

	manager := zonelock.NewManager(client, logger, cmd.OutOrStdout())
	return manager, client, ctx, cancel, nil
}

// askConfirm prompts the operator; swapped out in tests.
var askConfirm = func(message string) (bool, error) {
	confirmed := false
	prompt := &survey.Confirm{Message: message}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// confirmBatch asks before a grid-wide lock/unlock unless --yes was given.
func confirmBatch(cmd *cobra.Command, action string) (bool, error) {
	if mustGetBoolFlag(cmd, "yes") {
		return true, nil
	}
	return askConfirm(fmt.Sprintf("%s every zone on the grid?", action))
}
