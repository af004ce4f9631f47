package cli

import (
	"github.com/Kalysbe/quik-api/core/cli/cmd"
	"github.com/Kalysbe/quik-api/core/infrastructure/logging"
)

// Execute runs the CLI
func Execute() error {
	if err := cmd.Execute(); err != nil {
		logging.New("cli").Error("Command failed", err)
		return err
	}
	return nil
}
