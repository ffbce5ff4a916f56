package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(configInitCmd())

	return cmd
}

// configInitResult is what config init reports
type configInitResult struct {
	Path string `json:"path" yaml:"path"`
}

func (r configInitResult) QuietSummary() string {
	return r.Path
}

// configInitCmd returns the config init subcommand
func configInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Long: `Write the default key mappings, theme and board settings to
$XDG_CONFIG_HOME/dragboard/config.yaml (or ~/.config/dragboard/config.yaml)
so they can be edited.

Examples:
  # Create the file
  dragboard config init

  # Replace an existing file with the defaults
  dragboard config init --force

  # Quiet mode prints the path only
  $EDITOR "$(dragboard config init --quiet)"
`,
		Args:          cobra.NoArgs,
		RunE:          runConfigInit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   cmd.ErrOrStderr(),
	}

	path, err := config.Path()
	if err != nil {
		reportError(formatter, "CONFIG_PATH_ERROR", err.Error(), "set XDG_CONFIG_HOME or HOME")
		return withExitCode(ExitError, err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		err := fmt.Errorf("config file %s already exists", path)
		reportError(formatter, "CONFIG_EXISTS", err.Error(), "pass --force to overwrite it")
		return withExitCode(ExitUsage, err)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		reportError(formatter, "CONFIG_PATH_ERROR", err.Error(), "")
		return withExitCode(ExitError, err)
	}

	if err := config.Default().Save(); err != nil {
		reportError(formatter, "CONFIG_WRITE_ERROR", err.Error(), "")
		return withExitCode(ExitError, err)
	}

	return formatter.Success(configInitResult{Path: path})
}
