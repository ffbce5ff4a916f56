package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/logging"
	"github.com/thenoetrevino/dragboard/internal/replay"
	boardservice "github.com/thenoetrevino/dragboard/internal/services/board"
)

// ReplayCmd returns the replay command
func ReplayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <scenario.yaml>",
		Short: "Replay recorded drag gestures against a board",
		Long: `Replay a scenario file: an initial board plus a list of raw gesture events.
Each event goes through the same code path the terminal UI uses, and the
final board is printed.

Examples:
  # Print the final board as YAML
  dragboard replay scenario.yaml

  # JSON output for agents
  dragboard replay scenario.yaml --json

  # One-line layout for scripts
  LAYOUT=$(dragboard replay scenario.yaml --quiet)

  # Include what every event did
  dragboard replay scenario.yaml --steps

  # Print each applied transition to stderr as it happens
  dragboard replay scenario.yaml --trace
`,
		Args:          cobra.ExactArgs(1),
		RunE:          runReplay,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().Bool("steps", false, "Include the per-event trace in the output")
	cmd.Flags().Bool("trace", false, "Print applied transitions to stderr")
	cmd.Flags().Bool("verbose", false, "Log gesture diagnostics to stderr")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Print the final layout on one line")

	return cmd
}

func runReplay(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	withSteps, _ := cmd.Flags().GetBool("steps")
	trace, _ := cmd.Flags().GetBool("trace")
	verbose, _ := cmd.Flags().GetBool("verbose")

	stderr := cmd.ErrOrStderr()
	formatter := &OutputFormatter{
		JSON:  jsonOutput,
		Quiet: quietMode,
		Out:   cmd.OutOrStdout(),
		Err:   stderr,
	}

	scenario, err := replay.Load(args[0])
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			reportError(formatter, "SCENARIO_NOT_FOUND", fmt.Sprintf("scenario %s not found", args[0]), "")
			return withExitCode(ExitNotFound, err)
		}
		reportError(formatter, "SCENARIO_INVALID", err.Error(),
			"a scenario needs a board with groups and a non-empty events list")
		return withExitCode(ExitDataErr, err)
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := []boardservice.Option{boardservice.WithLogger(logging.New(stderr, level))}
	if trace {
		opts = append(opts, boardservice.WithObserver(traceTo(stderr)))
	}

	result, err := replay.Run(scenario, opts...)
	if err != nil {
		reportError(formatter, "INVALID_BOARD", err.Error(), "")
		return withExitCode(ExitValidation, err)
	}

	if withSteps || quietMode {
		return formatter.Success(result)
	}
	return formatter.Success(result.Board)
}

func reportError(f *OutputFormatter, code, message, suggestion string) {
	if err := f.ErrorWithSuggestion(code, message, suggestion); err != nil {
		log.Printf("Error formatting error message: %v", err)
	}
}

// traceTo returns an observer printing one line per board change
func traceTo(w io.Writer) boardservice.Observer {
	return func(c boardservice.Change) {
		fmt.Fprintf(w, "%-5s %s -> %s (%s)\n", c.Phase, c.Active, c.Target, c.Transition)
	}
}
