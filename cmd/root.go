package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/dragboard/internal/cli"
	"github.com/thenoetrevino/dragboard/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "dragboard",
	Short: "Dragboard - drag and drop cards between columns in the terminal",
	Long: `Dragboard is a terminal board of columns and cards that you rearrange by
picking things up, moving them over a target and dropping them.

Run without arguments to open the board.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(cli.ReplayCmd())
	rootCmd.AddCommand(cli.ConfigCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
