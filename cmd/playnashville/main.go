package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imuzolev/playnashville/cmd/playnashville/commands"
	"github.com/imuzolev/playnashville/logger"
)

var rootCmd = &cobra.Command{
	Use:   "playnashville",
	Short: "Annotate song chords with Nashville-style scale degrees",
	Long: `playnashville reads song text with chord symbols, figures out the key,
and rewrites the text with the scale degree of every diatonic chord
appended in parentheses.

Examples:
  playnashville -i song.txt                # annotate a file, auto-detect key
  cat song.txt | playnashville --key Am    # force the key
  playnashville keys                       # list supported keys
  playnashville server                     # start the HTTP/WebSocket API`,
	Args: cobra.NoArgs,
	RunE: commands.RunAnnotate,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		if err := logger.InitializeWithLevel(false, logger.VerbosityToLevel(verbosity)); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")

	commands.RegisterAnnotateFlags(rootCmd)

	rootCmd.AddCommand(commands.KeysCmd)
	rootCmd.AddCommand(commands.ServerCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
