package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imuzolev/playnashville/errors"
	"github.com/imuzolev/playnashville/theory"
)

// KeysCmd lists the tonalities the annotator knows about.
var KeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported tonalities",
	Long:  `List every key the annotator can detect or be forced into with --key.`,
	RunE:  runKeys,
}

var keysMode string

func init() {
	KeysCmd.Flags().StringVarP(&keysMode, "mode", "m", "", `Only list "major" or "minor" keys`)
}

func runKeys(cmd *cobra.Command, args []string) error {
	catalog := theory.NewCatalog()
	out := cmd.OutOrStdout()

	modes := []theory.Mode{theory.ModeMajor, theory.ModeMinor}
	if keysMode != "" {
		parsed, ok := theory.ParseMode(keysMode)
		if !ok {
			return errors.Newf("--mode must be %q or %q, got %q", theory.ModeMajor, theory.ModeMinor, keysMode)
		}
		modes = []theory.Mode{parsed}
	}

	for _, mode := range modes {
		name := string(mode)
		fmt.Fprintf(out, "%s:\n", strings.ToUpper(name[:1])+name[1:])
		for _, label := range catalog.Labels(mode) {
			fmt.Fprintf(out, "  %s\n", label)
		}
	}
	return nil
}
