package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/imuzolev/playnashville/chords"
	"github.com/imuzolev/playnashville/config"
	"github.com/imuzolev/playnashville/errors"
	"github.com/imuzolev/playnashville/theory"
)

var (
	annotateKey          string
	annotateMode         string
	annotateInput        string
	annotateEncoding     string
	annotateShowTonality bool
)

// RegisterAnnotateFlags binds the annotation flags onto the root command.
// Annotation is the default action, so its flags live on the root rather
// than a subcommand.
func RegisterAnnotateFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&annotateKey, "key", "k", "", "Force the tonality instead of auto-detecting (e.g. C, F#m, Bb)")
	cmd.Flags().StringVarP(&annotateMode, "mode", "m", "", `Restrict detection to "major" or "minor"`)
	cmd.Flags().StringVarP(&annotateInput, "input", "i", "", "Read song text from a file instead of stdin")
	cmd.Flags().StringVarP(&annotateEncoding, "encoding", "e", "utf-8", "Input text encoding (any WHATWG label, e.g. windows-1251)")
	cmd.Flags().BoolVar(&annotateShowTonality, "show-tonality", false, "Print the selected tonality to stderr")
}

// RunAnnotate is the root command action: read text, pick a tonality,
// write the annotated text to stdout. Flags win over nashville.toml
// annotate defaults.
func RunAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	modeArg := annotateMode
	if modeArg == "" {
		modeArg = cfg.Annotate.DefaultMode
	}
	mode := theory.Mode("")
	if modeArg != "" {
		parsed, ok := theory.ParseMode(modeArg)
		if !ok {
			return errors.Newf("--mode must be %q or %q, got %q", theory.ModeMajor, theory.ModeMinor, modeArg)
		}
		mode = parsed
	}

	encodingName := annotateEncoding
	if !cmd.Flags().Changed("encoding") && cfg.Annotate.DefaultEncoding != "" {
		encodingName = cfg.Annotate.DefaultEncoding
	}

	text, err := readInput(annotateInput, encodingName)
	if err != nil {
		return err
	}

	catalog := theory.NewCatalog()
	extracted := chords.Extract(text)
	tonality, err := theory.SelectTonality(catalog, annotateKey, mode, extracted)
	if err != nil {
		return err
	}

	if annotateShowTonality {
		fmt.Fprintf(os.Stderr, "Using tonality: %s (%s)\n", tonality.Label, tonality.Mode)
	}

	fmt.Fprint(cmd.OutOrStdout(), chords.Annotate(text, tonality.ChordMap))
	return nil
}
