package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/screen"
	"github.com/abhisek/varnamala/internal/screens/alphabet"
	"github.com/abhisek/varnamala/internal/screens/matching"
	"github.com/abhisek/varnamala/internal/screens/wordbuilder"
)

var playCmd = &cobra.Command{
	Use:       "play <memory|word-builder|learn>",
	Short:     "Jump straight into a game",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"memory", "word-builder", "learn"},
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		lang, err := languageArg(langID)
		if err != nil {
			return err
		}

		var start func(*screen.Deps) screen.Screen
		switch args[0] {
		case "memory":
			start = func(d *screen.Deps) screen.Screen { return matching.New(d, lang.ID) }
		case "word-builder":
			start = func(d *screen.Deps) screen.Screen { return wordbuilder.New(d, lang.ID) }
		case "learn":
			start = func(d *screen.Deps) screen.Screen { return alphabet.New(d, lang.ID) }
		default:
			return fmt.Errorf("unknown game %q", args[0])
		}
		return runApp(cmd, start)
	},
}

func init() {
	playCmd.Flags().StringP("language", "l", "hindi", "Language to play in")
}
