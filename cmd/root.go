package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "varnamala",
	Short: "Learn Indian alphabets in the terminal",
	Long: "Varnamala — a terminal app that helps children learn the letters of six Indian\n" +
		"languages through drawing, memory match and word building.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides VARNAMALA_DB env var)")
	rootCmd.PersistentFlags().Int("keep-recent", 0, "Keep only the N most recent games in history, 0 keeps all (env VARNAMALA_KEEP_RECENT)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(wordsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then VARNAMALA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveKeepRecent returns the history cap from --keep-recent, then
// VARNAMALA_KEEP_RECENT. Invalid env values are ignored with a warning.
func resolveKeepRecent(cmd *cobra.Command) int {
	if f := cmd.Flags().Lookup("keep-recent"); f != nil && f.Changed {
		n, _ := cmd.Flags().GetInt("keep-recent")
		return max(n, 0)
	}
	v := os.Getenv("VARNAMALA_KEEP_RECENT")
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "warning: ignoring VARNAMALA_KEEP_RECENT=%q\n", v)
		return 0
	}
	return n
}

// languageArg validates a language id given on the command line.
func languageArg(id string) (content.Language, error) {
	lang, ok := content.LookupLanguage(id)
	if !ok {
		return content.Language{}, fmt.Errorf("unknown language %q (choose from %v)", id, content.LanguageIDs())
	}
	return lang, nil
}

// languagesOrAll returns the named language, or every language when id is
// empty.
func languagesOrAll(id string) ([]content.Language, error) {
	if id == "" {
		return content.Languages(), nil
	}
	lang, err := languageArg(id)
	if err != nil {
		return nil, err
	}
	return []content.Language{lang}, nil
}
