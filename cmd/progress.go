package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var progressCmd = &cobra.Command{
	Use:   "progress [language]",
	Short: "Show which letters have been learned",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var langID string
		if len(args) == 1 {
			langID = args[0]
		}
		langs, err := languagesOrAll(langID)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		deps := newDeps(cmd, st.KVRepo())
		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		for _, lang := range langs {
			done, total := deps.Progress.Counts(ctx, lang.ID)
			fmt.Fprintf(out, "%-10s %3d/%-3d %3d%%\n", lang.Name, done, total, deps.Progress.PercentComplete(ctx, lang.ID))
			if len(langs) > 1 {
				continue
			}
			var marks []string
			for _, l := range deps.Catalog.Letters(lang.ID) {
				mark := " "
				if deps.Progress.IsComplete(ctx, lang.ID, l.ID) {
					mark = "✓"
				}
				marks = append(marks, l.Character+mark)
			}
			fmt.Fprintln(out, strings.Join(marks, " "))
		}
		return nil
	},
}
