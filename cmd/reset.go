package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear saved statistics and letter progress",
	Long: "Clear saved statistics and letter progress. Without --stats or --progress\n" +
		"both are cleared. Without --language every language is cleared.",
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		doStats, _ := cmd.Flags().GetBool("stats")
		doProgress, _ := cmd.Flags().GetBool("progress")
		yes, _ := cmd.Flags().GetBool("yes")

		if !yes {
			return errors.New("refusing to reset without --yes")
		}
		if !doStats && !doProgress {
			doStats, doProgress = true, true
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

		if doStats {
			if err := deps.Stats.Reset(ctx, langID); err != nil {
				return fmt.Errorf("reset stats: %w", err)
			}
			fmt.Fprintln(out, "Statistics cleared.")
		}
		if doProgress {
			for _, lang := range langs {
				if err := deps.Progress.Reset(ctx, lang.ID); err != nil {
					return fmt.Errorf("reset progress: %w", err)
				}
			}
			fmt.Fprintln(out, "Letter progress cleared.")
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("language", "l", "", "Only clear this language")
	resetCmd.Flags().Bool("stats", false, "Clear game statistics")
	resetCmd.Flags().Bool("progress", false, "Clear letter progress")
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
