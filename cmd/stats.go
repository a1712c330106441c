package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/content"
	"github.com/abhisek/varnamala/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show game statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		asJSON, _ := cmd.Flags().GetBool("json")
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
		out := cmd.OutOrStdout()

		if asJSON {
			raw, err := deps.Stats.Snapshot(cmd.Context())
			if err != nil {
				return fmt.Errorf("read stats: %w", err)
			}
			fmt.Fprintln(out, string(raw))
			return nil
		}

		d, err := deps.Stats.Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		printStats(out, d, langs)
		return nil
	},
}

func printStats(out io.Writer, d stats.DashboardStats, langs []content.Language) {
	rule := strings.Repeat("─", 64)

	fmt.Fprintf(out, "Total games: %d\n", d.TotalGames)
	for _, g := range stats.GameTypes {
		fmt.Fprintf(out, "  %-15s %d\n", stats.Title(g), d.TypeTotal(g))
	}

	for _, lang := range langs {
		ls := d.Languages[lang.ID]
		if ls == nil && len(langs) > 1 {
			continue
		}
		fmt.Fprintln(out)
		fmt.Fprintf(out, "%s (%s)\n", lang.Name, lang.Native)
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-15s  %6s  %12s  %9s  %7s  %s\n", "Game", "Games", "Best", "Best time", "Avg", "Last played")
		for _, g := range stats.GameTypes {
			ts := ls.For(g)
			games, last := 0, stats.Placeholder
			if ts != nil {
				games = ts.TotalGames
				if !ts.LastPlayed.IsZero() {
					last = ts.LastPlayed.Local().Format("2006-01-02")
				}
			}
			fmt.Fprintf(out, "%-15s  %6d  %12s  %9s  %7s  %s\n",
				stats.Title(g), games,
				stats.FormatBestMoves(g, ts), stats.FormatBestTime(ts), stats.FormatAverageMoves(ts), last)
		}
	}

	recent := d.Recent(10)
	if len(recent) == 0 {
		fmt.Fprintln(out, "\nNo games played yet.")
		return
	}
	fmt.Fprintln(out, "\nRecent games")
	fmt.Fprintln(out, rule)
	for _, g := range recent {
		fmt.Fprintf(out, "%s  %-10s %-15s %4d %-10s %s\n",
			g.Date.Local().Format("2006-01-02 15:04"),
			content.DisplayName(g.Language), stats.Title(g.GameType),
			g.Moves, stats.MovesLabel(g.GameType), stats.FormatTime(g.Time))
	}
}

func init() {
	statsCmd.Flags().StringP("language", "l", "", "Show only this language")
	statsCmd.Flags().Bool("json", false, "Print the stored statistics document as JSON")
}
