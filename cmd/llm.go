package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/llm"
	"github.com/abhisek/varnamala/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM requests made while generating word packs",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		since, _ := cmd.Flags().GetDuration("since")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		opts := store.QueryOpts{Limit: limit, Purpose: purpose}
		if since > 0 {
			opts.From = time.Now().Add(-since)
		}
		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), opts)
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM requests recorded.")
			return nil
		}
		printEventList(out, events)
		return nil
	},
}

func printEventList(out io.Writer, events []store.LLMEvent) {
	const row = "%-5s  %-19s  %-10s  %-28s  %6s  %6s  %7s  %-2s  %s\n"
	fmt.Fprintf(out, row, "ID", "Time", "Purpose", "Model", "In", "Out", "Ms", "OK", "Request")
	fmt.Fprintln(out, rule(104))
	for _, e := range events {
		ok := "✓"
		if !e.Success {
			ok = "✗"
		}
		fmt.Fprintf(out, row,
			strconv.Itoa(e.ID),
			e.Timestamp.Local().Format("2006-01-02 15:04:05"),
			truncate(e.Purpose, 10),
			truncate(e.Model, 28),
			strconv.Itoa(e.InputTokens),
			strconv.Itoa(e.OutputTokens),
			strconv.FormatInt(e.LatencyMs, 10),
			ok,
			truncate(e.RequestID, 8),
		)
	}
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and response of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}
		printEvent(cmd.OutOrStdout(), e)
		return nil
	},
}

func printEvent(out io.Writer, e *store.LLMEvent) {
	field := func(name, value string) {
		fmt.Fprintf(out, "%-10s %s\n", name+":", value)
	}
	field("ID", strconv.Itoa(e.ID))
	if e.RequestID != "" {
		field("Request", e.RequestID)
	}
	field("Time", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
	field("Provider", e.Provider)
	field("Model", e.Model)
	field("Purpose", e.Purpose)
	field("Tokens", fmt.Sprintf("%d in / %d out", e.InputTokens, e.OutputTokens))
	field("Latency", fmt.Sprintf("%dms", e.LatencyMs))
	field("Success", strconv.FormatBool(e.Success))
	if e.ErrorMessage != "" {
		field("Error", e.ErrorMessage)
	}

	section := func(title, body string) {
		fmt.Fprintln(out)
		fmt.Fprintln(out, rule(60))
		fmt.Fprintln(out, title)
		fmt.Fprintln(out, rule(60))
		if body == "" {
			body = "(not captured)"
		}
		fmt.Fprintln(out, body)
	}
	section("REQUEST", e.RequestBody)
	section("RESPONSE", e.ResponseBody)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		out := cmd.OutOrStdout()
		if len(byPurpose) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}
		printUsage(out, byPurpose)

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(byModel) > 0 {
			fmt.Fprintln(out)
			printCost(out, byModel)
		}
		return nil
	},
}

func printUsage(out io.Writer, usage []store.LLMUsageStat) {
	const row = "%-16s  %6d  %10d  %10d  %10d  %8d\n"
	fmt.Fprintln(out, "Usage by purpose")
	fmt.Fprintln(out, rule(72))
	fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n", "Purpose", "Calls", "Input", "Output", "Total", "Avg ms")
	fmt.Fprintln(out, rule(72))

	var calls, in, outTok int
	for _, u := range usage {
		fmt.Fprintf(out, row, u.Purpose, u.Calls, u.InputTokens, u.OutputTokens, u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
		calls += u.Calls
		in += u.InputTokens
		outTok += u.OutputTokens
	}
	fmt.Fprintln(out, rule(72))
	fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n", "TOTAL", calls, in, outTok, in+outTok)
}

func printCost(out io.Writer, usage []store.LLMModelUsage) {
	const row = "%-32s  %6d  %10d  %10d  %10s\n"
	fmt.Fprintln(out, "Estimated cost (USD)")
	fmt.Fprintln(out, rule(76))
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
	fmt.Fprintln(out, rule(76))

	var total float64
	var unpriced []string
	for _, u := range usage {
		cost := "?"
		if mc := llm.LookupCost(u.Model); mc != nil {
			c := mc.Cost(u.InputTokens, u.OutputTokens)
			total += c
			cost = formatCost(c)
		} else {
			unpriced = append(unpriced, u.Model)
		}
		fmt.Fprintf(out, row, truncate(u.Model, 32), u.Calls, u.InputTokens, u.OutputTokens, cost)
	}

	fmt.Fprintln(out, rule(76))
	label := "TOTAL"
	if len(unpriced) > 0 {
		label = "TOTAL (partial)"
	}
	fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(total))
	if len(unpriced) > 0 {
		fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unpriced, ", "))
	}
}

func rule(n int) string {
	return strings.Repeat("─", n)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. word-pack)")
	llmListCmd.Flags().Duration("since", 0, "Only show requests newer than this, e.g. 24h")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
