package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/varnamala/internal/llm"
	"github.com/abhisek/varnamala/internal/wordpack"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "Manage generated word packs for the word builder",
}

var wordsGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate new words with an LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		count, _ := cmd.Flags().GetInt("count")
		theme, _ := cmd.Flags().GetString("theme")
		lang, err := languageArg(langID)
		if err != nil {
			return err
		}

		cfg, ok := llm.ResolveConfig()
		if !ok {
			return errors.New("no LLM provider configured: set VARNAMALA_LLM_PROVIDER or an API key such as GEMINI_API_KEY")
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		provider, err := llm.NewProvider(ctx, cfg, st.EventRepo())
		if err != nil {
			return fmt.Errorf("create LLM provider: %w", err)
		}

		deps := newDeps(cmd, st.KVRepo())
		gen := wordpack.NewGenerator(provider, deps.Catalog)
		out := cmd.OutOrStdout()

		res, err := gen.Generate(ctx, wordpack.Request{Language: lang.ID, Count: count, Theme: theme})
		if res != nil {
			for _, r := range res.Rejected {
				fmt.Fprintf(out, "  skipped %-16s %s\n", r.Word, r.Reason)
			}
		}
		if err != nil {
			return fmt.Errorf("generate words: %w", err)
		}

		added, err := wordpack.NewRepo(st.KVRepo()).Append(ctx, lang.ID, res.Words)
		if err != nil {
			return err
		}
		for _, w := range res.Words {
			fmt.Fprintf(out, "  %-16s %-16s %s\n", w.Word, w.Meaning, strings.Join(w.Characters, " + "))
		}
		fmt.Fprintf(out, "Added %d %s words (model %s).\n", added, lang.Name, provider.ModelID())
		return nil
	},
}

var wordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated words",
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		langs, err := languagesOrAll(langID)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := wordpack.NewRepo(st.KVRepo())
		out := cmd.OutOrStdout()
		found := false
		for _, lang := range langs {
			ws, err := repo.Load(cmd.Context(), lang.ID)
			if errors.Is(err, wordpack.ErrIncompatiblePack) {
				fmt.Fprintf(out, "%s: pack from an incompatible version, ignored\n", lang.Name)
				continue
			}
			if err != nil {
				return err
			}
			if len(ws) == 0 {
				continue
			}
			found = true
			fmt.Fprintf(out, "%s (%d)\n", lang.Name, len(ws))
			for _, w := range ws {
				fmt.Fprintf(out, "  %-16s %s\n", w.Word, w.Meaning)
			}
		}
		if !found {
			fmt.Fprintln(out, "No generated words.")
		}
		return nil
	},
}

var wordsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete generated words",
	RunE: func(cmd *cobra.Command, args []string) error {
		langID, _ := cmd.Flags().GetString("language")
		langs, err := languagesOrAll(langID)
		if err != nil {
			return err
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		repo := wordpack.NewRepo(st.KVRepo())
		for _, lang := range langs {
			if err := repo.Clear(cmd.Context(), lang.ID); err != nil {
				return err
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Generated words cleared.")
		return nil
	},
}

func init() {
	wordsGenerateCmd.Flags().StringP("language", "l", "hindi", "Language to generate words for")
	wordsGenerateCmd.Flags().IntP("count", "n", wordpack.DefaultCount, fmt.Sprintf("Number of words (max %d)", wordpack.MaxCount))
	wordsGenerateCmd.Flags().String("theme", "", "Optional topic, e.g. animals or food")
	wordsListCmd.Flags().StringP("language", "l", "", "Only list this language")
	wordsClearCmd.Flags().StringP("language", "l", "", "Only clear this language")

	wordsCmd.AddCommand(wordsGenerateCmd)
	wordsCmd.AddCommand(wordsListCmd)
	wordsCmd.AddCommand(wordsClearCmd)
}
