package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/app"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Look at the building blocks of a pun",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "similarity <word> <word>",
		Short: "Score how related two words are",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return inspectSimilarity(cmd.OutOrStdout(), a, args[0], args[1])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "verb <word>...",
		Short: "Show the verb phrase each word becomes in a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return inspectVerbs(cmd.OutOrStdout(), a, args)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "related <theme>",
		Short: "List the words a theme expands to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			return inspectRelated(cmd.OutOrStdout(), a, strings.Join(args, " "))
		},
	})

	return cmd
}

func inspectSimilarity(w io.Writer, a *app.App, x, y string) error {
	svc, err := a.NewPunService()
	if err != nil {
		return err
	}
	bd := a.Scorer().Explain(x, y)
	_, err = fmt.Fprintf(w, "%s ~ %s: %.3f (path %.3f, ic %.3f, overlap %.3f) related=%t\n",
		x, y, bd.Combined, bd.Path, bd.IC, bd.Overlap, svc.IsRelated(x, y))
	return err
}

func inspectVerbs(w io.Writer, a *app.App, words []string) error {
	norm, err := a.NewNormalizer()
	if err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%s (%s) -> %s\n", word, norm.PartOfSpeech(word), norm.VerbPhrase(word)); err != nil {
			return err
		}
	}
	return nil
}

func inspectRelated(w io.Writer, a *app.App, theme string) error {
	svc, err := a.NewPunService()
	if err != nil {
		return err
	}
	related := svc.RelatedWords(theme)
	direct := svc.DirectMatches(theme, related)

	lemmas := make([]string, len(direct))
	for i, c := range direct {
		lemmas[i] = c.Lemma
	}
	fmt.Fprintf(w, "related (%d): %s\n", len(related), strings.Join(related, ", "))
	_, err = fmt.Fprintf(w, "direct matches (%d): %s\n", len(direct), strings.Join(lemmas, ", "))
	return err
}
