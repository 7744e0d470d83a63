package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/punsmith/internal/app"
	"github.com/heartmarshall/punsmith/internal/service/pun"
)

const noPunMessage = "Hmm, I couldn't come up with a good pun for that theme. Try another word!"

type generateOptions struct {
	explain  bool
	noReveal bool
}

func (o *generateOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.explain, "explain", false, "show how the riddle was found")
	cmd.Flags().BoolVar(&o.noReveal, "no-reveal", false, "print the answer without the countdown")
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate [theme]",
		Short: "Generate one riddle",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, strings.Join(args, " "), opts)
		},
	}
	opts.bind(cmd)

	return cmd
}

func runGenerate(cmd *cobra.Command, theme string, opts *generateOptions) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	svc, err := a.NewPunService()
	if err != nil {
		return err
	}

	res, err := svc.Generate(cmd.Context(), theme)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !res.Found {
		fmt.Fprintln(out, noPunMessage)
		if opts.explain {
			return explain(out, a, res)
		}
		return nil
	}

	rv := newRevealer(out, a.Config().Reveal)
	if opts.noReveal {
		rv.steps = 0
	}
	if err := rv.show(cmd.Context(), res.Riddle); err != nil {
		return err
	}

	if opts.explain {
		return explain(out, a, res)
	}
	return nil
}

// explain prints the search trace of one generation run.
func explain(w io.Writer, a *app.App, res pun.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw)

	theme := res.Theme
	if theme == "" {
		theme = "(none)"
	}
	fmt.Fprintf(tw, "theme:\t%s\n", theme)
	fmt.Fprintf(tw, "stage:\t%s\n", res.Stage)
	if len(res.Related) > 0 {
		fmt.Fprintf(tw, "related:\t%s\n", strings.Join(res.Related, ", "))
	}
	fmt.Fprintf(tw, "candidates:\t%d direct, %d ranked of %d examined\n", res.Direct, res.Ranked, res.Examined)
	fmt.Fprintf(tw, "attempts:\t%d%s\n", res.Attempts, formatSkips(res.Skipped))

	if res.Found {
		r := res.Riddle
		norm, err := a.NewNormalizer()
		if err != nil {
			return err
		}

		fmt.Fprintf(tw, "phase:\t%s\n", res.Phase)
		fmt.Fprintf(tw, "compound:\t%s\n", r.Compound.Lemma)
		fmt.Fprintf(tw, "homophone:\t%s %s ~ %s %s\n",
			r.Compound.Head, ipa(a, r.Compound.Head), r.Homophone, ipa(a, r.Homophone))
		fmt.Fprintf(tw, "subject:\t%s\n", r.Subject)
		fmt.Fprintf(tw, "predicate:\t%s (%s) -> %s\n", r.Predicate, norm.PartOfSpeech(r.Predicate), r.VerbPhrase)

		if res.Theme != "" {
			bd := a.Scorer().Explain(res.Theme, r.Compound.Modifier)
			fmt.Fprintf(tw, "similarity:\t%s~%s path=%.3f ic=%.3f overlap=%.3f combined=%.3f\n",
				res.Theme, r.Compound.Modifier, bd.Path, bd.IC, bd.Overlap, bd.Combined)
		}
	}

	return tw.Flush()
}

func ipa(a *app.App, word string) string {
	if p := a.Lexicon().IPA(word); p != "" {
		return "/" + p + "/"
	}
	return ""
}

func formatSkips(skips map[pun.SkipReason]int) string {
	if len(skips) == 0 {
		return ""
	}
	var parts []string
	for _, reason := range []pun.SkipReason{pun.SkipNoHomophone, pun.SkipNoHypernym, pun.SkipNoMeronym} {
		if n := skips[reason]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", reason, n))
		}
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
