package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/spf13/cobra"
)

var (
	tutorialsLang    string
	tutorialsTop     int
	tutorialsSession string
)

var tutorialsCmd = &cobra.Command{
	Use:   "tutorials <query...>",
	Short: "Find the best YouTube tutorials for a learning request",
	Long: `Extracts the topic from a natural-language request, searches YouTube for
medium-length HD videos and ranks them by quality score.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTutorials,
}

func init() {
	tutorialsCmd.Flags().StringVar(&tutorialsLang, "lang", "", "relevance language code (default DEFAULT_LANGUAGE)")
	tutorialsCmd.Flags().IntVarP(&tutorialsTop, "top", "n", 0, "number of tutorials to show (default DEFAULT_TOP_N)")
	tutorialsCmd.Flags().StringVar(&tutorialsSession, "session", "", "session to store the results in")
	rootCmd.AddCommand(tutorialsCmd)
}

func runTutorials(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")
	initEngine()
	ranker, err := newRanker(cmd.Context())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	st := toolutil.OpenSession(ctx, tutorialsSession)
	tutorials, searchErr := ranker.FindBestTutorials(ctx, query, toolutil.NormLang(tutorialsLang), toolutil.NormTopN(tutorialsTop))
	st.TutorialQuery = query
	st.Tutorials = tutorials
	engine.SessionSave(ctx, st)

	out := engine.FindTutorialsOutput{
		SessionID: st.ID,
		Query:     query,
		Topic:     learn.ExtractTopic(query),
		Count:     len(tutorials),
		Tutorials: tutorials,
	}
	var te *learn.TransportError
	if errors.As(searchErr, &te) {
		out.Error = te.Error()
	} else if searchErr != nil {
		return searchErr
	}

	if jsonOut {
		return writeJSON(cmd.OutOrStdout(), out)
	}
	return printTutorials(cmd, out)
}

func printTutorials(cmd *cobra.Command, out engine.FindTutorialsOutput) error {
	s := defaultStyles()
	w := cmd.OutOrStdout()
	if out.Error != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), s.warn(out.Error))
	}
	if len(out.Tutorials) == 0 {
		fmt.Fprintln(w, "No tutorials found. Try a different search term.")
		return nil
	}
	fmt.Fprintf(w, "%s %s\n\n", s.Title.Render("Top tutorials for:"), out.Topic)
	for i, t := range out.Tutorials {
		fmt.Fprintln(w, s.tutorialCard(i+1, t))
	}
	return nil
}
