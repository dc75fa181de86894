package cli

import (
	"fmt"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/anatolykoptev/go_tutor/internal/engine/learn"
	"github.com/anatolykoptev/go_tutor/internal/toolutil"
	"github.com/spf13/cobra"
)

var (
	roadmapLevel   string
	roadmapText    bool
	roadmapSession string
)

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <topic...>",
	Short: "Generate a step-by-step learning roadmap",
	Long: `Looks up a curated roadmap for Python, JavaScript or Machine Learning,
or falls back to a generic 5-step plan for any other topic.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRoadmap,
}

func init() {
	roadmapCmd.Flags().StringVarP(&roadmapLevel, "level", "l", learn.LevelBeginner, "skill level: beginner, intermediate, advanced")
	roadmapCmd.Flags().BoolVar(&roadmapText, "text", false, "print the plain-text roadmap")
	roadmapCmd.Flags().StringVar(&roadmapSession, "session", "", "session to store the roadmap in")
	rootCmd.AddCommand(roadmapCmd)
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	topic := strings.TrimSpace(strings.Join(args, " "))
	if topic == "" {
		return fmt.Errorf("topic is required")
	}
	initEngine()
	ctx := cmd.Context()

	level := toolutil.NormLevel(roadmapLevel)
	steps := learn.DefaultRoadmaps().Generate(topic, level)

	st := toolutil.OpenSession(ctx, roadmapSession)
	st.RoadmapTopic = topic
	st.RoadmapLevel = level
	st.Roadmap = steps
	engine.SessionSave(ctx, st)

	text := learn.FormatRoadmapText(topic, level, steps)
	w := cmd.OutOrStdout()
	switch {
	case jsonOut:
		return writeJSON(w, engine.GenerateRoadmapOutput{
			SessionID:  st.ID,
			Topic:      topic,
			SkillLevel: level,
			Steps:      steps,
			Text:       text,
		})
	case roadmapText:
		_, err := fmt.Fprint(w, text)
		return err
	}

	s := defaultStyles()
	fmt.Fprintf(w, "%s\n\n", s.Title.Render(fmt.Sprintf("Learning roadmap: %s (%s)", topic, level)))
	for _, step := range steps {
		fmt.Fprintln(w, s.stepCard(step))
	}
	return nil
}
