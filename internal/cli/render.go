package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/anatolykoptev/go_tutor/internal/engine"
	"github.com/charmbracelet/lipgloss"
)

// styles are the lipgloss styles for terminal output.
type styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Score   lipgloss.Style
	Warning lipgloss.Style
	Card    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4")),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")),
		Score:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF")),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#45475A")).
			Padding(0, 1).
			MarginBottom(1),
	}
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// tutorialCard renders one ranked tutorial: rank, title, channel, stats, URL.
func (s styles) tutorialCard(rank int, t engine.RankedTutorial) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s\n", s.Label.Render(fmt.Sprintf("#%d", rank)), s.Title.Render(t.Title))
	fmt.Fprintf(&sb, "%s\n", s.Muted.Render(t.ChannelName))
	fmt.Fprintf(&sb, "👁 %s views  👍 %s likes  💬 %s comments  ⏱ %s\n",
		engine.FormatCount(t.ViewCount),
		engine.FormatCount(t.LikeCount),
		engine.FormatCount(t.CommentCount),
		engine.FormatDuration(t.Duration),
	)
	fmt.Fprintf(&sb, "Quality score: %s\n", s.Score.Render(fmt.Sprintf("%.1f", t.QualityScore)))
	sb.WriteString(t.URL)
	return s.Card.Render(sb.String())
}

// stepCard renders one roadmap step.
func (s styles) stepCard(step engine.RoadmapStep) string {
	body := fmt.Sprintf("%s %s\n%s %s\n%s",
		s.Label.Render(fmt.Sprintf("Step %d:", step.Step)),
		s.Title.Render(step.Title),
		s.Muted.Render("Duration:"),
		step.Duration,
		step.Description,
	)
	return s.Card.Render(body)
}

func (s styles) warn(msg string) string {
	return s.Warning.Render("⚠  " + msg)
}
