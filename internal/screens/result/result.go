// Package result shows a finished session's score, accuracy and missed
// questions, and offers a restart with the same settings.
package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/quiz"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	historyscreen "github.com/saransh/quizdeck/internal/screens/history"
	statsscreen "github.com/saransh/quizdeck/internal/screens/stats"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/ui/layout"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

// ResultScreen presents one session outcome.
type ResultScreen struct {
	outcome *quiz.Outcome
	ledger  *history.Ledger
	agg     *stats.Aggregator
	cache   *bank.Cache

	// restart builds a fresh quiz screen with the same settings; a
	// factory avoids a circular dependency on the quiz screen package.
	restart func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates the result screen for a scored outcome.
func New(outcome *quiz.Outcome, ledger *history.Ledger, agg *stats.Aggregator, cache *bank.Cache, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		outcome: outcome,
		ledger:  ledger,
		agg:     agg,
		cache:   cache,
		restart: restart,
	}
}

func (s *ResultScreen) Title() string {
	return "Result"
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R", Description: "Retry"},
		{Key: "H", Description: "History"},
		{Key: "W", Description: "Weak points"},
		{Key: "Esc", Description: "Menu"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "r", "R":
		next := s.restart()
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	case "h", "H":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: historyscreen.New(s.ledger)}
		}
	case "w", "W":
		return s, func() tea.Msg {
			return router.PushScreenMsg{Screen: statsscreen.New(s.agg, s.ledger, s.cache)}
		}
	case "esc", "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	out := s.outcome
	if out == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	center(theme.Title.Render("Quiz complete!"))
	b.WriteString("\n")
	center(theme.Body.Render(fmt.Sprintf("Score: %d / %d   ·   Accuracy: %d%%", out.Score, out.Total, out.Accuracy)))
	center(theme.Subtitle.Render(out.Mode))
	b.WriteString("\n")

	if len(out.Mistakes) == 0 {
		center(theme.Correct.Render("No mistakes — perfect round."))
		return b.String()
	}

	center(theme.Hint.Render("Missed questions"))
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	center(divider)
	b.WriteString("\n")

	for _, m := range out.Mistakes {
		center(theme.Body.Render(m.Question))
		center(theme.Hint.Render("answer: " + m.CorrectAnswer))
		b.WriteString("\n")
	}

	return b.String()
}
