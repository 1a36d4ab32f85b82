// Package history displays past session outcomes, newest first, with
// expandable mistake details.
package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	"github.com/saransh/quizdeck/internal/ui/layout"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

// HistoryScreen lists recorded outcomes.
type HistoryScreen struct {
	ledger   *history.Ledger
	selected int
	expanded map[int]bool
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(ledger *history.Ledger) *HistoryScreen {
	return &HistoryScreen{
		ledger:   ledger,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Mistakes"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.ledger.Len()-1 {
			s.selected++
		}
	case "enter":
		s.expanded[s.selected] = !s.expanded[s.selected]
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	items := s.ledger.Items()
	if len(items) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No quizzes yet. Start one from the menu!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, item := range items {
		dateStr := item.Timestamp.Format("Jan 02, 2006 15:04")
		accuracy := 0
		if item.Total > 0 {
			accuracy = int(float64(item.Score)/float64(item.Total)*100 + 0.5)
		}

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %d/%d  %d%%  %s",
			prefix, dateStr, item.Score, item.Total, accuracy, item.Mode)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			if len(item.Mistakes) == 0 {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render("    No mistakes this session")))
				b.WriteString("\n")
			}
			for _, m := range item.Mistakes {
				detail := fmt.Sprintf("    %s — %s", m.Question, m.CorrectAnswer)
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					theme.Hint.Render(detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}
