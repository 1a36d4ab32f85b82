// Package stats displays the weak-point ranking and hosts the full
// statistics reset.
package stats

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/ui/layout"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

const maxQuestionWidth = 56

// StatsScreen lists all loaded questions weakest first.
type StatsScreen struct {
	agg    *stats.Aggregator
	ledger *history.Ledger
	cache  *bank.Cache

	ranked       []stats.Ranked
	offset       int
	confirmReset bool
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates the weak-point screen. The ranking is computed once on
// entry; answers given while it is open are not re-ranked live.
func New(agg *stats.Aggregator, ledger *history.Ledger, cache *bank.Cache) *StatsScreen {
	return &StatsScreen{
		agg:    agg,
		ledger: ledger,
		cache:  cache,
		ranked: agg.Rank(cache.Questions()),
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatsScreen) Title() string {
	return "Weak Points"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset everything"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Reset data"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmReset {
		switch kmsg.String() {
		case "y", "Y":
			// Full reset clears statistics and the history log.
			ctx := context.Background()
			_ = s.agg.Reset(ctx)
			_ = s.ledger.Clear(ctx)
			s.ranked = s.agg.Rank(s.cache.Questions())
			s.offset = 0
			s.confirmReset = false
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		if s.offset < len(s.ranked)-1 {
			s.offset++
		}
	case "r", "R":
		s.confirmReset = true
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.confirmReset {
		var b strings.Builder
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Warning.Render("Erase all statistics and history?")))
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Body.Render("[Y] Yes, start fresh    [N] Cancel")))
		return b.String()
	}

	if len(s.ranked) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No questions loaded.")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Subtitle.Render("Weakest questions first")))
	b.WriteString("\n\n")

	visible := height - 4
	if visible < 1 {
		visible = 1
	}

	end := s.offset + visible
	if end > len(s.ranked) {
		end = len(s.ranked)
	}

	for _, r := range s.ranked[s.offset:end] {
		text := truncate(r.Question, maxQuestionWidth)

		var line string
		if r.Attempts == 0 {
			line = theme.Hint.Render(fmt.Sprintf("  not attempted   %s", text))
		} else {
			pct := int(r.Accuracy()*100 + 0.5)
			style := theme.Body
			if pct < 50 {
				style = theme.Incorrect
			}
			line = style.Render(fmt.Sprintf("  %3d%%  (%d tries)   %s", pct, r.Attempts, text))
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}

// truncate shortens text to at most maxWidth display cells, always cutting
// on a rune boundary before appending the ellipsis.
func truncate(text string, maxWidth int) string {
	if lipgloss.Width(text) <= maxWidth {
		return text
	}
	var b strings.Builder
	width := 0
	for _, r := range text {
		w := lipgloss.Width(string(r))
		if width+w > maxWidth-1 {
			break
		}
		b.WriteRune(r)
		width += w
	}
	b.WriteRune('…')
	return b.String()
}
