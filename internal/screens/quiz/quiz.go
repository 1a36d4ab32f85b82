// Package quiz is the active-session screen: it walks the user through
// the selected questions, records every answer, and hands the outcome
// to the result screen.
package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	quizcore "github.com/saransh/quizdeck/internal/quiz"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	"github.com/saransh/quizdeck/internal/screens/result"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/ui/components"
	"github.com/saransh/quizdeck/internal/ui/layout"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

// QuizScreen drives one session over a fixed question subset.
type QuizScreen struct {
	cache  *bank.Cache
	ledger *history.Ledger
	agg    *stats.Aggregator

	progress       *quizcore.Progress
	options        components.OptionList
	confirmQuit    bool
	requestedCount int
	fullBank       bool
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New starts a session over a fresh random subset of requestedCount
// questions. The count must already be validated by the menu.
func New(cache *bank.Cache, ledger *history.Ledger, agg *stats.Aggregator, requestedCount int, fullBank bool) *QuizScreen {
	s := &QuizScreen{
		cache:          cache,
		ledger:         ledger,
		agg:            agg,
		progress:       quizcore.New(cache.Subset(requestedCount), fullBank),
		requestedCount: requestedCount,
		fullBank:       fullBank,
	}
	s.syncOptions()
	return s
}

// syncOptions rebuilds the option list for the current question,
// restoring the revealed state when navigating back to an answered one.
func (s *QuizScreen) syncOptions() {
	display := s.progress.Display()
	texts := make([]string, len(display))
	correctIdx := -1
	for i, opt := range display {
		texts[i] = opt.Text
		if opt.Original == s.progress.Current().Correct {
			correctIdx = i
		}
	}

	s.options = components.NewOptionList(s.progress.Current().Text, texts)
	if s.progress.Answered() {
		s.options.Reveal(s.progress.Chosen(), correctIdx)
	}
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "S", Description: "Save & end"},
			{Key: "D", Description: "Discard"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.progress.Answered() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "←", Description: "Previous"},
			{Key: "Esc", Description: "End quiz"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓/1-4", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←", Description: "Previous"},
		{Key: "Esc", Description: "End quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "s", "S":
			return s, s.finish(true)
		case "d", "D":
			// Abandon without recording. Statistics already written
			// for answered questions stay; no history entry.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		s.confirmQuit = true
		return s, nil

	case "enter":
		if !s.progress.Answered() {
			s.answer()
			return s, nil
		}
		return s.advance()

	case "right", "n":
		if s.progress.Answered() {
			return s.advance()
		}
		return s, nil

	case "left", "p":
		s.progress.Prev()
		s.syncOptions()
		return s, nil
	}

	var cmd tea.Cmd
	s.options, cmd = s.options.Update(msg)
	return s, cmd
}

// answer scores the highlighted option and reveals the outcome. The
// progress guard makes a repeat answer a no-op, which keeps score and
// statistics in lockstep at one update per question per session.
func (s *QuizScreen) answer() {
	correct, counted := s.progress.Answer(s.options.Selected)
	if !counted {
		return
	}

	// Local persistence is best-effort; a write failure never
	// interrupts the session.
	_ = s.agg.RecordAttempt(context.Background(), s.progress.Current().Text, correct)

	s.syncOptions()
}

func (s *QuizScreen) advance() (screen.Screen, tea.Cmd) {
	if done := s.progress.Next(); done {
		return s, s.finish(false)
	}
	s.syncOptions()
	return s, nil
}

// finish scores the session, records it, and swaps in the result screen.
// An early exit with nothing answered leaves no record and returns to
// the menu.
func (s *QuizScreen) finish(earlyExit bool) tea.Cmd {
	outcome := s.progress.Finish(earlyExit)
	if outcome == nil {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}

	item := history.Item{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Score:     outcome.Score,
		Total:     outcome.Total,
		Mode:      outcome.Mode,
	}
	for _, m := range outcome.Mistakes {
		item.Mistakes = append(item.Mistakes, history.Mistake{
			Question:      m.Question,
			CorrectAnswer: m.CorrectAnswer,
		})
	}
	_ = s.ledger.Append(context.Background(), item)

	restart := func() screen.Screen {
		return New(s.cache, s.ledger, s.agg, s.requestedCount, s.fullBank)
	}
	next := result.New(outcome, s.ledger, s.agg, s.cache, restart)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *QuizScreen) View(width, height int) string {
	if s.confirmQuit {
		return s.viewConfirmQuit(width)
	}

	var b strings.Builder
	b.WriteString("\n")

	total := len(s.progress.Questions)
	pos := fmt.Sprintf("Question %d of %d   ·   %d correct", s.progress.Index+1, total, s.progress.Score())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Subtitle.Render(pos)))
	b.WriteString("\n")

	bar := components.ProgressBar{
		Percent: float64(s.progress.Index) / float64(total),
		Width:   min(width-8, 48),
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		PaddingLeft(4).
		PaddingRight(4).
		Render(s.options.View()))

	if s.progress.Answered() {
		b.WriteString("\n")
		verdict := theme.Correct.Render("Correct!")
		if !s.progress.Solved[s.progress.Index] {
			verdict = theme.Incorrect.Render("Incorrect.")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, verdict))
		b.WriteString("\n")

		if expl := s.progress.Current().Explanation; expl != "" {
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render(expl)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (s *QuizScreen) viewConfirmQuit(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Warning.Render("End this quiz?")))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("[S] Save progress and see the result")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("[D] Discard and return to the menu")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		theme.Body.Render("[N] Keep going")))
	return b.String()
}
