// Package menu is the main menu: question-count entry, quiz start with
// validation, and navigation to history and weak-point review.
package menu

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	historyscreen "github.com/saransh/quizdeck/internal/screens/history"
	"github.com/saransh/quizdeck/internal/screens/quiz"
	statsscreen "github.com/saransh/quizdeck/internal/screens/stats"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/ui/components"
	"github.com/saransh/quizdeck/internal/ui/layout"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

// MenuScreen is the hub between quizzes. An empty bank puts it in a
// degraded state where starting a quiz is disabled.
type MenuScreen struct {
	cache  *bank.Cache
	ledger *history.Ledger
	agg    *stats.Aggregator

	menu    components.Menu
	input   components.TextInput
	errMsg  string
	loadErr error
}

var _ screen.Screen = (*MenuScreen)(nil)
var _ screen.KeyHintProvider = (*MenuScreen)(nil)

// New creates the menu. loadErr, when non-nil, is the startup fetch
// failure surfaced as a notice.
func New(cache *bank.Cache, ledger *history.Ledger, agg *stats.Aggregator, loadErr error) *MenuScreen {
	s := &MenuScreen{
		cache:   cache,
		ledger:  ledger,
		agg:     agg,
		input:   components.NewTextInput("10", true, 3),
		loadErr: loadErr,
	}

	empty := cache.Len() == 0
	items := []components.MenuItem{
		{Label: "Start quiz", Disabled: empty, Action: func() tea.Cmd {
			return s.startQuiz(s.input.Value(), false)
		}},
		{Label: "Full bank quiz", Disabled: empty, Action: func() tea.Cmd {
			return s.startQuiz(strconv.Itoa(cache.Len()), true)
		}},
		{Label: "Weak points", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(agg, ledger, cache)}
			}
		}},
		{Label: "History", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: historyscreen.New(ledger)}
			}
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	s.menu = components.NewMenu(items)
	return s
}

// startQuiz validates the requested count and pushes the quiz screen.
// Validation failures stay on the menu with an inline message.
func (s *MenuScreen) startQuiz(rawCount string, fullBank bool) tea.Cmd {
	count, err := strconv.Atoi(strings.TrimSpace(rawCount))
	if err != nil || count < 1 {
		s.errMsg = "Enter a question count of 1 or more."
		return nil
	}

	s.errMsg = ""
	next := quiz.New(s.cache, s.ledger, s.agg, count, fullBank)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *MenuScreen) Title() string {
	return "Menu"
}

func (s *MenuScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *MenuScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "0-9", Description: "Question count"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *MenuScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Digits and backspace feed the count field; everything else is
	// menu navigation.
	var inputCmd, menuCmd tea.Cmd
	s.input, inputCmd = s.input.Update(msg)
	s.menu, menuCmd = s.menu.Update(msg)
	return s, tea.Batch(inputCmd, menuCmd)
}

func (s *MenuScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n")

	center := func(line string) {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	center(theme.Title.Render("Quizdeck"))
	b.WriteString("\n")

	switch {
	case s.loadErr != nil:
		center(theme.Incorrect.Render("Question bank unavailable — quiz disabled."))
		center(theme.Hint.Render(s.loadErr.Error()))
	case s.cache.Len() == 0:
		center(theme.Incorrect.Render("Question bank is empty — quiz disabled."))
	default:
		center(theme.Subtitle.Render(fmt.Sprintf("%d questions loaded  ·  %d past sessions", s.cache.Len(), s.ledger.Len())))
	}
	b.WriteString("\n")

	center(theme.Body.Render("Questions per quiz: ") + s.input.View())
	b.WriteString("\n")

	for _, line := range strings.Split(strings.TrimRight(s.menu.View(), "\n"), "\n") {
		center(line)
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		center(theme.Warning.Render(s.errMsg))
	}

	return b.String()
}
