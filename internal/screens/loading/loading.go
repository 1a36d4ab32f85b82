// Package loading is the startup screen: it runs the one asynchronous
// fetch in the whole program and the local-storage reads, then hands
// over to the menu.
package loading

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/router"
	"github.com/saransh/quizdeck/internal/screen"
	"github.com/saransh/quizdeck/internal/screens/menu"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/store"
	"github.com/saransh/quizdeck/internal/ui/theme"
)

// loadedMsg carries everything the menu needs. A fetch failure is not
// fatal; it surfaces as an empty bank.
type loadedMsg struct {
	questions []bank.Question
	fetchErr  error
	ledger    *history.Ledger
	agg       *stats.Aggregator
}

// LoadingScreen fetches the question bank and prior local state.
type LoadingScreen struct {
	client *bank.Client
	cache  *bank.Cache
	kv     store.KV
}

var _ screen.Screen = (*LoadingScreen)(nil)

// New creates the startup screen.
func New(client *bank.Client, cache *bank.Cache, kv store.KV) *LoadingScreen {
	return &LoadingScreen{client: client, cache: cache, kv: kv}
}

func (s *LoadingScreen) Title() string {
	return "Loading"
}

func (s *LoadingScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		// No timeout and no retry: a failed fetch is terminal for
		// this load attempt and leaves the bank empty.
		questions, err := s.client.Fetch(ctx)

		return loadedMsg{
			questions: questions,
			fetchErr:  err,
			ledger:    history.Load(ctx, s.kv),
			agg:       stats.Load(ctx, s.kv),
		}
	}
}

func (s *LoadingScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(loadedMsg); ok {
		if m.fetchErr == nil {
			s.cache.Replace(m.questions)
		}
		next := menu.New(s.cache, m.ledger, m.agg, m.fetchErr)
		return s, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
	}
	return s, nil
}

func (s *LoadingScreen) View(width, height int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  Loading question bank...")
}
