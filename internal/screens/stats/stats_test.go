package stats

import (
	"strings"
	"testing"
	"unicode/utf8"

	"charm.land/lipgloss/v2"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/history"
	"github.com/saransh/quizdeck/internal/stats"
	"github.com/saransh/quizdeck/internal/store"
)

func testScreen(t *testing.T, questions []bank.Question) *StatsScreen {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	cache := bank.NewCache()
	cache.Replace(questions)

	ctx := t.Context()
	return New(stats.Load(ctx, s.KV()), history.Load(ctx, s.KV()), cache)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short text untouched", "what is 2+2?", "what is 2+2?"},
		{"ascii cut with ellipsis", strings.Repeat("a", 60), strings.Repeat("a", 55) + "…"},
		{"exact width untouched", strings.Repeat("a", 56), strings.Repeat("a", 56)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := truncate(tc.in, maxQuestionWidth); got != tc.want {
				t.Errorf("truncate(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("質問", 40)

	got := truncate(text, maxQuestionWidth)
	if !utf8.ValidString(got) {
		t.Fatalf("truncated text is not valid UTF-8: %q", got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncated text %q missing ellipsis", got)
	}
	if w := lipgloss.Width(got); w > maxQuestionWidth {
		t.Errorf("truncated width = %d, want at most %d", w, maxQuestionWidth)
	}
}

func TestViewRendersLongMultibyteQuestion(t *testing.T) {
	s := testScreen(t, []bank.Question{{
		Text:    strings.Repeat("補題", 50),
		Options: []string{"w", "x", "y", "z"},
		Correct: 1,
	}})

	view := s.View(80, 24)
	if !utf8.ValidString(view) {
		t.Fatal("view contains bytes from a split rune")
	}
	if !strings.Contains(view, "…") {
		t.Error("long question was not truncated")
	}
}
