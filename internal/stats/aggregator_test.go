package stats

import (
	"context"
	"testing"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/store"
)

func testKV(t *testing.T) store.KV {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.KV()
}

func TestRecordAttempt(t *testing.T) {
	ctx := context.Background()
	a := Load(ctx, testKV(t))

	if err := a.RecordAttempt(ctx, "q1", false); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := a.RecordAttempt(ctx, "q1", true); err != nil {
		t.Fatalf("record: %v", err)
	}

	s := a.Stat("q1")
	if s.Attempts != 2 || s.Correct != 1 {
		t.Errorf("stat = %+v, want attempts=2 correct=1", s)
	}
	if s.Accuracy() != 0.5 {
		t.Errorf("accuracy = %v, want 0.5", s.Accuracy())
	}
}

func TestRecordAttempt_PersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	a := Load(ctx, kv)
	a.RecordAttempt(ctx, "q1", true)
	a.RecordAttempt(ctx, "q2", false)

	b := Load(ctx, kv)
	if b.Len() != 2 {
		t.Fatalf("reloaded len = %d, want 2", b.Len())
	}
	if s := b.Stat("q1"); s.Attempts != 1 || s.Correct != 1 {
		t.Errorf("q1 = %+v", s)
	}
	if s := b.Stat("q2"); s.Attempts != 1 || s.Correct != 0 {
		t.Errorf("q2 = %+v", s)
	}
}

func TestLoad_MalformedDataIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)
	if err := kv.Set(ctx, Key, "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	a := Load(ctx, kv)
	if a.Len() != 0 {
		t.Errorf("len = %d, want 0 after parse failure", a.Len())
	}
}

func TestCorrectNeverExceedsAttempts(t *testing.T) {
	ctx := context.Background()
	a := Load(ctx, testKV(t))

	answers := []bool{true, true, false, true, false, false, true}
	for _, ok := range answers {
		a.RecordAttempt(ctx, "q", ok)
	}

	s := a.Stat("q")
	if s.Correct > s.Attempts {
		t.Errorf("correct %d > attempts %d", s.Correct, s.Attempts)
	}
	if s.Attempts != len(answers) || s.Correct != 4 {
		t.Errorf("stat = %+v", s)
	}
}

func TestRank(t *testing.T) {
	ctx := context.Background()
	a := Load(ctx, testKV(t))

	// weak: 1/3. strong: 2/2. tied: 0/2 and 0/4. fresh: unattempted.
	record := func(text string, correct, wrong int) {
		for range correct {
			a.RecordAttempt(ctx, text, true)
		}
		for range wrong {
			a.RecordAttempt(ctx, text, false)
		}
	}
	record("weak", 1, 2)
	record("strong", 2, 0)
	record("tied-few", 0, 2)
	record("tied-many", 0, 4)

	all := []bank.Question{
		{Text: "fresh"}, {Text: "strong"}, {Text: "weak"},
		{Text: "tied-few"}, {Text: "tied-many"},
	}
	ranked := a.Rank(all)

	got := make([]string, len(ranked))
	for i, r := range ranked {
		got[i] = r.Question
	}

	want := []string{"tied-many", "tied-few", "weak", "strong", "fresh"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ranking = %v, want %v", got, want)
		}
	}
}

func TestRank_UnattemptedAlwaysLast(t *testing.T) {
	ctx := context.Background()
	a := Load(ctx, testKV(t))

	// Even a 0% attempted question ranks before any unattempted one.
	a.RecordAttempt(ctx, "missed", false)

	ranked := a.Rank([]bank.Question{{Text: "fresh"}, {Text: "missed"}})
	if ranked[0].Question != "missed" || ranked[1].Question != "fresh" {
		t.Errorf("ranking = %v", ranked)
	}
}

func TestReset(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	a := Load(ctx, kv)
	a.RecordAttempt(ctx, "q1", true)
	if err := a.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if a.Len() != 0 {
		t.Errorf("len = %d after reset", a.Len())
	}
	if _, ok, _ := kv.Get(ctx, Key); ok {
		t.Error("persisted stats survived reset")
	}
}
