package history

import (
	"context"
	"fmt"
	"testing"
	"time"

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

func item(score, total int) Item {
	return Item{
		ID:        fmt.Sprintf("id-%d-%d", score, total),
		Timestamp: time.Now().UTC(),
		Score:     score,
		Total:     total,
		Mode:      fmt.Sprintf("%d questions", total),
	}
}

func TestAppend_NewestFirst(t *testing.T) {
	ctx := context.Background()
	l := Load(ctx, testKV(t))

	for i := 1; i <= 3; i++ {
		if err := l.Append(ctx, item(i, 5)); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	items := l.Items()
	if len(items) != 3 {
		t.Fatalf("len = %d, want 3", len(items))
	}
	if items[0].Score != 3 || items[2].Score != 1 {
		t.Errorf("order wrong: scores %d,%d,%d", items[0].Score, items[1].Score, items[2].Score)
	}
}

func TestAppend_CapsAtMaxItems(t *testing.T) {
	ctx := context.Background()
	l := Load(ctx, testKV(t))

	for i := 0; i < MaxItems+7; i++ {
		if err := l.Append(ctx, item(i, 100)); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	if l.Len() != MaxItems {
		t.Fatalf("len = %d, want %d", l.Len(), MaxItems)
	}
	// Newest survives at position 0, oldest were dropped.
	if l.Items()[0].Score != MaxItems+6 {
		t.Errorf("newest score = %d", l.Items()[0].Score)
	}
	if l.Items()[MaxItems-1].Score != 7 {
		t.Errorf("oldest kept score = %d, want 7", l.Items()[MaxItems-1].Score)
	}
}

func TestAppend_PersistsAcrossLoads(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	l := Load(ctx, kv)
	it := item(2, 2)
	it.Mistakes = []Mistake{{Question: "q", CorrectAnswer: "a"}}
	if err := l.Append(ctx, it); err != nil {
		t.Fatalf("append: %v", err)
	}

	reloaded := Load(ctx, kv)
	if reloaded.Len() != 1 {
		t.Fatalf("reloaded len = %d", reloaded.Len())
	}
	got := reloaded.Items()[0]
	if got.ID != it.ID || got.Mode != it.Mode {
		t.Errorf("item = %+v, want %+v", got, it)
	}
	if len(got.Mistakes) != 1 || got.Mistakes[0].Question != "q" {
		t.Errorf("mistakes = %+v", got.Mistakes)
	}
}

func TestLoad_MalformedDataIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)
	if err := kv.Set(ctx, Key, "[[["); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if l := Load(ctx, kv); l.Len() != 0 {
		t.Errorf("len = %d, want 0 after parse failure", l.Len())
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	kv := testKV(t)

	l := Load(ctx, kv)
	l.Append(ctx, item(1, 1))
	if err := l.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("len = %d after clear", l.Len())
	}
	if _, ok, _ := kv.Get(ctx, Key); ok {
		t.Error("persisted history survived clear")
	}
}
