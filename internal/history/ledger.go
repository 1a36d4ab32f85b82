// Package history keeps the capped, most-recent-first log of session
// outcomes.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/saransh/quizdeck/internal/store"
)

// Key is the persistence gateway key for the history log.
const Key = "quizdeck.history"

// MaxItems caps the log; the oldest entries beyond it are dropped
// silently on append.
const MaxItems = 50

// Mistake is one missed question recorded with a session outcome.
type Mistake struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

// Item is one recorded session outcome. Never mutated after creation.
type Item struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Score     int       `json:"score"`
	Total     int       `json:"total"`
	Mode      string    `json:"mode"`
	Mistakes  []Mistake `json:"mistakes"`
}

// Ledger owns the outcome log. Newest entries sit at position 0.
type Ledger struct {
	kv    store.KV
	items []Item
}

// Load reads the persisted log through the gateway. Absent or malformed
// data is treated as an empty log, never as an error.
func Load(ctx context.Context, kv store.KV) *Ledger {
	l := &Ledger{kv: kv}

	raw, ok, err := kv.Get(ctx, Key)
	if err != nil || !ok {
		return l
	}
	var items []Item
	if json.Unmarshal([]byte(raw), &items) != nil {
		return l
	}
	l.items = items
	return l
}

// Append prepends item, truncates to MaxItems and writes the whole log
// through the gateway.
func (l *Ledger) Append(ctx context.Context, item Item) error {
	l.items = append([]Item{item}, l.items...)
	if len(l.items) > MaxItems {
		l.items = l.items[:MaxItems]
	}

	raw, err := json.Marshal(l.items)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := l.kv.Set(ctx, Key, string(raw)); err != nil {
		return fmt.Errorf("persist history: %w", err)
	}
	return nil
}

// Items returns the log, newest first. Callers must not mutate it.
func (l *Ledger) Items() []Item {
	return l.items
}

// Len returns the number of recorded outcomes.
func (l *Ledger) Len() int {
	return len(l.items)
}

// Clear empties the log and its persisted form.
func (l *Ledger) Clear(ctx context.Context) error {
	l.items = nil
	if err := l.kv.Remove(ctx, Key); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
