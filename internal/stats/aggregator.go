// Package stats maintains per-question accuracy counters and derives the
// weak-point ranking used for targeted review.
package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/store"
)

// Key is the persistence gateway key for the statistics mapping.
const Key = "quizdeck.stats"

// Stat is the cumulative counter for one question text.
type Stat struct {
	Attempts int `json:"attempts"`
	Correct  int `json:"correct"`
}

// Accuracy is Correct/Attempts, or 0 with no attempts.
func (s Stat) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// Ranked is one entry of the weak-point ranking.
type Ranked struct {
	Question string
	Stat
}

// Aggregator owns the question-text keyed statistics mapping. Questions
// are keyed by their text, so duplicate texts share one record.
type Aggregator struct {
	kv     store.KV
	counts map[string]Stat
}

// Load reads the persisted mapping through the gateway. Absent or
// malformed data is treated as empty, never as an error.
func Load(ctx context.Context, kv store.KV) *Aggregator {
	a := &Aggregator{kv: kv, counts: make(map[string]Stat)}

	raw, ok, err := kv.Get(ctx, Key)
	if err != nil || !ok {
		return a
	}
	var counts map[string]Stat
	if json.Unmarshal([]byte(raw), &counts) != nil || counts == nil {
		return a
	}
	a.counts = counts
	return a
}

// RecordAttempt increments the attempt counter for the question text,
// and the correct counter as well when wasCorrect is set. The full
// mapping is written through the gateway before returning.
func (a *Aggregator) RecordAttempt(ctx context.Context, questionText string, wasCorrect bool) error {
	s := a.counts[questionText]
	s.Attempts++
	if wasCorrect {
		s.Correct++
	}
	a.counts[questionText] = s
	return a.persist(ctx)
}

// Stat returns the counter for a question text, zero-valued if untracked.
func (a *Aggregator) Stat(questionText string) Stat {
	return a.counts[questionText]
}

// Len returns the number of tracked question texts.
func (a *Aggregator) Len() int {
	return len(a.counts)
}

// Rank orders all given questions weakest first: ascending accuracy,
// with unattempted questions after every attempted one, ties among
// attempted questions broken by descending attempt count, and remaining
// ties left in input order.
func (a *Aggregator) Rank(all []bank.Question) []Ranked {
	ranked := make([]Ranked, 0, len(all))
	for _, q := range all {
		ranked = append(ranked, Ranked{Question: q.Text, Stat: a.counts[q.Text]})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		ri, rj := ranked[i], ranked[j]
		if (ri.Attempts == 0) != (rj.Attempts == 0) {
			return ri.Attempts != 0
		}
		if ri.Accuracy() != rj.Accuracy() {
			return ri.Accuracy() < rj.Accuracy()
		}
		return ri.Attempts > rj.Attempts
	})
	return ranked
}

// Known returns the tracked questions ranked weakest first, without
// needing the loaded bank. Used by the non-TUI stats command.
func (a *Aggregator) Known() []Ranked {
	ranked := make([]Ranked, 0, len(a.counts))
	for text, s := range a.counts {
		ranked = append(ranked, Ranked{Question: text, Stat: s})
	}
	sort.Slice(ranked, func(i, j int) bool {
		ri, rj := ranked[i], ranked[j]
		if ri.Accuracy() != rj.Accuracy() {
			return ri.Accuracy() < rj.Accuracy()
		}
		if ri.Attempts != rj.Attempts {
			return ri.Attempts > rj.Attempts
		}
		return ri.Question < rj.Question
	})
	return ranked
}

// Reset clears the mapping and its persisted form.
func (a *Aggregator) Reset(ctx context.Context) error {
	a.counts = make(map[string]Stat)
	if err := a.kv.Remove(ctx, Key); err != nil {
		return fmt.Errorf("reset stats: %w", err)
	}
	return nil
}

func (a *Aggregator) persist(ctx context.Context) error {
	raw, err := json.Marshal(a.counts)
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if err := a.kv.Set(ctx, Key, string(raw)); err != nil {
		return fmt.Errorf("persist stats: %w", err)
	}
	return nil
}
