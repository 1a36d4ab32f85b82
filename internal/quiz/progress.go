// Package quiz implements the session state machine core: quiz progress,
// answer and navigation transitions, and outcome scoring. It has no
// rendering dependencies so every transition is unit-testable.
package quiz

import (
	"github.com/saransh/quizdeck/internal/bank"
	"github.com/saransh/quizdeck/internal/shuffle"
)

// DisplayOption is one answer option as presented to the user, carrying
// the 1-based index it holds in the question's original option order.
type DisplayOption struct {
	Text     string
	Original int
}

// Progress is the state of one quiz session. The question subset is
// fixed at start; Index, the solved set and the answer records mutate as
// the user works through it.
type Progress struct {
	Questions []bank.Question
	Index     int

	// Solved holds the indices answered correctly this session.
	Solved map[int]bool

	// chosen maps question index to the display-option index the user
	// picked. Presence marks the question as answered; a question is
	// scored at most once per session.
	chosen map[int]int

	// display caches the shuffled option order per question for the
	// session's lifetime, so navigating back shows the same layout.
	display map[int][]DisplayOption

	// maxIndex is the highest question index the user has reached.
	maxIndex int

	// fullBank records whether this session covers the whole bank,
	// which only affects the outcome's mode label.
	fullBank bool
}

// New starts a session over the given question subset.
func New(questions []bank.Question, fullBank bool) *Progress {
	return &Progress{
		Questions: questions,
		Solved:    make(map[int]bool),
		chosen:    make(map[int]int),
		display:   make(map[int][]DisplayOption),
		fullBank:  fullBank,
	}
}

// Current returns the question at the current index.
func (p *Progress) Current() bank.Question {
	return p.Questions[p.Index]
}

// Display returns the shuffled option layout for the current question,
// generating and caching it on first use.
func (p *Progress) Display() []DisplayOption {
	if opts, ok := p.display[p.Index]; ok {
		return opts
	}
	q := p.Current()
	opts := make([]DisplayOption, len(q.Options))
	for i, text := range q.Options {
		opts[i] = DisplayOption{Text: text, Original: i + 1}
	}
	opts = shuffle.Slice(opts)
	p.display[p.Index] = opts
	return opts
}

// Answered reports whether the current question has been answered.
func (p *Progress) Answered() bool {
	_, ok := p.chosen[p.Index]
	return ok
}

// Chosen returns the display-option index picked for the current
// question, or -1 if it is unanswered.
func (p *Progress) Chosen() int {
	if i, ok := p.chosen[p.Index]; ok {
		return i
	}
	return -1
}

// Answer records the user's pick for the current question and reports
// whether it was correct. The second return is false when the question
// was already answered this session; callers must not record statistics
// in that case.
func (p *Progress) Answer(displayIndex int) (correct, counted bool) {
	if p.Answered() {
		return p.Solved[p.Index], false
	}

	opts := p.Display()
	if displayIndex < 0 || displayIndex >= len(opts) {
		return false, false
	}

	p.chosen[p.Index] = displayIndex
	correct = opts[displayIndex].Original == p.Current().Correct
	if correct {
		p.Solved[p.Index] = true
	}
	return correct, true
}

// Next advances to the next question. It reports true when there is no
// next question, i.e. the session is complete and should be finished.
// Advancing past an unanswered question is not allowed.
func (p *Progress) Next() (done bool) {
	if !p.Answered() {
		return false
	}
	if p.Index+1 >= len(p.Questions) {
		return true
	}
	p.Index++
	if p.Index > p.maxIndex {
		p.maxIndex = p.Index
	}
	return false
}

// Prev moves back one question. No-op at the first question.
func (p *Progress) Prev() {
	if p.Index > 0 {
		p.Index--
	}
}

// Score is the number of questions answered correctly this session.
func (p *Progress) Score() int {
	return len(p.Solved)
}
