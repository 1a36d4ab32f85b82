package quiz

import (
	"fmt"
	"math"
)

// Mistake is a snapshot of a missed question taken at scoring time.
type Mistake struct {
	Question      string
	CorrectAnswer string
}

// Outcome is the scored result of a finished or abandoned session.
type Outcome struct {
	Score    int
	Total    int // effective total: the scoring denominator
	Accuracy int // rounded percentage, 0-100
	Mode     string
	Mistakes []Mistake
}

// Finish scores the session. earlyExit limits the total to the questions
// the user actually reached: inclusive of the furthest one if it was
// answered, exclusive otherwise. Returns nil for an early exit with zero
// effective questions; such a session leaves no record.
func (p *Progress) Finish(earlyExit bool) *Outcome {
	total := len(p.Questions)
	if earlyExit {
		total = p.maxIndex
		if _, ok := p.chosen[p.maxIndex]; ok {
			total++
		}
		if total == 0 {
			return nil
		}
	}

	score := p.Score()
	var mistakes []Mistake
	for i := 0; i < total; i++ {
		if p.Solved[i] {
			continue
		}
		q := p.Questions[i]
		mistakes = append(mistakes, Mistake{
			Question:      q.Text,
			CorrectAnswer: q.CorrectText(),
		})
	}

	return &Outcome{
		Score:    score,
		Total:    total,
		Accuracy: int(math.Round(100 * float64(score) / float64(total))),
		Mode:     p.modeLabel(earlyExit),
		Mistakes: mistakes,
	}
}

// modeLabel describes the session shape for display only.
func (p *Progress) modeLabel(earlyExit bool) string {
	label := fmt.Sprintf("%d questions", len(p.Questions))
	if p.fullBank {
		label = "full bank"
	}
	if earlyExit {
		label += " (ended early)"
	}
	return label
}
