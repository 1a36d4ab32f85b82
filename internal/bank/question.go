// Package bank holds the loaded question set and its remote CSV source.
package bank

// OptionCount is the number of answer options every question carries.
const OptionCount = 4

// UnavailableAnswer is shown when a question's correct-option index does
// not resolve to one of its options.
const UnavailableAnswer = "(unavailable)"

// Question is a single multiple-choice question. Immutable once loaded.
// Its text doubles as the statistics key, so two questions with identical
// text share one accuracy record.
type Question struct {
	Text        string
	Options     []string
	Correct     int // 1-based index into Options
	Explanation string
}

// CorrectText returns the text of the correct option, or UnavailableAnswer
// if the correct-option index is out of range for this question.
func (q Question) CorrectText() string {
	if q.Correct < 1 || q.Correct > len(q.Options) {
		return UnavailableAnswer
	}
	return q.Options[q.Correct-1]
}
