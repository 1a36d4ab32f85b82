package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/saransh/quizdeck/internal/ui/theme"
)

var optionLabels = []string{"A", "B", "C", "D", "E", "F"}

// OptionList renders a question's shuffled answer options and tracks the
// cursor. Once revealed, the correct and chosen options are highlighted
// and the cursor freezes.
type OptionList struct {
	Question string
	Options  []string
	Selected int

	Revealed     bool
	ChosenIndex  int // display index the user picked; -1 before reveal
	CorrectIndex int // display index of the correct option; -1 if unresolvable
}

// NewOptionList creates an OptionList over the given display texts.
func NewOptionList(question string, options []string) OptionList {
	return OptionList{
		Question:     question,
		Options:      options,
		ChosenIndex:  -1,
		CorrectIndex: -1,
	}
}

// Reveal freezes the list and highlights the outcome.
func (o *OptionList) Reveal(chosen, correct int) {
	o.Revealed = true
	o.ChosenIndex = chosen
	o.CorrectIndex = correct
}

// Update handles cursor movement. Digit keys jump straight to an option.
func (o OptionList) Update(msg tea.Msg) (OptionList, tea.Cmd) {
	if o.Revealed {
		return o, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if i := int(key[0] - '1'); i < len(o.Options) {
				o.Selected = i
			}
		}
	}

	return o, nil
}

// View renders the question text and its options.
func (o OptionList) View() string {
	s := theme.Body.Bold(true).Render(o.Question) + "\n\n"

	for i, opt := range o.Options {
		label := "?"
		if i < len(optionLabels) {
			label = optionLabels[i]
		}
		prefix := "  "
		if i == o.Selected && !o.Revealed {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case o.Revealed && i == o.CorrectIndex:
			s += theme.Correct.Render(line) + "\n"
		case o.Revealed && i == o.ChosenIndex:
			s += theme.Incorrect.Render(line) + "\n"
		case o.Revealed:
			s += theme.Hint.Render(line) + "\n"
		case i == o.Selected:
			s += theme.Selected.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}
