package quiz

import (
	"strings"
)

type Choice struct {
	Label string `json:"label" validate:"required"`
	Text  string `json:"text"`
}

type Question struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt" validate:"required"`
	Choices      []Choice `json:"choices" validate:"min=2,dive"`
	CorrectIndex int      `json:"correctIndex" validate:"gte=0"`
	Explanation  string   `json:"explanation,omitempty"`
}

// Bank is an ordered, non-empty question bank. Banks are replaced wholesale and
// never edited in place.
type Bank []Question

func (q Question) CorrectChoice() Choice {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return Choice{}
	}
	return q.Choices[q.CorrectIndex]
}

// ChoiceLabel returns the auto label for a choice position: A..Z, then AA, AB, ...
func ChoiceLabel(index int) string {
	if index < 0 {
		return ""
	}

	var reversed []byte
	for n := index; ; n = n/26 - 1 {
		reversed = append(reversed, byte('A'+n%26))
		if n < 26 {
			break
		}
	}

	var builder strings.Builder
	builder.Grow(len(reversed))
	for idx := len(reversed) - 1; idx >= 0; idx-- {
		builder.WriteByte(reversed[idx])
	}
	return builder.String()
}

// ChoiceIndex maps a typed label back to its position within the question, matching
// either the question's own labels or the auto labels. It returns -1 when nothing
// matches.
func ChoiceIndex(question Question, label string) int {
	label = NormalizeLabel(label)
	if label == "" {
		return -1
	}
	for idx, choice := range question.Choices {
		if strings.EqualFold(strings.TrimSpace(choice.Label), label) {
			return idx
		}
	}
	for idx := range question.Choices {
		if ChoiceLabel(idx) == label {
			return idx
		}
	}
	return -1
}

func NormalizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

func IsCorrect(question Question, slot AnswerSlot) bool {
	return slot.SelectedIndex != nil && *slot.SelectedIndex == question.CorrectIndex
}

func (b Bank) Clone() Bank {
	if b == nil {
		return nil
	}
	cloned := make(Bank, len(b))
	for idx, question := range b {
		choices := make([]Choice, len(question.Choices))
		copy(choices, question.Choices)
		question.Choices = choices
		cloned[idx] = question
	}
	return cloned
}
