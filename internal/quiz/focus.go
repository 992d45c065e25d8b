package quiz

// Focus is the keyboard highlight inside the current question's choices. It is a
// view concern only and is never persisted.
type Focus struct {
	Index int
}

// ResetFocus puts the highlight on the current answer, or the first choice.
func ResetFocus(state State) Focus {
	slot := state.CurrentAnswer()
	if slot.SelectedIndex != nil && *slot.SelectedIndex >= 0 && *slot.SelectedIndex < len(state.Current().Choices) {
		return Focus{Index: *slot.SelectedIndex}
	}
	return Focus{}
}

// Move shifts the highlight circularly among count choices.
func (f Focus) Move(delta, count int) Focus {
	if count <= 0 {
		return Focus{}
	}
	next := (f.Index + delta) % count
	if next < 0 {
		next += count
	}
	return Focus{Index: next}
}

// Confirm selects the focused choice, then advances, or submits on the last question.
func (f Focus) Confirm(c *Controller) (SubmitOutcome, bool) {
	state := c.State()
	count := len(state.Current().Choices)
	if state.Mode != ModeQuiz || count == 0 {
		return SubmitOutcome{}, false
	}

	c.SelectChoice(clamp(f.Index, 0, count-1))
	if state.Cursor < len(state.Bank)-1 {
		c.GoNext()
		return SubmitOutcome{Unanswered: -1}, false
	}
	return c.Submit(), true
}
