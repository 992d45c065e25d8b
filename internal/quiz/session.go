package quiz

type Mode string

const (
	ModeIntro   Mode = "intro"
	ModeQuiz    Mode = "quiz"
	ModeResults Mode = "results"
	ModeReview  Mode = "review"
)

// ParseMode falls back to ModeIntro for anything it does not recognise.
func ParseMode(value string) Mode {
	switch Mode(value) {
	case ModeIntro, ModeQuiz, ModeResults, ModeReview:
		return Mode(value)
	default:
		return ModeIntro
	}
}

// Finished reports whether the mode is one of the two post-submission views.
func (m Mode) Finished() bool {
	return m == ModeResults || m == ModeReview
}

// AnswerSlot holds the selected choice for one question; nil means unanswered.
type AnswerSlot struct {
	SelectedIndex *int `json:"selectedIndex"`
}

func Answered(index int) AnswerSlot {
	return AnswerSlot{SelectedIndex: &index}
}

func (a AnswerSlot) IsAnswered() bool {
	return a.SelectedIndex != nil
}

func (a AnswerSlot) Is(index int) bool {
	return a.SelectedIndex != nil && *a.SelectedIndex == index
}

// State is the whole session record. Bank and Answers always have the same length
// and Cursor always points into Bank.
type State struct {
	Mode    Mode         `json:"mode"`
	Bank    Bank         `json:"questionBank"`
	Cursor  int          `json:"cursor"`
	Answers []AnswerSlot `json:"answers"`
}

func NewState(bank Bank) State {
	return State{
		Mode:    ModeIntro,
		Bank:    bank,
		Cursor:  0,
		Answers: emptyAnswers(len(bank)),
	}
}

func emptyAnswers(n int) []AnswerSlot {
	return make([]AnswerSlot, n)
}

func (s State) Current() Question {
	if s.Cursor < 0 || s.Cursor >= len(s.Bank) {
		return Question{}
	}
	return s.Bank[s.Cursor]
}

func (s State) CurrentAnswer() AnswerSlot {
	if s.Cursor < 0 || s.Cursor >= len(s.Answers) {
		return AnswerSlot{}
	}
	return s.Answers[s.Cursor]
}

func (s State) AnsweredCount() int {
	count := 0
	for _, slot := range s.Answers {
		if slot.IsAnswered() {
			count++
		}
	}
	return count
}

func (s State) CorrectCount() int {
	count := 0
	for idx, slot := range s.Answers {
		if idx < len(s.Bank) && IsCorrect(s.Bank[idx], slot) {
			count++
		}
	}
	return count
}

// FirstUnanswered returns the lowest index whose slot is still empty.
func (s State) FirstUnanswered() (int, bool) {
	for idx, slot := range s.Answers {
		if !slot.IsAnswered() {
			return idx, true
		}
	}
	return -1, false
}

func (s State) Clone() State {
	answers := make([]AnswerSlot, len(s.Answers))
	for idx, slot := range s.Answers {
		if slot.SelectedIndex != nil {
			answers[idx] = Answered(*slot.SelectedIndex)
		}
	}
	return State{
		Mode:    s.Mode,
		Bank:    s.Bank.Clone(),
		Cursor:  s.Cursor,
		Answers: answers,
	}
}

type QuestionResult struct {
	Number   int
	Question Question
	Answer   AnswerSlot
	Correct  bool
}

// Results is the scored breakdown shown by both finished views.
func (s State) Results() []QuestionResult {
	results := make([]QuestionResult, 0, len(s.Bank))
	for idx, question := range s.Bank {
		var slot AnswerSlot
		if idx < len(s.Answers) {
			slot = s.Answers[idx]
		}
		results = append(results, QuestionResult{
			Number:   idx + 1,
			Question: question,
			Answer:   slot,
			Correct:  IsCorrect(question, slot),
		})
	}
	return results
}
