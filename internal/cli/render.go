package cli

import (
	"fmt"
	"io"

	"studyquiz/internal/quiz"
)

func printScreen(out io.Writer, ctrl *quiz.Controller) {
	state := ctrl.State()

	switch state.Mode {
	case quiz.ModeQuiz:
		printQuestion(out, state)
	case quiz.ModeResults:
		printResults(out, state)
	case quiz.ModeReview:
		printReview(out, state)
	default:
		printIntro(out, state)
	}
}

func printIntro(out io.Writer, state quiz.State) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%d questions loaded. Type 'start' to begin or 'help' for commands.\n", len(state.Bank))
	if answered := state.AnsweredCount(); answered > 0 {
		fmt.Fprintf(out, "Previous attempt: %d/%d answered. Starting again clears it.\n", answered, len(state.Bank))
	}
}

func printQuestion(out io.Writer, state quiz.State) {
	question := state.Current()
	slot := state.CurrentAnswer()

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Q%d (%d/%d, %d answered)\n", question.ID, state.Cursor+1, len(state.Bank), state.AnsweredCount())
	fmt.Fprintf(out, "%s\n\n", question.Prompt)
	for idx, choice := range question.Choices {
		marker := " "
		if slot.Is(idx) {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %s. %s\n", marker, choiceLabel(choice, idx), choice.Text)
	}
}

func printResults(out io.Writer, state quiz.State) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Final score: %d/%d\n", state.CorrectCount(), len(state.Bank))
	for _, result := range state.Results() {
		switch {
		case !result.Answer.IsAnswered():
			fmt.Fprintf(out, "  Q%d: unanswered\n", result.Question.ID)
		case result.Correct:
			fmt.Fprintf(out, "  Q%d: correct\n", result.Question.ID)
		default:
			fmt.Fprintf(out, "  Q%d: wrong\n", result.Question.ID)
		}
	}
	fmt.Fprintln(out, "Type 'review' for explanations, 'retry' to start over or 'menu'.")
}

func printReview(out io.Writer, state quiz.State) {
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Review: %d/%d correct\n", state.CorrectCount(), len(state.Bank))
	for _, result := range state.Results() {
		question := result.Question
		correct := question.CorrectChoice()

		fmt.Fprintln(out)
		fmt.Fprintf(out, "Q%d: %s\n", question.ID, question.Prompt)
		if result.Answer.IsAnswered() {
			selected := *result.Answer.SelectedIndex
			if selected >= 0 && selected < len(question.Choices) {
				fmt.Fprintf(out, "  Your answer: %s. %s\n", choiceLabel(question.Choices[selected], selected), question.Choices[selected].Text)
			}
		} else {
			fmt.Fprintln(out, "  Your answer: (none)")
		}
		fmt.Fprintf(out, "  Correct answer: %s. %s\n", choiceLabel(correct, question.CorrectIndex), correct.Text)
		fmt.Fprintf(out, "  Explanation: %s\n", explanationText(question))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Type 'results' for the summary, 'retry' to start over or 'menu'.")
}

func explanationText(question quiz.Question) string {
	if question.Explanation == "" {
		return "(Not provided)"
	}
	return question.Explanation
}

func choiceLabel(choice quiz.Choice, index int) string {
	if choice.Label != "" {
		return choice.Label
	}
	return quiz.ChoiceLabel(index)
}
