package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/quiz"
)

var (
	colorTitle   = lipgloss.Color("33")
	colorMuted   = lipgloss.Color("242")
	colorFocus   = lipgloss.Color("212")
	colorCorrect = lipgloss.Color("42")
	colorWrong   = lipgloss.Color("196")
	colorWarn    = lipgloss.Color("214")
)

func renderTitle(noColor bool) string {
	title := "MMAN1130 Study Game"
	if noColor {
		return title
	}
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).MarginBottom(1).Render(title)
}

func (m Model) renderIntro(state quiz.State) string {
	lines := []string{
		fmt.Sprintf("%d questions loaded.", len(state.Bank)),
	}
	if answered := state.AnsweredCount(); answered > 0 {
		lines = append(lines, stylize(fmt.Sprintf("Previous attempt: %d/%d answered. Starting again clears it.", answered, len(state.Bank)), m.noColor, colorMuted))
	}
	lines = append(lines, "")

	bindings := []string{m.keys.Confirm.Help().Key + " start", helpLine(m.keys.Import)}
	if m.trivia != nil {
		bindings = append(bindings, helpLine(m.keys.Trivia))
	}
	bindings = append(bindings, helpLine(m.keys.Quit))
	lines = append(lines, stylize(strings.Join(bindings, "  "), m.noColor, colorMuted))
	return strings.Join(lines, "\n")
}

func (m Model) renderQuiz(state quiz.State) string {
	question := state.Current()
	slot := state.CurrentAnswer()

	header := fmt.Sprintf("Question %d  ·  %d of %d  ·  %d answered", question.ID, state.Cursor+1, len(state.Bank), state.AnsweredCount())
	lines := []string{
		stylize(header, m.noColor, colorMuted),
		wrap(question.Prompt, m.width),
		"",
	}

	for idx, choice := range question.Choices {
		pointer := "  "
		if idx == m.focus.Index {
			pointer = "> "
		}
		mark := "( )"
		if slot.Is(idx) {
			mark = "(•)"
		}
		line := fmt.Sprintf("%s%s %s. %s", pointer, mark, choiceLabel(choice, idx), choice.Text)
		if idx == m.focus.Index {
			line = stylize(line, m.noColor, colorFocus)
		}
		lines = append(lines, line)
	}
	lines = append(lines, "")

	if pending, gated := m.ctrl.Pending(); gated {
		prompt := fmt.Sprintf("Question %d is unanswered.  %s  %s  %s", state.Bank[pending].ID, helpLine(m.keys.Goto), helpLine(m.keys.Force), helpLine(m.keys.Dismiss))
		lines = append(lines, stylize(prompt, m.noColor, colorWarn))
		return strings.Join(lines, "\n")
	}

	help := helpLine(m.keys.Up, m.keys.Down, m.keys.Prev, m.keys.Next, m.keys.Confirm, m.keys.Submit, m.keys.Menu)
	lines = append(lines, stylize(help, m.noColor, colorMuted))
	return strings.Join(lines, "\n")
}

func (m Model) renderResults(state quiz.State) string {
	score := fmt.Sprintf("Score: %d / %d", state.CorrectCount(), len(state.Bank))

	results := m.results
	results.SetRows(resultRows(state))

	help := helpLine(m.keys.Switch, m.keys.Retry, m.keys.Menu, m.keys.Quit)
	return lipgloss.JoinVertical(lipgloss.Left,
		stylize(score, m.noColor, colorTitle),
		results.View(),
		stylize(help, m.noColor, colorMuted),
	)
}

func (m Model) renderReview(state quiz.State) string {
	lines := []string{
		stylize(fmt.Sprintf("Review: %d / %d correct", state.CorrectCount(), len(state.Bank)), m.noColor, colorTitle),
	}

	for _, result := range state.Results() {
		question := result.Question
		lines = append(lines, "", wrap(fmt.Sprintf("Q%d. %s", question.ID, question.Prompt), m.width))

		for idx, choice := range question.Choices {
			line := fmt.Sprintf("   %s. %s", choiceLabel(choice, idx), choice.Text)
			switch {
			case idx == question.CorrectIndex:
				line = stylize(line+"  ✓", m.noColor, colorCorrect)
			case result.Answer.Is(idx):
				line = stylize(line+"  ✗ your answer", m.noColor, colorWrong)
			}
			lines = append(lines, line)
		}
		if !result.Answer.IsAnswered() {
			lines = append(lines, stylize("   (not answered)", m.noColor, colorWarn))
		}
		explanation := question.Explanation
		if explanation == "" {
			explanation = "(Not provided)"
		}
		lines = append(lines, stylize(wrap("   Explanation: "+explanation, m.width), m.noColor, colorMuted))
	}

	lines = append(lines, "", stylize(helpLine(m.keys.Switch, m.keys.Retry, m.keys.Menu, m.keys.Quit), m.noColor, colorMuted))
	return strings.Join(lines, "\n")
}

func resultColumns(width int) []table.Column {
	promptWidth := max(width-34, 20)
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Question", Width: promptWidth},
		{Title: "Answer", Width: 8},
		{Title: "Result", Width: 12},
	}
}

func resultRows(state quiz.State) []table.Row {
	rows := make([]table.Row, 0, len(state.Bank))
	for _, result := range state.Results() {
		answer := "-"
		if result.Answer.IsAnswered() {
			selected := *result.Answer.SelectedIndex
			if selected >= 0 && selected < len(result.Question.Choices) {
				answer = choiceLabel(result.Question.Choices[selected], selected)
			}
		}

		outcome := "wrong"
		switch {
		case !result.Answer.IsAnswered():
			outcome = "unanswered"
		case result.Correct:
			outcome = "correct"
		}

		rows = append(rows, table.Row{strconv.Itoa(result.Question.ID), result.Question.Prompt, answer, outcome})
	}
	return rows
}

func tableStyles(noColor bool) table.Styles {
	styles := table.DefaultStyles()
	if noColor {
		styles.Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		styles.Cell = lipgloss.NewStyle().Padding(0, 1)
		styles.Selected = lipgloss.NewStyle()
		return styles
	}
	styles.Header = styles.Header.Bold(true).Foreground(colorTitle)
	styles.Selected = styles.Selected.Foreground(colorFocus)
	return styles
}

func choiceLabel(choice quiz.Choice, index int) string {
	if choice.Label != "" {
		return choice.Label
	}
	return quiz.ChoiceLabel(index)
}

func wrap(text string, width int) string {
	if width <= 0 {
		return text
	}
	return lipgloss.NewStyle().Width(width).Render(text)
}

// stylize applies optional color styling.
func stylize(text string, noColor bool, color lipgloss.Color) string {
	if noColor {
		return text
	}
	return lipgloss.NewStyle().Foreground(color).Render(text)
}
