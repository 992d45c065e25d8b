package tui

import (
	"context"
	"errors"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"studyquiz/internal/quiz"
)

// Run drives the quiz UI until the user quits or ctx is cancelled.
func Run(ctx context.Context, ctrl *quiz.Controller, in io.Reader, out io.Writer, opts Options) error {
	if ctrl == nil {
		return errors.New("session controller is required")
	}
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	program := tea.NewProgram(
		NewModel(ctrl, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	)
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
