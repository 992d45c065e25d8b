package tui

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"studyquiz/internal/quiz"
)

const defaultTriviaTimeout = 15 * time.Second

// TriviaSource produces import text from a remote question service.
type TriviaSource interface {
	FetchImport(ctx context.Context, amount int) (string, error)
}

// Options configures the quiz UI model.
type Options struct {
	NoColor     bool
	Trivia      TriviaSource
	TriviaCount int
}

// Model renders a quiz session using Bubble Tea. All session changes go through
// the controller; the model only owns view state.
type Model struct {
	ctrl        *quiz.Controller
	keys        keyMap
	focus       quiz.Focus
	input       textinput.Model
	importing   bool
	loading     bool
	results     table.Model
	trivia      TriviaSource
	triviaCount int
	notice      string
	width       int
	noColor     bool
}

// NewModel constructs a UI model for a session controller.
func NewModel(ctrl *quiz.Controller, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "path/to/questions.json"
	input.Prompt = "Import file: "
	input.CharLimit = 512

	results := table.New(
		table.WithColumns(resultColumns(80)),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
	)
	results.SetStyles(tableStyles(opts.NoColor))

	triviaCount := opts.TriviaCount
	if triviaCount <= 0 {
		triviaCount = 10
	}

	m := Model{
		ctrl:        ctrl,
		keys:        defaultKeyMap(),
		input:       input,
		results:     results,
		trivia:      opts.Trivia,
		triviaCount: triviaCount,
		width:       80,
		noColor:     opts.NoColor,
	}
	m.focus = quiz.ResetFocus(ctrl.State())
	return m
}

// Init has nothing to start; the session is already loaded.
func (m Model) Init() tea.Cmd {
	return nil
}

// triviaMsg carries the result of a background trivia fetch.
type triviaMsg struct {
	text string
	err  error
}

// Update handles key presses and background results.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.results.SetColumns(resultColumns(typed.Width))
		m.results.SetHeight(max(typed.Height-8, 3))
		return m, nil
	case triviaMsg:
		m.loading = false
		if typed.err != nil {
			m.notice = quiz.ImportStatus(nil, typed.err)
			return m, nil
		}
		_, _ = m.ctrl.Import(typed.text)
		m.notice = m.ctrl.Status()
		m.focus = quiz.ResetFocus(m.ctrl.State())
		return m, nil
	case tea.KeyMsg:
		if key.Matches(typed, m.keys.ForceEnd) {
			return m, tea.Quit
		}
		if m.importing {
			return m.updateImport(typed)
		}
		return m.updateKey(typed)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if _, gated := m.ctrl.Pending(); gated {
		return m.updateGate(msg), nil
	}

	switch m.ctrl.Mode() {
	case quiz.ModeQuiz:
		return m.updateQuiz(msg)
	case quiz.ModeResults, quiz.ModeReview:
		return m.updateFinished(msg)
	default:
		return m.updateIntro(msg)
	}
}

func (m Model) updateIntro(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Confirm):
		m.ctrl.Start()
		m.notice = ""
		m.focus = quiz.ResetFocus(m.ctrl.State())
	case key.Matches(msg, m.keys.Import):
		return m.beginImport()
	case key.Matches(msg, m.keys.Trivia):
		return m.fetchTrivia()
	}
	return m, nil
}

func (m Model) updateQuiz(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	count := len(m.ctrl.State().Current().Choices)

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.focus = m.focus.Move(-1, count)
	case key.Matches(msg, m.keys.Down):
		m.focus = m.focus.Move(1, count)
	case key.Matches(msg, m.keys.Prev):
		if m.ctrl.GoPrev() {
			m.focus = quiz.ResetFocus(m.ctrl.State())
		}
	case key.Matches(msg, m.keys.Next):
		if m.ctrl.GoNext() {
			m.focus = quiz.ResetFocus(m.ctrl.State())
		}
	case key.Matches(msg, m.keys.Confirm):
		m.focus.Confirm(m.ctrl)
		m.focus = quiz.ResetFocus(m.ctrl.State())
	case key.Matches(msg, m.keys.Submit):
		m.ctrl.Submit()
	case key.Matches(msg, m.keys.Menu):
		m.ctrl.MainMenu()
	case key.Matches(msg, m.keys.Import):
		return m.beginImport()
	}
	return m, nil
}

func (m Model) updateGate(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keys.Goto):
		m.ctrl.ResolveJump()
		m.focus = quiz.ResetFocus(m.ctrl.State())
	case key.Matches(msg, m.keys.Force):
		m.ctrl.ForceSubmit()
	case key.Matches(msg, m.keys.Dismiss):
		m.ctrl.DismissGate()
	}
	return m
}

func (m Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Retry):
		m.ctrl.Retry()
		m.focus = quiz.ResetFocus(m.ctrl.State())
	case key.Matches(msg, m.keys.Menu):
		m.ctrl.MainMenu()
	case key.Matches(msg, m.keys.Switch):
		if m.ctrl.Mode() == quiz.ModeReview {
			m.ctrl.ShowResults()
		} else {
			m.ctrl.ShowReview()
		}
	case key.Matches(msg, m.keys.Up):
		m.results.MoveUp(1)
	case key.Matches(msg, m.keys.Down):
		m.results.MoveDown(1)
	}
	return m, nil
}

func (m Model) beginImport() (tea.Model, tea.Cmd) {
	m.importing = true
	m.input.SetValue("")
	cmd := m.input.Focus()
	return m, cmd
}

func (m Model) updateImport(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.importing = false
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		m.importing = false
		m.input.Blur()
		m.notice = importFile(m.ctrl, strings.TrimSpace(m.input.Value()))
		m.focus = quiz.ResetFocus(m.ctrl.State())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func importFile(ctrl *quiz.Controller, path string) string {
	if path == "" {
		return ""
	}
	file, err := os.Open(path)
	if err != nil {
		return quiz.ImportStatus(nil, err)
	}
	defer file.Close()

	_, _ = ctrl.ImportReader(context.Background(), file, quiz.FormatForPath(path))
	return ctrl.Status()
}

func (m Model) fetchTrivia() (tea.Model, tea.Cmd) {
	if m.trivia == nil || m.loading {
		return m, nil
	}
	m.loading = true
	m.notice = "Loading trivia questions..."

	source, amount := m.trivia, m.triviaCount
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTriviaTimeout)
		defer cancel()
		text, err := source.FetchImport(ctx, amount)
		return triviaMsg{text: text, err: err}
	}
}

// View renders the current screen.
func (m Model) View() string {
	state := m.ctrl.State()

	var body string
	switch state.Mode {
	case quiz.ModeQuiz:
		body = m.renderQuiz(state)
	case quiz.ModeResults:
		body = m.renderResults(state)
	case quiz.ModeReview:
		body = m.renderReview(state)
	default:
		body = m.renderIntro(state)
	}

	parts := []string{renderTitle(m.noColor), body}
	if m.importing {
		parts = append(parts, m.input.View())
	}
	if m.notice != "" {
		parts = append(parts, stylize(m.notice, m.noColor, lipgloss.Color("244")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
