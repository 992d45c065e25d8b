package quiz

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultPersistTimeout = 2 * time.Second

type ImportFormat string

const (
	FormatJSON ImportFormat = "json"
	FormatYAML ImportFormat = "yaml"
)

// FormatForPath picks the import format from a file extension; anything that is
// not YAML is treated as JSON.
func FormatForPath(path string) ImportFormat {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// SubmitOutcome reports what a submit attempt did. When Finished is false,
// Unanswered is the lowest question index that still has no answer.
type SubmitOutcome struct {
	Finished   bool
	Unanswered int
}

// Controller owns one session. All mutations go through it and every mutation is
// mirrored to the persister before the method returns.
type Controller struct {
	mu sync.Mutex

	state     State
	pending   int
	gated     bool
	status    string
	persister *Persister
	sessionID string
	log       zerolog.Logger
}

// NewController resumes the saved session when one is usable and otherwise starts
// from the default bank.
func NewController(persister *Persister, log zerolog.Logger) *Controller {
	sessionID := uuid.NewString()
	c := &Controller{
		pending:   -1,
		persister: persister,
		sessionID: sessionID,
		log:       log.With().Str("component", "session").Str("session_id", sessionID).Logger(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultPersistTimeout)
	defer cancel()

	if saved, ok := persister.Load(ctx); ok {
		c.state = saved
		c.log.Info().
			Str("mode", string(saved.Mode)).
			Int("questions", len(saved.Bank)).
			Int("answered", saved.AnsweredCount()).
			Msg("resumed saved session")
	} else {
		c.state = NewState(DefaultBank())
		c.log.Info().Int("questions", len(c.state.Bank)).Msg("started with default bank")
	}
	return c
}

func (c *Controller) SessionID() string {
	return c.sessionID
}

// State returns a copy that callers may keep or modify freely.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

func (c *Controller) Mode() Mode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Mode
}

// Status is the message left by the last import attempt.
func (c *Controller) Status() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// Pending reports the unanswered-question prompt raised by Submit, if any.
func (c *Controller) Pending() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending, c.gated
}

// Start begins a fresh attempt from the main menu. It is ignored in any other mode
// so a running or finished attempt is never wiped by accident.
func (c *Controller) Start() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Mode != ModeIntro {
		return false
	}
	c.restart()
	c.log.Info().Msg("quiz started")
	c.persist()
	return true
}

// Retry starts the quiz over; it behaves exactly like Start.
func (c *Controller) Retry() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.restart()
	c.log.Info().Msg("quiz retried")
	c.persist()
}

func (c *Controller) restart() {
	c.state.Answers = emptyAnswers(len(c.state.Bank))
	c.state.Cursor = 0
	c.state.Mode = ModeQuiz
	c.clearGate()
}

// SelectChoice toggles the answer for the current question: choosing the selected
// index again clears it.
func (c *Controller) SelectChoice(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode != ModeQuiz {
		return false
	}
	current := c.state.Current()
	if index < 0 || index >= len(current.Choices) {
		return false
	}

	slot := c.state.Answers[c.state.Cursor]
	if slot.Is(index) {
		c.state.Answers[c.state.Cursor] = AnswerSlot{}
	} else {
		c.state.Answers[c.state.Cursor] = Answered(index)
	}
	c.persist()
	return true
}

func (c *Controller) GoNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveTo(c.state.Cursor + 1)
}

func (c *Controller) GoPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveTo(c.state.Cursor - 1)
}

// JumpTo moves the cursor directly. Out-of-range targets are ignored.
func (c *Controller) JumpTo(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.moveTo(index)
}

func (c *Controller) moveTo(index int) bool {
	if index < 0 || index >= len(c.state.Bank) || index == c.state.Cursor {
		return false
	}
	c.state.Cursor = index
	c.persist()
	return true
}

// Submit finishes the quiz when every question is answered. Otherwise it raises the
// unanswered prompt and leaves the mode alone.
func (c *Controller) Submit() SubmitOutcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode != ModeQuiz {
		return SubmitOutcome{Finished: c.state.Mode.Finished(), Unanswered: -1}
	}

	if idx, missing := c.state.FirstUnanswered(); missing {
		c.pending = idx
		c.gated = true
		c.log.Debug().Int("unanswered", idx).Msg("submit blocked")
		return SubmitOutcome{Finished: false, Unanswered: idx}
	}

	c.finish(ModeReview)
	return SubmitOutcome{Finished: true, Unanswered: -1}
}

// ResolveJump answers the unanswered prompt by moving to the first gap.
func (c *Controller) ResolveJump() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.gated {
		return false
	}
	target := c.pending
	c.clearGate()
	if target >= 0 && target < len(c.state.Bank) {
		c.state.Cursor = target
	}
	c.persist()
	return true
}

// ForceSubmit answers the unanswered prompt by finishing anyway.
func (c *Controller) ForceSubmit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.gated {
		return false
	}
	c.finish(ModeResults)
	return true
}

func (c *Controller) DismissGate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearGate()
}

func (c *Controller) finish(mode Mode) {
	c.clearGate()
	c.state.Mode = mode
	c.log.Info().
		Str("mode", string(mode)).
		Int("answered", c.state.AnsweredCount()).
		Int("correct", c.state.CorrectCount()).
		Int("total", len(c.state.Bank)).
		Msg("quiz submitted")
	c.persist()
}

func (c *Controller) clearGate() {
	c.gated = false
	c.pending = -1
}

// MainMenu returns to the intro screen without touching answers or the bank.
func (c *Controller) MainMenu() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.Mode == ModeIntro {
		return false
	}
	c.state.Mode = ModeIntro
	c.clearGate()
	c.persist()
	return true
}

func (c *Controller) ShowResults() bool {
	return c.switchFinished(ModeResults)
}

func (c *Controller) ShowReview() bool {
	return c.switchFinished(ModeReview)
}

func (c *Controller) switchFinished(mode Mode) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Mode.Finished() {
		return false
	}
	if c.state.Mode != mode {
		c.state.Mode = mode
		c.persist()
	}
	return true
}

// Import replaces the bank with the parsed text. A failed import leaves the session
// exactly as it was.
func (c *Controller) Import(raw string) (Bank, error) {
	return c.importWith(raw, FormatJSON)
}

func (c *Controller) ImportYAML(raw string) (Bank, error) {
	return c.importWith(raw, FormatYAML)
}

// ImportReader reads the whole source and then imports it in one step. A cancelled
// context aborts before anything is replaced.
func (c *Controller) ImportReader(ctx context.Context, r io.Reader, format ImportFormat) (Bank, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		c.setStatus(ImportStatus(nil, fmt.Errorf("read import: %w", err)))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		c.setStatus(ImportStatus(nil, err))
		return nil, err
	}
	return c.importWith(string(data), format)
}

func (c *Controller) importWith(raw string, format ImportFormat) (Bank, error) {
	var (
		bank Bank
		err  error
	)
	switch format {
	case FormatYAML:
		bank, err = ImportBankYAML(raw)
	default:
		bank, err = ImportBank(raw)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.status = ImportStatus(bank, err)
	if err != nil {
		c.log.Warn().Err(err).Str("format", string(format)).Msg("import rejected")
		return nil, err
	}

	c.state.Bank = bank
	c.state.Answers = emptyAnswers(len(bank))
	c.state.Cursor = 0
	c.clearGate()
	c.log.Info().Int("questions", len(bank)).Str("format", string(format)).Msg("question bank imported")
	c.persist()
	return bank.Clone(), nil
}

func (c *Controller) setStatus(status string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *Controller) persist() {
	ctx, cancel := context.WithTimeout(context.Background(), defaultPersistTimeout)
	defer cancel()
	c.persister.Save(ctx, c.state)
}
