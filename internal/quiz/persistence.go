package quiz

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

const DefaultStorageKey = "mman1130StudyGameV1"

type Persister struct {
	store Store
	key   string
	log   zerolog.Logger
}

func NewPersister(store Store, key string, log zerolog.Logger) *Persister {
	if key == "" {
		key = DefaultStorageKey
	}
	return &Persister{
		store: store,
		key:   key,
		log:   log.With().Str("component", "persistence").Str("key", key).Logger(),
	}
}

func (p *Persister) Key() string {
	return p.key
}

// Save mirrors the session into the store. Persistence is best effort: failures are
// logged and dropped so the in-memory session keeps running.
func (p *Persister) Save(ctx context.Context, state State) {
	if p == nil || p.store == nil {
		return
	}

	payload, err := json.Marshal(state)
	if err != nil {
		p.log.Warn().Err(err).Msg("encode session failed")
		return
	}

	if err := p.store.Set(ctx, p.key, string(payload)); err != nil {
		p.log.Warn().Err(err).Msg("save session failed")
		return
	}

	p.log.Debug().
		Str("mode", string(state.Mode)).
		Int("cursor", state.Cursor).
		Int("questions", len(state.Bank)).
		Msg("session saved")
}

// Clear forgets the saved session so the next start uses defaults.
func (p *Persister) Clear(ctx context.Context) error {
	if p == nil || p.store == nil {
		return nil
	}
	if deleter, ok := p.store.(Deleter); ok {
		return deleter.Delete(ctx, p.key)
	}
	return p.store.Set(ctx, p.key, "")
}

// savedState keeps every field undecoded so shape checks happen before any value
// is trusted.
type savedState struct {
	Mode         json.RawMessage `json:"mode"`
	QuestionBank json.RawMessage `json:"questionBank"`
	Cursor       json.RawMessage `json:"cursor"`
	Answers      json.RawMessage `json:"answers"`
}

// Load returns the saved session, or false when there is nothing usable to resume.
func (p *Persister) Load(ctx context.Context) (state State, ok bool) {
	if p == nil || p.store == nil {
		return State{}, false
	}

	defer func() {
		if r := recover(); r != nil {
			p.log.Warn().Str("panic", fmt.Sprint(r)).Msg("load session recovered")
			state, ok = State{}, false
		}
	}()

	raw, found, err := p.store.Get(ctx, p.key)
	if err != nil {
		p.log.Warn().Err(err).Msg("read session failed")
		return State{}, false
	}
	if !found || raw == "" {
		return State{}, false
	}

	loaded, err := decodeSavedState(raw)
	if err != nil {
		p.log.Info().Err(err).Msg("discarding saved session")
		return State{}, false
	}

	p.log.Debug().
		Str("mode", string(loaded.Mode)).
		Int("cursor", loaded.Cursor).
		Int("questions", len(loaded.Bank)).
		Msg("session restored")
	return loaded, true
}

func decodeSavedState(raw string) (State, error) {
	var saved savedState
	if err := json.Unmarshal([]byte(raw), &saved); err != nil {
		return State{}, fmt.Errorf("decode saved session: %w", err)
	}

	if !isJSONArray(saved.QuestionBank) || !isJSONArray(saved.Answers) {
		return State{}, errors.New("questionBank and answers must be arrays")
	}

	var bank Bank
	if err := json.Unmarshal(saved.QuestionBank, &bank); err != nil {
		return State{}, fmt.Errorf("decode questionBank: %w", err)
	}
	var answers []AnswerSlot
	if err := json.Unmarshal(saved.Answers, &answers); err != nil {
		return State{}, fmt.Errorf("decode answers: %w", err)
	}

	if len(bank) == 0 || len(answers) == 0 {
		return State{}, errors.New("saved session is empty")
	}
	if len(bank) != len(answers) {
		return State{}, fmt.Errorf("saved session has %d questions but %d answers", len(bank), len(answers))
	}
	for idx, question := range bank {
		if err := validateQuestion(question); err != nil {
			return State{}, fmt.Errorf("saved question %d: %w", idx, err)
		}
		if selected := answers[idx].SelectedIndex; selected != nil && (*selected < 0 || *selected >= len(question.Choices)) {
			return State{}, fmt.Errorf("saved answer %d selects missing choice %d", idx, *selected)
		}
	}

	mode := ModeIntro
	if value, ok := decodeString(saved.Mode); ok {
		mode = ParseMode(value)
	}

	cursor, ok := decodeInt(saved.Cursor)
	if !ok {
		cursor = 0
	}

	return State{
		Mode:    mode,
		Bank:    bank,
		Cursor:  clamp(cursor, 0, len(bank)-1),
		Answers: answers,
	}, nil
}

func isJSONArray(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func clamp(value, lo, hi int) int {
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
