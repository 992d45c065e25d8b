package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"studyquiz/internal/config"
	"studyquiz/internal/quiz"
)

const twoQuestionBank = `[
  {"prompt": "2 + 2?", "choices": ["3", "4"], "correctIndex": 1},
  {"prompt": "Sky colour?", "choices": ["Blue", "Green", "Red"], "correctIndex": 0, "explanation": "Rayleigh scattering."}
]`

type fakeTrivia struct {
	text   string
	err    error
	amount int
}

func (f *fakeTrivia) FetchImport(_ context.Context, amount int) (string, error) {
	f.amount = amount
	return f.text, f.err
}

func newTestController(t *testing.T) (*quiz.Controller, *quiz.MemoryStore) {
	t.Helper()

	store := quiz.NewMemoryStore()
	ctrl := quiz.NewController(quiz.NewPersister(store, "", zerolog.Nop()), zerolog.Nop())
	if _, err := ctrl.Import(twoQuestionBank); err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	return ctrl, store
}

func runScript(t *testing.T, opts Options, lines ...string) string {
	t.Helper()

	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	if err := Run(context.Background(), in, &out, opts); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return out.String()
}

func TestRunRequiresController(t *testing.T) {
	err := Run(context.Background(), strings.NewReader(""), &bytes.Buffer{}, Options{})
	if err == nil {
		t.Fatalf("expected error without controller")
	}
}

func TestRunAnswersAllAndSubmitsToReview(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "start", "select B", "next", "select a", "submit", "exit")

	if ctrl.Mode() != quiz.ModeReview {
		t.Fatalf("mode = %q, want review", ctrl.Mode())
	}
	if !strings.Contains(output, "Review: 2/2 correct") {
		t.Fatalf("expected review summary, got:\n%s", output)
	}
	if !strings.Contains(output, "Rayleigh scattering.") {
		t.Fatalf("expected explanation in review, got:\n%s", output)
	}
	if !strings.Contains(output, "Explanation: (Not provided)") {
		t.Fatalf("expected placeholder for missing explanation, got:\n%s", output)
	}
}

func TestRunSubmitWithGapOffersGotoAndForce(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "start", "next", "select A", "submit", "goto")
	if !strings.Contains(output, "first at question 1/2") {
		t.Fatalf("expected unanswered prompt, got:\n%s", output)
	}
	if got := ctrl.State().Cursor; got != 0 {
		t.Fatalf("cursor = %d, want 0 after goto", got)
	}
	if ctrl.Mode() != quiz.ModeQuiz {
		t.Fatalf("mode = %q, want quiz", ctrl.Mode())
	}

	output = runScript(t, Options{Controller: ctrl}, "submit", "force")
	if ctrl.Mode() != quiz.ModeResults {
		t.Fatalf("mode = %q, want results", ctrl.Mode())
	}
	if !strings.Contains(output, "Final score: 1/2") {
		t.Fatalf("expected results summary, got:\n%s", output)
	}
}

func TestRunRejectsInvalidChoiceLetter(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "start", "select Z")
	if !strings.Contains(output, "Please enter a letter A-B") {
		t.Fatalf("expected letter range hint, got:\n%s", output)
	}
	if ctrl.State().AnsweredCount() != 0 {
		t.Fatalf("invalid letter should not record an answer")
	}
}

func TestRunNavigationNeedsQuizMode(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "next")
	if !strings.Contains(output, "start the quiz first") {
		t.Fatalf("expected start hint, got:\n%s", output)
	}
}

func TestRunStartKeepsRunningAttempt(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "start", "select B", "start")
	if !strings.Contains(output, "only available from the main menu") {
		t.Fatalf("expected start refusal, got:\n%s", output)
	}
	if !ctrl.State().Answers[0].Is(1) {
		t.Fatalf("second start should keep the answer: %+v", ctrl.State().Answers)
	}

	runScript(t, Options{Controller: ctrl}, "menu", "start")
	if ctrl.Mode() != quiz.ModeQuiz || ctrl.State().AnsweredCount() != 0 {
		t.Fatalf("start from the menu should begin a new attempt: %+v", ctrl.State())
	}
}

func TestRunJump(t *testing.T) {
	ctrl, _ := newTestController(t)

	output := runScript(t, Options{Controller: ctrl}, "start", "jump 2", "jump 9")
	if got := ctrl.State().Cursor; got != 1 {
		t.Fatalf("cursor = %d, want 1", got)
	}
	if !strings.Contains(output, "no question 9.") {
		t.Fatalf("expected out-of-range message, got:\n%s", output)
	}
}

func TestRunImportAndExportFiles(t *testing.T) {
	ctrl, _ := newTestController(t)
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "bank.yaml")
	yamlBank := "- prompt: Capital of France?\n  choices: [Paris, Rome, Oslo]\n  correctIndex: 0\n"
	if err := os.WriteFile(yamlPath, []byte(yamlBank), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	exportPath := filepath.Join(dir, "out.json")

	output := runScript(t, Options{Controller: ctrl}, "import "+yamlPath, "export "+exportPath)
	if !strings.Contains(output, "Loaded 1 questions") {
		t.Fatalf("expected import status, got:\n%s", output)
	}

	exported, err := os.ReadFile(exportPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	bank, err := quiz.ImportBank(string(exported))
	if err != nil {
		t.Fatalf("exported bank should import cleanly: %v", err)
	}
	if len(bank) != 1 || bank[0].Prompt != "Capital of France?" {
		t.Fatalf("unexpected exported bank: %+v", bank)
	}
}

func TestRunImportMissingFileKeepsBank(t *testing.T) {
	ctrl, _ := newTestController(t)
	before := ctrl.State()

	output := runScript(t, Options{Controller: ctrl}, "import "+filepath.Join(t.TempDir(), "missing.json"))
	if !strings.Contains(output, "Failed to load:") {
		t.Fatalf("expected failure status, got:\n%s", output)
	}
	if len(ctrl.State().Bank) != len(before.Bank) {
		t.Fatalf("bank should be unchanged after failed import")
	}
}

func TestRunTriviaUsesDefaultAmount(t *testing.T) {
	ctrl, _ := newTestController(t)
	source := &fakeTrivia{text: `[{"prompt":"Q?","choices":["x","y"],"correctIndex":1}]`}

	output := runScript(t, Options{Controller: ctrl, Trivia: source, TriviaCount: 7}, "trivia")
	if source.amount != 7 {
		t.Fatalf("amount = %d, want 7", source.amount)
	}
	if !strings.Contains(output, "Loaded 1 questions") {
		t.Fatalf("expected import status, got:\n%s", output)
	}
}

func TestRunTriviaFailureReportsStatus(t *testing.T) {
	ctrl, _ := newTestController(t)
	source := &fakeTrivia{err: errors.New("service down")}

	output := runScript(t, Options{Controller: ctrl, Trivia: source}, "trivia 3")
	if !strings.Contains(output, "Failed to load: service down") {
		t.Fatalf("expected failure status, got:\n%s", output)
	}
	if source.amount != 3 {
		t.Fatalf("amount = %d, want 3", source.amount)
	}
}

func TestOpenSessionMemoryStoreWithStartupImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.json")
	if err := os.WriteFile(path, []byte(twoQuestionBank), 0o644); err != nil {
		t.Fatalf("write bank: %v", err)
	}

	cfg := &config.Config{Store: config.StoreMemory, StorageKey: "test", ImportFile: path}
	session, err := OpenSession(context.Background(), cfg, zerolog.Nop(), SessionOptions{})
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	defer session.Close()

	if got := len(session.Controller.State().Bank); got != 2 {
		t.Fatalf("bank size = %d, want 2", got)
	}
	if got := session.Persister.Key(); got != "test" {
		t.Fatalf("key = %q, want test", got)
	}
}

func TestOpenSessionSQLiteResetDropsSavedSession(t *testing.T) {
	cfg := &config.Config{
		Store:      config.StoreSQLite,
		DBPath:     filepath.Join(t.TempDir(), "quiz.db"),
		StorageKey: "reset-test",
	}

	first, err := OpenSession(context.Background(), cfg, zerolog.Nop(), SessionOptions{})
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	first.Controller.Start()
	first.Controller.SelectChoice(0)
	if err := first.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	resumed, err := OpenSession(context.Background(), cfg, zerolog.Nop(), SessionOptions{})
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	if resumed.Controller.Mode() != quiz.ModeQuiz || resumed.Controller.State().AnsweredCount() != 1 {
		t.Fatalf("expected resumed quiz with one answer, got %+v", resumed.Controller.State().Mode)
	}
	_ = resumed.Close()

	reset, err := OpenSession(context.Background(), cfg, zerolog.Nop(), SessionOptions{Reset: true})
	if err != nil {
		t.Fatalf("OpenSession() error = %v", err)
	}
	defer reset.Close()

	if reset.Controller.Mode() != quiz.ModeIntro || reset.Controller.State().AnsweredCount() != 0 {
		t.Fatalf("expected fresh session after reset")
	}
}

func TestOpenSessionUnknownStore(t *testing.T) {
	cfg := &config.Config{Store: "etcd"}
	if _, err := OpenSession(context.Background(), cfg, zerolog.Nop(), SessionOptions{}); !errors.Is(err, ErrUnknownStore) {
		t.Fatalf("expected ErrUnknownStore, got %v", err)
	}
}
