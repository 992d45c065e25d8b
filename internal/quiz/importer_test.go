package quiz

import (
	"errors"
	"strings"
	"testing"
)

func TestImportBankStringChoicesGetLabels(t *testing.T) {
	bank, err := ImportBank(`[{"prompt": "Pick", "choices": ["x", "y", "z"], "correctIndex": 1}]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}

	choices := bank[0].Choices
	want := []string{"A", "B", "C"}
	for idx, label := range want {
		if choices[idx].Label != label {
			t.Fatalf("choice %d label = %q, want %q", idx, choices[idx].Label, label)
		}
	}
	if choices[2].Text != "z" {
		t.Fatalf("choice text = %q, want z", choices[2].Text)
	}
	if bank[0].ID != 1 {
		t.Fatalf("missing id should default to position, got %d", bank[0].ID)
	}
}

func TestImportBankObjectChoices(t *testing.T) {
	bank, err := ImportBank(`[{
  "id": 42,
  "prompt": "Units?",
  "choices": [{"label": "i", "text": "metres"}, {"text": "feet"}, {"label": 3, "text": 7}],
  "correctIndex": 0,
  "explanation": "SI units."
}]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}

	question := bank[0]
	if question.ID != 42 || question.Explanation != "SI units." {
		t.Fatalf("unexpected question: %+v", question)
	}
	if question.Choices[0].Label != "i" {
		t.Fatalf("custom label not kept: %+v", question.Choices[0])
	}
	if question.Choices[1].Label != "B" {
		t.Fatalf("missing label should fall back to auto label: %+v", question.Choices[1])
	}
	if question.Choices[2].Label != "3" || question.Choices[2].Text != "7" {
		t.Fatalf("scalar label/text should be rendered as text: %+v", question.Choices[2])
	}
}

func TestImportBankAnswerIndexFallback(t *testing.T) {
	bank, err := ImportBank(`[{"prompt": "Q", "choices": ["a", "b"], "answerIndex": 1}]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}
	if bank[0].CorrectIndex != 1 {
		t.Fatalf("correctIndex = %d, want 1", bank[0].CorrectIndex)
	}

	bank, err = ImportBank(`[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 0, "answerIndex": 1}]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}
	if bank[0].CorrectIndex != 0 {
		t.Fatalf("correctIndex should win over answerIndex, got %d", bank[0].CorrectIndex)
	}
}

func TestImportBankAcceptsWholeFloats(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		id      int
		correct int
	}{
		{name: "float correctIndex", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 1.0}]`, id: 1, correct: 1},
		{name: "exponent answerIndex", raw: `[{"prompt": "Q", "choices": ["a", "b"], "answerIndex": 1e0}]`, id: 1, correct: 1},
		{name: "float id", raw: `[{"id": 7.0, "prompt": "Q", "choices": ["a", "b"], "correctIndex": 0}]`, id: 7, correct: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := ImportBank(tc.raw)
			if err != nil {
				t.Fatalf("ImportBank() error = %v", err)
			}
			if bank[0].ID != tc.id || bank[0].CorrectIndex != tc.correct {
				t.Fatalf("got id=%d correctIndex=%d, want id=%d correctIndex=%d", bank[0].ID, bank[0].CorrectIndex, tc.id, tc.correct)
			}
		})
	}
}

func TestImportBankIgnoresNonStringExplanation(t *testing.T) {
	bank, err := ImportBank(`[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 0, "explanation": 12}]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}
	if bank[0].Explanation != "" {
		t.Fatalf("explanation = %q, want empty", bank[0].Explanation)
	}
}

func TestImportBankRejections(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		kind     ImportErrorKind
		contains string
	}{
		{name: "not json", raw: `{oops`, kind: ImportParseFailure, contains: "invalid JSON"},
		{name: "object root", raw: `{"prompt": "Q"}`, kind: ImportSchemaViolation, contains: "root must be an array"},
		{name: "empty array", raw: `[]`, kind: ImportSchemaViolation, contains: "must not be empty"},
		{name: "missing prompt", raw: `[{"choices": ["a", "b"], "correctIndex": 0}]`, kind: ImportInvalidElement, contains: "index 0"},
		{name: "non-string prompt", raw: `[{"prompt": 5, "choices": ["a", "b"], "correctIndex": 0}]`, kind: ImportInvalidElement, contains: "prompt is required"},
		{name: "one choice", raw: `[{"prompt": "Q", "choices": ["a"], "correctIndex": 0}]`, kind: ImportInvalidElement, contains: "choices"},
		{name: "choices not array", raw: `[{"prompt": "Q", "choices": "ab", "correctIndex": 0}]`, kind: ImportInvalidElement, contains: "choices must be an array"},
		{name: "null choice", raw: `[{"prompt": "Q", "choices": ["a", null], "correctIndex": 0}]`, kind: ImportInvalidElement, contains: "choice 1"},
		{name: "no index", raw: `[{"prompt": "Q", "choices": ["a", "b"]}]`, kind: ImportInvalidElement, contains: "correctIndex or answerIndex"},
		{name: "quoted index", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": "1"}]`, kind: ImportInvalidElement, contains: "correctIndex or answerIndex"},
		{name: "fractional index", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 0.5}]`, kind: ImportInvalidElement, contains: "correctIndex or answerIndex"},
		{name: "fractional float index", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 1.5}]`, kind: ImportInvalidElement, contains: "correctIndex or answerIndex"},
		{name: "negative index", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": -1}]`, kind: ImportInvalidElement, contains: "correctIndex must be >= 0"},
		{name: "index out of range", raw: `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 2}]`, kind: ImportInvalidElement, contains: "out of range"},
		{name: "element not object", raw: `["just text"]`, kind: ImportInvalidElement, contains: "element must be an object"},
		{
			name:     "second element bad",
			raw:      `[{"prompt": "Q", "choices": ["a", "b"], "correctIndex": 0}, {"prompt": "R", "choices": ["a", "b"], "correctIndex": 9}]`,
			kind:     ImportInvalidElement,
			contains: "Invalid question at index 1",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			bank, err := ImportBank(tc.raw)
			if err == nil {
				t.Fatalf("expected error, got bank %+v", bank)
			}
			if bank != nil {
				t.Fatalf("failed import should return no bank")
			}

			var importErr *ImportError
			if !errors.As(err, &importErr) {
				t.Fatalf("expected *ImportError, got %T", err)
			}
			if importErr.Kind != tc.kind {
				t.Fatalf("kind = %q, want %q", importErr.Kind, tc.kind)
			}
			if !errors.Is(err, ErrImport) {
				t.Fatalf("expected errors.Is(err, ErrImport)")
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Fatalf("error %q does not contain %q", err.Error(), tc.contains)
			}
		})
	}
}

func TestExportBankRoundTrip(t *testing.T) {
	original, err := ImportBank(`[
  {"id": 7, "prompt": "Q1", "choices": [{"label": "i", "text": "one"}, {"label": "ii", "text": "two"}], "correctIndex": 1, "explanation": "because"},
  {"id": 8, "prompt": "Q2", "choices": ["x", "y", "z"], "correctIndex": 0}
]`)
	if err != nil {
		t.Fatalf("ImportBank() error = %v", err)
	}

	encoded, err := ExportBank(original)
	if err != nil {
		t.Fatalf("ExportBank() error = %v", err)
	}
	again, err := ImportBank(string(encoded))
	if err != nil {
		t.Fatalf("re-import error = %v", err)
	}

	if len(again) != len(original) {
		t.Fatalf("bank size = %d, want %d", len(again), len(original))
	}
	for idx := range original {
		a, b := original[idx], again[idx]
		if a.ID != b.ID || a.Prompt != b.Prompt || a.CorrectIndex != b.CorrectIndex || a.Explanation != b.Explanation {
			t.Fatalf("question %d changed: %+v vs %+v", idx, a, b)
		}
		for c := range a.Choices {
			if a.Choices[c] != b.Choices[c] {
				t.Fatalf("question %d choice %d changed: %+v vs %+v", idx, c, a.Choices[c], b.Choices[c])
			}
		}
	}
}

func TestImportBankYAML(t *testing.T) {
	bank, err := ImportBankYAML(`
- id: 3
  prompt: Largest planet?
  choices: [Mars, Jupiter, Venus]
  correctIndex: 1
  explanation: Gas giant.
`)
	if err != nil {
		t.Fatalf("ImportBankYAML() error = %v", err)
	}
	if len(bank) != 1 || bank[0].ID != 3 || bank[0].Choices[1].Text != "Jupiter" || bank[0].Choices[1].Label != "B" {
		t.Fatalf("unexpected bank: %+v", bank)
	}

	if _, err := ImportBankYAML("prompt: [unterminated"); err == nil {
		t.Fatalf("expected YAML parse failure")
	}
	if _, err := ImportBankYAML("prompt: not a list"); err == nil || !strings.Contains(err.Error(), "root must be an array") {
		t.Fatalf("expected schema violation, got %v", err)
	}
}

func TestImportStatus(t *testing.T) {
	if got := ImportStatus(Bank{{}, {}}, nil); got != "Loaded 2 questions" {
		t.Fatalf("status = %q", got)
	}
	if got := ImportStatus(nil, errors.New("boom")); got != "Failed to load: boom" {
		t.Fatalf("status = %q", got)
	}
}
