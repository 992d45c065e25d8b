package quiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type ImportErrorKind string

const (
	ImportParseFailure    ImportErrorKind = "parse_failure"
	ImportSchemaViolation ImportErrorKind = "schema_violation"
	ImportInvalidElement  ImportErrorKind = "invalid_element"
)

var ErrImport = errors.New("import failed")

type ImportError struct {
	Kind   ImportErrorKind
	Index  int
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	switch e.Kind {
	case ImportInvalidElement:
		return fmt.Sprintf("Invalid question at index %d: %s", e.Index, e.Reason)
	case ImportParseFailure:
		if e.Reason != "" {
			return "invalid JSON: " + e.Reason
		}
		return "invalid JSON"
	default:
		return e.Reason
	}
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

func (e *ImportError) Is(target error) bool {
	return target == ErrImport
}

// rawQuestion is the permissive shape of one imported element. Every field stays
// undecoded until coerceQuestion decides what it accepts.
type rawQuestion struct {
	ID           json.RawMessage `json:"id"`
	Prompt       json.RawMessage `json:"prompt"`
	Choices      json.RawMessage `json:"choices"`
	CorrectIndex json.RawMessage `json:"correctIndex"`
	AnswerIndex  json.RawMessage `json:"answerIndex"`
	Explanation  json.RawMessage `json:"explanation"`
}

type rawChoice struct {
	Label json.RawMessage `json:"label"`
	Text  json.RawMessage `json:"text"`
}

var questionValidator = newQuestionValidator()

func newQuestionValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ImportBank parses text in the import format into a validated bank. Nothing is
// returned unless every element is valid.
func ImportBank(raw string) (Bank, error) {
	var root json.RawMessage
	if err := json.Unmarshal([]byte(raw), &root); err != nil {
		return nil, &ImportError{Kind: ImportParseFailure, Reason: err.Error(), Err: err}
	}

	trimmed := bytes.TrimSpace(root)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ImportError{Kind: ImportSchemaViolation, Reason: "root must be an array"}
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(trimmed, &elements); err != nil {
		return nil, &ImportError{Kind: ImportSchemaViolation, Reason: "root must be an array", Err: err}
	}
	if len(elements) == 0 {
		return nil, &ImportError{Kind: ImportSchemaViolation, Reason: "question bank must not be empty"}
	}

	bank := make(Bank, 0, len(elements))
	for idx, element := range elements {
		question, err := coerceQuestion(element, idx)
		if err != nil {
			return nil, &ImportError{Kind: ImportInvalidElement, Index: idx, Reason: err.Error(), Err: err}
		}
		bank = append(bank, question)
	}
	return bank, nil
}

// ImportBankYAML accepts the same shape written as YAML.
func ImportBankYAML(raw string) (Bank, error) {
	var doc any
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, &ImportError{Kind: ImportParseFailure, Reason: err.Error(), Err: err}
	}

	encoded, err := json.Marshal(normalizeYAML(doc))
	if err != nil {
		return nil, &ImportError{Kind: ImportParseFailure, Reason: err.Error(), Err: err}
	}
	return ImportBank(string(encoded))
}

// normalizeYAML turns yaml.v3 generic values into something encoding/json accepts.
func normalizeYAML(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[key] = normalizeYAML(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(typed))
		for key, item := range typed {
			out[fmt.Sprint(key)] = normalizeYAML(item)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for idx, item := range typed {
			out[idx] = normalizeYAML(item)
		}
		return out
	default:
		return value
	}
}

func coerceQuestion(element json.RawMessage, idx int) (Question, error) {
	var raw rawQuestion
	if err := json.Unmarshal(element, &raw); err != nil {
		return Question{}, errors.New("element must be an object")
	}

	prompt, _ := decodeString(raw.Prompt)

	choices, err := coerceChoices(raw.Choices)
	if err != nil {
		return Question{}, err
	}

	correctIndex, ok := decodeInt(raw.CorrectIndex)
	if !ok {
		correctIndex, ok = decodeInt(raw.AnswerIndex)
	}
	if !ok {
		return Question{}, errors.New("correctIndex or answerIndex must be an integer")
	}

	id, ok := decodeInt(raw.ID)
	if !ok {
		id = idx + 1
	}

	explanation, _ := decodeString(raw.Explanation)

	question := Question{
		ID:           id,
		Prompt:       prompt,
		Choices:      choices,
		CorrectIndex: correctIndex,
		Explanation:  explanation,
	}

	if err := validateQuestion(question); err != nil {
		return Question{}, err
	}
	return question, nil
}

// validateQuestion applies the rules every question in a bank has to satisfy.
func validateQuestion(question Question) error {
	if err := questionValidator.Struct(question); err != nil {
		return describeValidation(err)
	}
	if question.CorrectIndex >= len(question.Choices) {
		return fmt.Errorf("correctIndex %d out of range for %d choices", question.CorrectIndex, len(question.Choices))
	}
	return nil
}

func coerceChoices(data json.RawMessage) ([]Choice, error) {
	var items []json.RawMessage
	if len(data) == 0 || json.Unmarshal(data, &items) != nil {
		return nil, errors.New("choices must be an array")
	}

	choices := make([]Choice, 0, len(items))
	for idx, item := range items {
		label := ChoiceLabel(idx)

		if text, ok := decodeString(item); ok {
			choices = append(choices, Choice{Label: label, Text: text})
			continue
		}

		var object rawChoice
		if trimmed := bytes.TrimSpace(item); len(trimmed) == 0 || trimmed[0] != '{' {
			return nil, fmt.Errorf("choice %d must be a string or an object", idx)
		}
		if err := json.Unmarshal(item, &object); err != nil {
			return nil, fmt.Errorf("choice %d must be a string or an object", idx)
		}
		if custom, ok := decodeScalar(object.Label); ok && custom != "" {
			label = custom
		}
		text, _ := decodeScalar(object.Text)
		choices = append(choices, Choice{Label: label, Text: text})
	}
	return choices, nil
}

func describeValidation(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return err
	}

	fe := fieldErrors[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s is required", fe.Field())
	case "min":
		return fmt.Errorf("%s must have at least %s entries", fe.Field(), fe.Param())
	case "gte":
		return fmt.Errorf("%s must be >= %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s failed %s validation", fe.Field(), fe.Tag())
	}
}

func decodeString(data json.RawMessage) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", false
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return "", false
	}
	return value, true
}

// decodeScalar renders strings, numbers and booleans as text; null and structured
// values are rejected.
func decodeScalar(data json.RawMessage) (string, bool) {
	if value, ok := decodeString(data); ok {
		return value, true
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", false
	}
	switch trimmed[0] {
	case '{', '[':
		return "", false
	}
	return string(trimmed), true
}

func decodeInt(data json.RawMessage) (int, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] == '"' {
		return 0, false
	}
	var number json.Number
	decoder := json.NewDecoder(bytes.NewReader(trimmed))
	decoder.UseNumber()
	if err := decoder.Decode(&number); err != nil {
		return 0, false
	}
	if value, err := number.Int64(); err == nil {
		return int(value), true
	}

	// 1.0 and 1e0 are still whole numbers.
	value, err := number.Float64()
	if err != nil || math.Trunc(value) != value {
		return 0, false
	}
	if value < math.MinInt64 || value >= math.MaxInt64 {
		return 0, false
	}
	return int(value), true
}

// ExportBank writes a bank in the import format.
func ExportBank(bank Bank) ([]byte, error) {
	return json.MarshalIndent(bank, "", "  ")
}

// ImportStatus is the transient message shown after an import attempt.
func ImportStatus(bank Bank, err error) string {
	if err != nil {
		return "Failed to load: " + err.Error()
	}
	return fmt.Sprintf("Loaded %d questions", len(bank))
}
