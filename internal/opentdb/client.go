package opentdb

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"math/rand"
	"net/http"
	"strconv"
)

const (
	apiURL        = "https://opentdb.com/api.php"
	defaultAmount = 10
	maxAmount     = 50
)

// RawQuestion mirrors the OpenTriviaDB question payload.
type RawQuestion struct {
	Type             string   `json:"type"`
	Difficulty       string   `json:"difficulty"`
	Category         string   `json:"category"`
	Question         string   `json:"question"`
	CorrectAnswer    string   `json:"correct_answer"`
	IncorrectAnswers []string `json:"incorrect_answers"`
}

type apiResponse struct {
	ResponseCode int           `json:"response_code"`
	Results      []RawQuestion `json:"results"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    apiURL,
		httpClient: httpClient,
	}
}

func (c *Client) FetchQuestions(ctx context.Context, amount int) ([]RawQuestion, error) {
	if amount <= 0 {
		amount = defaultAmount
	}
	if amount > maxAmount {
		amount = maxAmount
	}

	reqURL := c.baseURL + "?amount=" + strconv.Itoa(amount)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("opentdb returned status %d", resp.StatusCode)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	if payload.ResponseCode != 0 {
		return nil, fmt.Errorf("opentdb response_code=%d", payload.ResponseCode)
	}

	return payload.Results, nil
}

// FetchImport fetches questions and renders them as import text.
func (c *Client) FetchImport(ctx context.Context, amount int) (string, error) {
	raw, err := c.FetchQuestions(ctx, amount)
	if err != nil {
		return "", err
	}
	encoded, err := BuildImport(raw, rand.Shuffle)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

type importQuestion struct {
	ID           int      `json:"id"`
	Prompt       string   `json:"prompt"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation,omitempty"`
}

// BuildImport converts trivia payloads into the question import format. shuffle
// may be nil to keep the incorrect answers first and the correct one last.
func BuildImport(raw []RawQuestion, shuffle func(n int, swap func(i, j int))) ([]byte, error) {
	type choice struct {
		text      string
		isCorrect bool
	}

	questions := make([]importQuestion, 0, len(raw))
	for idx, item := range raw {
		choices := make([]choice, 0, len(item.IncorrectAnswers)+1)
		for _, incorrect := range item.IncorrectAnswers {
			choices = append(choices, choice{
				text:      html.UnescapeString(incorrect),
				isCorrect: false,
			})
		}
		choices = append(choices, choice{
			text:      html.UnescapeString(item.CorrectAnswer),
			isCorrect: true,
		})

		if shuffle != nil {
			shuffle(len(choices), func(i, j int) {
				choices[i], choices[j] = choices[j], choices[i]
			})
		}

		texts := make([]string, len(choices))
		correctIndex := -1
		for pos, candidate := range choices {
			texts[pos] = candidate.text
			if candidate.isCorrect {
				correctIndex = pos
			}
		}

		explanation := html.UnescapeString(item.Category)
		if explanation != "" && item.Difficulty != "" {
			explanation = fmt.Sprintf("%s (%s)", explanation, item.Difficulty)
		}

		questions = append(questions, importQuestion{
			ID:           idx + 1,
			Prompt:       html.UnescapeString(item.Question),
			Choices:      texts,
			CorrectIndex: correctIndex,
			Explanation:  explanation,
		})
	}

	return json.Marshal(questions)
}
