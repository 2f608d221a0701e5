package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bizlens/analysis-backend/internal/entity"
)

// stripFences removes a surrounding markdown code fence. Models routinely
// wrap JSON output in ```json ... ``` despite being told not to.
func stripFences(text string) string {
	text = strings.TrimSpace(text)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	}

	return strings.TrimSpace(text)
}

// ParseQuestions extracts a clarifying-question list from raw model output.
// Malformed entries are dropped rather than failing the whole response;
// an error is returned only when nothing usable remains.
func ParseQuestions(text string) ([]entity.Question, error) {
	cleaned := stripFences(text)

	var raw []entity.Question
	if err := json.Unmarshal([]byte(cleaned), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}

	questions := FilterQuestions(raw)
	if len(questions) == 0 {
		return nil, fmt.Errorf("%w: no valid questions in response", entity.ErrMalformedResponse)
	}

	return questions, nil
}

// FilterQuestions drops entries with missing text, unknown types, or choice
// questions without options, and caps the list at MaxQuestions.
func FilterQuestions(raw []entity.Question) []entity.Question {
	questions := make([]entity.Question, 0, len(raw))

	for _, q := range raw {
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			continue
		}

		switch entity.QuestionType(strings.ToUpper(string(q.Type))) {
		case entity.QuestionTypeMultiChoice:
			if len(q.Options) == 0 {
				continue
			}
			q.Type = entity.QuestionTypeMultiChoice
		case entity.QuestionTypeSingleChoice:
			if len(q.Options) == 0 {
				continue
			}
			q.Type = entity.QuestionTypeSingleChoice
		case entity.QuestionTypeFreeText:
			q.Type = entity.QuestionTypeFreeText
			q.Options = nil
		default:
			continue
		}

		questions = append(questions, q)
		if len(questions) == entity.MaxQuestions {
			break
		}
	}

	return questions
}
