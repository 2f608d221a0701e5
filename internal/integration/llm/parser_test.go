package llm

import (
	"errors"
	"testing"

	"github.com/bizlens/analysis-backend/internal/entity"
)

func TestParseQuestions(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCount int
		wantErr   bool
	}{
		{
			name:      "plain JSON array",
			input:     `[{"type":"MCQ","question":"Main focus?","options":["A","B","C","D"]},{"type":"INPUT","question":"Key product?"}]`,
			wantCount: 2,
		},
		{
			name: "fenced with language tag",
			input: "```json\n" +
				`[{"type":"RADIO","question":"Profitable?","options":["Yes","No","Unsure"]}]` +
				"\n```",
			wantCount: 1,
		},
		{
			name: "fenced without language tag",
			input: "```\n" +
				`[{"type":"INPUT","question":"Biggest challenge?"}]` +
				"\n```",
			wantCount: 1,
		},
		{
			name:      "lowercase type is normalized",
			input:     `[{"type":"input","question":"Describe your team."}]`,
			wantCount: 1,
		},
		{
			name:      "malformed entries are dropped",
			input:     `[{"type":"MCQ","question":"No options"},{"type":"WEIRD","question":"Bad type"},{"type":"INPUT","question":""},{"type":"INPUT","question":"Valid one"}]`,
			wantCount: 1,
		},
		{
			name:      "list capped at maximum",
			input:     `[{"type":"INPUT","question":"q1"},{"type":"INPUT","question":"q2"},{"type":"INPUT","question":"q3"},{"type":"INPUT","question":"q4"},{"type":"INPUT","question":"q5"},{"type":"INPUT","question":"q6"},{"type":"INPUT","question":"q7"}]`,
			wantCount: entity.MaxQuestions,
		},
		{
			name:    "not JSON",
			input:   "Sure! Here are some questions you could ask:",
			wantErr: true,
		},
		{
			name:    "valid JSON but nothing usable",
			input:   `[{"type":"MCQ","question":"No options at all"}]`,
			wantErr: true,
		},
		{
			name:    "empty array",
			input:   `[]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseQuestions(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseQuestions() error = nil, want error")
				}
				if !errors.Is(err, entity.ErrMalformedResponse) {
					t.Errorf("error = %v, want ErrMalformedResponse", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseQuestions() error = %v", err)
			}
			if len(got) != tt.wantCount {
				t.Errorf("got %d questions, want %d", len(got), tt.wantCount)
			}
		})
	}
}

func TestFilterQuestionsNormalizesTypes(t *testing.T) {
	raw := []entity.Question{
		{Type: "mcq", Text: "Pick one", Options: []string{"A", "B", "C", "D"}},
		{Type: "Radio", Text: "Yes or no?", Options: []string{"Yes", "No"}},
		{Type: "input", Text: "Tell me more", Options: []string{"should be stripped"}},
	}

	got := FilterQuestions(raw)
	if len(got) != 3 {
		t.Fatalf("got %d questions, want 3", len(got))
	}

	if got[0].Type != entity.QuestionTypeMultiChoice {
		t.Errorf("got[0].Type = %s, want MCQ", got[0].Type)
	}
	if got[1].Type != entity.QuestionTypeSingleChoice {
		t.Errorf("got[1].Type = %s, want RADIO", got[1].Type)
	}
	if got[2].Type != entity.QuestionTypeFreeText {
		t.Errorf("got[2].Type = %s, want INPUT", got[2].Type)
	}
	if got[2].Options != nil {
		t.Errorf("INPUT question kept options: %v", got[2].Options)
	}
}

func TestStripFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fence", `[1,2]`, `[1,2]`},
		{"json fence", "```json\n[1,2]\n```", `[1,2]`},
		{"bare fence", "```\n[1,2]\n```", `[1,2]`},
		{"surrounding whitespace", "  \n```json\n[1,2]\n```\n  ", `[1,2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := stripFences(tt.input); got != tt.want {
				t.Errorf("stripFences() = %q, want %q", got, tt.want)
			}
		})
	}
}
