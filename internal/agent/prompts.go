package agent

import (
	"fmt"
	"strings"

	"github.com/bizlens/analysis-backend/internal/entity"
)

// formatProfile renders the company profile as "key: value" pairs,
// skipping empty fields.
func formatProfile(p entity.CompanyProfile) string {
	parts := make([]string, 0, 4)
	if p.Name != "" {
		parts = append(parts, "name: "+p.Name)
	}
	if p.Industry != "" {
		parts = append(parts, "industry: "+p.Industry)
	}
	if p.Size != "" {
		parts = append(parts, "size: "+p.Size)
	}
	if p.Description != "" {
		parts = append(parts, "description: "+p.Description)
	}
	return strings.Join(parts, ", ")
}

// formatHistory renders the conversation transcript as "role: content" lines.
func formatHistory(history []entity.ChatMessage) string {
	lines := make([]string, 0, len(history))
	for _, m := range history {
		lines = append(lines, m.Role+": "+m.Content)
	}
	return strings.Join(lines, "\n")
}

func formatAnswers(answers []entity.Answer) string {
	var sb strings.Builder
	for i, a := range answers {
		fmt.Fprintf(&sb, "Question %d: %s\nAnswer: %s\n", i+1, a.Question, a.Answer)
	}
	return sb.String()
}

// QuestionsPrompt asks for up to five short clarifying questions as a JSON
// array with MCQ/RADIO/INPUT types. The model is told to include at least
// one question of each type.
func QuestionsPrompt(task entity.Task, profile entity.CompanyProfile) string {
	a := ForTask(task)
	return fmt.Sprintf(`%s

Task: %s
Company Info: %s

Generate up to %d short questions (max 15 words each) about the company for the task, including:
- At least 1 MCQ question with 4 options.
- At least 1 RADIO question with 3 options.
- At least 1 INPUT question (short text input).
- Focus on company details relevant to the task.
- Ensure questions elicit detailed insights for a comprehensive %s analysis.

Output as a JSON array only, no prose:
[
  {"type": "MCQ" or "RADIO" or "INPUT", "question": "Question text", "options": ["Option1", "Option2"]}
]
Omit "options" for INPUT questions.`,
		a.Persona, a.Title, formatProfile(profile), entity.MaxQuestions, a.Title)
}

// AnalysisPrompt asks for the final written report with the five expected
// section headings.
func AnalysisPrompt(req *entity.GenerateAnalysisRequest) string {
	a := ForTask(req.Task)
	return fmt.Sprintf(`%s

Task: %s
Company Info: %s
User Answers:
%s
History:
%s

Write a %s analysis report for the company based on the information and
answers above. Provide actionable insights relevant to the task. Structure
the report in markdown with exactly these five sections:
## Overview
## Key Findings
## Recommendations
## Risks
## Next Steps`,
		a.Persona, a.Title, formatProfile(req.Profile),
		formatAnswers(req.Answers), formatHistory(req.History), a.Title)
}

// FollowUpPrompt asks for a concise answer to a post-report question.
func FollowUpPrompt(req *entity.GenerateFollowUpRequest) string {
	a := ForTask(req.Task)
	return fmt.Sprintf(`%s

Task: %s
Company Info: %s
History:
%s
User Follow-Up: %s

Generate a concise response to the follow-up question, ensuring relevance
to the task and company context.`,
		a.Persona, a.Title, formatProfile(req.Profile),
		formatHistory(req.History), req.UserInput)
}
