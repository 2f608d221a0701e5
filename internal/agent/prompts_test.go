package agent

import (
	"strings"
	"testing"

	"github.com/bizlens/analysis-backend/internal/entity"
)

var promptProfile = entity.CompanyProfile{
	Name:     "Acme",
	Industry: "Logistics",
	Size:     "200 employees",
}

func TestForTask(t *testing.T) {
	for _, task := range entity.AllTasks() {
		a := ForTask(task)
		if a.Task != task {
			t.Errorf("ForTask(%s).Task = %s", task, a.Task)
		}
		if a.Title == "" || a.Persona == "" {
			t.Errorf("ForTask(%s) has empty title or persona", task)
		}
	}

	// Unknown tasks fall back to strategic planning.
	if a := ForTask(entity.Task("UNKNOWN")); a.Task != entity.TaskStrategicPlanning {
		t.Errorf("ForTask(unknown) = %s, want strategic planning fallback", a.Task)
	}
}

func TestQuestionsPrompt(t *testing.T) {
	prompt := QuestionsPrompt(entity.TaskOperationalEfficiency, promptProfile)

	for _, want := range []string{
		"Operational Efficiency Analysis",
		"name: Acme",
		"industry: Logistics",
		"MCQ", "RADIO", "INPUT",
		"JSON array",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("questions prompt missing %q", want)
		}
	}

	// Empty profile fields must not leak "key: " stubs into the prompt.
	if strings.Contains(prompt, "description:") {
		t.Error("questions prompt contains empty description field")
	}
}

func TestAnalysisPromptContainsAnswersAndSections(t *testing.T) {
	req := &entity.GenerateAnalysisRequest{
		Task:    entity.TaskStrategicPlanning,
		Profile: promptProfile,
		Answers: []entity.Answer{
			{Question: "Main focus?", Answer: "Growth", Type: entity.QuestionTypeMultiChoice},
		},
		History: []entity.ChatMessage{
			{Role: "assistant", Content: "Main focus?"},
			{Role: "user", Content: "Growth"},
		},
	}

	prompt := AnalysisPrompt(req)

	for _, want := range []string{
		"Question 1: Main focus?",
		"Answer: Growth",
		"## Overview", "## Key Findings", "## Recommendations", "## Risks", "## Next Steps",
		"assistant: Main focus?",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("analysis prompt missing %q", want)
		}
	}
}

func TestFollowUpPromptContainsHistoryAndInput(t *testing.T) {
	req := &entity.GenerateFollowUpRequest{
		Task:      entity.TaskStakeholderEngagement,
		Profile:   promptProfile,
		History:   []entity.ChatMessage{{Role: "assistant", Content: "the report text"}},
		UserInput: "Which stakeholder first?",
	}

	prompt := FollowUpPrompt(req)

	if !strings.Contains(prompt, "Which stakeholder first?") {
		t.Error("follow-up prompt missing the user question")
	}
	if !strings.Contains(prompt, "assistant: the report text") {
		t.Error("follow-up prompt missing the history")
	}
	if !strings.Contains(prompt, "Stakeholder Engagement Strategy") {
		t.Error("follow-up prompt missing the task title")
	}
}
