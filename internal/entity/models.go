package entity

import (
	"fmt"
	"strings"
	"time"
)

type Phase string

// Phase represents the current state of the analysis session workflow.
// The sequencer only ever moves forward; the only way back is an explicit reset.
const (
	PhaseAwaitingInput   Phase = "AWAITING_INPUT"   // Waiting for company profile and task selection
	PhaseAwaitingAnswers Phase = "AWAITING_ANSWERS" // Clarifying questions generated, collecting answers
	PhaseShowingReport   Phase = "SHOWING_REPORT"   // Analysis report generated
	PhaseFollowUp        Phase = "FOLLOW_UP"        // Post-report chat, up to MaxFollowUps turns
)

type Task string

const (
	TaskStrategicPlanning        Task = "STRATEGIC_PLANNING"
	TaskOrganizationalAssessment Task = "ORGANIZATIONAL_ASSESSMENT"
	TaskOperationalEfficiency    Task = "OPERATIONAL_EFFICIENCY"
	TaskStakeholderEngagement    Task = "STAKEHOLDER_ENGAGEMENT"
)

func (t Task) Validate() error {
	switch t {
	case TaskStrategicPlanning, TaskOrganizationalAssessment,
		TaskOperationalEfficiency, TaskStakeholderEngagement:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrInvalidTask, t)
	}
}

func AllTasks() []Task {
	return []Task{
		TaskStrategicPlanning,
		TaskOrganizationalAssessment,
		TaskOperationalEfficiency,
		TaskStakeholderEngagement,
	}
}

type QuestionType string

const (
	QuestionTypeMultiChoice  QuestionType = "MCQ"   // multiple options, 4 expected
	QuestionTypeSingleChoice QuestionType = "RADIO" // single selection, 3 expected
	QuestionTypeFreeText     QuestionType = "INPUT" // short text input
)

// MaxQuestions caps the clarifying question list per session.
const MaxQuestions = 5

// MaxFollowUps caps the post-report chat length.
const MaxFollowUps = 5

// CompanyProfile is the user-supplied business context. Only Name and
// Industry are mandatory; Size and Description are free text.
type CompanyProfile struct {
	Name        string `json:"name"`
	Industry    string `json:"industry"`
	Size        string `json:"size"`
	Description string `json:"description"`
}

// Normalized returns a copy with surrounding whitespace trimmed so that
// profiles that differ only in spacing produce the same cache key.
func (p CompanyProfile) Normalized() CompanyProfile {
	return CompanyProfile{
		Name:        strings.TrimSpace(p.Name),
		Industry:    strings.TrimSpace(p.Industry),
		Size:        strings.TrimSpace(p.Size),
		Description: strings.TrimSpace(p.Description),
	}
}

type Question struct {
	Type    QuestionType `json:"type"`
	Text    string       `json:"question"`
	Options []string     `json:"options,omitempty"`
}

// Answer pairs a question with the user's response, in the order asked.
type Answer struct {
	Question string       `json:"question"`
	Answer   string       `json:"answer"`
	Type     QuestionType `json:"type"`
}

// FollowUpTurn is one question/answer exchange in the post-report chat.
type FollowUpTurn struct {
	ID        string    `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Rating    *int      `json:"rating,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatMessage mirrors the conversation transcript fed back into prompts.
type ChatMessage struct {
	Role    string `json:"role"` // "assistant" or "user"
	Content string `json:"content"`
}

// Session holds the entire per-user state. It lives only in memory and is
// discarded on reset or TTL expiry.
type Session struct {
	ID           string          `json:"session_id"`
	Phase        Phase           `json:"phase"`
	Profile      *CompanyProfile `json:"profile,omitempty"`
	Task         *Task           `json:"task,omitempty"`
	Questions    []Question      `json:"questions,omitempty"`
	Answers      []Answer        `json:"answers,omitempty"`
	History      []ChatMessage   `json:"history,omitempty"`
	Report       *string         `json:"report,omitempty"`
	ReportRating *int            `json:"report_rating,omitempty"`
	FollowUps    []FollowUpTurn  `json:"follow_ups,omitempty"`
	APICallCount int             `json:"api_call_count"`
	Error        *string         `json:"error,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// CurrentQuestion returns the next unanswered question, or nil when the
// questionnaire is complete.
func (s *Session) CurrentQuestion() *Question {
	if s.Phase != PhaseAwaitingAnswers {
		return nil
	}
	if len(s.Answers) >= len(s.Questions) {
		return nil
	}
	q := s.Questions[len(s.Answers)]
	return &q
}

// AllAnswered reports whether every generated question has an answer.
func (s *Session) AllAnswered() bool {
	return len(s.Questions) > 0 && len(s.Answers) >= len(s.Questions)
}

// Clone returns a deep copy so that the store never hands out shared
// mutable slices.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	if s.Profile != nil {
		p := *s.Profile
		out.Profile = &p
	}
	if s.Task != nil {
		t := *s.Task
		out.Task = &t
	}
	if s.Report != nil {
		r := *s.Report
		out.Report = &r
	}
	if s.ReportRating != nil {
		r := *s.ReportRating
		out.ReportRating = &r
	}
	if s.Error != nil {
		e := *s.Error
		out.Error = &e
	}
	out.Questions = make([]Question, len(s.Questions))
	copy(out.Questions, s.Questions)
	out.Answers = make([]Answer, len(s.Answers))
	copy(out.Answers, s.Answers)
	out.History = make([]ChatMessage, len(s.History))
	copy(out.History, s.History)
	out.FollowUps = make([]FollowUpTurn, len(s.FollowUps))
	for i, f := range s.FollowUps {
		if f.Rating != nil {
			r := *f.Rating
			f.Rating = &r
		}
		out.FollowUps[i] = f
	}
	return &out
}
