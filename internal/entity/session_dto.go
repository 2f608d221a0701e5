package entity

import "time"

type SubmitProfileRequest struct {
	Profile CompanyProfile `json:"profile"`
	Task    Task           `json:"task"`
}

type SubmitAnswerRequest struct {
	Answer string `json:"answer"`
}

type FollowUpRequest struct {
	Question string `json:"question"`
}

type RateRequest struct {
	// TurnID is empty when rating the report itself.
	TurnID string `json:"turn_id,omitempty"`
	Rating int    `json:"rating"`
}

type QuestionDTO struct {
	Number  int          `json:"number"`
	Type    QuestionType `json:"type"`
	Text    string       `json:"question"`
	Options []string     `json:"options,omitempty"`
}

type SessionDTO struct {
	ID              string          `json:"session_id"`
	Phase           Phase           `json:"phase"`
	Task            *Task           `json:"task,omitempty"`
	Profile         *CompanyProfile `json:"profile,omitempty"`
	Questions       []QuestionDTO   `json:"questions,omitempty"`
	CurrentQuestion *QuestionDTO    `json:"current_question,omitempty"`
	AnsweredCount   int             `json:"answered_count"`
	Report          *string         `json:"report,omitempty"`
	ReportRating    *int            `json:"report_rating,omitempty"`
	FollowUps       []FollowUpTurn  `json:"follow_ups,omitempty"`
	FollowUpsLeft   int             `json:"follow_ups_left"`
	APICallCount    int             `json:"api_call_count"`
	Error           *string         `json:"error,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Transcript is the JSON export of everything accumulated in a session.
type Transcript struct {
	SessionID    string          `json:"session_id"`
	Task         *Task           `json:"task,omitempty"`
	Profile      *CompanyProfile `json:"profile,omitempty"`
	Answers      []Answer        `json:"answers"`
	Report       *string         `json:"report,omitempty"`
	ReportRating *int            `json:"report_rating,omitempty"`
	FollowUps    []FollowUpTurn  `json:"follow_ups"`
	APICallCount int             `json:"api_call_count"`
	ExportedAt   time.Time       `json:"exported_at"`
}

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatPDF, FormatDOCX:
		return true
	default:
		return false
	}
}
