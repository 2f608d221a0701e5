package entity

// Requests passed to the text-generation connector. The connector builds the
// actual prompt string from these; callers never deal with prompt text.

type GenerateQuestionsRequest struct {
	Task    Task           `json:"task"`
	Profile CompanyProfile `json:"profile"`
}

type GenerateQuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type GenerateAnalysisRequest struct {
	Task    Task           `json:"task"`
	Profile CompanyProfile `json:"profile"`
	Answers []Answer       `json:"answers"`
	History []ChatMessage  `json:"history"`
}

type GenerateAnalysisResponse struct {
	Result string `json:"result"`
}

type GenerateFollowUpRequest struct {
	Task      Task           `json:"task"`
	Profile   CompanyProfile `json:"profile"`
	History   []ChatMessage  `json:"history"`
	UserInput string         `json:"user_input"`
}

type GenerateFollowUpResponse struct {
	Result string `json:"result"`
}
