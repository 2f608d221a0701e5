package session

import "github.com/bizlens/analysis-backend/internal/entity"

// toSessionDTO converts a Session entity to its API representation.
func toSessionDTO(session *entity.Session) *entity.SessionDTO {
	dto := &entity.SessionDTO{
		ID:            session.ID,
		Phase:         session.Phase,
		Task:          session.Task,
		Profile:       session.Profile,
		AnsweredCount: len(session.Answers),
		Report:        session.Report,
		ReportRating:  session.ReportRating,
		FollowUps:     session.FollowUps,
		FollowUpsLeft: entity.MaxFollowUps - len(session.FollowUps),
		APICallCount:  session.APICallCount,
		Error:         session.Error,
		CreatedAt:     session.CreatedAt,
		UpdatedAt:     session.UpdatedAt,
	}

	for i, q := range session.Questions {
		dto.Questions = append(dto.Questions, toQuestionDTO(i+1, q))
	}

	if current := session.CurrentQuestion(); current != nil {
		q := toQuestionDTO(len(session.Answers)+1, *current)
		dto.CurrentQuestion = &q
	}

	return dto
}

func toQuestionDTO(number int, q entity.Question) entity.QuestionDTO {
	return entity.QuestionDTO{
		Number:  number,
		Type:    q.Type,
		Text:    q.Text,
		Options: q.Options,
	}
}
