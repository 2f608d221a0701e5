package validator

import (
	"fmt"
	"strings"

	"github.com/bizlens/analysis-backend/internal/entity"
)

// ValidateSubmitProfile validates the company profile form submission.
// Only name and industry are mandatory, matching the input form.
func (v *Validator) ValidateSubmitProfile(req *entity.SubmitProfileRequest) error {
	if strings.TrimSpace(req.Profile.Name) == "" {
		return fmt.Errorf("%w: name", entity.ErrMissingField)
	}

	if strings.TrimSpace(req.Profile.Industry) == "" {
		return fmt.Errorf("%w: industry", entity.ErrMissingField)
	}

	if err := req.Task.Validate(); err != nil {
		return err
	}

	return nil
}

// ValidateSubmitAnswer validates an answer to a clarifying question.
func (v *Validator) ValidateSubmitAnswer(req *entity.SubmitAnswerRequest) error {
	if strings.TrimSpace(req.Answer) == "" {
		return fmt.Errorf("%w: answer", entity.ErrMissingField)
	}

	return nil
}

// ValidateFollowUp validates a follow-up chat submission.
func (v *Validator) ValidateFollowUp(req *entity.FollowUpRequest) error {
	if strings.TrimSpace(req.Question) == "" {
		return fmt.Errorf("%w: question", entity.ErrMissingField)
	}

	return nil
}

// ValidateRate validates a 1-5 rating submission.
func (v *Validator) ValidateRate(req *entity.RateRequest) error {
	if req.Rating < 1 || req.Rating > 5 {
		return fmt.Errorf("%w: got %d", entity.ErrInvalidRating, req.Rating)
	}

	return nil
}
