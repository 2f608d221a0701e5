package session

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers session routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/session", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Post("/{id}/profile", h.SubmitProfile)
		r.Post("/{id}/answer", h.SubmitAnswer)
		r.Post("/{id}/report", h.RetryReport)
		r.Get("/{id}/report", h.GetReport)
		r.Post("/{id}/follow-up", h.SubmitFollowUp)
		r.Post("/{id}/rate", h.Rate)
		r.Post("/{id}/reset", h.ResetSession)
		r.Get("/{id}/transcript", h.GetTranscript)
	})
}
