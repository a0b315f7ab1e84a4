package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/feedback"
	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
)

// FeedbackHandler exposes the post-conversation feedback endpoint.
type FeedbackHandler struct {
	service feedback.Service
	log     zerolog.Logger
}

// NewFeedbackHandler wires dependencies for feedback routes.
func NewFeedbackHandler(service feedback.Service, log zerolog.Logger) *FeedbackHandler {
	return &FeedbackHandler{
		service: service,
		log:     log.With().Str("component", "feedback-handler").Logger(),
	}
}

type submitFeedbackRequest struct {
	DialogueID string `json:"dialogueId" binding:"required"`
	Helpful    string `json:"helpful"`
	Feeling    string `json:"feeling"`
}

// Submit godoc
// @Summary      Submit conversation feedback
// @Description  Appends one feedback row for the dialogue.
// @Tags         feedback
// @Accept       json
// @Produce      plain
// @Param        request  body      submitFeedbackRequest  true  "Feedback"
// @Success      200      {string}  string
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/feedback [post]
func (h *FeedbackHandler) Submit(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, "dialogueId is required")
		return
	}

	helpful := feedback.Helpful(req.Helpful)
	feeling := feedback.Feeling(req.Feeling)
	if !helpful.Valid() || !feeling.Valid() {
		h.log.Warn().
			Str("dialogue_id", req.DialogueID).
			Str("helpful", req.Helpful).
			Str("feeling", req.Feeling).
			Msg("feedback with unknown answer rejected")
		abortValidation(c, "unknown feedback value")
		return
	}

	if err := h.service.Record(c.Request.Context(), req.DialogueID, helpful, feeling); err != nil {
		respondError(c, err)
		return
	}

	metrics.FeedbackRecordedTotal.Inc()
	c.String(http.StatusOK, "Feedback submitted successfully")
}
