package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/chat"
	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
)

// ChatHandler exposes the conversation turn endpoint.
type ChatHandler struct {
	service chat.Service
	log     zerolog.Logger
}

// NewChatHandler wires dependencies for chat routes.
func NewChatHandler(service chat.Service, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service: service,
		log:     log.With().Str("component", "chat-handler").Logger(),
	}
}

type sendTurnRequest struct {
	DialogueID   string `json:"dialogueId" binding:"required"`
	Message      string `json:"message"`
	SystemPrompt string `json:"systemPrompt"`
}

// SendTurn godoc
// @Summary      Send a conversation turn
// @Description  Appends the user message, asks the completion provider for a reply and returns the full reply text.
// @Tags         chat
// @Accept       json
// @Produce      plain
// @Param        request  body      sendTurnRequest  true  "Turn request"
// @Success      200      {string}  string
// @Failure      400      {object}  errorResponse
// @Failure      404      {object}  errorResponse
// @Failure      500      {object}  errorResponse
// @Failure      502      {object}  errorResponse
// @Router       /v1/chat [post]
func (h *ChatHandler) SendTurn(c *gin.Context) {
	var req sendTurnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortValidation(c, "dialogueId is required")
		return
	}

	if strings.TrimSpace(req.Message) == "" {
		h.log.Warn().Str("dialogue_id", req.DialogueID).Msg("empty message rejected")
		abortValidation(c, "message must not be empty")
		return
	}

	reply, err := h.service.SendTurn(c.Request.Context(), req.DialogueID, req.Message, req.SystemPrompt)
	if err != nil {
		metrics.TurnsTotal.WithLabelValues("failure").Inc()
		respondError(c, err)
		return
	}

	metrics.TurnsTotal.WithLabelValues("success").Inc()
	c.String(http.StatusOK, reply)
}
