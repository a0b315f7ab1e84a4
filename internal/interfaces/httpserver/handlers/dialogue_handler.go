package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
)

// DialogueHandler exposes session lifecycle endpoints.
type DialogueHandler struct {
	service dialogue.Service
	log     zerolog.Logger
}

// NewDialogueHandler wires dependencies for dialogue routes.
func NewDialogueHandler(service dialogue.Service, log zerolog.Logger) *DialogueHandler {
	return &DialogueHandler{
		service: service,
		log:     log.With().Str("component", "dialogue-handler").Logger(),
	}
}

type createDialogueRequest struct {
	// Fresh forces a new dialogue instead of resuming the latest one.
	Fresh bool `json:"fresh"`
}

type dialogueResponse struct {
	ID        string    `json:"id" example:"dlg_k2v9xq1m7p3t8w4z"`
	CreatedAt time.Time `json:"created_at"`
}

type messagesResponse struct {
	Messages []messageResponse `json:"messages"`
}

type messageResponse struct {
	Role      string    `json:"role" example:"user"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Create godoc
// @Summary      Create or resume a dialogue
// @Description  Returns the most recent dialogue, creating one if none exists. Set fresh to always create.
// @Tags         dialogue
// @Accept       json
// @Produce      json
// @Param        request  body      createDialogueRequest  false  "Options"
// @Success      200      {object}  dialogueResponse
// @Failure      500      {object}  errorResponse
// @Router       /v1/dialogues [post]
func (h *DialogueHandler) Create(c *gin.Context) {
	var req createDialogueRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortValidation(c, "invalid request body")
			return
		}
	}

	var (
		d   *dialogue.Dialogue
		err error
	)
	if req.Fresh {
		d, err = h.service.Start(c.Request.Context())
	} else {
		d, err = h.service.StartOrResume(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dialogueResponse{ID: d.PublicID, CreatedAt: d.CreatedAt})
}

// ListMessages godoc
// @Summary      List dialogue messages
// @Description  Returns the persisted history of a dialogue ordered by creation time.
// @Tags         dialogue
// @Produce      json
// @Param        id   path      string  true  "Dialogue ID"
// @Success      200  {object}  messagesResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/dialogues/{id}/messages [get]
func (h *DialogueHandler) ListMessages(c *gin.Context) {
	publicID := c.Param("id")

	msgs, err := h.service.ListMessages(c.Request.Context(), publicID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := messagesResponse{Messages: make([]messageResponse, 0, len(msgs))}
	for _, m := range msgs {
		result.Messages = append(result.Messages, messageResponse{
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, result)
}
