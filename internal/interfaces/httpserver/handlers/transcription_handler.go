package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/transcription"
	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
)

// TranscriptionHandler exposes the voice transcription endpoint.
type TranscriptionHandler struct {
	service transcription.Service
	log     zerolog.Logger
}

// NewTranscriptionHandler wires dependencies for transcription routes.
func NewTranscriptionHandler(service transcription.Service, log zerolog.Logger) *TranscriptionHandler {
	return &TranscriptionHandler{
		service: service,
		log:     log.With().Str("component", "transcription-handler").Logger(),
	}
}

type transcribeResponse struct {
	Text string `json:"text"`
}

// Transcribe godoc
// @Summary      Transcribe an audio clip
// @Description  Accepts one multipart audio field and returns its transcript.
// @Tags         transcription
// @Accept       multipart/form-data
// @Produce      json
// @Param        audio  formData  file  true  "Audio clip"
// @Success      200    {object}  transcribeResponse
// @Failure      400    {object}  errorResponse
// @Failure      502    {object}  errorResponse
// @Router       /v1/transcribe [post]
func (h *TranscriptionHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		h.log.Warn().Err(err).Msg("transcription request without audio")
		abortValidation(c, "No audio file provided")
		return
	}
	if fileHeader.Size == 0 {
		h.log.Warn().Str("filename", fileHeader.Filename).Msg("empty audio payload rejected")
		abortValidation(c, "No audio file provided")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.log.Error().Err(err).Msg("open uploaded audio")
		abortValidation(c, "No audio file provided")
		return
	}
	defer file.Close()

	text, err := h.service.Transcribe(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		metrics.TranscriptionsTotal.WithLabelValues("failure").Inc()
		respondError(c, err)
		return
	}

	metrics.TranscriptionsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, transcribeResponse{Text: text})
}
