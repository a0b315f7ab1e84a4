package v1

import (
	"github.com/gin-gonic/gin"

	"therapist-server/services/therapy-api/internal/interfaces/httpserver/handlers"
)

// Routes encapsulates versioned route registration.
type Routes struct {
	handlers *handlers.Provider
}

// NewRoutes builds the v1 route registrar.
func NewRoutes(handlerProvider *handlers.Provider) *Routes {
	return &Routes{
		handlers: handlerProvider,
	}
}

// Register attaches all v1 routes under /v1 prefix.
func (r *Routes) Register(engine *gin.Engine) {
	group := engine.Group("/v1")
	registerDialogueRoutes(group, r.handlers.Dialogue)
	registerChatRoutes(group, r.handlers.Chat)
	registerTranscribeRoutes(group, r.handlers.Transcription)
	registerFeedbackRoutes(group, r.handlers.Feedback)
}

func registerDialogueRoutes(router gin.IRoutes, handler *handlers.DialogueHandler) {
	router.POST("/dialogues", handler.Create)
	router.GET("/dialogues/:id/messages", handler.ListMessages)
}

func registerChatRoutes(router gin.IRoutes, handler *handlers.ChatHandler) {
	router.POST("/chat", handler.SendTurn)
}

func registerTranscribeRoutes(router gin.IRoutes, handler *handlers.TranscriptionHandler) {
	router.POST("/transcribe", handler.Transcribe)
}

func registerFeedbackRoutes(router gin.IRoutes, handler *handlers.FeedbackHandler) {
	router.POST("/feedback", handler.Submit)
}
