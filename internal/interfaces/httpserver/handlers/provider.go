package handlers

import (
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/chat"
	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/domain/feedback"
	"therapist-server/services/therapy-api/internal/domain/transcription"
)

// Provider wires all HTTP handlers for dependency injection.
type Provider struct {
	Dialogue      *DialogueHandler
	Chat          *ChatHandler
	Transcription *TranscriptionHandler
	Feedback      *FeedbackHandler
}

// NewProvider constructs the handler provider with domain services.
func NewProvider(
	dialogueService dialogue.Service,
	chatService chat.Service,
	transcriptionService transcription.Service,
	feedbackService feedback.Service,
	log zerolog.Logger,
) *Provider {
	return &Provider{
		Dialogue:      NewDialogueHandler(dialogueService, log),
		Chat:          NewChatHandler(chatService, log),
		Transcription: NewTranscriptionHandler(transcriptionService, log),
		Feedback:      NewFeedbackHandler(feedbackService, log),
	}
}
