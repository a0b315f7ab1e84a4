package transcription

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

// Transcriber converts one audio clip to text. Stateless, one-shot; no
// relation to dialogues or messages.
type Transcriber interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

// Service describes the transcription use case.
type Service interface {
	Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error)
}

type service struct {
	transcriber Transcriber
	log         zerolog.Logger
}

// NewService wires the transcription service with its provider client.
func NewService(transcriber Transcriber, log zerolog.Logger) Service {
	return &service{
		transcriber: transcriber,
		log:         log.With().Str("component", "transcription-service").Logger(),
	}
}

func (s *service) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	text, err := s.transcriber.Transcribe(ctx, filename, audio)
	if err != nil {
		s.log.Error().Err(err).Str("filename", filename).Msg("transcription failed")
		return "", err
	}
	return text, nil
}
