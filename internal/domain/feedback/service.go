package feedback

import (
	"context"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
)

// Service records post-conversation feedback.
type Service interface {
	// Record appends one feedback row for the dialogue. Duplicate
	// submissions for the same dialogue are legal and accumulate.
	Record(ctx context.Context, dialoguePublicID string, helpful Helpful, feeling Feeling) error
}

type service struct {
	dialogues dialogue.Repository
	feedback  Repository
	log       zerolog.Logger
}

// NewService wires the feedback service with its repositories.
func NewService(dialogues dialogue.Repository, feedback Repository, log zerolog.Logger) Service {
	return &service{
		dialogues: dialogues,
		feedback:  feedback,
		log:       log.With().Str("component", "feedback-service").Logger(),
	}
}

func (s *service) Record(ctx context.Context, dialoguePublicID string, helpful Helpful, feeling Feeling) error {
	d, err := s.dialogues.FindByPublicID(ctx, dialoguePublicID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("find dialogue")
		return err
	}

	f := &Feedback{
		DialogueID: d.ID,
		Helpful:    helpful,
		Feeling:    feeling,
	}
	if err := s.feedback.Create(ctx, f); err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("record feedback")
		return err
	}

	s.log.Info().
		Str("dialogue_id", dialoguePublicID).
		Str("helpful", string(helpful)).
		Str("feeling", string(feeling)).
		Msg("feedback recorded")
	return nil
}
