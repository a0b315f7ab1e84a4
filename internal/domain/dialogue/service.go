package dialogue

import (
	"context"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
	"therapist-server/services/therapy-api/internal/utils/idgen"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// Service describes session lifecycle operations.
type Service interface {
	// StartOrResume returns the most recently created dialogue if one
	// exists, otherwise creates a new one. Calling it twice in a row
	// returns the same dialogue.
	StartOrResume(ctx context.Context) (*Dialogue, error)
	// Start unconditionally creates a new dialogue.
	Start(ctx context.Context) (*Dialogue, error)
	// GetByPublicID looks up an existing dialogue.
	GetByPublicID(ctx context.Context, publicID string) (*Dialogue, error)
	// ListMessages returns the dialogue history ordered by creation time.
	ListMessages(ctx context.Context, publicID string) ([]*Message, error)
}

type service struct {
	dialogues Repository
	messages  MessageRepository
	log       zerolog.Logger
}

// NewService wires the dialogue service with its repositories.
func NewService(dialogues Repository, messages MessageRepository, log zerolog.Logger) Service {
	return &service{
		dialogues: dialogues,
		messages:  messages,
		log:       log.With().Str("component", "dialogue-service").Logger(),
	}
}

func (s *service) StartOrResume(ctx context.Context) (*Dialogue, error) {
	existing, err := s.dialogues.FindLatest(ctx)
	if err == nil {
		return existing, nil
	}
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		s.log.Error().Err(err).Msg("find latest dialogue")
		return nil, err
	}
	return s.Start(ctx)
}

func (s *service) Start(ctx context.Context) (*Dialogue, error) {
	publicID, err := idgen.GenerateDialogueID()
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "generate dialogue id")
	}

	d := &Dialogue{PublicID: publicID}
	if err := s.dialogues.Create(ctx, d); err != nil {
		s.log.Error().Err(err).Msg("create dialogue")
		return nil, err
	}

	metrics.DialoguesCreatedTotal.Inc()
	s.log.Info().Str("dialogue_id", d.PublicID).Msg("dialogue created")
	return d, nil
}

func (s *service) GetByPublicID(ctx context.Context, publicID string) (*Dialogue, error) {
	d, err := s.dialogues.FindByPublicID(ctx, publicID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", publicID).Msg("find dialogue")
		return nil, err
	}
	return d, nil
}

func (s *service) ListMessages(ctx context.Context, publicID string) ([]*Message, error) {
	d, err := s.dialogues.FindByPublicID(ctx, publicID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", publicID).Msg("find dialogue")
		return nil, err
	}

	msgs, err := s.messages.ListByDialogueID(ctx, d.ID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", publicID).Msg("list messages")
		return nil, err
	}
	return msgs, nil
}
