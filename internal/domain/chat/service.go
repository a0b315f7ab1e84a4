package chat

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/domain/prompt"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// PromptMessage is one role-tagged entry of a completion request.
type PromptMessage struct {
	Role    string
	Content string
}

// CompletionClient produces a reply for an ordered list of prompt messages.
// Implementations stream the provider response and drain it fully before
// returning; callers never observe partial replies.
type CompletionClient interface {
	Complete(ctx context.Context, messages []PromptMessage) (string, error)
}

// Service runs one conversation turn against the completion provider.
type Service interface {
	// SendTurn loads the dialogue history, asks the completion provider for
	// a reply and persists the user and assistant messages atomically. It
	// returns the full assistant reply text.
	SendTurn(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error)
}

type service struct {
	dialogues  dialogue.Repository
	messages   dialogue.MessageRepository
	completion CompletionClient
	log        zerolog.Logger

	// Turns on the same dialogue serialize through a per-dialogue lock so
	// concurrent writers cannot interleave message history.
	mu    sync.Mutex
	locks map[uint]*sync.Mutex
}

// NewService wires the chat service with its collaborators.
func NewService(dialogues dialogue.Repository, messages dialogue.MessageRepository, completion CompletionClient, log zerolog.Logger) Service {
	return &service{
		dialogues:  dialogues,
		messages:   messages,
		completion: completion,
		log:        log.With().Str("component", "chat-service").Logger(),
		locks:      make(map[uint]*sync.Mutex),
	}
}

func (s *service) SendTurn(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
	d, err := s.dialogues.FindByPublicID(ctx, dialoguePublicID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("find dialogue")
		return "", err
	}

	lock := s.dialogueLock(d.ID)
	lock.Lock()
	defer lock.Unlock()

	history, err := s.messages.ListByDialogueID(ctx, d.ID)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("load history")
		return "", err
	}

	request := assembleRequest(history, userText, systemPrompt)

	reply, err := s.completion.Complete(ctx, request)
	if err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("completion call failed")
		return "", platformerrors.AsTypedError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal, err, "completion provider call failed")
	}

	userMsg := &dialogue.Message{DialogueID: d.ID, Role: dialogue.RoleUser, Content: userText}
	assistantMsg := &dialogue.Message{DialogueID: d.ID, Role: dialogue.RoleAssistant, Content: reply}
	if err := s.messages.AppendTurn(ctx, userMsg, assistantMsg); err != nil {
		s.log.Error().Err(err).Str("dialogue_id", dialoguePublicID).Msg("persist turn")
		return "", err
	}

	s.log.Debug().
		Str("dialogue_id", dialoguePublicID).
		Int("history_len", len(history)).
		Int("reply_len", len(reply)).
		Msg("turn completed")

	return reply, nil
}

// assembleRequest builds the completion request: one in-memory system entry,
// the persisted history in creation order, then the new user utterance. Only
// the trailing user entry and the eventual reply are ever written back.
func assembleRequest(history []*dialogue.Message, userText, systemPrompt string) []PromptMessage {
	if systemPrompt == "" {
		systemPrompt = prompt.Therapist
	}

	request := make([]PromptMessage, 0, len(history)+2)
	request = append(request, PromptMessage{Role: string(dialogue.RoleSystem), Content: systemPrompt})
	for _, msg := range history {
		request = append(request, PromptMessage{Role: string(msg.Role), Content: msg.Content})
	}
	return append(request, PromptMessage{Role: string(dialogue.RoleUser), Content: userText})
}

func (s *service) dialogueLock(id uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[id] = lock
	}
	return lock
}
