package dialogue_test

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/dialoguerepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/messagerepo"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

func newTestService() (dialogue.Service, *dialoguerepo.InMemoryRepository, *messagerepo.InMemoryRepository) {
	dialogues := dialoguerepo.NewInMemoryRepository()
	messages := messagerepo.NewInMemoryRepository()
	return dialogue.NewService(dialogues, messages, zerolog.Nop()), dialogues, messages
}

func TestService_StartOrResume(t *testing.T) {
	t.Run("creates a dialogue when none exists", func(t *testing.T) {
		svc, dialogues, _ := newTestService()

		d, err := svc.StartOrResume(context.Background())
		if err != nil {
			t.Fatalf("StartOrResume() error = %v", err)
		}
		if !strings.HasPrefix(d.PublicID, "dlg_") {
			t.Errorf("PublicID = %q, want dlg_ prefix", d.PublicID)
		}
		if dialogues.Count() != 1 {
			t.Errorf("stored dialogues = %d, want 1", dialogues.Count())
		}
	})

	t.Run("returns the same dialogue on repeated calls", func(t *testing.T) {
		svc, dialogues, _ := newTestService()
		ctx := context.Background()

		first, err := svc.StartOrResume(ctx)
		if err != nil {
			t.Fatalf("StartOrResume() error = %v", err)
		}
		second, err := svc.StartOrResume(ctx)
		if err != nil {
			t.Fatalf("StartOrResume() second call error = %v", err)
		}

		if first.PublicID != second.PublicID {
			t.Errorf("second call returned %q, want %q", second.PublicID, first.PublicID)
		}
		if dialogues.Count() != 1 {
			t.Errorf("stored dialogues = %d, want 1", dialogues.Count())
		}
	})

	t.Run("resumes the most recently created dialogue", func(t *testing.T) {
		svc, _, _ := newTestService()
		ctx := context.Background()

		if _, err := svc.Start(ctx); err != nil {
			t.Fatalf("Start() error = %v", err)
		}
		latest, err := svc.Start(ctx)
		if err != nil {
			t.Fatalf("Start() error = %v", err)
		}

		resumed, err := svc.StartOrResume(ctx)
		if err != nil {
			t.Fatalf("StartOrResume() error = %v", err)
		}
		if resumed.PublicID != latest.PublicID {
			t.Errorf("resumed %q, want latest %q", resumed.PublicID, latest.PublicID)
		}
	})
}

func TestService_Start(t *testing.T) {
	svc, dialogues, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	second, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() second call error = %v", err)
	}

	if first.PublicID == second.PublicID {
		t.Errorf("Start() reused public id %q, want distinct ids", first.PublicID)
	}
	if dialogues.Count() != 2 {
		t.Errorf("stored dialogues = %d, want 2", dialogues.Count())
	}
}

func TestService_GetByPublicID(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	found, err := svc.GetByPublicID(ctx, created.PublicID)
	if err != nil {
		t.Fatalf("GetByPublicID() error = %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("GetByPublicID() id = %d, want %d", found.ID, created.ID)
	}

	_, err = svc.GetByPublicID(ctx, "dlg_missing")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("GetByPublicID() unknown id error = %v, want not found", err)
	}
}

func TestService_ListMessages(t *testing.T) {
	svc, _, messages := newTestService()
	ctx := context.Background()

	d, err := svc.Start(ctx)
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	userMsg := &dialogue.Message{DialogueID: d.ID, Role: dialogue.RoleUser, Content: "hello"}
	assistantMsg := &dialogue.Message{DialogueID: d.ID, Role: dialogue.RoleAssistant, Content: "hi there"}
	if err := messages.AppendTurn(ctx, userMsg, assistantMsg); err != nil {
		t.Fatalf("AppendTurn() error = %v", err)
	}

	got, err := svc.ListMessages(ctx, d.PublicID)
	if err != nil {
		t.Fatalf("ListMessages() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("ListMessages() returned %d messages, want 2", len(got))
	}
	if got[0].Role != dialogue.RoleUser || got[0].Content != "hello" {
		t.Errorf("first message = %s %q, want user %q", got[0].Role, got[0].Content, "hello")
	}
	if got[1].Role != dialogue.RoleAssistant || got[1].Content != "hi there" {
		t.Errorf("second message = %s %q, want assistant %q", got[1].Role, got[1].Content, "hi there")
	}

	_, err = svc.ListMessages(ctx, "dlg_missing")
	if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
		t.Errorf("ListMessages() unknown id error = %v, want not found", err)
	}
}
