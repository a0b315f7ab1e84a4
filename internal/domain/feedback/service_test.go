package feedback_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/dialogue"
	"therapist-server/services/therapy-api/internal/domain/feedback"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/dialoguerepo"
	"therapist-server/services/therapy-api/internal/infrastructure/repository/feedbackrepo"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

func TestService_Record(t *testing.T) {
	dialogues := dialoguerepo.NewInMemoryRepository()
	store := feedbackrepo.NewInMemoryRepository()
	svc := feedback.NewService(dialogues, store, zerolog.Nop())
	ctx := context.Background()

	d := &dialogue.Dialogue{PublicID: "dlg_feedback000001"}
	if err := dialogues.Create(ctx, d); err != nil {
		t.Fatalf("create dialogue: %v", err)
	}

	t.Run("stores the submitted values", func(t *testing.T) {
		if err := svc.Record(ctx, d.PublicID, feedback.HelpfulYes, feedback.FeelingBetter); err != nil {
			t.Fatalf("Record() error = %v", err)
		}

		rows := store.All()
		if len(rows) != 1 {
			t.Fatalf("stored rows = %d, want 1", len(rows))
		}
		if rows[0].DialogueID != d.ID {
			t.Errorf("DialogueID = %d, want %d", rows[0].DialogueID, d.ID)
		}
		if rows[0].Helpful != feedback.HelpfulYes || rows[0].Feeling != feedback.FeelingBetter {
			t.Errorf("stored row = %s/%s, want yes/better", rows[0].Helpful, rows[0].Feeling)
		}
	})

	t.Run("accepts unset answers", func(t *testing.T) {
		if err := svc.Record(ctx, d.PublicID, feedback.HelpfulUnset, feedback.FeelingUnset); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
	})

	t.Run("repeated submissions accumulate", func(t *testing.T) {
		before := len(store.All())
		if err := svc.Record(ctx, d.PublicID, feedback.HelpfulNo, feedback.FeelingWorse); err != nil {
			t.Fatalf("Record() error = %v", err)
		}
		if got := len(store.All()); got != before+1 {
			t.Errorf("stored rows = %d, want %d", got, before+1)
		}
	})

	t.Run("rejects an unknown dialogue", func(t *testing.T) {
		err := svc.Record(ctx, "dlg_missing", feedback.HelpfulYes, feedback.FeelingSame)
		if !platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound) {
			t.Errorf("Record() error = %v, want not found", err)
		}
	})
}

func TestAnswerValidation(t *testing.T) {
	valid := []struct {
		helpful feedback.Helpful
		feeling feedback.Feeling
	}{
		{feedback.HelpfulYes, feedback.FeelingBetter},
		{feedback.HelpfulNo, feedback.FeelingSame},
		{feedback.HelpfulUnset, feedback.FeelingWorse},
		{feedback.HelpfulYes, feedback.FeelingUnset},
	}
	for _, tt := range valid {
		if !tt.helpful.Valid() {
			t.Errorf("Helpful(%q).Valid() = false, want true", tt.helpful)
		}
		if !tt.feeling.Valid() {
			t.Errorf("Feeling(%q).Valid() = false, want true", tt.feeling)
		}
	}

	if feedback.Helpful("maybe").Valid() {
		t.Error(`Helpful("maybe").Valid() = true, want false`)
	}
	if feedback.Feeling("great").Valid() {
		t.Error(`Feeling("great").Valid() = true, want false`)
	}
}
