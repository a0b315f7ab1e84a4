package transcription_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/domain/transcription"
)

type fakeTranscriber struct {
	text string
	err  error

	gotFilename string
	gotAudio    string
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	f.gotFilename = filename
	data, _ := io.ReadAll(audio)
	f.gotAudio = string(data)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

func TestService_Transcribe(t *testing.T) {
	t.Run("passes the clip through and returns the transcript", func(t *testing.T) {
		fake := &fakeTranscriber{text: "I had a long day"}
		svc := transcription.NewService(fake, zerolog.Nop())

		text, err := svc.Transcribe(context.Background(), "clip.webm", strings.NewReader("audio-bytes"))
		if err != nil {
			t.Fatalf("Transcribe() error = %v", err)
		}
		if text != "I had a long day" {
			t.Errorf("Transcribe() = %q, want %q", text, "I had a long day")
		}
		if fake.gotFilename != "clip.webm" {
			t.Errorf("filename = %q, want %q", fake.gotFilename, "clip.webm")
		}
		if fake.gotAudio != "audio-bytes" {
			t.Errorf("audio = %q, want %q", fake.gotAudio, "audio-bytes")
		}
	})

	t.Run("propagates provider failures", func(t *testing.T) {
		fake := &fakeTranscriber{err: errors.New("provider unavailable")}
		svc := transcription.NewService(fake, zerolog.Nop())

		if _, err := svc.Transcribe(context.Background(), "clip.webm", strings.NewReader("x")); err == nil {
			t.Fatal("Transcribe() error = nil, want provider failure")
		}
	})
}
