package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/interfaces/httpserver/handlers"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// MockTranscriptionService is a mock implementation of transcription.Service for testing.
type MockTranscriptionService struct {
	TranscribeFunc func(ctx context.Context, filename string, audio io.Reader) (string, error)
}

func (m *MockTranscriptionService) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	if m.TranscribeFunc != nil {
		return m.TranscribeFunc(ctx, filename, audio)
	}
	return "", nil
}

func setupTranscriptionTestRouter(handler *handlers.TranscriptionHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/transcribe", handler.Transcribe)
	return r
}

func newAudioRequest(t *testing.T, field string, payload []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, "recording.webm")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write(payload); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}

	req, _ := http.NewRequest("POST", "/v1/transcribe", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestTranscriptionHandler_Transcribe(t *testing.T) {
	mockService := &MockTranscriptionService{
		TranscribeFunc: func(ctx context.Context, filename string, audio io.Reader) (string, error) {
			if filename != "recording.webm" {
				t.Errorf("Expected filename 'recording.webm', got %v", filename)
			}
			data, _ := io.ReadAll(audio)
			if string(data) != "fake-audio-bytes" {
				t.Errorf("Expected audio payload to reach the service, got %q", data)
			}
			return "I had a rough week", nil
		},
	}

	handler := handlers.NewTranscriptionHandler(mockService, zerolog.Nop())
	router := setupTranscriptionTestRouter(handler)

	req := newAudioRequest(t, "audio", []byte("fake-audio-bytes"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["text"] != "I had a rough week" {
		t.Errorf("Expected transcript text, got %v", response["text"])
	}
}

func TestTranscriptionHandler_Transcribe_MissingAudio(t *testing.T) {
	called := false
	mockService := &MockTranscriptionService{
		TranscribeFunc: func(ctx context.Context, filename string, audio io.Reader) (string, error) {
			called = true
			return "", nil
		},
	}

	handler := handlers.NewTranscriptionHandler(mockService, zerolog.Nop())
	router := setupTranscriptionTestRouter(handler)

	req := newAudioRequest(t, "attachment", []byte("fake-audio-bytes"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected Transcribe not to be called")
	}

	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response["error"] != "No audio file provided" {
		t.Errorf("Expected 'No audio file provided', got %v", response["error"])
	}
}

func TestTranscriptionHandler_Transcribe_EmptyAudio(t *testing.T) {
	called := false
	mockService := &MockTranscriptionService{
		TranscribeFunc: func(ctx context.Context, filename string, audio io.Reader) (string, error) {
			called = true
			return "", nil
		},
	}

	handler := handlers.NewTranscriptionHandler(mockService, zerolog.Nop())
	router := setupTranscriptionTestRouter(handler)

	req := newAudioRequest(t, "audio", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected Transcribe not to be called for an empty payload")
	}
}

func TestTranscriptionHandler_Transcribe_ProviderFailure(t *testing.T) {
	mockService := &MockTranscriptionService{
		TranscribeFunc: func(ctx context.Context, filename string, audio io.Reader) (string, error) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, "transcription provider call failed", nil, "")
		},
	}

	handler := handlers.NewTranscriptionHandler(mockService, zerolog.Nop())
	router := setupTranscriptionTestRouter(handler)

	req := newAudioRequest(t, "audio", []byte("fake-audio-bytes"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}
