package handlers_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"therapist-server/services/therapy-api/internal/interfaces/httpserver/handlers"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// MockChatService is a mock implementation of chat.Service for testing.
type MockChatService struct {
	SendTurnFunc func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error)
}

func (m *MockChatService) SendTurn(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
	if m.SendTurnFunc != nil {
		return m.SendTurnFunc(ctx, dialoguePublicID, userText, systemPrompt)
	}
	return "", nil
}

func setupChatTestRouter(handler *handlers.ChatHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/v1/chat", handler.SendTurn)
	return r
}

func TestChatHandler_SendTurn(t *testing.T) {
	mockService := &MockChatService{
		SendTurnFunc: func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
			if dialoguePublicID != "dlg-123" {
				t.Errorf("Expected dialogue 'dlg-123', got %v", dialoguePublicID)
			}
			if userText != "I feel stuck" {
				t.Errorf("Expected message 'I feel stuck', got %v", userText)
			}
			return "Tell me more about that.", nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body := bytes.NewBufferString(`{"dialogueId": "dlg-123", "message": "I feel stuck"}`)
	req, _ := http.NewRequest("POST", "/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "Tell me more about that." {
		t.Errorf("Expected plain reply text, got %q", w.Body.String())
	}
}

func TestChatHandler_SendTurn_MissingDialogueID(t *testing.T) {
	called := false
	mockService := &MockChatService{
		SendTurnFunc: func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
			called = true
			return "", nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body := bytes.NewBufferString(`{"message": "hello"}`)
	req, _ := http.NewRequest("POST", "/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected SendTurn not to be called")
	}
}

func TestChatHandler_SendTurn_EmptyMessage(t *testing.T) {
	called := false
	mockService := &MockChatService{
		SendTurnFunc: func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
			called = true
			return "", nil
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body := bytes.NewBufferString(`{"dialogueId": "dlg-123", "message": "   "}`)
	req, _ := http.NewRequest("POST", "/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
	if called {
		t.Error("Expected SendTurn not to be called for a blank message")
	}
}

func TestChatHandler_SendTurn_ProviderFailure(t *testing.T) {
	mockService := &MockChatService{
		SendTurnFunc: func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeExternal, "completion provider call failed", nil, "")
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body := bytes.NewBufferString(`{"dialogueId": "dlg-123", "message": "hello"}`)
	req, _ := http.NewRequest("POST", "/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadGateway {
		t.Errorf("Expected status 502, got %d", w.Code)
	}
}

func TestChatHandler_SendTurn_UnknownDialogue(t *testing.T) {
	mockService := &MockChatService{
		SendTurnFunc: func(ctx context.Context, dialoguePublicID, userText, systemPrompt string) (string, error) {
			return "", platformerrors.NewError(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeNotFound, "dialogue not found", nil, "")
		},
	}

	handler := handlers.NewChatHandler(mockService, zerolog.Nop())
	router := setupChatTestRouter(handler)

	body := bytes.NewBufferString(`{"dialogueId": "dlg-missing", "message": "hello"}`)
	req, _ := http.NewRequest("POST", "/v1/chat", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", w.Code)
	}
}
