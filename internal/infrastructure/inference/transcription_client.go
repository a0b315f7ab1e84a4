package inference

import (
	"context"
	"io"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"therapist-server/services/therapy-api/internal/config"
	"therapist-server/services/therapy-api/internal/domain/transcription"
	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// TranscriptionClient talks to an OpenAI-compatible speech-to-text endpoint.
type TranscriptionClient struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ transcription.Transcriber = (*TranscriptionClient)(nil)

// NewTranscriptionClient builds the speech-to-text provider client from config.
func NewTranscriptionClient(cfg *config.Config, log zerolog.Logger) *TranscriptionClient {
	clientConfig := openai.DefaultConfig(cfg.TranscriptionAPIKey)
	if cfg.TranscriptionBaseURL != "" {
		clientConfig.BaseURL = cfg.TranscriptionBaseURL
	}

	return &TranscriptionClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.TranscriptionModel,
		log:    log.With().Str("component", "transcription-client").Logger(),
	}
}

// Transcribe implements transcription.Transcriber. One request, one response;
// long audio is not chunked.
func (c *TranscriptionClient) Transcribe(ctx context.Context, filename string, audio io.Reader) (string, error) {
	request := openai.AudioRequest{
		Model:    c.model,
		Reader:   audio,
		FilePath: filename,
		Format:   openai.AudioResponseFormatText,
	}

	response, err := c.client.CreateTranscription(ctx, request)
	if err != nil {
		metrics.RecordProviderError("transcription")
		return "", platformerrors.AsTypedError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, err, "transcription request failed")
	}

	c.log.Debug().
		Str("model", c.model).
		Str("filename", filename).
		Int("text_len", len(response.Text)).
		Msg("audio transcribed")

	return response.Text, nil
}
