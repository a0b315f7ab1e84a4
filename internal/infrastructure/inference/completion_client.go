package inference

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"

	"therapist-server/services/therapy-api/internal/config"
	"therapist-server/services/therapy-api/internal/domain/chat"
	"therapist-server/services/therapy-api/internal/infrastructure/metrics"
	"therapist-server/services/therapy-api/internal/utils/platformerrors"
)

// CompletionClient talks to an OpenAI-compatible chat completion endpoint.
type CompletionClient struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ chat.CompletionClient = (*CompletionClient)(nil)

// NewCompletionClient builds the completion provider client from config.
func NewCompletionClient(cfg *config.Config, log zerolog.Logger) *CompletionClient {
	clientConfig := openai.DefaultConfig(cfg.CompletionAPIKey)
	if cfg.CompletionBaseURL != "" {
		clientConfig.BaseURL = cfg.CompletionBaseURL
	}

	return &CompletionClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  cfg.CompletionModel,
		log:    log.With().Str("component", "completion-client").Logger(),
	}
}

// Complete implements chat.CompletionClient. The provider response streams
// incrementally; fragments are concatenated in delivery order and the full
// text is returned once the stream is drained.
func (c *CompletionClient) Complete(ctx context.Context, messages []chat.PromptMessage) (string, error) {
	request := openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: toOpenAIMessages(messages),
		Stream:   true,
	}

	stream, err := c.client.CreateChatCompletionStream(ctx, request)
	if err != nil {
		metrics.RecordProviderError("completion")
		return "", platformerrors.AsTypedError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, err, "create completion stream")
	}
	defer stream.Close()

	var reply strings.Builder
	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			metrics.RecordProviderError("completion")
			return "", platformerrors.AsTypedError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeExternal, err, "receive completion chunk")
		}
		if len(response.Choices) > 0 {
			reply.WriteString(response.Choices[0].Delta.Content)
		}
	}

	c.log.Debug().
		Str("model", c.model).
		Int("prompt_messages", len(messages)).
		Int("reply_len", reply.Len()).
		Msg("completion stream drained")

	return reply.String(), nil
}

func toOpenAIMessages(messages []chat.PromptMessage) []openai.ChatCompletionMessage {
	result := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		result = append(result, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}
	return result
}
