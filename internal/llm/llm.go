// File path: internal/llm/llm.go
package llm

import (
	"context"
	"errors"
	"os"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/friendlynotebook/vuai/internal/common"
	"github.com/friendlynotebook/vuai/internal/llm/providers"
)

type Message = providers.Message

type Provider = providers.Provider

// NewProvider selects the chat backend from the environment. OpenAI wins
// when both keys are present; with neither, the local echo provider keeps
// the service running.
func NewProvider(ctx context.Context) Provider {
	logger := common.Logger()
	if apiKey := strings.TrimSpace(os.Getenv("OPENAI_API_KEY")); apiKey != "" {
		cfg := openai.DefaultConfig(apiKey)
		if endpoint := strings.TrimSpace(os.Getenv("OPENAI_ENDPOINT")); endpoint != "" {
			logger.Info("llm: configuring OpenAI client with custom endpoint", "endpoint", endpoint)
			cfg.BaseURL = endpoint
		}
		logger.Info("llm: OpenAI provider selected")
		return providers.NewOpenAIProvider(openai.NewClientWithConfig(cfg))
	}
	if apiKey := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")); apiKey != "" {
		provider, err := providers.NewGoogleAIProvider(ctx, apiKey, os.Getenv("GOOGLE_CHAT_MODEL"))
		if err != nil {
			logger.Error("llm: Google AI provider init failed; falling back to local provider", "error", err)
			return providers.NewLocalProvider()
		}
		logger.Info("llm: Google AI provider selected")
		return provider
	}
	logger.Warn("llm: no provider API key set; falling back to local provider")
	return providers.NewLocalProvider()
}

// NormalizeMessages lowercases message roles and rejects empty batches.
func NormalizeMessages(messages []Message) ([]Message, error) {
	if len(messages) == 0 {
		return nil, errors.New("no messages provided")
	}
	for i := range messages {
		messages[i].Role = strings.ToLower(messages[i].Role)
	}
	return messages, nil
}
