// File path: internal/llm/providers/googleai_client.go
package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	"github.com/tmc/langchaingo/schema"

	"github.com/friendlynotebook/vuai/internal/common"
)

type GoogleAIProvider struct {
	model *googleai.GoogleAI
	name  string
}

func NewGoogleAIProvider(ctx context.Context, apiKey, model string) (*GoogleAIProvider, error) {
	if strings.TrimSpace(model) == "" {
		model = "gemini-1.5-flash"
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("init googleai client: %w", err)
	}
	common.Logger().Info("llm: Google AI provider configured", "chat_model", model)
	return &GoogleAIProvider{model: client, name: model}, nil
}

func (g *GoogleAIProvider) Chat(ctx context.Context, messages []Message) (string, error) {
	if g.model == nil {
		return "", fmt.Errorf("nil googleai client")
	}
	logger := common.Logger()
	logger.Debug("llm: sending chat completion request", "model", g.name, "messages", len(messages))
	content := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		role := schema.ChatMessageTypeHuman
		switch strings.ToLower(msg.Role) {
		case "system":
			role = schema.ChatMessageTypeSystem
		case "assistant":
			role = schema.ChatMessageTypeAI
		}
		content = append(content, llms.TextParts(role, msg.Content))
	}
	resp, err := g.model.GenerateContent(ctx, content)
	if err != nil {
		logger.Error("llm: chat completion failed", "error", err)
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}
	logger.Debug("llm: chat completion succeeded")
	return resp.Choices[0].Content, nil
}

func (g *GoogleAIProvider) Name() string {
	return "googleai"
}
