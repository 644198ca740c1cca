package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/prompt"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/zhouzirui/mindchat/backend/internal/model/persona"
	"github.com/zhouzirui/mindchat/backend/pkg/log"
)

// Sampling parameters sent with every completion.
const (
	Temperature float32 = 0.7
	MaxTokens           = 500
)

// Service turns one user message into one completion. It keeps no conversation state.
type Service struct {
	chain        compose.Runnable[map[string]any, *schema.Message]
	systemPrompt string
	personaID    string
}

// NewService compiles the system + user prompt chain around chatModel.
func NewService(ctx context.Context, chatModel model.BaseChatModel, p persona.Persona) (*Service, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}

	promptTemplate := prompt.FromMessages(
		schema.FString,
		schema.SystemMessage("{system}"),
		schema.UserMessage("{query}"),
	)

	chain := compose.NewChain[map[string]any, *schema.Message]()
	chain.AppendChatTemplate(promptTemplate)
	chain.AppendChatModel(chatModel)

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to compile chat chain: %w", err)
	}

	return &Service{
		chain:        runnable,
		systemPrompt: BuildSystemPrompt(p),
		personaID:    p.ID,
	}, nil
}

// Complete sends userMessage, unmodified, after the system instruction and returns
// the first completion trimmed of surrounding whitespace.
func (s *Service) Complete(ctx context.Context, userMessage string) (string, error) {
	input := map[string]any{
		"system": s.systemPrompt,
		"query":  userMessage,
	}

	response, err := s.chain.Invoke(ctx, input, compose.WithChatModelOption(
		model.WithTemperature(Temperature),
		model.WithMaxTokens(MaxTokens),
	))
	if err != nil {
		return "", fmt.Errorf("failed to run chat chain: %w", err)
	}
	if response == nil {
		return "", fmt.Errorf("chat chain returned no message")
	}

	reply := strings.TrimSpace(response.Content)
	log.Infow("[ai] generated response", "persona", s.personaID, "length", len(reply))
	return reply, nil
}
