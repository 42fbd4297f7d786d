package llm

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// Client is the narrow chat-completion surface the summarizer calls.
// Any OpenAI-compatible backend can stand behind it, and tests can
// substitute a deterministic stub.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider adapts *openai.Client to Client.
type OpenAIProvider struct {
	Inner *openai.Client
}

func (p *OpenAIProvider) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	return p.Inner.CreateChatCompletion(ctx, request)
}
