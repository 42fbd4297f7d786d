// Package summarize derives the structured product descriptor from
// extracted article content via a chat model. The model is an external
// dependency boundary: failures propagate to the caller unretried.
package summarize

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	openai "github.com/sashabaranov/go-openai"

	"github.com/prospectlab/redditscout/internal/llm"
)

// Descriptor holds the three product fields derived from an article.
type Descriptor struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	TargetAudience string `json:"target_audience"`
}

// Summarizer turns extracted content into a Descriptor.
type Summarizer interface {
	Summarize(ctx context.Context, title, text string) (Descriptor, error)
}

// ErrEmptyCompletion indicates the model returned no usable content.
var ErrEmptyCompletion = errors.New("empty completion")

// DefaultMaxInputChars bounds the article text handed to the model so
// oversized pages do not blow the context window.
const DefaultMaxInputChars = 12000

// ChatSummarizer calls a chat model and expects a single strict JSON
// object back.
type ChatSummarizer struct {
	Client llm.Client
	Model  string
	// MaxInputChars overrides DefaultMaxInputChars when positive.
	MaxInputChars int
}

const systemPrompt = "You are a precise product analyst. Given the readable contents of a product page, respond with a single JSON object with exactly these keys: \"name\", \"description\", \"target_audience\". The name is the product's name, the description is one or two factual sentences, and target_audience names who the product serves. Respond with JSON only: no prose, no code fences."

func (s *ChatSummarizer) Summarize(ctx context.Context, title, text string) (Descriptor, error) {
	if s.Client == nil || strings.TrimSpace(s.Model) == "" {
		return Descriptor{}, errors.New("summarizer not configured")
	}
	req := openai.ChatCompletionRequest{
		Model: s.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: buildUserMessage(title, truncate(text, s.maxInput()))},
		},
		Temperature: 0.1,
		N:           1,
	}
	resp, err := s.Client.CreateChatCompletion(ctx, req)
	if err != nil {
		return Descriptor{}, fmt.Errorf("summarize call: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Descriptor{}, ErrEmptyCompletion
	}
	out := strings.TrimSpace(resp.Choices[0].Message.Content)
	if out == "" {
		return Descriptor{}, ErrEmptyCompletion
	}
	var d Descriptor
	if err := json.Unmarshal([]byte(stripFences(out)), &d); err != nil {
		return Descriptor{}, fmt.Errorf("parse descriptor: %w", err)
	}
	return d, nil
}

func (s *ChatSummarizer) maxInput() int {
	if s.MaxInputChars > 0 {
		return s.MaxInputChars
	}
	return DefaultMaxInputChars
}

func buildUserMessage(title, text string) string {
	var sb strings.Builder
	if strings.TrimSpace(title) != "" {
		sb.WriteString("Page title: ")
		sb.WriteString(strings.TrimSpace(title))
		sb.WriteString("\n\n")
	}
	sb.WriteString("Page content:\n")
	sb.WriteString(text)
	return sb.String()
}

// truncate cuts s to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	cut := s[:max]
	for !utf8.ValidString(cut) && len(cut) > 0 {
		cut = cut[:len(cut)-1]
	}
	return cut
}

// stripFences tolerates models that wrap JSON in a fenced code block
// despite instructions.
func stripFences(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
