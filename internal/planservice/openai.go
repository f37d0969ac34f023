/*
Package planservice sends a fitness profile to a hosted chat-completion model
and returns the generated plan text. One request per call, never retried.
*/
package planservice

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/NomanAbdullah13/Demo-for-ai-plan-generation/internal/fitness"
	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

// --- Model request configuration ---
const (
	DefaultModel = openai.GPT3Dot5Turbo
	MaxTokens    = 3000
	Temperature  = 0.7
)

// ChatCompleter is the part of *openai.Client the generator needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Generator produces fitness plans through a chat-completion endpoint.
type Generator struct {
	api   ChatCompleter
	model string
}

// Config holds the endpoint settings of NewGenerator.
type Config struct {
	APIKey  string
	BaseURL string // optional, for OpenAI-compatible endpoints
	Model   string
}

// NewGenerator builds a Generator backed by the go-openai client.
func NewGenerator(cfg Config) *Generator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}
	return NewGeneratorWithClient(openai.NewClientWithConfig(clientConfig), cfg.Model)
}

// NewGeneratorWithClient wraps an existing ChatCompleter.
func NewGeneratorWithClient(api ChatCompleter, model string) *Generator {
	if model == "" {
		model = DefaultModel
	}
	return &Generator{api: api, model: model}
}

// Model returns the model identifier requests are sent with.
func (g *Generator) Model() string {
	return g.model
}

// BuildRequest assembles the chat request for profile.
func (g *Generator) BuildRequest(profile fitness.UserProfile, languageName string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: fitness.SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: fitness.BuildPrompt(profile, languageName)},
		},
		MaxTokens:   MaxTokens,
		Temperature: Temperature,
	}
}

// Generate sends one request and returns the trimmed plan text. Every failure
// is a *GenerationError.
func (g *Generator) Generate(ctx context.Context, profile fitness.UserProfile, languageName string) (string, error) {
	logger := zerolog.Ctx(ctx)

	req := g.BuildRequest(profile, languageName)
	start := time.Now()

	logger.Info().Str("model", g.model).Str("language", languageName).Msg("Calling chat completion API...")

	resp, err := g.api.CreateChatCompletion(ctx, req)
	if err != nil {
		genErr := classify(err)
		logger.Warn().Err(err).Int("status", genErr.StatusCode).Dur("elapsed", time.Since(start)).Msg("Plan generation failed")
		return "", genErr
	}

	if len(resp.Choices) == 0 {
		logger.Warn().Msg("Chat completion returned no choices")
		return "", &GenerationError{Kind: ErrMalformedResponse, Err: errors.New("no choices in response")}
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		logger.Warn().Str("finish_reason", string(resp.Choices[0].FinishReason)).Msg("Chat completion returned empty content")
		return "", &GenerationError{Kind: ErrMalformedResponse, Err: errors.New("empty message content")}
	}

	logger.Info().
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Dur("elapsed", time.Since(start)).
		Msg("Plan generated")

	return text, nil
}
