// Package openai provides the retrieval-augmented reply generator backed by
// the OpenAI chat completions API. It implements the domain.ReplyGenerator
// interface and converts between domain types and SDK types.
package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
	"github.com/ramalMr/cocktail-advisor/internal/observability"
)

const systemPrompt = `You are a professional bartender and cocktail expert.
Answer the user's question using ONLY the cocktails provided in the context
below. Never invent or mention cocktails that are not in the context. When
recommending, include preparation instructions, ingredient measurements and
any useful techniques or tips. Keep the tone professional but friendly.`

// Provider implements the domain.ReplyGenerator interface for OpenAI.
type Provider struct {
	client      openai.Client
	model       string
	temperature float64
	maxTokens   int
}

// NewProvider creates a new OpenAI reply generator.
func NewProvider(config Config) (*Provider, error) {
	if config.APIKey == "" {
		return nil, errors.New("OpenAI API key is required")
	}

	opts := []option.RequestOption{
		option.WithAPIKey(config.APIKey),
	}

	if config.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(config.BaseURL))
	}

	if config.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(time.Duration(config.Timeout)*time.Second))
	}

	if config.MaxRetries > 0 {
		opts = append(opts, option.WithMaxRetries(config.MaxRetries))
	}

	return &Provider{
		client:      openai.NewClient(opts...),
		model:       config.Model,
		temperature: config.Temperature,
		maxTokens:   config.MaxTokens,
	}, nil
}

// Reply generates a grounded response to the question. Provider failures
// surface as domain.ErrProviderUnavailable so the orchestrator can degrade to
// the ranked list instead of failing the request.
func (p *Provider) Reply(
	ctx context.Context,
	question, groundingContext string,
	history []domain.ChatMessage,
) (string, error) {
	logger := observability.FromContext(ctx)
	logger.Debug("calling OpenAI chat API")

	resp, err := p.client.Chat.Completions.New(ctx, p.toSDKParams(question, groundingContext, history))
	if err != nil {
		logger.Error("OpenAI chat call failed", observability.Error(err))
		return "", fmt.Errorf("%w: %w", domain.ErrProviderUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices returned", domain.ErrProviderUnavailable)
	}

	logger.Debug("OpenAI chat call succeeded",
		observability.Int("prompt_tokens", int(resp.Usage.PromptTokens)),
		observability.Int("completion_tokens", int(resp.Usage.CompletionTokens)),
	)

	return resp.Choices[0].Message.Content, nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "openai"
}

func (p *Provider) toSDKParams(
	question, groundingContext string,
	history []domain.ChatMessage,
) openai.ChatCompletionNewParams {
	messages := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.SystemMessage("Context:\n" + groundingContext),
	}

	// Prior turns precede the current question; the orchestrator appends the
	// question to the session before composing, so skip the final user turn.
	for i, msg := range history {
		if i == len(history)-1 && msg.Role == "user" {
			break
		}
		switch msg.Role {
		case "assistant":
			messages = append(messages, openai.AssistantMessage(msg.Content))
		case "system":
			messages = append(messages, openai.SystemMessage(msg.Content))
		default:
			messages = append(messages, openai.UserMessage(msg.Content))
		}
	}

	messages = append(messages, openai.UserMessage(question))

	params := openai.ChatCompletionNewParams{
		Model:    openai.ChatModel(p.model),
		Messages: messages,
	}

	if p.temperature > 0 {
		params.Temperature = openai.Float(p.temperature)
	}

	if p.maxTokens > 0 {
		params.MaxTokens = openai.Int(int64(p.maxTokens))
	}

	return params
}
