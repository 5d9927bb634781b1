// Package echo provides a reply generator that formats the grounding context
// directly, without external API calls. It gives deterministic responses for
// development and testing.
package echo

import (
	"context"
	"fmt"

	"github.com/ramalMr/cocktail-advisor/internal/domain"
)

// Provider implements the domain.ReplyGenerator interface for echo testing.
type Provider struct{}

// NewProvider creates a new echo reply generator. No configuration is
// required as this provider operates entirely in-memory.
func NewProvider() *Provider {
	return &Provider{}
}

// Reply formats the retrieved cocktails into a plain templated response.
func (p *Provider) Reply(
	_ context.Context,
	question, groundingContext string,
	_ []domain.ChatMessage,
) (string, error) {
	if groundingContext == "" {
		return fmt.Sprintf("You asked: %q. I have no matching cocktails to suggest.", question), nil
	}
	return fmt.Sprintf("You asked: %q. Here is what I found:\n\n%s", question, groundingContext), nil
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "echo"
}
