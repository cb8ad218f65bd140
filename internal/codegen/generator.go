// Package codegen invokes the text-generation service and turns its raw
// response into an executable code artifact.
package codegen

import (
	"context"
	"fmt"

	"parseforge/internal/llmclient"
)

// Generator wraps an LLM client. Any failure here is a generation error:
// the orchestrator counts it as a failed attempt, never as a fatal one.
type Generator struct {
	LLM llmclient.LLMClient
}

// Generate sends the prompt pair and returns sanitized code text.
func (g *Generator) Generate(ctx context.Context, system, user string) (string, error) {
	raw, err := g.LLM.Complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("codegen: %w", err)
	}
	code := Sanitize(raw)
	if code == "" {
		return "", fmt.Errorf("codegen: %w", llmclient.ErrEmptyCompletion)
	}
	return code, nil
}
