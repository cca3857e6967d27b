// Package assist produces the "AI" text shown in the wizard charter step and
// the project detail assistant. Responses are scripted from fixtures; the
// Generator interface is the integration point for a real model.
package assist

import (
	"context"
	"strings"
	"time"
)

// Generator produces text for a prompt id (or a free-text question).
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Scripted answers from a fixed response table.
type Scripted struct {
	Responses map[string]string
	Fallback  string
	// Delay simulates generation latency. Zero answers immediately.
	Delay time.Duration
}

// keywordPrompts maps free-text keywords to the prompt id they resolve to.
var keywordPrompts = []struct {
	keywords []string
	prompt   string
}{
	{[]string{"spi", "cpi", "performance"}, "spi_cpi"},
	{[]string{"budget", "cost", "spend"}, "budget"},
	{[]string{"schedule", "delay", "critical path"}, "schedule"},
	{[]string{"risk", "mitigat"}, "risks"},
}

// Generate implements Generator. An exact prompt id wins; otherwise the
// prompt is matched against known keywords, then the fallback is used.
func (s *Scripted) Generate(ctx context.Context, prompt string) (string, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if r, ok := s.Responses[prompt]; ok {
		return strings.TrimSpace(r), nil
	}
	lower := strings.ToLower(prompt)
	for _, kp := range keywordPrompts {
		for _, kw := range kp.keywords {
			if strings.Contains(lower, kw) {
				if r, ok := s.Responses[kp.prompt]; ok {
					return strings.TrimSpace(r), nil
				}
			}
		}
	}
	return strings.TrimSpace(s.Fallback), nil
}

// FallbackKey is the response-table entry used when nothing else matches.
const FallbackKey = "fallback"

// NewScripted builds a Scripted generator over responses, taking the fallback
// from the FallbackKey entry.
func NewScripted(responses map[string]string, delay time.Duration) *Scripted {
	return &Scripted{
		Responses: responses,
		Fallback:  responses[FallbackKey],
		Delay:     delay,
	}
}
