package assist

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// GeneratedMsg carries a finished generation back to the UI loop.
type GeneratedMsg struct {
	Owner  string // component that asked, so replies are routed back to it
	Prompt string
	Text   string
	Err    error
}

// GenerateCmd returns a command that runs g for prompt. It does not touch the
// cache; the receiver stores the result when GeneratedMsg arrives.
func GenerateCmd(ctx context.Context, g Generator, owner, prompt string) tea.Cmd {
	return func() tea.Msg {
		text, err := g.Generate(ctx, prompt)
		return GeneratedMsg{Owner: owner, Prompt: prompt, Text: text, Err: err}
	}
}
