package assist

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scripted() *Scripted {
	return &Scripted{
		Responses: map[string]string{
			"vision":   "  Build the benchmark facility.\n",
			"spi_cpi":  "SPI 0.92",
			"budget":   "Budget at 107%",
			"schedule": "Slack is 3 days",
		},
		Fallback: "Generic summary",
	}
}

func TestScripted_Generate(t *testing.T) {
	g := scripted()
	tests := []struct {
		prompt string
		want   string
	}{
		{"vision", "Build the benchmark facility."},
		{"spi_cpi", "SPI 0.92"},
		{"How is our CPI trending?", "SPI 0.92"},
		{"Summarize cost exposure", "Budget at 107%"},
		{"Any schedule delay?", "Slack is 3 days"},
		{"Summarize risks and suggest mitigations", "Generic summary"},
		{"hello", "Generic summary"},
	}
	for _, tt := range tests {
		got, err := g.Generate(context.Background(), tt.prompt)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "prompt %q", tt.prompt)
	}
}

func TestScripted_DelayHonoursContext(t *testing.T) {
	g := &Scripted{Delay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := g.Generate(ctx, "vision")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCache_ComputesOncePerID(t *testing.T) {
	c := NewCache()

	require.True(t, c.Begin("vision"))
	assert.True(t, c.Pending("vision"))
	assert.False(t, c.Begin("vision"), "in flight")

	c.Store("vision", "first")
	assert.False(t, c.Pending("vision"))
	assert.False(t, c.Begin("vision"), "cached")

	c.Store("vision", "second")
	got, ok := c.Lookup("vision")
	require.True(t, ok)
	assert.Equal(t, "first", got)
	assert.Equal(t, 1, c.Len())
}

func TestCache_Abort(t *testing.T) {
	c := NewCache()
	require.True(t, c.Begin("risks"))
	c.Abort("risks")
	_, ok := c.Lookup("risks")
	assert.False(t, ok)
	assert.True(t, c.Begin("risks"), "aborted ids can be retried")
}

func TestGenerateCmd(t *testing.T) {
	msg := GenerateCmd(context.Background(), scripted(), "wizard", "budget")()
	gm, ok := msg.(GeneratedMsg)
	require.True(t, ok)
	assert.Equal(t, GeneratedMsg{Owner: "wizard", Prompt: "budget", Text: "Budget at 107%"}, gm)
}
