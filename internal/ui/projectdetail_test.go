package ui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"constructplan/internal/assist"
	"constructplan/internal/project"
)

// countingGen answers "answer:<prompt>" and counts calls per prompt.
type countingGen struct {
	mu    sync.Mutex
	calls map[string]int
	err   error
}

func newCountingGen() *countingGen {
	return &countingGen{calls: make(map[string]int)}
}

func (g *countingGen) Generate(_ context.Context, prompt string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.calls[prompt]++
	if g.err != nil {
		return "", g.err
	}
	return "answer:" + prompt, nil
}

func (g *countingGen) count(prompt string) int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.calls[prompt]
}

func newTestDetail(t *testing.T, gen assist.Generator) *ProjectDetailView {
	t.Helper()
	c := project.MustDefault()
	p, ok := c.Find("1")
	require.True(t, ok)
	v := NewProjectDetailView(context.Background(), p, c.Detail, "Alex", gen, NewMarkdown("notty"))
	v.SetSize(120, 200)
	return v
}

// runCmd executes cmd and feeds its message back into v.
func runCmd(t *testing.T, v View, cmd tea.Cmd) View {
	t.Helper()
	require.NotNil(t, cmd)
	v, _ = v.Update(cmd())
	return v
}

func TestProjectDetailView_Header(t *testing.T) {
	v := newTestDetail(t, nil)
	body := v.body()
	assert.Contains(t, body, "NYC Tower")
	assert.Contains(t, body, "Welcome back, Alex")
	assert.Contains(t, body, "[Design Studio]")
	assert.Contains(t, body, "AI Assistant")
}

func TestProjectDetailView_SectionNavigation(t *testing.T) {
	v := newTestDetail(t, nil)
	n := len(v.Detail.Sections)

	v.Update(keyMsg("h"))
	assert.Equal(t, 0, v.Section, "h on first section stays")

	v.Update(keyMsg("l"))
	assert.Equal(t, 1, v.Section)
	assert.Contains(t, v.body(), "Project Details")
	assert.Contains(t, v.body(), "Key Performance Indicators")

	v.Update(keyMsg("9"))
	assert.Equal(t, 1, v.Section, "out of range digit is ignored")

	v.Update(keyMsg(string(rune('0' + n))))
	assert.Equal(t, n-1, v.Section)
	v.Update(keyMsg("l"))
	assert.Equal(t, n-1, v.Section, "l on last section stays")
}

func TestProjectDetailView_StudioMenu(t *testing.T) {
	gen := newCountingGen()
	v := newTestDetail(t, gen)
	require.True(t, v.inStudio())

	v.Update(keyMsg("j"))
	v.Update(keyMsg("j"))
	assert.Equal(t, 2, v.StudioCursor)
	v.Update(keyMsg("k"))
	assert.Equal(t, 1, v.StudioCursor)

	_, cmd := v.Update(keyMsg("enter"))
	runCmd(t, v, cmd)
	require.Len(t, v.Answers, 1)
	assert.Equal(t, "answer:Review Site Alignment", v.Answers[0].Text)
}

func TestProjectDetailView_QuickPromptGeneratesOnce(t *testing.T) {
	gen := newCountingGen()
	v := newTestDetail(t, gen)

	_, cmd := v.Update(keyMsg("s"))
	require.NotNil(t, cmd)
	assert.True(t, v.Answers[0].Pending)
	assert.Contains(t, v.body(), "thinking…")

	// A second press while in flight does not start another generation.
	_, again := v.Update(keyMsg("s"))
	assert.Nil(t, again)

	runCmd(t, v, cmd)
	assert.False(t, v.Answers[0].Pending)
	assert.Equal(t, "answer:spi_cpi", v.Answers[0].Text)

	// Cached: answered immediately without a command.
	_, cached := v.Update(keyMsg("s"))
	assert.Nil(t, cached)
	require.Len(t, v.Answers, 2)
	assert.Equal(t, "answer:spi_cpi", v.Answers[1].Text)
	assert.Equal(t, 1, gen.count("spi_cpi"))
}

func TestProjectDetailView_ScriptedQuickPrompts(t *testing.T) {
	c := project.MustDefault()
	v := newTestDetail(t, assist.NewScripted(c.Prompts, 0))

	for _, qp := range quickPrompts {
		_, cmd := v.Update(keyMsg(qp.key))
		runCmd(t, v, cmd)
	}
	require.Len(t, v.Answers, len(quickPrompts))
	want, _ := c.Prompt("budget")
	assert.Equal(t, want, v.Answers[1].Text)
}

func TestProjectDetailView_FreeTextQuestion(t *testing.T) {
	gen := newCountingGen()
	v := newTestDetail(t, gen)

	_, cmd := v.Update(keyMsg("i"))
	_ = cmd
	require.True(t, v.CapturingInput())

	typeString(v, "what about risk?")
	_, cmd = v.Update(keyMsg("enter"))
	assert.False(t, v.CapturingInput())
	runCmd(t, v, cmd)

	require.Len(t, v.Answers, 1)
	assert.Equal(t, "what about risk?", v.Answers[0].Label)
	assert.Equal(t, "answer:what about risk?", v.Answers[0].Text)
}

func TestProjectDetailView_EmptyQuestionIgnored(t *testing.T) {
	v := newTestDetail(t, newCountingGen())
	v.Update(keyMsg("i"))
	_, cmd := v.Update(keyMsg("enter"))
	assert.Nil(t, cmd)
	assert.Empty(t, v.Answers)

	v.Update(keyMsg("i"))
	v.Update(keyMsg("esc"))
	assert.False(t, v.CapturingInput())
}

func TestProjectDetailView_GenerationErrorIsRetryable(t *testing.T) {
	gen := newCountingGen()
	gen.err = errors.New("offline")
	v := newTestDetail(t, gen)

	_, cmd := v.Update(keyMsg("b"))
	runCmd(t, v, cmd)
	require.Len(t, v.Answers, 1)
	assert.Contains(t, v.Answers[0].Text, "offline")

	gen.err = nil
	_, cmd = v.Update(keyMsg("b"))
	require.NotNil(t, cmd, "failed prompts are not cached")
	runCmd(t, v, cmd)
	assert.Equal(t, "answer:budget", v.Answers[1].Text)
}

func TestProjectDetailView_IgnoresOtherOwners(t *testing.T) {
	v := newTestDetail(t, newCountingGen())
	v.Update(assist.GeneratedMsg{Owner: "detail:other", Prompt: "spi_cpi", Text: "nope"})
	assert.Empty(t, v.Answers)
}

func TestProjectDetailView_CharterAndAttachments(t *testing.T) {
	c := project.MustDefault()
	p := project.Project{
		ID:          "P-1",
		Name:        "Clinic",
		Charter:     "# Clinic Charter\n\n## Vision\n\nA calm place to heal.",
		Attachments: []string{"contract.pdf", "site.dwg"},
	}
	v := NewProjectDetailView(context.Background(), p, c.Detail, "", nil, NewMarkdown("notty"))
	v.SetSize(120, 400)
	v.Update(keyMsg("l"))

	body := v.body()
	assert.Contains(t, body, "Welcome back, there")
	assert.Contains(t, body, "Project Charter")
	assert.Contains(t, body, "calm place to heal")
	assert.Contains(t, body, "contract.pdf")
	assert.True(t, strings.Contains(body, "site.dwg"))
}

func TestProjectDetailView_ViewFitsViewport(t *testing.T) {
	v := newTestDetail(t, nil)
	v.SetSize(100, 10)
	lines := strings.Split(v.View(), "\n")
	assert.LessOrEqual(t, len(lines), 10)
}
