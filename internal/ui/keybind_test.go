package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("space g p", tea.Quit)

	assert.NotNil(t, reg.Lookup("q"))
	assert.NotNil(t, reg.Lookup("SPC g p"), "space is normalized to SPC")
	assert.Nil(t, reg.Lookup("unknown"))
	assert.True(t, reg.HasPrefix("SPC g"))
	assert.False(t, reg.HasPrefix("SPC g p"))
}

func TestKeyHandler_LeaderSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	var executed bool
	reg.Bind("SPC g d", func() tea.Msg {
		executed = true
		return nil
	})
	h := NewKeyHandler(reg)

	steps := []struct {
		key     string
		waiting bool
		seq     string
	}{
		{" ", true, "SPC"},
		{"g", true, "SPC g"},
		{"d", false, ""},
	}
	var cmd tea.Cmd
	for _, s := range steps {
		var consumed bool
		consumed, cmd = h.Handle(keyMsg(s.key))
		require.True(t, consumed, "key %q", s.key)
		assert.Equal(t, s.waiting, h.LeaderWaiting, "after %q", s.key)
		assert.Equal(t, s.seq, h.CurrentSeq(), "after %q", s.key)
	}
	require.NotNil(t, cmd)
	cmd()
	assert.True(t, executed)
}

func TestKeyHandler_EscCancelsLeader(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	require.True(t, h.LeaderWaiting)

	consumed, cmd := h.Handle(keyMsg("esc"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)

	consumed, _ = h.Handle(keyMsg("esc"))
	assert.False(t, consumed, "esc outside leader mode belongs to views")
}

func TestKeyHandler_UnknownLeaderSequenceResets(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC x", tea.Quit)
	h := NewKeyHandler(reg)

	h.Handle(keyMsg(" "))
	consumed, cmd := h.Handle(keyMsg("z"))
	assert.True(t, consumed)
	assert.Nil(t, cmd)
	assert.False(t, h.LeaderWaiting)
}

func TestKeyHandler_SingleKeys(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("]", tea.Quit)
	h := NewKeyHandler(reg)

	for _, k := range []string{"q", "]"} {
		consumed, cmd := h.Handle(keyMsg(k))
		assert.True(t, consumed, k)
		assert.NotNil(t, cmd, k)
	}
	consumed, _ := h.Handle(keyMsg("j"))
	assert.False(t, consumed, "unbound j falls through")
}

func TestKeyHandler_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("x", tea.Quit, "Close tab", []AppMode{ModeProjectDetail})
	h := NewKeyHandler(reg)

	h.Mode = ModeDashboard
	consumed, _ := h.Handle(keyMsg("x"))
	assert.False(t, consumed, "x is inactive on the dashboard")

	h.Mode = ModeProjectDetail
	consumed, cmd := h.Handle(keyMsg("x"))
	assert.True(t, consumed)
	assert.NotNil(t, cmd)
}

func TestLeaderHints_SubmenusAndModes(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)

	top := reg.LeaderHints("", ModeDashboard)
	assert.Equal(t, "Go to", top["g"])
	assert.Equal(t, "Tabs", top["t"])
	assert.Equal(t, "Quit", top["q"])
	assert.Equal(t, "New project", top["n"])

	tabs := reg.LeaderHints("SPC t", ModeDashboard)
	assert.Contains(t, tabs, "n")
	assert.NotContains(t, tabs, "x", "close tab is hinted only in project detail")

	tabs = reg.LeaderHints("SPC t", ModeProjectDetail)
	assert.Equal(t, "Close tab", tabs["x"])
}

func TestRenderKeybindHelp_ShowsPendingSequence(t *testing.T) {
	reg := NewKeybindRegistry()
	registerKeybinds(reg)
	h := NewKeyHandler(reg)
	h.Handle(keyMsg(" "))
	h.Handle(keyMsg("g"))

	out := RenderKeybindHelp(h, ModeDashboard)
	assert.Contains(t, out, "SPC g")
	assert.Contains(t, out, "Projects")
	assert.Contains(t, out, "Timeline")
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+g":
		return tea.KeyMsg{Type: tea.KeyCtrlG}
	case "ctrl+n":
		return tea.KeyMsg{Type: tea.KeyCtrlN}
	case "ctrl+p":
		return tea.KeyMsg{Type: tea.KeyCtrlP}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// typeString feeds s to v one rune at a time.
func typeString(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return v
}
