package ui

import (
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiFPS       = 30
	confettiParticles = 40
	confettiHeight    = 6
)

var confettiGlyphs = []string{"*", "•", "✦", "◆", "+"}
var confettiColors = []string{ColorAccent, ColorHighlight, ColorWarning, ColorSuccess, ColorInfo}

type particle struct {
	proj  *harmonica.Projectile
	glyph string
	color string
}

// Confetti is the burst drawn after a project is created. Particles are
// harmonica projectiles launched upward from the bottom center under
// terminal gravity.
type Confetti struct {
	Label     string
	particles []particle
	frame     int
	frames    int
	width     int
	height    int
}

// NewConfetti creates a burst over a field of width w lasting d.
func NewConfetti(label string, w int, d time.Duration, rng *rand.Rand) *Confetti {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	w = max(w, 10)
	c := &Confetti{
		Label:  label,
		frames: max(int(d.Seconds()*confettiFPS), 1),
		width:  w,
		height: confettiHeight,
	}
	origin := harmonica.Point{X: float64(w) / 2, Y: float64(confettiHeight)}
	for i := 0; i < confettiParticles; i++ {
		vel := harmonica.Vector{
			X: (rng.Float64() - 0.5) * float64(w) / 2,
			Y: -(4 + rng.Float64()*6),
		}
		c.particles = append(c.particles, particle{
			proj:  harmonica.NewProjectile(harmonica.FPS(confettiFPS), origin, vel, harmonica.TerminalGravity),
			glyph: confettiGlyphs[rng.Intn(len(confettiGlyphs))],
			color: confettiColors[rng.Intn(len(confettiColors))],
		})
	}
	return c
}

// Step advances one frame and reports whether the burst is still running.
func (c *Confetti) Step() bool {
	if c.frame >= c.frames {
		return false
	}
	c.frame++
	for _, p := range c.particles {
		p.proj.Update()
	}
	return c.frame < c.frames
}

// Running reports whether frames remain.
func (c *Confetti) Running() bool {
	return c != nil && c.frame < c.frames
}

// View draws the particles in their current positions with the label centered.
func (c *Confetti) View() string {
	grid := make([][]string, c.height)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		pos := p.proj.Position()
		x, y := int(pos.X), int(pos.Y)
		if x < 0 || x >= c.width || y < 0 || y >= c.height {
			continue
		}
		grid[y][x] = lipgloss.NewStyle().Foreground(lipgloss.Color(p.color)).Render(p.glyph)
	}
	lines := make([]string, c.height)
	for y, row := range grid {
		lines[y] = strings.Join(row, "")
	}
	label := lipgloss.PlaceHorizontal(c.width, lipgloss.Center, Styles.Title.Render("🎉 "+c.Label))
	return label + "\n" + strings.Join(lines, "\n")
}

func confettiTick() tea.Cmd {
	return tea.Tick(time.Second/confettiFPS, func(time.Time) tea.Msg { return confettiFrameMsg{} })
}
