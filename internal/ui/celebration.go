package ui

import (
	"math/rand"
	"strings"

	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
)

const (
	confettiCount  = 48
	confettiFrames = 180 // ~3s at 60fps
)

var confettiGlyphs = []rune{'*', '+', 'o', '.', '~'}

var confettiColors = []lipgloss.Color{
	ColorPrimary,
	ColorHighlight,
	ColorSuccess,
	lipgloss.Color("208"),
	lipgloss.Color("82"),
}

type particle struct {
	x, y     float64
	velY     float64
	targetY  float64
	glyph    rune
	style    lipgloss.Style
	spring   harmonica.Spring
	drift    float64
	driftDir float64
}

// Celebration is a short confetti burst rendered over the layout
// when every section has been discovered.
type Celebration struct {
	particles []particle
	width     int
	height    int
	frame     int
	active    bool
}

// NewCelebration creates an idle celebration sized to the viewport.
func NewCelebration(width, height int) Celebration {
	return Celebration{width: width, height: height}
}

// Start seeds the particles and begins the animation.
func (c *Celebration) Start() {
	if c.width < 4 || c.height < 4 {
		c.width, c.height = 80, 24
	}
	c.particles = make([]particle, confettiCount)
	for i := range c.particles {
		spring := harmonica.NewSpring(harmonica.FPS(60), 3.0, 0.35)
		c.particles[i] = particle{
			x:        rand.Float64() * float64(c.width),
			y:        -rand.Float64() * float64(c.height) / 2,
			targetY:  float64(c.height) + 2,
			glyph:    confettiGlyphs[rand.Intn(len(confettiGlyphs))],
			style:    lipgloss.NewStyle().Foreground(confettiColors[rand.Intn(len(confettiColors))]),
			spring:   spring,
			drift:    0.2 + rand.Float64()*0.6,
			driftDir: float64(rand.Intn(2)*2 - 1),
		}
	}
	c.frame = 0
	c.active = true
}

// Active reports whether the animation still has frames to run.
func (c Celebration) Active() bool {
	return c.active
}

// SetSize resizes the animation viewport.
func (c *Celebration) SetSize(width, height int) {
	c.width = width
	c.height = height
}

// Tick advances the spring physics one frame.
func (c *Celebration) Tick() {
	if !c.active {
		return
	}
	c.frame++
	if c.frame >= confettiFrames {
		c.active = false
		return
	}
	for i := range c.particles {
		p := &c.particles[i]
		p.y, p.velY = p.spring.Update(p.y, p.velY, p.targetY)
		p.x += p.drift * p.driftDir
		if p.x < 0 {
			p.x += float64(c.width)
		}
	}
}

// View renders the confetti field as a full-size block.
func (c Celebration) View() string {
	if !c.active || c.width <= 0 || c.height <= 0 {
		return ""
	}
	grid := make([][]string, c.height)
	for y := range grid {
		grid[y] = make([]string, c.width)
		for x := range grid[y] {
			grid[y][x] = " "
		}
	}
	for _, p := range c.particles {
		x := int(p.x) % c.width
		y := int(p.y)
		if x < 0 || y < 0 || y >= c.height {
			continue
		}
		grid[y][x] = p.style.Render(string(p.glyph))
	}
	rows := make([]string, c.height)
	for y, cells := range grid {
		rows[y] = strings.Join(cells, "")
	}
	return strings.Join(rows, "\n")
}
