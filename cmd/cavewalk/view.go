package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/tilepath/tilemap"
)

type tileStyle int

const (
	styleWall tileStyle = iota
	styleWallLit
	styleDirt
	styleDirtLit
	styleFloor
	styleFloorLit
	styleDistance
	styleRoute
	styleRouteLit
	stylePlayer
	styleCount
)

var (
	tileStyles = [styleCount]lipgloss.Style{
		styleWall:     lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
		styleWallLit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#D0D0D0")),
		styleDirt:     lipgloss.NewStyle().Foreground(lipgloss.Color("#5C4326")),
		styleDirtLit:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C8943E")),
		styleFloor:    lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A")),
		styleFloorLit: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		styleDistance: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")),
		styleRoute:    lipgloss.NewStyle().Background(lipgloss.Color("#8B0000")),
		styleRouteLit: lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#FF6B6B")),
		stylePlayer:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFF00")),
	}

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

func (m *model) View() string {
	var b strings.Builder
	for y := 0; y < m.g.Height; y++ {
		var run strings.Builder
		cur := tileStyle(-1)
		for x := 0; x < m.g.Width; x++ {
			glyph, st := m.tile(tilemap.Pt(x, y))
			if st != cur && run.Len() > 0 {
				b.WriteString(tileStyles[cur].Render(run.String()))
				run.Reset()
			}
			cur = st
			run.WriteRune(glyph)
		}
		if run.Len() > 0 {
			b.WriteString(tileStyles[cur].Render(run.String()))
		}
		b.WriteByte('\n')
	}

	b.WriteString(statusStyle.Render(fmt.Sprintf("%v  radius %d  seen %d", m.player, m.radius, m.g.VisibleCount())))
	if m.status != "" {
		b.WriteString(" ")
		b.WriteString(m.status)
	}
	b.WriteByte('\n')
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// tile returns the glyph and style of p.
func (m *model) tile(p tilemap.Point) (rune, tileStyle) {
	if p == m.player {
		return '@', stylePlayer
	}
	lit := m.g.Visible(p)
	onBorder := p.X == 0 || p.Y == 0 || int(p.X) == m.g.Width-1 || int(p.Y) == m.g.Height-1
	switch {
	case onBorder:
		return '█', pick(lit, styleWallLit, styleWall)
	case m.g.Wall(p):
		return '▒', pick(lit, styleDirtLit, styleDirt)
	}

	glyph := ' '
	if lit {
		glyph = '.'
	}
	st := pick(lit, styleFloorLit, styleFloor)
	if m.showDist {
		if d := m.g.Distance(p); d != tilemap.Unreached {
			glyph, st = rune('0'+d%10), styleDistance
		}
	}
	if m.g.OnPath(p) {
		st = pick(lit, styleRouteLit, styleRoute)
	}
	return glyph, st
}

func pick(lit bool, on, off tileStyle) tileStyle {
	if lit {
		return on
	}
	return off
}
