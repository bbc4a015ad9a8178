package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/tilemap"
)

func press(m *model, keys string) {
	for _, r := range keys {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
		if r == ' ' {
			msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{r}}
		}
		m.Update(msg)
	}
}

func testModel(t *testing.T) *model {
	t.Helper()
	g, err := grid.Parse(grid.Move8,
		"#########",
		"#.......#",
		"#.##.##.#",
		"#...#...#",
		"#########",
	)
	require.NoError(t, err)
	m, err := newModel(g, config.DefaultDemo(), zap.NewNop())
	require.NoError(t, err)
	return m
}

func TestMovement(t *testing.T) {
	m := testModel(t)
	require.Equal(t, tilemap.Pt(1, 1), m.player)

	press(m, "k")
	assert.Equal(t, tilemap.Pt(1, 1), m.player, "walls stop the player")
	press(m, "ll")
	assert.Equal(t, tilemap.Pt(3, 1), m.player)
	press(m, "b")
	assert.Equal(t, tilemap.Pt(3, 1), m.player)
	press(m, "h")
	assert.Equal(t, tilemap.Pt(2, 1), m.player)
}

// TestTurn: each turn refreshes the field of view and the distance field.
func TestTurn(t *testing.T) {
	m := testModel(t)
	assert.True(t, m.g.Visible(m.player))
	assert.Equal(t, int32(0), m.g.Distance(m.player))
	assert.Equal(t, int32(6), m.g.Distance(tilemap.Pt(7, 1)))

	press(m, "jj")
	assert.Equal(t, tilemap.Pt(1, 3), m.player)
	assert.Equal(t, int32(0), m.g.Distance(tilemap.Pt(1, 3)))
}

func TestRouteAndRadius(t *testing.T) {
	m := testModel(t)
	press(m, " ")
	assert.Equal(t, "route: 3 steps", m.status)
	assert.True(t, m.g.OnPath(m.goal))

	r := m.radius
	press(m, "+")
	assert.Equal(t, r+1, m.radius)
	press(m, "--")
	assert.Equal(t, r-1, m.radius)

	press(m, "x")
	assert.True(t, m.showDist)
	assert.Contains(t, m.View(), "radius")
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
