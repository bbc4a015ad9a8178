package main

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/katalvlaran/tilepath/astar"
	"github.com/katalvlaran/tilepath/cave"
	"github.com/katalvlaran/tilepath/flood"
	"github.com/katalvlaran/tilepath/fov"
	"github.com/katalvlaran/tilepath/grid"
	"github.com/katalvlaran/tilepath/internal/config"
	"github.com/katalvlaran/tilepath/tilemap"
)

var errNoFloor = errors.New("cave has no floor to stand on")

type model struct {
	g      *grid.Grid
	player tilemap.Point
	goal   tilemap.Point

	radius    int
	maxRadius int
	showDist  bool

	// Workspaces are allocated once; every turn reuses them.
	floodWS tilemap.Workspace
	pathWS  tilemap.Workspace

	status string
	keys   keyMap
	help   help.Model
	log    *zap.Logger
}

func newModel(g *grid.Grid, cfg config.Demo, log *zap.Logger) (*model, error) {
	region := cave.Largest(g)
	if len(region) == 0 {
		return nil, errNoFloor
	}
	m := &model{
		g:         g,
		player:    region[0],
		goal:      tilemap.Pt(g.Width/2, g.Height/2),
		radius:    cfg.FOVRadius,
		maxRadius: cfg.MaxFOVRadius,
		floodWS:   tilemap.NewWorkspace(cfg.FloodSlots),
		pathWS:    tilemap.NewWorkspace(cfg.PathSlots),
		keys:      defaultKeyMap(),
		help:      help.New(),
		log:       log,
	}
	m.help.Width = g.Width
	m.turn()
	return m, nil
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Route):
			m.route()
		case key.Matches(msg, m.keys.Wider):
			m.radius = min(m.radius+1, m.maxRadius)
		case key.Matches(msg, m.keys.Narrower):
			m.radius = max(m.radius-1, 0)
		case key.Matches(msg, m.keys.Distances):
			m.showDist = !m.showDist
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		default:
			for _, mv := range m.keys.moves() {
				if key.Matches(msg, mv.binding) {
					m.step(mv.dir)
					break
				}
			}
		}
		m.turn()
	}
	return m, nil
}

// step moves the player one tile if the target accepts the arrival.
func (m *model) step(d tilemap.Direction) {
	next := m.player.Add(d)
	if !m.g.Passable(next, d.Inverse()) {
		return
	}
	m.player = next
}

// route marks the shortest path from the player to the cave centre.
func (m *model) route() {
	m.g.ResetMarks()
	n, err := astar.ShortestPath(m.g, m.player, m.goal, m.pathWS)
	switch {
	case err == nil:
		m.status = fmt.Sprintf("route: %d steps", n)
	case errors.Is(err, tilemap.ErrOutOfWorkspace):
		m.status = "route: too far to plan"
	default:
		m.status = "route: " + err.Error()
	}
	m.log.Debug("route",
		zap.Stringer("from", m.player),
		zap.Stringer("to", m.goal),
		zap.Int("length", n),
		zap.Error(err),
	)
}

// turn recomputes the distance field and the field of view.
func (m *model) turn() {
	head, err := flood.Seed(m.floodWS, 0, m.player)
	if err == nil {
		// A local fill is expected: the workspace is sized for the
		// neighbourhood, not the whole cave.
		if err := flood.Flood(m.g, m.floodWS, head); err != nil && !errors.Is(err, tilemap.ErrOutOfWorkspace) {
			m.log.Warn("flood failed", zap.Error(err))
		}
	}
	m.g.ResetVisible()
	fov.FieldOfView(m.g, m.player, m.radius)
}
