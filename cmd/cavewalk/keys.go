package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/katalvlaran/tilepath/tilemap"
)

type keyMap struct {
	North     key.Binding
	NorthEast key.Binding
	East      key.Binding
	SouthEast key.Binding
	South     key.Binding
	SouthWest key.Binding
	West      key.Binding
	NorthWest key.Binding
	Route     key.Binding
	Wider     key.Binding
	Narrower  key.Binding
	Distances key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		North:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "north")),
		NorthEast: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "north-east")),
		East:      key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "east")),
		SouthEast: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "south-east")),
		South:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "south")),
		SouthWest: key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "south-west")),
		West:      key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "west")),
		NorthWest: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "north-west")),
		Route:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "route to centre")),
		Wider:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider view")),
		Narrower:  key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "narrower view")),
		Distances: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "distances")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// move pairs a movement binding with its direction.
type move struct {
	binding key.Binding
	dir     tilemap.Direction
}

func (k keyMap) moves() [8]move {
	return [8]move{
		{k.North, tilemap.North},
		{k.NorthEast, tilemap.NorthEast},
		{k.East, tilemap.East},
		{k.SouthEast, tilemap.SouthEast},
		{k.South, tilemap.South},
		{k.SouthWest, tilemap.SouthWest},
		{k.West, tilemap.West},
		{k.NorthWest, tilemap.NorthWest},
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.West, k.South, k.North, k.East, k.Route, k.Wider, k.Narrower, k.Distances, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.North, k.NorthEast, k.East, k.SouthEast},
		{k.South, k.SouthWest, k.West, k.NorthWest},
		{k.Route, k.Wider, k.Narrower, k.Distances, k.Help, k.Quit},
	}
}
