package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Select    key.Binding
	Quit      key.Binding
	ForceQuit key.Binding

	Shorter    key.Binding
	Longer     key.Binding
	Copy       key.Binding
	Regenerate key.Binding
	Toggle     key.Binding
	Back       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "last"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "select"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Shorter: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "decrease length"),
		),
		Longer: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "increase length"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c/y", "copy"),
		),
		Regenerate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "regenerate"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "enter", "t"),
			key.WithHelp("space/t", "toggle option"),
		),
		Back: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "back to list"),
		),
	}
}

// listHelp is the footer for the category list.
type listHelp struct{ keys keyMap }

func (h listHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.keys.Down, h.keys.Up, h.keys.Select, h.keys.Quit}
}

func (h listHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}

// generatorHelp is the footer for a generator screen. Option keys only show
// for categories that have options.
type generatorHelp struct {
	keys       keyMap
	hasOptions bool
}

func (h generatorHelp) ShortHelp() []key.Binding {
	bindings := []key.Binding{h.keys.Shorter, h.keys.Longer, h.keys.Copy, h.keys.Regenerate}
	if h.hasOptions {
		bindings = append(bindings, h.keys.Down, h.keys.Up, h.keys.Toggle)
	}
	return append(bindings, h.keys.Back)
}

func (h generatorHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
