package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/dragboard/internal/config"
)

// keyMap holds the bindings built from the configured key mappings.
// It implements help.KeyMap.
type keyMap struct {
	Left  key.Binding
	Right key.Binding
	Up    key.Binding
	Down  key.Binding

	PickUp key.Binding
	Drop   key.Binding
	Cancel key.Binding

	AddGroup key.Binding
	AddItem  key.Binding

	Help key.Binding
	Quit key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Left: key.NewBinding(
			key.WithKeys(km.PrevGroup, "left"),
			key.WithHelp(km.PrevGroup+"/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys(km.NextGroup, "right"),
			key.WithHelp(km.NextGroup+"/→", "right"),
		),
		Up: key.NewBinding(
			key.WithKeys(km.PrevItem, "up"),
			key.WithHelp(km.PrevItem+"/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys(km.NextItem, "down"),
			key.WithHelp(km.NextItem+"/↓", "down"),
		),
		PickUp: key.NewBinding(
			key.WithKeys(km.PickUp),
			key.WithHelp(km.PickUp, "pick up"),
		),
		Drop: key.NewBinding(
			key.WithKeys(km.Drop),
			key.WithHelp(km.Drop, "drop"),
		),
		Cancel: key.NewBinding(
			key.WithKeys(km.CancelDrag),
			key.WithHelp(km.CancelDrag, "cancel"),
		),
		AddGroup: key.NewBinding(
			key.WithKeys(km.AddGroup),
			key.WithHelp(km.AddGroup, "add group"),
		),
		AddItem: key.NewBinding(
			key.WithKeys(km.AddItem),
			key.WithHelp(km.AddItem, "add item"),
		),
		Help: key.NewBinding(
			key.WithKeys(km.ShowHelp),
			key.WithHelp(km.ShowHelp, "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys(km.Quit, "ctrl+c"),
			key.WithHelp(km.Quit, "quit"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PickUp, k.AddGroup, k.AddItem, k.Help, k.Quit}
}

// FullHelp returns the bindings shown on the help screen
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down},
		{k.PickUp, k.Drop, k.Cancel},
		{k.AddGroup, k.AddItem},
		{k.Help, k.Quit},
	}
}
