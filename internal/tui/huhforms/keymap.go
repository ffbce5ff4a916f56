package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// FormKeyMap returns the keymap shared by the creation dialogs. The cancel key
// aborts the form the same way it cancels a drag, and shift+enter joins the
// usual newline keys in the markdown description field.
func FormKeyMap(cancel string) *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Quit = key.NewBinding(
		key.WithKeys(cancel, "ctrl+c"),
		key.WithHelp(cancel, "cancel"),
	)
	km.Text.NewLine = key.NewBinding(
		key.WithKeys("shift+enter", "alt+enter", "ctrl+j"),
		key.WithHelp("shift+enter", "new line"),
	)

	return km
}
