package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/dragboard/internal/config/colors"
)

// CreateBoardTheme styles the creation dialogs with the board colors:
// inputs take the accent, the confirm buttons take the create color.
func CreateBoardTheme(scheme colors.ColorScheme) huh.Theme {
	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		t := huh.ThemeBase(isDark)

		accent := lipgloss.Color(scheme.Accent)
		create := lipgloss.Color(scheme.Create)
		subtle := lipgloss.Color(scheme.Subtle)
		normal := lipgloss.Color(scheme.Normal)
		failed := lipgloss.Color(scheme.ErrorFg)

		f := &t.Focused
		f.Base = f.Base.BorderForeground(lipgloss.Color(scheme.GroupBorder))
		f.Title = f.Title.Foreground(lipgloss.Color(scheme.Title)).Bold(true)
		f.Description = f.Description.Foreground(subtle)
		f.ErrorIndicator = f.ErrorIndicator.Foreground(failed)
		f.ErrorMessage = f.ErrorMessage.Foreground(failed)
		f.TextInput.Cursor = f.TextInput.Cursor.Foreground(accent)
		f.TextInput.Prompt = f.TextInput.Prompt.Foreground(accent)
		f.TextInput.Placeholder = f.TextInput.Placeholder.Foreground(subtle)
		f.TextInput.Text = f.TextInput.Text.Foreground(normal)
		f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color(scheme.SelectedBg)).Background(create).Bold(true)
		f.BlurredButton = f.BlurredButton.Foreground(normal).Background(lipgloss.Color(scheme.ItemBackground))

		t.Blurred = t.Focused
		t.Blurred.Base = t.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
		t.Blurred.Title = t.Blurred.Title.Foreground(subtle)

		return t
	})
}
