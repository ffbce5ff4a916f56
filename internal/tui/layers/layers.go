// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x := max((screenWidth-lipgloss.Width(content))/2, 0)
	y := max((screenHeight-lipgloss.Height(content))/2, 0)

	return lipgloss.NewLayer(content).X(x).Y(y)
}

// CreateBottomLayer creates a full-width layer anchored to the last rows of the screen.
func CreateBottomLayer(content string, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	y := max(screenHeight-lipgloss.Height(content), 0)
	return lipgloss.NewLayer(content).X(0).Y(y)
}
