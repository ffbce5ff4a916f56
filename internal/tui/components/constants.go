package components

const (
	ColumnContentWidth = 34 // inner width of a group column
	CardWidth          = 32 // outer width of an item card
	CardHeight         = 3  // border + title + border
	cardTitleMaxLength = 28 // runes shown before the title is truncated

	// NoRow marks a column the cursor is not in
	NoRow = -2
)

// truncate shortens s to at most n runes, marking the cut with an ellipsis
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
