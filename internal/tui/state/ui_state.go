package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode    Mode = iota // Default navigation mode
	DragMode                  // An entity is picked up and follows the pointer
	GroupFormMode             // Creating a new group with huh
	ItemFormMode              // Creating a new item with huh
	HelpMode                  // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case DragMode:
		return "drag"
	case GroupFormMode:
		return "group form"
	case ItemFormMode:
		return "item form"
	case HelpMode:
		return "help"
	default:
		return "normal"
	}
}

// HeaderRow is the selectedItem value for a group's header row
const HeaderRow = -1

// UIState manages the user interface state.
// This includes navigation (group/item selection), viewport scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedGroup is the index of the currently selected group
	selectedGroup int

	// selectedItem is the index of the selected item within the group,
	// or HeaderRow when the group header itself is selected
	selectedItem int

	width  int
	height int

	mode Mode

	// viewportOffset is the index of the leftmost visible group
	viewportOffset int

	// viewportSize is the number of groups that fit on the screen
	viewportSize int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		selectedItem: HeaderRow,
		mode:         NormalMode,
		viewportSize: 1, // Recalculated when width is set
	}
}

// SelectedGroup returns the index of the currently selected group.
func (s *UIState) SelectedGroup() int {
	return s.selectedGroup
}

// SetSelectedGroup updates the selected group index.
func (s *UIState) SetSelectedGroup(index int) {
	s.selectedGroup = index
}

// SelectedItem returns the selected item index, or HeaderRow.
func (s *UIState) SelectedItem() int {
	return s.selectedItem
}

// SetSelectedItem updates the selected item index.
func (s *UIState) SetSelectedItem(index int) {
	s.selectedItem = index
}

// OnHeader reports whether the group header row is selected.
func (s *UIState) OnHeader() bool {
	return s.selectedItem == HeaderRow
}

// Clamp keeps the selection inside a board with the given item counts per group.
func (s *UIState) Clamp(itemCounts []int) {
	if len(itemCounts) == 0 {
		s.selectedGroup = 0
		s.selectedItem = HeaderRow
		return
	}
	s.selectedGroup = min(max(s.selectedGroup, 0), len(itemCounts)-1)
	s.selectedItem = min(max(s.selectedItem, HeaderRow), itemCounts[s.selectedGroup]-1)
	s.EnsureSelectionVisible(s.selectedGroup)
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates viewport size.
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the available height for the board.
// This is terminal height minus the status bar, ensuring a minimum of 5.
func (s *UIState) ContentHeight() int {
	const statusBarHeight = 2 // status bar + gap line
	return max(s.height-statusBarHeight, 5)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// ViewportOffset returns the index of the leftmost visible group.
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// SetViewportOffset updates the viewport offset.
func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

// ViewportSize returns the number of groups that fit on screen.
func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

// calculateViewportSize calculates how many groups can fit in the terminal width.
//
// Group layout:
//   - Content width: 34 characters
//   - Padding: 2 characters (1 on each side)
//   - Border: 2 characters (1 on each side)
//   - Spacing: 2 characters (between groups)
//   - Total per group: 40 characters
func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const groupWidth = 40
	const reservedWidth = 4 // margins and scroll indicators

	s.viewportSize = max(1, (s.width-reservedWidth)/groupWidth)
}

// EnsureSelectionVisible adjusts the viewport so the given group is on screen.
func (s *UIState) EnsureSelectionVisible(group int) {
	if group < s.viewportOffset {
		s.viewportOffset = group
	}
	if group >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = group - s.viewportSize + 1
	}
}
