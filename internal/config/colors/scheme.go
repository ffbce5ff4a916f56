package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // Green - creation dialogs
	Drag   string `yaml:"drag"`   // Entity being dragged and its drop target

	// UI element colors
	GroupBorder     string `yaml:"group_border"`
	GroupBackground string `yaml:"group_background"`
	ItemBorder      string `yaml:"item_border"`
	ItemBackground  string `yaml:"item_background"`
	SelectedBorder  string `yaml:"selected_border"`
	SelectedBg      string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	default:
		return Default()
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	c.fill(preset, false)
}

// MergeFrom overrides colors with every non-empty value in other.
// A preset in other replaces the base before the custom values are applied.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}
	c.fill(&other, true)
}

// fill copies values from src into c. With override, every non-empty src value
// wins; otherwise only blanks in c are filled.
func (c *ColorScheme) fill(src *ColorScheme, override bool) {
	pairs := []struct {
		dst *string
		src string
	}{
		{&c.Accent, src.Accent},
		{&c.Create, src.Create},
		{&c.Drag, src.Drag},
		{&c.GroupBorder, src.GroupBorder},
		{&c.GroupBackground, src.GroupBackground},
		{&c.ItemBorder, src.ItemBorder},
		{&c.ItemBackground, src.ItemBackground},
		{&c.SelectedBorder, src.SelectedBorder},
		{&c.SelectedBg, src.SelectedBg},
		{&c.Title, src.Title},
		{&c.Subtle, src.Subtle},
		{&c.Normal, src.Normal},
		{&c.InfoFg, src.InfoFg},
		{&c.InfoBg, src.InfoBg},
		{&c.WarningFg, src.WarningFg},
		{&c.WarningBg, src.WarningBg},
		{&c.ErrorFg, src.ErrorFg},
		{&c.ErrorBg, src.ErrorBg},
		{&c.StatusBarBg, src.StatusBarBg},
		{&c.StatusBarText, src.StatusBarText},
	}
	for _, p := range pairs {
		if p.src == "" {
			continue
		}
		if override || *p.dst == "" {
			*p.dst = p.src
		}
	}
}
