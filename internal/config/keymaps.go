package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Dragging
	PickUp     string `yaml:"pick_up"`
	Drop       string `yaml:"drop"`
	CancelDrag string `yaml:"cancel_drag"`

	// Navigation (also moves the pointer while dragging)
	PrevGroup string `yaml:"prev_group"`
	NextGroup string `yaml:"next_group"`
	PrevItem  string `yaml:"prev_item"`
	NextItem  string `yaml:"next_item"`

	// Creation
	AddGroup string `yaml:"add_group"`
	AddItem  string `yaml:"add_item"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Dragging
		PickUp:     "space",
		Drop:       "enter",
		CancelDrag: "esc",

		// Navigation
		PrevGroup: "h",
		NextGroup: "l",
		PrevItem:  "k",
		NextItem:  "j",

		// Creation
		AddGroup: "C",
		AddItem:  "a",

		// Other
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	for _, p := range []struct {
		dst *string
		def string
	}{
		{&k.PickUp, defaults.PickUp},
		{&k.Drop, defaults.Drop},
		{&k.CancelDrag, defaults.CancelDrag},
		{&k.PrevGroup, defaults.PrevGroup},
		{&k.NextGroup, defaults.NextGroup},
		{&k.PrevItem, defaults.PrevItem},
		{&k.NextItem, defaults.NextItem},
		{&k.AddGroup, defaults.AddGroup},
		{&k.AddItem, defaults.AddItem},
		{&k.ShowHelp, defaults.ShowHelp},
		{&k.Quit, defaults.Quit},
	} {
		if *p.dst == "" {
			*p.dst = p.def
		}
	}
}
