package settings

// Settings is the persisted display preference.
type Settings struct {
	DarkMode bool `json:"dark_mode"`
}

// Default is light mode.
func Default() Settings {
	return Settings{DarkMode: false}
}

// Mode is the display mode state: Light or Dark.
type Mode int

const (
	Light Mode = iota
	Dark
)

func ModeFromDark(dark bool) Mode {
	if dark {
		return Dark
	}
	return Light
}

// Toggle is the only transition between modes.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) Dark() bool {
	return m == Dark
}

func (m Mode) String() string {
	if m == Dark {
		return "dark"
	}
	return "light"
}

// Mode returns the display mode stored in s.
func (s Settings) Mode() Mode {
	return ModeFromDark(s.DarkMode)
}
