package models

// Settings represents the application configuration
type Settings struct {
	Theme  ThemeSettings  `yaml:"theme"`
	Layout LayoutSettings `yaml:"layout"`
}

// ThemeSettings maps each biochemical category to an ANSI-256 color used as
// the cell fill. Empty values fall back to the defaults.
type ThemeSettings struct {
	Hydrophobic  string `yaml:"hydrophobic"`
	Polar        string `yaml:"polar"`
	Acidic       string `yaml:"acidic"`
	Basic        string `yaml:"basic"`
	SpecialSmall string `yaml:"special_small"`
	SpecialThiol string `yaml:"special_thiol"`
}

// LayoutSettings controls viewer presentation
type LayoutSettings struct {
	PairGap     int `yaml:"pair_gap"`     // blank lines between chunk pairs
	SidePadding int `yaml:"side_padding"` // cells of padding around the tracks
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Theme: ThemeSettings{
			Hydrophobic:  "33",  // blue
			Polar:        "35",  // purple-green
			Acidic:       "170", // magenta
			Basic:        "196", // red
			SpecialSmall: "214", // orange
			SpecialThiol: "213", // pink
		},
		Layout: LayoutSettings{
			PairGap:     1,
			SidePadding: 1,
		},
	}
}

// Merge fills empty fields of s from defaults, letting a partial settings
// file override only what it names.
func (s *Settings) Merge(defaults *Settings) {
	if s.Theme.Hydrophobic == "" {
		s.Theme.Hydrophobic = defaults.Theme.Hydrophobic
	}
	if s.Theme.Polar == "" {
		s.Theme.Polar = defaults.Theme.Polar
	}
	if s.Theme.Acidic == "" {
		s.Theme.Acidic = defaults.Theme.Acidic
	}
	if s.Theme.Basic == "" {
		s.Theme.Basic = defaults.Theme.Basic
	}
	if s.Theme.SpecialSmall == "" {
		s.Theme.SpecialSmall = defaults.Theme.SpecialSmall
	}
	if s.Theme.SpecialThiol == "" {
		s.Theme.SpecialThiol = defaults.Theme.SpecialThiol
	}
	if s.Layout.PairGap <= 0 {
		s.Layout.PairGap = defaults.Layout.PairGap
	}
	if s.Layout.SidePadding < 0 {
		s.Layout.SidePadding = defaults.Layout.SidePadding
	}
}
