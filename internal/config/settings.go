package config

import (
	"strings"
	"unicode"
)

const (
	SectionGeneral = "General"
	SectionQuit    = "Quit"
)

// Keys of the General section.
const (
	KeyHideInaccessible = "hide_inaccessible"
	KeyShowHidden       = "show_hidden"
	KeyConfirmQuit      = "confirm_quit"
	KeyOverrideWorkArea = "override_workarea"
	KeyApplicationsPath = "applications_path"
	KeySettingsPath     = "settings_path"
	KeyExplorerPath     = "explorer_path"
)

// QuitCommand is one entry of the Quit section.
type QuitCommand struct {
	Name    string
	Label   string
	Command string
}

// Settings is what wiCore reads from its config file at startup.
type Settings struct {
	HideInaccessible bool
	ShowHidden       bool
	ConfirmQuit      bool
	OverrideWorkArea bool

	ApplicationsPath string
	SettingsPath     string
	ExplorerPath     string

	QuitCommands []QuitCommand
}

// DefaultSettings are used for every key that is absent or malformed.
func DefaultSettings() Settings {
	return Settings{
		OverrideWorkArea: true,
	}
}

// ReadSettings extracts wiCore settings from d.
func ReadSettings(d *Document) Settings {
	s := DefaultSettings()
	s.HideInaccessible = d.boolValue(SectionGeneral, KeyHideInaccessible, s.HideInaccessible)
	s.ShowHidden = d.boolValue(SectionGeneral, KeyShowHidden, s.ShowHidden)
	s.ConfirmQuit = d.boolValue(SectionGeneral, KeyConfirmQuit, s.ConfirmQuit)
	s.OverrideWorkArea = d.boolValue(SectionGeneral, KeyOverrideWorkArea, s.OverrideWorkArea)

	s.ApplicationsPath = d.pathValue(SectionGeneral, KeyApplicationsPath)
	s.SettingsPath = d.pathValue(SectionGeneral, KeySettingsPath)
	s.ExplorerPath = d.pathValue(SectionGeneral, KeyExplorerPath)

	for _, e := range d.Entries(SectionQuit) {
		s.QuitCommands = append(s.QuitCommands, QuitCommand{
			Name:    e.Key,
			Label:   Capitalize(e.Key),
			Command: e.Value,
		})
	}
	return s
}

func (d *Document) boolValue(section, key string, def bool) bool {
	sec := d.section(section)
	if sec == nil {
		return def
	}
	k, err := sec.GetKey(key)
	if err != nil {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(k.String())) {
	case "1", "yes", "true", "on":
		return true
	case "0", "no", "false", "off":
		return false
	}
	return def
}

func (d *Document) pathValue(section, key string) string {
	v, _ := d.Get(section, key)
	return CleanPath(v)
}

// CleanPath trims whitespace and one pair of surrounding double quotes.
func CleanPath(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"' {
		v = v[1 : len(v)-1]
	}
	return strings.TrimSpace(v)
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(strings.ToLower(s))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
