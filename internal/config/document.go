// Package config reads and writes the INI files shared by wiCore and wiConf.
package config

import (
	"errors"
	"fmt"
	"log/slog"

	"gopkg.in/ini.v1"
)

var (
	ErrNoSection = errors.New("section not found")
	ErrNoKey     = errors.New("key not found")
)

// Values are kept verbatim: no inline comment stripping, no line
// continuation (Windows paths end in backslashes), no quote stripping and
// no %(name)s interpolation. Key names are folded to lower case.
var loadOptions = ini.LoadOptions{
	Loose:                   true,
	IgnoreInlineComment:     true,
	IgnoreContinuation:      true,
	InsensitiveKeys:         true,
	PreserveSurroundedQuote: true,
}

func init() {
	// Keep "key = value" as written instead of aligning every section.
	ini.PrettyFormat = false
}

// Entry is a single key/value pair in file order.
type Entry struct {
	Key   string
	Value string
}

// Document is an ordered INI file held in memory. It is the only copy that
// matters until Save overwrites the file with it.
type Document struct {
	path string
	file *ini.File
}

// Load reads path. A missing or unreadable file yields an empty document.
func Load(path string) *Document {
	f, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		slog.Warn("load config failed, starting empty", "path", path, "err", err)
		f = ini.Empty(loadOptions)
	}
	return &Document{path: path, file: f}
}

// Parse builds a document from raw INI text. Save writes to path.
func Parse(path string, data []byte) (*Document, error) {
	f, err := ini.LoadSources(loadOptions, data)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &Document{path: path, file: f}, nil
}

func (d *Document) Path() string {
	return d.path
}

// Sections lists named sections in file order. The implicit DEFAULT
// section is not listed.
func (d *Document) Sections() []string {
	var names []string
	for _, sec := range d.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

func (d *Document) HasSection(name string) bool {
	if name == "" || name == ini.DefaultSection {
		return false
	}
	_, err := d.file.GetSection(name)
	return err == nil
}

// Entries returns the pairs of section in stored order, or nil when the
// section does not exist.
func (d *Document) Entries(section string) []Entry {
	if !d.HasSection(section) {
		return nil
	}
	sec, _ := d.file.GetSection(section)
	keys := sec.Keys()
	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Key: k.Name(), Value: k.Value()})
	}
	return entries
}

// Get returns the raw value of key in section.
func (d *Document) Get(section, key string) (string, bool) {
	k, err := d.key(section, key)
	if err != nil {
		return "", false
	}
	return k.Value(), true
}

// Set replaces the value of an existing key. Sections and keys are never
// created here.
func (d *Document) Set(section, key, value string) error {
	k, err := d.key(section, key)
	if err != nil {
		return err
	}
	k.SetValue(value)
	return nil
}

func (d *Document) key(section, key string) (*ini.Key, error) {
	if !d.HasSection(section) {
		return nil, fmt.Errorf("%w: %s", ErrNoSection, section)
	}
	sec, _ := d.file.GetSection(section)
	k, err := sec.GetKey(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s.%s", ErrNoKey, section, key)
	}
	return k, nil
}

func (d *Document) section(name string) *ini.Section {
	if !d.HasSection(name) {
		return nil
	}
	sec, _ := d.file.GetSection(name)
	return sec
}

// Save overwrites the document's file with the whole document.
func (d *Document) Save() error {
	return d.SaveTo(d.path)
}

func (d *Document) SaveTo(path string) error {
	if err := d.file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}
