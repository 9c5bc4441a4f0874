// Package editor is wiConf, a generic INI key/value editor.
package editor

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/taodev/wishell/internal/config"
)

var ErrNoSelection = errors.New("no section selected")

// Field is one editable key of the selected section.
type Field struct {
	Key   string
	Value string
}

// Editor holds the document and the section currently on screen. It never
// adds or removes sections or keys.
type Editor struct {
	doc     *config.Document
	current string
	fields  []Field
}

func New(doc *config.Document) *Editor {
	return &Editor{doc: doc}
}

func (e *Editor) Document() *config.Document {
	return e.doc
}

func (e *Editor) Sections() []string {
	return e.doc.Sections()
}

// Select replaces the fields with the keys of section, in stored order. An
// unknown section yields no fields.
func (e *Editor) Select(section string) []Field {
	e.current = section
	e.fields = e.fields[:0]
	for _, entry := range e.doc.Entries(section) {
		e.fields = append(e.fields, Field{Key: entry.Key, Value: entry.Value})
	}
	return e.Fields()
}

func (e *Editor) Current() string {
	return e.current
}

func (e *Editor) Fields() []Field {
	return append([]Field(nil), e.fields...)
}

// Save writes values back under the selected section's keys, then
// overwrites the file with the whole document. values[i] belongs to the
// i-th field returned by Select.
func (e *Editor) Save(values []string) error {
	if !e.doc.HasSection(e.current) {
		return ErrNoSelection
	}
	if len(values) != len(e.fields) {
		return fmt.Errorf("save %s: got %d values for %d fields", e.current, len(values), len(e.fields))
	}
	for i, f := range e.fields {
		if err := e.doc.Set(e.current, f.Key, values[i]); err != nil {
			return err
		}
		e.fields[i].Value = values[i]
	}
	if err := e.doc.Save(); err != nil {
		return err
	}
	slog.Info("config saved", "path", e.doc.Path(), "section", e.current)
	return nil
}
