package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleINI = `; wiShell
[A]
x = 1
y = 2

[B]
path = C:\Apps ; not a comment
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("sections in file order", func(t *testing.T) {
		doc := Load(writeConfig(t, sampleINI))
		assert.Equal(t, []string{"A", "B"}, doc.Sections())
	})

	t.Run("missing file is empty", func(t *testing.T) {
		doc := Load(filepath.Join(t.TempDir(), "nope.ini"))
		assert.Empty(t, doc.Sections())
		assert.Nil(t, doc.Entries("A"))
	})

	t.Run("entries keep order and raw values", func(t *testing.T) {
		doc := Load(writeConfig(t, sampleINI))
		assert.Equal(t, []Entry{{"x", "1"}, {"y", "2"}}, doc.Entries("A"))
		v, ok := doc.Get("B", "path")
		require.True(t, ok)
		assert.Equal(t, `C:\Apps ; not a comment`, v)
	})

	t.Run("unknown section has no entries", func(t *testing.T) {
		doc := Load(writeConfig(t, sampleINI))
		assert.Nil(t, doc.Entries("C"))
		assert.False(t, doc.HasSection("C"))
		assert.False(t, doc.HasSection("DEFAULT"))
	})

	t.Run("no interpolation", func(t *testing.T) {
		doc := Load(writeConfig(t, "[A]\nbase = x\nref = %(base)s/y\n"))
		v, _ := doc.Get("A", "ref")
		assert.Equal(t, "%(base)s/y", v)
	})
}

func TestSet(t *testing.T) {
	doc := Load(writeConfig(t, sampleINI))

	require.NoError(t, doc.Set("A", "x", "changed"))
	v, _ := doc.Get("A", "x")
	assert.Equal(t, "changed", v)

	assert.ErrorIs(t, doc.Set("A", "z", "new"), ErrNoKey)
	assert.ErrorIs(t, doc.Set("C", "x", "new"), ErrNoSection)
	assert.Equal(t, []string{"A", "B"}, doc.Sections())
	assert.Len(t, doc.Entries("A"), 2)
}

func TestSaveRoundTrip(t *testing.T) {
	path := writeConfig(t, sampleINI)
	doc := Load(path)
	require.NoError(t, doc.Set("A", "y", ""))
	require.NoError(t, doc.Save())

	again := Load(path)
	assert.Equal(t, []string{"A", "B"}, again.Sections())
	assert.Equal(t, []Entry{{"x", "1"}, {"y", ""}}, again.Entries("A"))
	assert.Equal(t, doc.Entries("B"), again.Entries("B"))

	// A second save without edits produces the same bytes.
	first, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, again.Save())
	second, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestSaveKeepsUntouchedLines(t *testing.T) {
	const quoted = `[General]
show_hidden = false

[Quit]
restart = "C:\Program Files\Tools\reboot.exe"
greet = 'hello'
log off = shutdown /l
`
	path := writeConfig(t, quoted)
	doc := Load(path)

	v, _ := doc.Get("Quit", "restart")
	assert.Equal(t, `"C:\Program Files\Tools\reboot.exe"`, v)
	v, _ = doc.Get("Quit", "greet")
	assert.Equal(t, `'hello'`, v)

	require.NoError(t, doc.Set("General", "show_hidden", "true"))
	require.NoError(t, doc.Save())

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	text := strings.ReplaceAll(string(saved), "\r\n", "\n")
	assert.Contains(t, text, "show_hidden = true\n")
	for _, line := range strings.Split(quoted, "\n") {
		if line == "" || strings.HasPrefix(line, "show_hidden") {
			continue
		}
		assert.Contains(t, text, line+"\n")
	}
}

func TestSaveToUnwritable(t *testing.T) {
	doc := Load(writeConfig(t, sampleINI))
	err := doc.SaveTo(filepath.Join(t.TempDir(), "missing", "dir", "config.ini"))
	assert.Error(t, err)
}
