package menu

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"github.com/taodev/wishell/internal/config"
)

// Builder turns settings and the applications directory into a menu tree.
// The tree is rebuilt on every call and never cached.
type Builder struct {
	Settings config.Settings

	// Open returns a filesystem rooted at dir. Defaults to os.DirFS.
	Open func(dir string) fs.FS
}

func NewBuilder(s config.Settings) *Builder {
	return &Builder{Settings: s}
}

func (b *Builder) open(dir string) fs.FS {
	if b.Open != nil {
		return b.Open(dir)
	}
	return os.DirFS(dir)
}

// Build returns the full context menu.
func (b *Builder) Build() []Node {
	var nodes []Node
	if b.Settings.ApplicationsPath != "" {
		nodes = append(nodes, b.Applications())
	}
	if b.Settings.SettingsPath != "" {
		nodes = append(nodes, Item(LabelSettings, Action{Type: ActionSettings, Target: b.Settings.SettingsPath}))
	}
	if b.Settings.ExplorerPath != "" {
		nodes = append(nodes, Item(LabelExplorer, Action{Type: ActionExplorer, Target: b.Settings.ExplorerPath}))
	}
	nodes = append(nodes,
		Item(LabelAbout, Action{Type: ActionAbout}),
		Separator(),
		b.Quit(),
	)
	return nodes
}

// Quit returns the Quit submenu. Exit and Restart always come first.
func (b *Builder) Quit() Node {
	children := []Node{
		Item(LabelExit, Action{Type: ActionExit}),
		Item(LabelRestart, Action{Type: ActionRestart}),
		Separator(),
	}
	for _, qc := range b.Settings.QuitCommands {
		children = append(children, Item(qc.Label, Action{
			Type:   ActionQuitCommand,
			Name:   qc.Name,
			Target: qc.Command,
		}))
	}
	return Submenu(LabelQuit, children...)
}

// Applications scans the applications root two levels deep. Files at the
// top become items; each subdirectory becomes a submenu of the files it
// holds, and is left out when it holds none.
func (b *Builder) Applications() Node {
	root := b.Settings.ApplicationsPath
	fsys := b.open(root)

	info, err := fs.Stat(fsys, ".")
	if err != nil || !info.IsDir() {
		return Submenu(LabelApplications, Placeholder(LabelPathNotFound))
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return Submenu(LabelApplications, b.unreadable(root, err)...)
	}

	apps := Submenu(LabelApplications)
	for _, e := range entries {
		if b.skip(e) {
			continue
		}
		switch entryKind(fsys, e.Name(), e) {
		case fs.ModeDir:
			sub := b.subdirectory(fsys, root, e.Name())
			if len(sub.Children) > 0 {
				apps.Children = append(apps.Children, sub)
			}
		case 0:
			apps.Children = append(apps.Children, launchItem(e.Name(), filepath.Join(root, e.Name())))
		}
	}
	return apps
}

func (b *Builder) subdirectory(fsys fs.FS, root, name string) Node {
	sub := Submenu(name)
	entries, err := fs.ReadDir(fsys, name)
	if err != nil {
		sub.Children = b.unreadable(filepath.Join(root, name), err)
		return sub
	}
	for _, e := range entries {
		if b.skip(e) {
			continue
		}
		rel := path.Join(name, e.Name())
		if entryKind(fsys, rel, e) != 0 {
			continue
		}
		sub.Children = append(sub.Children, launchItem(e.Name(), filepath.Join(root, name, e.Name())))
	}
	return sub
}

// unreadable yields the placeholder for a directory that could not be
// listed. Only permission errors show up, and only when inaccessible
// directories are not hidden.
func (b *Builder) unreadable(dir string, err error) []Node {
	slog.Debug("read applications directory failed", "path", dir, "err", err)
	if errors.Is(err, fs.ErrPermission) && !b.Settings.HideInaccessible {
		return []Node{Placeholder(LabelAccessDenied)}
	}
	return nil
}

func (b *Builder) skip(e fs.DirEntry) bool {
	return !b.Settings.ShowHidden && IsHidden(e)
}

func launchItem(label, target string) Node {
	return Item(label, Action{Type: ActionLaunch, Target: target})
}

// entryKind reports fs.ModeDir for directories, 0 for regular files and
// fs.ModeIrregular for anything else. Symlinks are followed.
func entryKind(fsys fs.FS, name string, e fs.DirEntry) fs.FileMode {
	mode := e.Type()
	if mode&fs.ModeSymlink != 0 {
		info, err := fs.Stat(fsys, name)
		if err != nil {
			return fs.ModeIrregular
		}
		mode = info.Mode().Type()
	}
	switch {
	case mode.IsDir():
		return fs.ModeDir
	case mode.IsRegular():
		return 0
	}
	return fs.ModeIrregular
}
