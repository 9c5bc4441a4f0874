package menu

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/taodev/wishell/internal/config"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

const appsRoot = "/wishell/apps"

// deniedFS refuses to list the directories in denied.
type deniedFS struct {
	fstest.MapFS
	denied map[string]bool
}

func (d deniedFS) ReadDir(name string) ([]fs.DirEntry, error) {
	if d.denied[name] {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrPermission}
	}
	return d.MapFS.ReadDir(name)
}

func builderFor(s config.Settings, fsys fs.FS) *Builder {
	b := NewBuilder(s)
	if fsys == nil {
		return b
	}
	b.Open = func(dir string) fs.FS {
		if dir != appsRoot {
			return fstest.MapFS{}
		}
		return fsys
	}
	return b
}

func app(parts ...string) Node {
	return launchItem(parts[len(parts)-1], filepath.Join(append([]string{appsRoot}, parts...)...))
}

func file() *fstest.MapFile { return &fstest.MapFile{Data: []byte("x")} }

func dir() *fstest.MapFile { return &fstest.MapFile{Mode: fs.ModeDir | 0755} }

func TestApplications(t *testing.T) {
	tests := []struct {
		name     string
		settings config.Settings
		fsys     fs.FS
		want     Node
	}{
		{
			name:     "file, non-empty and empty subdirectory",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys: fstest.MapFS{
				"notepad.lnk":          file(),
				"Games/solitaire.lnk":  file(),
				"Empty":                dir(),
				"Games/Nested/x.lnk":   file(),
				"Games/Nested/y/z.lnk": file(),
			},
			want: Submenu(LabelApplications,
				Submenu("Games", app("Games", "solitaire.lnk")),
				app("notepad.lnk"),
			),
		},
		{
			name:     "hidden entries skipped at both levels",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys: fstest.MapFS{
				".secret":           file(),
				"desktop.ini":       file(),
				"Tools/.hidden":     file(),
				"Tools/Desktop.ini": file(),
				"Tools/calc.lnk":    file(),
				".HiddenDir/a.lnk":  file(),
			},
			want: Submenu(LabelApplications,
				Submenu("Tools", app("Tools", "calc.lnk")),
			),
		},
		{
			name:     "hidden entries shown when enabled",
			settings: config.Settings{ApplicationsPath: appsRoot, ShowHidden: true},
			fsys: fstest.MapFS{
				".secret":          file(),
				"Tools/.hidden":    file(),
				".HiddenDir/a.lnk": file(),
			},
			want: Submenu(LabelApplications,
				Submenu(".HiddenDir", app(".HiddenDir", "a.lnk")),
				app(".secret"),
				Submenu("Tools", app("Tools", ".hidden")),
			),
		},
		{
			name:     "subdirectory with only hidden files is dropped",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys: fstest.MapFS{
				"Tools/desktop.ini": file(),
			},
			want: Submenu(LabelApplications),
		},
		{
			name:     "missing root",
			settings: config.Settings{ApplicationsPath: filepath.Join(os.TempDir(), "wishell-missing-apps")},
			want:     Submenu(LabelApplications, Placeholder(LabelPathNotFound)),
		},
		{
			name:     "root is a file",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys:     fstest.MapFS{".": file()},
			want:     Submenu(LabelApplications, Placeholder(LabelPathNotFound)),
		},
		{
			name:     "unreadable root shows placeholder",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys:     deniedFS{MapFS: fstest.MapFS{"a.lnk": file()}, denied: map[string]bool{".": true}},
			want:     Submenu(LabelApplications, Placeholder(LabelAccessDenied)),
		},
		{
			name:     "unreadable root hidden",
			settings: config.Settings{ApplicationsPath: appsRoot, HideInaccessible: true},
			fsys:     deniedFS{MapFS: fstest.MapFS{"a.lnk": file()}, denied: map[string]bool{".": true}},
			want:     Submenu(LabelApplications),
		},
		{
			name:     "unreadable subdirectory shows placeholder",
			settings: config.Settings{ApplicationsPath: appsRoot},
			fsys: deniedFS{
				MapFS:  fstest.MapFS{"Locked/a.lnk": file(), "b.lnk": file()},
				denied: map[string]bool{"Locked": true},
			},
			want: Submenu(LabelApplications,
				Submenu("Locked", Placeholder(LabelAccessDenied)),
				app("b.lnk"),
			),
		},
		{
			name:     "unreadable subdirectory hidden",
			settings: config.Settings{ApplicationsPath: appsRoot, HideInaccessible: true},
			fsys: deniedFS{
				MapFS:  fstest.MapFS{"Locked/a.lnk": file(), "b.lnk": file()},
				denied: map[string]bool{"Locked": true},
			},
			want: Submenu(LabelApplications, app("b.lnk")),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := builderFor(tt.settings, tt.fsys).Applications()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Applications() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuild(t *testing.T) {
	t.Run("minimal", func(t *testing.T) {
		got := NewBuilder(config.DefaultSettings()).Build()
		want := []Node{
			Item(LabelAbout, Action{Type: ActionAbout}),
			Separator(),
			Submenu(LabelQuit,
				Item(LabelExit, Action{Type: ActionExit}),
				Item(LabelRestart, Action{Type: ActionRestart}),
				Separator(),
			),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Build() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("everything configured", func(t *testing.T) {
		s := config.Settings{
			ApplicationsPath: appsRoot,
			SettingsPath:     `%wishelldir%\wiConf\wiConf.exe`,
			ExplorerPath:     "explorer.exe /e,C:\\",
			QuitCommands: []config.QuitCommand{
				{Name: "shutdown", Label: "Shutdown", Command: "shutdown /s /t 0"},
				{Name: "reboot", Label: "Reboot", Command: "shutdown /r /t 0"},
			},
		}
		got := builderFor(s, fstest.MapFS{"a.lnk": file()}).Build()
		want := []Node{
			Submenu(LabelApplications, app("a.lnk")),
			Item(LabelSettings, Action{Type: ActionSettings, Target: s.SettingsPath}),
			Item(LabelExplorer, Action{Type: ActionExplorer, Target: s.ExplorerPath}),
			Item(LabelAbout, Action{Type: ActionAbout}),
			Separator(),
			Submenu(LabelQuit,
				Item(LabelExit, Action{Type: ActionExit}),
				Item(LabelRestart, Action{Type: ActionRestart}),
				Separator(),
				Item("Shutdown", Action{Type: ActionQuitCommand, Name: "shutdown", Target: "shutdown /s /t 0"}),
				Item("Reboot", Action{Type: ActionQuitCommand, Name: "reboot", Target: "shutdown /r /t 0"}),
			),
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Build() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildFromDisk(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, writeFile(filepath.Join(root, "one.lnk")))
	require.NoError(t, writeFile(filepath.Join(root, "Sub", "two.lnk")))
	require.NoError(t, mkdir(filepath.Join(root, "Empty")))

	got := NewBuilder(config.Settings{ApplicationsPath: root}).Applications()

	var leaves, subs int
	Walk(got.Children, func(n Node) {
		switch n.Kind {
		case KindAction:
			leaves++
			assert.Equal(t, ActionLaunch, n.Action.Type)
			assert.FileExists(t, n.Action.Target)
		case KindSubmenu:
			subs++
			assert.Equal(t, "Sub", n.Label)
			assert.Len(t, n.Children, 1)
		}
	})
	assert.Equal(t, 2, leaves)
	assert.Equal(t, 1, subs)
}

func writeFile(path string) error {
	if err := mkdir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("x"), 0644)
}

func mkdir(path string) error {
	return os.MkdirAll(path, 0755)
}
