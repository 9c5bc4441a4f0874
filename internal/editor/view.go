package editor

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

const windowTitle = "wiConf - Configuration Editor"

// View is the wiConf window: sections on the left, one entry per key on
// the right, and a Save button.
type View struct {
	editor *Editor
	win    fyne.Window

	sections []string
	list     *widget.List
	form     *widget.Form
	entries  []*widget.Entry
}

func NewView(a fyne.App, ed *Editor) *View {
	v := &View{
		editor:   ed,
		sections: ed.Sections(),
		form:     widget.NewForm(),
	}

	v.list = widget.NewList(
		func() int {
			return len(v.sections)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			o.(*widget.Label).SetText(v.sections[id])
		},
	)
	v.list.OnSelected = func(id widget.ListItemID) {
		v.selectSection(v.sections[id])
	}

	split := container.NewHSplit(v.list, container.NewVScroll(v.form))
	split.Offset = 0.25
	save := widget.NewButton("Save", v.save)

	v.win = a.NewWindow(windowTitle)
	v.win.Resize(fyne.NewSize(600, 400))
	v.win.SetContent(container.NewBorder(nil, nil, nil, save, split))

	if len(v.sections) > 0 {
		v.list.Select(0)
	}
	return v
}

func (v *View) ShowAndRun() {
	v.win.ShowAndRun()
}

func (v *View) selectSection(name string) {
	fields := v.editor.Select(name)
	v.entries = make([]*widget.Entry, 0, len(fields))
	items := make([]*widget.FormItem, 0, len(fields))
	for _, f := range fields {
		entry := widget.NewEntry()
		entry.SetText(f.Value)
		v.entries = append(v.entries, entry)
		items = append(items, widget.NewFormItem(f.Key, entry))
	}
	v.form.Items = items
	v.form.Refresh()
}

func (v *View) save() {
	values := make([]string, len(v.entries))
	for i, e := range v.entries {
		values[i] = e.Text
	}
	err := v.editor.Save(values)
	if errors.Is(err, ErrNoSelection) {
		return
	}
	if err != nil {
		slog.Error("save config failed", "path", v.editor.Document().Path(), "err", err)
		dialog.ShowError(err, v.win)
		return
	}
	dialog.ShowInformation("Saved", "Configuration saved successfully!", v.win)
}
