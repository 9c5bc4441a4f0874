package core

import (
	"fyne.io/fyne/v2"

	"github.com/taodev/wishell/internal/menu"
)

func fyneMenu(nodes []menu.Node, dispatch func(menu.Action)) *fyne.Menu {
	return fyne.NewMenu("", fyneItems(nodes, dispatch)...)
}

func fyneItems(nodes []menu.Node, dispatch func(menu.Action)) []*fyne.MenuItem {
	items := make([]*fyne.MenuItem, 0, len(nodes))
	for _, n := range nodes {
		switch n.Kind {
		case menu.KindSeparator:
			items = append(items, fyne.NewMenuItemSeparator())
		case menu.KindPlaceholder:
			item := fyne.NewMenuItem(n.Label, nil)
			item.Disabled = true
			items = append(items, item)
		case menu.KindSubmenu:
			item := fyne.NewMenuItem(n.Label, nil)
			item.ChildMenu = fyne.NewMenu(n.Label, fyneItems(n.Children, dispatch)...)
			items = append(items, item)
		case menu.KindAction:
			a := n.Action
			items = append(items, fyne.NewMenuItem(n.Label, func() { dispatch(a) }))
		}
	}
	return items
}
