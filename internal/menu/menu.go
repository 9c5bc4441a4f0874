// Package menu decides what the wiCore context menu contains. It produces a
// plain tree of nodes; rendering and running actions happen elsewhere.
package menu

type Kind int

const (
	KindAction Kind = iota
	KindSubmenu
	KindSeparator
	KindPlaceholder
)

type ActionType int

const (
	ActionNone ActionType = iota
	// ActionLaunch opens Target, a file found under the applications root.
	ActionLaunch
	// ActionSettings opens Target after %wishelldir% is resolved.
	ActionSettings
	// ActionExplorer launches Target as configured.
	ActionExplorer
	ActionAbout
	ActionExit
	ActionRestart
	// ActionQuitCommand runs Target through the shell. Name is the
	// config key it came from.
	ActionQuitCommand
)

func (t ActionType) String() string {
	switch t {
	case ActionLaunch:
		return "launch"
	case ActionSettings:
		return "settings"
	case ActionExplorer:
		return "explorer"
	case ActionAbout:
		return "about"
	case ActionExit:
		return "exit"
	case ActionRestart:
		return "restart"
	case ActionQuitCommand:
		return "quit-command"
	}
	return "none"
}

type Action struct {
	Type   ActionType
	Name   string
	Target string
}

// Node is either a clickable item, a submenu, a separator or a disabled
// placeholder.
type Node struct {
	Label    string
	Kind     Kind
	Action   Action
	Children []Node
}

const (
	LabelApplications = "Applications"
	LabelSettings     = "Settings"
	LabelExplorer     = "Explorer"
	LabelAbout        = "About"
	LabelQuit         = "Quit"
	LabelExit         = "Exit from wiCore"
	LabelRestart      = "Restart wiCore"
	LabelPathNotFound = "(Path not found)"
	LabelAccessDenied = "(Access denied)"
)

func Item(label string, a Action) Node {
	return Node{Label: label, Kind: KindAction, Action: a}
}

func Submenu(label string, children ...Node) Node {
	return Node{Label: label, Kind: KindSubmenu, Children: children}
}

func Separator() Node {
	return Node{Kind: KindSeparator}
}

func Placeholder(label string) Node {
	return Node{Label: label, Kind: KindPlaceholder}
}

// Walk calls fn for every node in depth-first order.
func Walk(nodes []Node, fn func(n Node)) {
	for _, n := range nodes {
		fn(n)
		Walk(n.Children, fn)
	}
}
