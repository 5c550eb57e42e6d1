// Package actions maps named editor commands to handlers, menus and keyboard
// accelerators without depending on any UI toolkit.
package actions

import (
	"errors"
	"fmt"
	"strings"
)

type Name string

const (
	FileNew    Name = "file.new"
	FileOpen   Name = "file.open"
	FileSave   Name = "file.save"
	FileSaveAs Name = "file.save_as"
	FileQuit   Name = "file.quit"
	ViewDark   Name = "view.dark_mode"
)

const (
	MenuFile = "File"
	MenuView = "View"
)

var (
	ErrUnknownAction   = errors.New("unknown action")
	ErrDuplicateAction = errors.New("duplicate action")
	ErrInvalidAction   = errors.New("invalid action")
)

type Modifier int

const (
	ModShortcut Modifier = 1 << iota // Ctrl, or Cmd on macOS
	ModShift
)

// Shortcut is a key plus modifiers, e.g. {Key: "S", Modifiers: ModShortcut|ModShift}.
type Shortcut struct {
	Key       string
	Modifiers Modifier
}

func (s Shortcut) IsZero() bool {
	return s.Key == ""
}

func (s Shortcut) String() string {
	if s.IsZero() {
		return ""
	}
	var parts []string
	if s.Modifiers&ModShortcut != 0 {
		parts = append(parts, "Ctrl")
	}
	if s.Modifiers&ModShift != 0 {
		parts = append(parts, "Shift")
	}
	return strings.Join(append(parts, s.Key), "+")
}

// Action is one entry of the table.
type Action struct {
	Name     Name
	Label    string
	Menu     string
	Shortcut Shortcut
	Handler  func()
	// Checked is set for toggle items and reports their current state.
	Checked func() bool
}

func (a Action) Checkable() bool {
	return a.Checked != nil
}

// Menu is a group of actions in display order.
type Menu struct {
	Label   string
	Actions []Action
}

type Table struct {
	actions []Action
	index   map[Name]int
}

func NewTable() *Table {
	return &Table{index: make(map[Name]int)}
}

func (t *Table) Register(a Action) error {
	if a.Name == "" || a.Handler == nil {
		return fmt.Errorf("%w: %q needs a name and a handler", ErrInvalidAction, a.Name)
	}
	if _, exists := t.index[a.Name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
	}
	if !a.Shortcut.IsZero() {
		if other, ok := t.ByShortcut(a.Shortcut); ok {
			return fmt.Errorf("%w: %s shortcut %s already bound to %s", ErrDuplicateAction, a.Name, a.Shortcut, other.Name)
		}
	}
	t.index[a.Name] = len(t.actions)
	t.actions = append(t.actions, a)
	return nil
}

// Dispatch runs the handler registered under name.
func (t *Table) Dispatch(name Name) error {
	a, ok := t.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}
	a.Handler()
	return nil
}

func (t *Table) Lookup(name Name) (Action, bool) {
	i, ok := t.index[name]
	if !ok {
		return Action{}, false
	}
	return t.actions[i], true
}

func (t *Table) ByShortcut(s Shortcut) (Action, bool) {
	for _, a := range t.actions {
		if a.Shortcut == s {
			return a, true
		}
	}
	return Action{}, false
}

// Actions returns every action in registration order.
func (t *Table) Actions() []Action {
	out := make([]Action, len(t.actions))
	copy(out, t.actions)
	return out
}

// Menus groups actions by menu, keeping the order in which menus and actions
// were first registered.
func (t *Table) Menus() []Menu {
	var menus []Menu
	pos := make(map[string]int)
	for _, a := range t.actions {
		if a.Menu == "" {
			continue
		}
		i, ok := pos[a.Menu]
		if !ok {
			i = len(menus)
			pos[a.Menu] = i
			menus = append(menus, Menu{Label: a.Menu})
		}
		menus[i].Actions = append(menus[i].Actions, a)
	}
	return menus
}
