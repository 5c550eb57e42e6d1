package components

import (
	"strings"
	"unicode/utf8"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// NoteEntry is the multi-line text area. Shortcuts registered with
// AddShortcut fire even while the entry has keyboard focus.
type NoteEntry struct {
	widget.Entry

	shortcuts map[string]func()
}

func NewNoteEntry() *NoteEntry {
	e := &NoteEntry{shortcuts: make(map[string]func())}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

func (e *NoteEntry) AddShortcut(s fyne.Shortcut, fn func()) {
	e.shortcuts[s.ShortcutName()] = fn
}

func (e *NoteEntry) TypedShortcut(s fyne.Shortcut) {
	if fn, ok := e.shortcuts[s.ShortcutName()]; ok {
		fn()
		return
	}
	e.Entry.TypedShortcut(s)
}

// Counts returns the number of lines and characters in text.
func Counts(text string) (lines, chars int) {
	return strings.Count(text, "\n") + 1, utf8.RuneCountInString(text)
}
