package actions

// DocumentCommands is the document side of the editor.
type DocumentCommands interface {
	New()
	Open()
	Save(done func(ok bool))
	SaveAs(done func(ok bool))
	Quit()
}

// DisplayCommands is the display-mode side of the editor.
type DisplayCommands interface {
	Toggle() error
	Dark() bool
}

// Build returns the File and View actions of the editor.
func Build(doc DocumentCommands, display DisplayCommands) (*Table, error) {
	t := NewTable()
	entries := []Action{
		{Name: FileNew, Label: "New", Menu: MenuFile, Shortcut: Shortcut{Key: "N", Modifiers: ModShortcut}, Handler: doc.New},
		{Name: FileOpen, Label: "Open...", Menu: MenuFile, Shortcut: Shortcut{Key: "O", Modifiers: ModShortcut}, Handler: doc.Open},
		{Name: FileSave, Label: "Save", Menu: MenuFile, Shortcut: Shortcut{Key: "S", Modifiers: ModShortcut}, Handler: func() { doc.Save(nil) }},
		{Name: FileSaveAs, Label: "Save As...", Menu: MenuFile, Shortcut: Shortcut{Key: "S", Modifiers: ModShortcut | ModShift}, Handler: func() { doc.SaveAs(nil) }},
		{Name: FileQuit, Label: "Quit", Menu: MenuFile, Shortcut: Shortcut{Key: "Q", Modifiers: ModShortcut}, Handler: doc.Quit},
		{Name: ViewDark, Label: "Dark Mode", Menu: MenuView, Shortcut: Shortcut{Key: "D", Modifiers: ModShortcut}, Handler: func() { _ = display.Toggle() }, Checked: display.Dark},
	}
	for _, a := range entries {
		if err := t.Register(a); err != nil {
			return nil, err
		}
	}
	return t, nil
}
