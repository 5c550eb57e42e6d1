package views

import (
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/storage"

	"notes-app/internal/actions"
	"notes-app/internal/controllers"
	"notes-app/internal/logger"
	"notes-app/internal/settings"
	"notes-app/internal/views/components"
)

const (
	viewComponent = "MainView"
	WindowWidth   = 800
	WindowHeight  = 600
	dialogWidth   = 720
	dialogHeight  = 520
)

var (
	_ controllers.DocumentUI   = (*MainView)(nil)
	_ controllers.ThemeApplier = (*MainView)(nil)
)

// MainView is the Fyne window hosting the editor.
type MainView struct {
	app       fyne.App
	window    fyne.Window
	editor    *components.NoteEntry
	statusBar *components.StatusBar
	logger    logger.Logger

	mainMenu  *fyne.MainMenu
	menuItems map[actions.Name]*fyne.MenuItem
	table     *actions.Table
	lastDir   string

	editHandler  func(string)
	closeHandler func()
}

func NewMainView(app fyne.App, window fyne.Window, log logger.Logger) *MainView {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	mv := &MainView{
		app:       app,
		window:    window,
		logger:    log,
		menuItems: make(map[actions.Name]*fyne.MenuItem),
	}

	mv.initializeComponents()
	mv.buildLayout()
	mv.setupEventHandlers()

	return mv
}

func (mv *MainView) initializeComponents() {
	mv.editor = components.NewNoteEntry()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	content := container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, mv.editor)
	mv.window.SetContent(content)
	mv.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

func (mv *MainView) setupEventHandlers() {
	mv.editor.OnChanged = func(text string) {
		mv.statusBar.SetDocumentInfo(components.Counts(text))
		if mv.editHandler != nil {
			mv.editHandler(text)
		}
	}

	mv.window.SetCloseIntercept(func() {
		mv.logger.Debug(viewComponent, "window close requested", nil)
		if mv.closeHandler != nil {
			mv.closeHandler()
			return
		}
		mv.Quit()
	})
}

// SetEditHandler receives the editor text after every change.
func (mv *MainView) SetEditHandler(handler func(string)) {
	mv.editHandler = handler
}

// SetCloseHandler runs instead of closing when the window's close button is used.
func (mv *MainView) SetCloseHandler(handler func()) {
	mv.closeHandler = handler
}

// BindActions builds the main menu and keyboard accelerators from table.
func (mv *MainView) BindActions(table *actions.Table) {
	mv.table = table
	mv.menuItems = make(map[actions.Name]*fyne.MenuItem)

	var menus []*fyne.Menu
	for _, m := range table.Menus() {
		var items []*fyne.MenuItem
		for _, a := range m.Actions {
			if a.Name == actions.FileQuit {
				items = append(items, fyne.NewMenuItemSeparator())
			}
			items = append(items, mv.menuItem(a))
		}
		menus = append(menus, fyne.NewMenu(m.Label, items...))
	}
	mv.mainMenu = fyne.NewMainMenu(menus...)
	mv.window.SetMainMenu(mv.mainMenu)

	for _, a := range table.Actions() {
		if a.Shortcut.IsZero() {
			continue
		}
		action := a
		shortcut := toFyneShortcut(action.Shortcut)
		run := func() { mv.dispatch(action.Name) }
		mv.editor.AddShortcut(shortcut, run)
		mv.window.Canvas().AddShortcut(shortcut, func(fyne.Shortcut) { run() })
	}

	mv.logger.Debug(viewComponent, "actions bound", map[string]interface{}{
		"actions": len(table.Actions()),
		"menus":   len(menus),
	})
}

func (mv *MainView) menuItem(a actions.Action) *fyne.MenuItem {
	name := a.Name
	item := fyne.NewMenuItem(a.Label, func() { mv.dispatch(name) })
	if !a.Shortcut.IsZero() {
		item.Shortcut = toFyneShortcut(a.Shortcut)
	}
	if a.Checkable() {
		item.Checked = a.Checked()
	}
	item.IsQuit = a.Name == actions.FileQuit
	mv.menuItems[a.Name] = item
	return item
}

func (mv *MainView) dispatch(name actions.Name) {
	mv.logger.Debug(viewComponent, "action", map[string]interface{}{
		"action": string(name),
	})
	if err := mv.table.Dispatch(name); err != nil {
		mv.logger.Error(viewComponent, err, nil)
	}
}

// refreshChecks syncs checkable menu items with their actions.
func (mv *MainView) refreshChecks() {
	if mv.table == nil {
		return
	}
	for _, a := range mv.table.Actions() {
		if item, ok := mv.menuItems[a.Name]; ok && a.Checkable() {
			item.Checked = a.Checked()
		}
	}
	if mv.mainMenu != nil {
		mv.mainMenu.Refresh()
	}
}

func toFyneShortcut(s actions.Shortcut) *desktop.CustomShortcut {
	var mod fyne.KeyModifier
	if s.Modifiers&actions.ModShortcut != 0 {
		mod |= fyne.KeyModifierShortcutDefault
	}
	if s.Modifiers&actions.ModShift != 0 {
		mod |= fyne.KeyModifierShift
	}
	return &desktop.CustomShortcut{KeyName: fyne.KeyName(strings.ToUpper(s.Key)), Modifier: mod}
}

func (mv *MainView) SetContent(text string) {
	mv.editor.SetText(text)
	mv.statusBar.SetDocumentInfo(components.Counts(text))
}

func (mv *MainView) SetTitle(title string) {
	mv.window.SetTitle(title)
}

func (mv *MainView) ChooseOpenPath(cb func(path string)) {
	fd := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mv.ShowError("Open Error", err)
			cb("")
			return
		}
		if reader == nil {
			cb("")
			return
		}
		path := reader.URI().Path()
		reader.Close()
		mv.rememberDir(path)
		cb(path)
	}, mv.window)
	mv.prepareFileDialog(fd)
	fd.Show()
}

func (mv *MainView) ChooseSavePath(suggested string, cb func(path string)) {
	fd := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mv.ShowError("Save Error", err)
			cb("")
			return
		}
		if writer == nil {
			cb("")
			return
		}
		path := writer.URI().Path()
		writer.Close()
		mv.rememberDir(path)
		cb(path)
	}, mv.window)
	fd.SetFileName(suggested)
	mv.prepareFileDialog(fd)
	fd.Show()
}

// prepareFileDialog sizes fd and starts it in the last used directory. No
// extension filter is set so every file is listed.
func (mv *MainView) prepareFileDialog(fd *dialog.FileDialog) {
	fd.Resize(fyne.NewSize(dialogWidth, dialogHeight))
	if mv.lastDir == "" {
		return
	}
	lister, err := storage.ListerForURI(storage.NewFileURI(mv.lastDir))
	if err != nil {
		mv.logger.Debug(viewComponent, "last directory unavailable", map[string]interface{}{
			"dir":   mv.lastDir,
			"error": err.Error(),
		})
		return
	}
	fd.SetLocation(lister)
}

func (mv *MainView) rememberDir(path string) {
	mv.lastDir = filepath.Dir(path)
}

func (mv *MainView) AskSaveChanges(name string, cb func(controllers.SaveChoice)) {
	newSavePrompt(name, mv.window, cb).Show()
}

func (mv *MainView) ShowError(title string, err error) {
	mv.logger.Error(viewComponent, err, map[string]interface{}{
		"title": title,
	})
	mv.statusBar.SetStatus(title)
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) ShowWarning(title, message string) {
	mv.statusBar.SetStatus(title + ": " + firstLine(message))
	mv.app.SendNotification(fyne.NewNotification(title, message))
}

func (mv *MainView) ApplyMode(mode settings.Mode) {
	mv.app.Settings().SetTheme(NewTheme(mode))
	if mode.Dark() {
		mv.statusBar.SetMode("Dark")
	} else {
		mv.statusBar.SetMode("Light")
	}
	mv.refreshChecks()
}

func (mv *MainView) Quit() {
	mv.app.Quit()
}

func (mv *MainView) Show() {
	mv.window.Show()
	mv.window.Canvas().Focus(mv.editor)
}

func (mv *MainView) Window() fyne.Window {
	return mv.window
}

func (mv *MainView) Editor() *components.NoteEntry {
	return mv.editor
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

func (mv *MainView) MenuItem(name actions.Name) (*fyne.MenuItem, bool) {
	item, ok := mv.menuItems[name]
	return item, ok
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
