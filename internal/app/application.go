package app

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"

	"notes-app/internal/actions"
	"notes-app/internal/controllers"
	"notes-app/internal/logger"
	"notes-app/internal/settings"
	"notes-app/internal/shutdown"
	"notes-app/internal/views"
)

const component = "Application"

// Application owns every component of the editor. Nothing is global: the
// entry point builds one and runs it.
type Application struct {
	fyneApp   fyne.App
	window    fyne.Window
	view      *views.MainView
	documents *controllers.DocumentController
	display   *controllers.DisplayController
	actions   *actions.Table
	store     *settings.Store
	shutdown  *shutdown.Manager
	logger    logger.Logger
}

func New(fyneApp fyne.App, cfg Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	log.Info(component, "starting application", map[string]interface{}{
		"version":       AppVersion,
		"settings_path": cfg.SettingsPath,
		"log_level":     cfg.LogLevel.String(),
	})

	window := fyneApp.NewWindow(AppName)
	window.SetMaster()
	window.CenterOnScreen()

	view := views.NewMainView(fyneApp, window, log)

	store := settings.NewStore(cfg.SettingsPath, log)
	initial := store.Load()

	documents := controllers.NewDocumentController(view, log)
	display := controllers.NewDisplayController(initial.Mode(), store, view, log)

	table, err := actions.Build(documents, display)
	if err != nil {
		return nil, fmt.Errorf("failed to build action table: %w", err)
	}

	view.SetEditHandler(documents.Edit)
	view.SetCloseHandler(documents.Quit)
	view.BindActions(table)

	a := &Application{
		fyneApp:   fyneApp,
		window:    window,
		view:      view,
		documents: documents,
		display:   display,
		actions:   table,
		store:     store,
		shutdown:  shutdown.NewManager(log),
		logger:    log,
	}

	a.shutdown.Register("documents", shutdown.Func(func() {
		if documents.Modified() {
			doc := documents.Document()
			log.Warning(component, "exiting with unsaved changes", map[string]interface{}{
				"document": doc.DisplayName(),
			})
		}
	}))

	log.Info(component, "initialization complete", map[string]interface{}{
		"mode":    display.Mode().String(),
		"actions": len(table.Actions()),
	})
	return a, nil
}

// Start applies the saved display mode, shows the empty document and
// installs the signal handler. It does not enter the event loop.
func (a *Application) Start() {
	a.display.Apply()
	a.documents.Refresh()

	a.shutdown.Listen(func(sig os.Signal) {
		fyne.Do(a.documents.Quit)
	})

	a.view.Show()
	a.logger.Info(component, "GUI displayed", nil)
}

// Run starts the application and blocks until the event loop ends.
func (a *Application) Run() error {
	a.Start()
	a.fyneApp.Run()
	a.Shutdown()
	return nil
}

func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

// Dispatch runs a named action as if it had been chosen from the menu.
func (a *Application) Dispatch(name actions.Name) error {
	return a.actions.Dispatch(name)
}

func (a *Application) Documents() *controllers.DocumentController { return a.documents }
func (a *Application) Display() *controllers.DisplayController    { return a.display }
func (a *Application) View() *views.MainView                      { return a.view }
