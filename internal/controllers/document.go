package controllers

import (
	"notes-app/internal/logger"
	"notes-app/internal/models"
)

const documentComponent = "DocumentController"

// SaveChoice is the answer to the unsaved-changes prompt.
type SaveChoice int

const (
	ChoiceCancel SaveChoice = iota
	ChoiceSave
	ChoiceDiscard
)

func (c SaveChoice) String() string {
	switch c {
	case ChoiceSave:
		return "save"
	case ChoiceDiscard:
		return "discard"
	default:
		return "cancel"
	}
}

// DocumentUI is what the document controller needs from the host toolkit.
// Chooser and prompt callbacks may run immediately or later; an empty path
// means the user cancelled the chooser.
type DocumentUI interface {
	SetContent(text string)
	SetTitle(title string)
	ChooseOpenPath(cb func(path string))
	ChooseSavePath(suggested string, cb func(path string))
	AskSaveChanges(name string, cb func(SaveChoice))
	ShowError(title string, err error)
	Quit()
}

// DocumentController owns the single document and drives its lifecycle.
type DocumentController struct {
	doc    *models.Document
	ui     DocumentUI
	logger logger.Logger
}

func NewDocumentController(ui DocumentUI, log logger.Logger) *DocumentController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &DocumentController{
		doc:    models.NewDocument(),
		ui:     ui,
		logger: log,
	}
}

func (dc *DocumentController) Content() string { return dc.doc.Content() }
func (dc *DocumentController) Path() string    { return dc.doc.Path() }
func (dc *DocumentController) Modified() bool  { return dc.doc.Modified() }
func (dc *DocumentController) Title() string   { return dc.doc.Title() }
func (dc *DocumentController) Document() models.Document {
	return dc.doc.Snapshot()
}

// Refresh pushes the whole document state to the UI.
func (dc *DocumentController) Refresh() {
	dc.ui.SetContent(dc.doc.Content())
	dc.ui.SetTitle(dc.doc.Title())
}

// Edit records text typed into the editor.
func (dc *DocumentController) Edit(text string) {
	if text == dc.doc.Content() {
		return
	}
	if dc.doc.SetContent(text) {
		dc.ui.SetTitle(dc.doc.Title())
	}
}

// New replaces the document with an empty untitled one.
func (dc *DocumentController) New() {
	dc.CheckPending(func() {
		dc.doc.Reset()
		dc.Refresh()
		dc.logger.Info(documentComponent, "new document", nil)
	})
}

// Open asks for a file and loads it. Cancelling the chooser does nothing.
func (dc *DocumentController) Open() {
	dc.CheckPending(func() {
		dc.ui.ChooseOpenPath(func(path string) {
			if path == "" {
				dc.logger.Debug(documentComponent, "open cancelled", nil)
				return
			}
			_ = dc.OpenPath(path)
		})
	})
}

// OpenPath loads path into the buffer. On failure the error is shown and the
// current document is left as it was.
func (dc *DocumentController) OpenPath(path string) error {
	content, err := models.ReadTextFile(path)
	if err != nil {
		readErr := &ReadError{Path: path, Err: err}
		dc.logger.Error(documentComponent, readErr, map[string]interface{}{
			"path": path,
		})
		dc.ui.ShowError("Open Error", readErr)
		return readErr
	}

	dc.doc.Replace(models.LoadedDocument(path, content))
	dc.Refresh()

	dc.logger.Info(documentComponent, "document opened", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

// Save writes to the current path, or falls through to SaveAs for an
// untitled document. done, if not nil, receives whether the content is now
// on disk.
func (dc *DocumentController) Save(done func(ok bool)) {
	if dc.doc.Untitled() {
		dc.SaveAs(done)
		return
	}
	err := dc.writeTo(dc.doc.Path())
	report(done, err == nil)
}

// SaveAs asks for a destination and writes there. A cancelled chooser reports
// false without an error.
func (dc *DocumentController) SaveAs(done func(ok bool)) {
	dc.ui.ChooseSavePath(dc.doc.SuggestedFileName(), func(path string) {
		if path == "" {
			dc.logger.Debug(documentComponent, "save as cancelled", nil)
			report(done, false)
			return
		}
		err := dc.SaveAsPath(path)
		report(done, err == nil)
	})
}

// SaveAsPath writes to path and adopts it only if the write succeeds.
func (dc *DocumentController) SaveAsPath(path string) error {
	return dc.writeTo(path)
}

func (dc *DocumentController) writeTo(path string) error {
	content := dc.doc.Content()
	if err := models.WriteTextFile(path, content); err != nil {
		writeErr := &WriteError{Path: path, Err: err}
		dc.logger.Error(documentComponent, writeErr, map[string]interface{}{
			"path": path,
		})
		dc.ui.ShowError("Save Error", writeErr)
		return writeErr
	}

	dc.doc.MarkSaved(path)
	dc.ui.SetTitle(dc.doc.Title())

	dc.logger.Info(documentComponent, "document saved", map[string]interface{}{
		"path":  path,
		"bytes": len(content),
	})
	return nil
}

// CheckPending runs proceed once any unsaved changes have been dealt with.
// A save that fails or is cancelled inside the prompt aborts: proceed is not
// called and the user is not asked again.
func (dc *DocumentController) CheckPending(proceed func()) {
	if !dc.doc.Modified() {
		proceed()
		return
	}

	dc.ui.AskSaveChanges(dc.doc.DisplayName(), func(choice SaveChoice) {
		dc.logger.Debug(documentComponent, "unsaved changes prompt answered", map[string]interface{}{
			"choice": choice.String(),
		})

		switch choice {
		case ChoiceDiscard:
			proceed()
		case ChoiceSave:
			dc.Save(func(ok bool) {
				if ok {
					proceed()
				}
			})
		}
	})
}

// Quit ends the event loop once unsaved changes have been dealt with.
func (dc *DocumentController) Quit() {
	dc.CheckPending(func() {
		dc.logger.Info(documentComponent, "quit", nil)
		dc.ui.Quit()
	})
}

func report(done func(bool), ok bool) {
	if done != nil {
		done(ok)
	}
}
