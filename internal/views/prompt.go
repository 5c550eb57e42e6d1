package views

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"notes-app/internal/controllers"
)

// savePrompt is the three-way "save your changes?" dialog.
type savePrompt struct {
	dialog  *dialog.CustomDialog
	buttons map[controllers.SaveChoice]*widget.Button
}

func newSavePrompt(name string, parent fyne.Window, cb func(controllers.SaveChoice)) *savePrompt {
	p := &savePrompt{buttons: make(map[controllers.SaveChoice]*widget.Button)}

	message := widget.NewLabel(fmt.Sprintf("Do you want to save your changes to %s?", name))
	p.dialog = dialog.NewCustomWithoutButtons("Unsaved Changes", message, parent)

	answer := func(choice controllers.SaveChoice) func() {
		return func() {
			p.dialog.Hide()
			cb(choice)
		}
	}

	p.buttons[controllers.ChoiceCancel] = widget.NewButton("Cancel", answer(controllers.ChoiceCancel))
	p.buttons[controllers.ChoiceDiscard] = widget.NewButton("Don't Save", answer(controllers.ChoiceDiscard))
	save := widget.NewButton("Save", answer(controllers.ChoiceSave))
	save.Importance = widget.HighImportance
	p.buttons[controllers.ChoiceSave] = save

	p.dialog.SetButtons([]fyne.CanvasObject{
		p.buttons[controllers.ChoiceCancel],
		p.buttons[controllers.ChoiceDiscard],
		save,
	})
	return p
}

func (p *savePrompt) Show() {
	p.dialog.Show()
}
