package controllers

import (
	"notes-app/internal/settings"
)

// fakeUI answers choosers and prompts from queued responses.
type fakeUI struct {
	content string
	title   string

	openPaths   []string
	savePaths   []string
	choices     []SaveChoice
	suggestions []string
	prompts     []string

	errors   []error
	warnings []string
	quits    int
	modes    []settings.Mode
}

func (f *fakeUI) SetContent(text string) { f.content = text }
func (f *fakeUI) SetTitle(title string)  { f.title = title }

func (f *fakeUI) ChooseOpenPath(cb func(path string)) {
	cb(pop(&f.openPaths))
}

func (f *fakeUI) ChooseSavePath(suggested string, cb func(path string)) {
	f.suggestions = append(f.suggestions, suggested)
	cb(pop(&f.savePaths))
}

func (f *fakeUI) AskSaveChanges(name string, cb func(SaveChoice)) {
	f.prompts = append(f.prompts, name)
	choice := ChoiceCancel
	if len(f.choices) > 0 {
		choice = f.choices[0]
		f.choices = f.choices[1:]
	}
	cb(choice)
}

func (f *fakeUI) ShowError(title string, err error) { f.errors = append(f.errors, err) }
func (f *fakeUI) Quit()                             { f.quits++ }

func (f *fakeUI) ApplyMode(mode settings.Mode) { f.modes = append(f.modes, mode) }
func (f *fakeUI) ShowWarning(title, message string) {
	f.warnings = append(f.warnings, message)
}

func pop(queue *[]string) string {
	if len(*queue) == 0 {
		return ""
	}
	v := (*queue)[0]
	*queue = (*queue)[1:]
	return v
}
