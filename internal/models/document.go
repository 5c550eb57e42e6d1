package models

import (
	"path/filepath"
)

const (
	AppTitle            = "Notes App"
	UntitledName        = "Untitled"
	DefaultExtension    = ".txt"
	DefaultSaveName     = "untitled" + DefaultExtension
	modifiedTitleMarker = " *"
	titleSeparator      = " - "
)

// Document is the single text buffer being edited.
//
// modified always equals content != baseline, where baseline is the text as of
// the last successful load or save.
type Document struct {
	content  string
	baseline string
	path     string
	modified bool
}

// NewDocument returns an empty, untitled, unmodified document.
func NewDocument() *Document {
	return &Document{}
}

// LoadedDocument returns a document holding content read from path.
func LoadedDocument(path, content string) *Document {
	return &Document{content: content, baseline: content, path: path}
}

func (d *Document) Content() string { return d.content }
func (d *Document) Path() string    { return d.path }
func (d *Document) Modified() bool  { return d.modified }
func (d *Document) Untitled() bool  { return d.path == "" }

// SetContent replaces the buffer text and reports whether the modified flag changed.
func (d *Document) SetContent(content string) bool {
	d.content = content
	wasModified := d.modified
	d.modified = d.content != d.baseline
	return wasModified != d.modified
}

// MarkSaved records a successful write of the current content to path.
func (d *Document) MarkSaved(path string) {
	d.path = path
	d.baseline = d.content
	d.modified = false
}

// Reset turns d into a fresh untitled document.
func (d *Document) Reset() {
	*d = Document{}
}

// Replace overwrites d with other wholesale.
func (d *Document) Replace(other *Document) {
	*d = *other
}

// Snapshot returns a copy of d.
func (d *Document) Snapshot() Document {
	return *d
}

// DisplayName is the base name of the file, or Untitled.
func (d *Document) DisplayName() string {
	if d.path == "" {
		return UntitledName
	}
	return filepath.Base(d.path)
}

// SuggestedFileName is offered as the default in a save dialog.
func (d *Document) SuggestedFileName() string {
	if d.path == "" {
		return DefaultSaveName
	}
	return filepath.Base(d.path)
}

// Title formats the window title.
func (d *Document) Title() string {
	title := AppTitle
	if d.path != "" {
		title += titleSeparator + filepath.Base(d.path)
	}
	if d.modified {
		title += modifiedTitleMarker
	}
	return title
}
