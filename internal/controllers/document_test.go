package controllers

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-app/internal/logger"
)

func newTestController(t *testing.T) (*DocumentController, *fakeUI) {
	t.Helper()
	ui := &fakeUI{}
	return NewDocumentController(ui, logger.NewMemoryLogger()), ui
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestEditSetsModified(t *testing.T) {
	dc, ui := newTestController(t)
	assert.False(t, dc.Modified())

	dc.Edit("a")
	assert.True(t, dc.Modified())
	assert.Equal(t, "Notes App *", ui.title)

	dc.Edit("a")
	assert.True(t, dc.Modified())
}

func TestSaveClearsModifiedAndNextEditSetsIt(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "note.txt")
	ui.savePaths = []string{path}

	dc.Edit("first draft")
	var saved bool
	dc.Save(func(ok bool) { saved = ok })

	require.True(t, saved)
	assert.False(t, dc.Modified())
	assert.Equal(t, path, dc.Path())
	assert.Equal(t, "Notes App - note.txt", ui.title)
	assert.Equal(t, "first draft", readFile(t, path))

	dc.Edit("first draft!")
	assert.True(t, dc.Modified())

	dc.Save(nil)
	assert.False(t, dc.Modified())
	assert.Equal(t, "first draft!", readFile(t, path))
	assert.Len(t, ui.suggestions, 1, "save with a path must not ask for one")
}

func TestNewWhenUnmodifiedProceeds(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "alpha")
	require.NoError(t, dc.OpenPath(path))

	dc.New()

	assert.Empty(t, ui.prompts)
	assert.Equal(t, "", dc.Content())
	assert.Equal(t, "", dc.Path())
	assert.False(t, dc.Modified())
	assert.Equal(t, "", ui.content)
	assert.Equal(t, "Notes App", ui.title)
}

func TestPendingSaveCancelLeavesDocumentUnchanged(t *testing.T) {
	operations := map[string]func(dc *DocumentController){
		"new":  func(dc *DocumentController) { dc.New() },
		"open": func(dc *DocumentController) { dc.Open() },
		"quit": func(dc *DocumentController) { dc.Quit() },
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			dc, ui := newTestController(t)
			dir := t.TempDir()
			path := filepath.Join(dir, "a.txt")
			writeFile(t, path, "alpha")
			other := filepath.Join(dir, "b.txt")
			writeFile(t, other, "beta")
			require.NoError(t, dc.OpenPath(path))
			dc.Edit("alpha edited")
			before := dc.Document()

			ui.choices = []SaveChoice{ChoiceCancel}
			ui.openPaths = []string{other}
			op(dc)

			assert.Equal(t, before, dc.Document())
			assert.Equal(t, []string{"a.txt"}, ui.prompts)
			assert.Zero(t, ui.quits)
			assert.Empty(t, ui.errors)
			assert.Equal(t, "alpha", readFile(t, path))
		})
	}
}

func TestPendingSaveDiscardProceeds(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "alpha")
	require.NoError(t, dc.OpenPath(path))
	dc.Edit("alpha edited")

	ui.choices = []SaveChoice{ChoiceDiscard}
	dc.New()

	assert.Equal(t, "", dc.Content())
	assert.False(t, dc.Modified())
	assert.Equal(t, "alpha", readFile(t, path), "discard must not write")
}

func TestPendingSaveSaveThenProceed(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "a.txt")
	writeFile(t, path, "alpha")
	require.NoError(t, dc.OpenPath(path))
	dc.Edit("alpha edited")

	ui.choices = []SaveChoice{ChoiceSave}
	dc.Quit()

	assert.Equal(t, 1, ui.quits)
	assert.Equal(t, "alpha edited", readFile(t, path))
}

func TestPendingSaveFailedSaveAborts(t *testing.T) {
	dc, ui := newTestController(t)
	dc.Edit("unsaved work")
	before := dc.Document()

	ui.choices = []SaveChoice{ChoiceSave}
	ui.savePaths = []string{filepath.Join(t.TempDir(), "no-such-dir", "x.txt")}
	dc.Quit()

	assert.Zero(t, ui.quits)
	require.Len(t, ui.errors, 1)
	assert.ErrorIs(t, ui.errors[0], ErrWrite)
	assert.Equal(t, before, dc.Document())
	assert.Len(t, ui.prompts, 1, "a failed save must not re-prompt")
}

func TestPendingSaveCancelledSaveAsAborts(t *testing.T) {
	dc, ui := newTestController(t)
	dc.Edit("unsaved work")
	before := dc.Document()

	ui.choices = []SaveChoice{ChoiceSave}
	dc.New()

	assert.Equal(t, before, dc.Document())
	assert.Empty(t, ui.errors)
}

func TestOpenCancelledChooserIsNoOp(t *testing.T) {
	dc, ui := newTestController(t)
	dc.Edit("draft")
	ui.choices = []SaveChoice{ChoiceDiscard}
	before := dc.Document()

	dc.Open()

	assert.Equal(t, before, dc.Document())
	assert.Empty(t, ui.errors)
}

func TestOpenReplacesDocument(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	writeFile(t, path, "from disk")
	ui.openPaths = []string{path}

	dc.Open()

	assert.Equal(t, "from disk", dc.Content())
	assert.Equal(t, path, dc.Path())
	assert.False(t, dc.Modified())
	assert.Equal(t, "from disk", ui.content)
	assert.Equal(t, "Notes App - notes.txt", ui.title)
}

func TestOpenReadErrorLeavesDocumentUnchanged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T, dir string) string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T, dir string) string {
				return filepath.Join(dir, "missing.txt")
			},
		},
		{
			name: "not text",
			setup: func(t *testing.T, dir string) string {
				path := filepath.Join(dir, "blob.bin")
				require.NoError(t, os.WriteFile(path, []byte{'x', 0xff, 0xc0, 0x80}, 0o644))
				return path
			},
		},
		{
			name: "directory",
			setup: func(t *testing.T, dir string) string {
				return dir
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, ui := newTestController(t)
			dc.Edit("keep me")
			before := dc.Document()
			path := tt.setup(t, t.TempDir())

			err := dc.OpenPath(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrRead)
			assert.Equal(t, before, dc.Document())
			require.Len(t, ui.errors, 1)
			var readErr *ReadError
			require.ErrorAs(t, ui.errors[0], &readErr)
			assert.Equal(t, path, readErr.Path)
		})
	}
}

func TestSaveAsCancelledIsNoOp(t *testing.T) {
	dc, ui := newTestController(t)
	dc.Edit("draft")
	before := dc.Document()

	ok := true
	dc.SaveAs(func(saved bool) { ok = saved })

	assert.False(t, ok)
	assert.Equal(t, before, dc.Document())
	assert.Empty(t, ui.errors)
	assert.Equal(t, []string{"untitled.txt"}, ui.suggestions)
}

func TestSaveAsWriteFailureKeepsOldPath(t *testing.T) {
	dc, ui := newTestController(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	writeFile(t, path, "alpha")
	require.NoError(t, dc.OpenPath(path))
	dc.Edit("alpha 2")

	ui.savePaths = []string{filepath.Join(dir, "missing", "b.txt")}
	ok := true
	dc.SaveAs(func(saved bool) { ok = saved })

	assert.False(t, ok)
	assert.Equal(t, path, dc.Path())
	assert.True(t, dc.Modified())
	require.Len(t, ui.errors, 1)
	assert.ErrorIs(t, ui.errors[0], ErrWrite)
	assert.Equal(t, []string{"a.txt"}, ui.suggestions)
}

func TestSaveWithoutPathAdoptsChosenPath(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "fresh.txt")
	ui.savePaths = []string{path}
	dc.Edit("hello")

	ok := false
	dc.Save(func(saved bool) { ok = saved })

	assert.True(t, ok)
	assert.Equal(t, path, dc.Path())
	assert.False(t, dc.Modified())
}

func TestSaveExistingPathFailure(t *testing.T) {
	dc, ui := newTestController(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "sub", "a.txt")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	writeFile(t, path, "alpha")
	require.NoError(t, dc.OpenPath(path))
	dc.Edit("alpha 2")
	require.NoError(t, os.RemoveAll(filepath.Dir(path)))

	ok := true
	dc.Save(func(saved bool) { ok = saved })

	assert.False(t, ok)
	assert.True(t, dc.Modified())
	assert.Equal(t, path, dc.Path())
	require.Len(t, ui.errors, 1)
}

func TestSaveAsThenOpenRoundTrip(t *testing.T) {
	dc, ui := newTestController(t)
	path := filepath.Join(t.TempDir(), "round.txt")
	content := "first line\nsecond line\n\nünïcødé ✓\n"
	dc.Edit(content)

	require.NoError(t, dc.SaveAsPath(path))
	dc.New()
	require.Equal(t, "", dc.Content())

	ui.openPaths = []string{path}
	dc.Open()

	assert.Equal(t, content, dc.Content())
	assert.False(t, dc.Modified())
}

func TestQuitWhenUnmodified(t *testing.T) {
	dc, ui := newTestController(t)

	dc.Quit()

	assert.Equal(t, 1, ui.quits)
	assert.Empty(t, ui.prompts)
}
