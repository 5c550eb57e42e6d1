package components

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar shows the last status message, buffer size and display mode
type StatusBar struct {
	container    *fyne.Container
	statusLabel  *widget.Label
	documentInfo *widget.Label
	modeInfo     *widget.Label
}

func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
	sb.documentInfo = widget.NewLabel(FormatDocumentInfo(1, 0))
	sb.modeInfo = widget.NewLabel("Light")
}

func (sb *StatusBar) buildLayout() {
	right := container.NewHBox(
		widget.NewSeparator(),
		sb.documentInfo,
		widget.NewSeparator(),
		sb.modeInfo,
	)
	sb.container = container.NewBorder(nil, nil, nil, right, sb.statusLabel)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

func (sb *StatusBar) SetDocumentInfo(lines, chars int) {
	sb.documentInfo.SetText(FormatDocumentInfo(lines, chars))
}

func (sb *StatusBar) GetDocumentInfo() string {
	return sb.documentInfo.Text
}

func (sb *StatusBar) SetMode(mode string) {
	sb.modeInfo.SetText(mode)
}

func (sb *StatusBar) GetMode() string {
	return sb.modeInfo.Text
}

func (sb *StatusBar) Reset() {
	sb.statusLabel.SetText("Ready")
	sb.documentInfo.SetText(FormatDocumentInfo(1, 0))
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}

func FormatDocumentInfo(lines, chars int) string {
	return fmt.Sprintf("Ln %d, %d chars", lines, chars)
}
