package controllers

import (
	"fmt"

	"notes-app/internal/logger"
	"notes-app/internal/settings"
)

const displayComponent = "DisplayController"

// ThemeApplier restyles the UI for a display mode and shows non-blocking
// warnings.
type ThemeApplier interface {
	ApplyMode(mode settings.Mode)
	ShowWarning(title, message string)
}

// SettingsSaver persists the display preference.
type SettingsSaver interface {
	Save(settings.Settings) error
}

// DisplayController is the Light/Dark state machine.
type DisplayController struct {
	mode    settings.Mode
	saver   SettingsSaver
	applier ThemeApplier
	logger  logger.Logger
}

func NewDisplayController(initial settings.Mode, saver SettingsSaver, applier ThemeApplier, log logger.Logger) *DisplayController {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &DisplayController{
		mode:    initial,
		saver:   saver,
		applier: applier,
		logger:  log,
	}
}

func (d *DisplayController) Mode() settings.Mode { return d.mode }
func (d *DisplayController) Dark() bool          { return d.mode.Dark() }

// Apply styles the UI for the current mode without persisting it.
func (d *DisplayController) Apply() {
	d.applier.ApplyMode(d.mode)
}

// Toggle flips the mode, restyles immediately, then tries to persist. A
// failed save is reported but the new mode stays in effect.
func (d *DisplayController) Toggle() error {
	d.mode = d.mode.Toggle()
	d.applier.ApplyMode(d.mode)

	d.logger.Info(displayComponent, "display mode toggled", map[string]interface{}{
		"mode": d.mode.String(),
	})

	if err := d.saver.Save(settings.Settings{DarkMode: d.mode.Dark()}); err != nil {
		d.logger.Warning(displayComponent, "failed to persist display mode", map[string]interface{}{
			"error": err.Error(),
		})
		d.applier.ShowWarning("Save Error", fmt.Sprintf("Could not save theme preference:\n%v", err))
		return err
	}
	return nil
}
