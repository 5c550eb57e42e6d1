package main

import (
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"notes-app/internal/app"
	"notes-app/internal/logger"
)

func main() {
	cfg := app.ConfigFromEnv()
	log := logger.New(cfg.LogLevel, cfg.JSONLogs)

	fyneApp := fyneapp.NewWithID(cfg.AppID)

	application, err := app.New(fyneApp, cfg, log)
	if err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}
