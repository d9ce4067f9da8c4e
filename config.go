package main

import (
	"fyne.io/fyne/v2"
)

type Config struct {
	ServerURL       string `json:"server_url"`
	AutoStart       bool   `json:"auto_start"`
	RemindBeforeMin int    `json:"remind_before_min"` // minutes before start, 0 disables reminders
	LastUsername    string `json:"last_username"`
}

func loadConfig(app fyne.App) *Config {
	prefs := app.Preferences()

	return &Config{
		ServerURL:       prefs.StringWithFallback("server_url", "http://127.0.0.1:8000"),
		AutoStart:       prefs.BoolWithFallback("auto_start", false),
		RemindBeforeMin: prefs.IntWithFallback("remind_before_min", 5),
		LastUsername:    prefs.String("last_username"),
	}
}

func saveConfig(app fyne.App, config *Config) {
	prefs := app.Preferences()

	prefs.SetString("server_url", config.ServerURL)
	prefs.SetBool("auto_start", config.AutoStart)
	prefs.SetInt("remind_before_min", config.RemindBeforeMin)
	prefs.SetString("last_username", config.LastUsername)
}
