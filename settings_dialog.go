package main

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

var remindOptions = []string{"Disabled", "5 min", "10 min", "15 min", "30 min"}

// showSettingsDialog edits the client settings: server address, reminder
// lead time and launch-at-login
func showSettingsDialog(md *MeetingDashboard) {
	serverEntry := widget.NewEntry()
	serverEntry.SetText(md.config.ServerURL)
	serverEntry.Validator = func(s string) error {
		if s == "" {
			return fmt.Errorf("server URL is required")
		}
		if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
			return fmt.Errorf("URL must start with http:// or https://")
		}
		return nil
	}

	remindSelect := widget.NewSelect(remindOptions, nil)
	remindSelect.SetSelected(remindLabel(md.config.RemindBeforeMin))

	autoStartCheck := widget.NewCheck("Launch when you log in to your computer", nil)
	autoStartCheck.SetChecked(md.config.AutoStart)

	items := []*widget.FormItem{
		widget.NewFormItem("Server URL", serverEntry),
		widget.NewFormItem("Remind Before", remindSelect),
		widget.NewFormItem("Auto Start", autoStartCheck),
	}

	settingsDialog := dialog.NewForm("Settings", "Save", "Cancel", items, func(confirmed bool) {
		if !confirmed {
			return
		}

		newConfig := &Config{
			ServerURL:       strings.TrimRight(serverEntry.Text, "/"),
			AutoStart:       autoStartCheck.Checked,
			RemindBeforeMin: remindMinutes(remindSelect.Selected),
			LastUsername:    md.config.LastUsername,
		}

		go func() {
			if err := setupAutostart(newConfig.AutoStart); err != nil {
				log.Printf("Error setting autostart: %v", err)
			}
		}()

		md.applyConfig(newConfig)
	}, md.window)

	settingsDialog.Resize(settingsDialog.MinSize().AddWidthHeight(200, 0))
	settingsDialog.Show()
}

func remindLabel(minutes int) string {
	if minutes <= 0 {
		return "Disabled"
	}
	return fmt.Sprintf("%d min", minutes)
}

func remindMinutes(label string) int {
	var minutes int
	if _, err := fmt.Sscanf(label, "%d min", &minutes); err != nil {
		return 0
	}
	return minutes
}
