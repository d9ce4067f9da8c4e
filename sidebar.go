package main

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

// buildSidebar builds the navigation rail shown beside every authenticated
// view
func buildSidebar(md *MeetingDashboard) fyne.CanvasObject {
	title := widget.NewLabel("Meeting Dashboard")
	title.TextStyle.Bold = true

	meetingsButton := widget.NewButtonWithIcon("Meetings", theme.ListIcon(), func() {
		md.navigator.Navigate(session.RouteMeetings)
	})
	meetingsButton.Alignment = widget.ButtonAlignLeading

	settingsButton := widget.NewButtonWithIcon("Settings", theme.SettingsIcon(), func() {
		showSettingsDialog(md)
	})
	settingsButton.Alignment = widget.ButtonAlignLeading

	logoutButton := widget.NewButtonWithIcon("Log Out", theme.LogoutIcon(), func() {
		go func() {
			// Best effort remotely; the gate clears the local session even
			// when the request fails
			md.gate.Logout(context.Background())
			fyne.Do(func() {
				md.navigator.Navigate(session.RouteLogin)
			})
		}()
	})
	logoutButton.Alignment = widget.ButtonAlignLeading

	nav := container.NewVBox(
		title,
		widget.NewSeparator(),
		meetingsButton,
		settingsButton,
	)

	return container.NewBorder(
		nav,
		container.NewVBox(widget.NewSeparator(), logoutButton),
		nil,
		nil,
	)
}
