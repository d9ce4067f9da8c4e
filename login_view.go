package main

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/api"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

// newLoginView builds the login entry point: credential form, inline error
// reporting and a registration shortcut
func newLoginView(md *MeetingDashboard) fyne.CanvasObject {
	title := widget.NewLabel("Welcome Back!")
	title.TextStyle.Bold = true
	title.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel("Log in to manage your meetings.")
	subtitle.Alignment = fyne.TextAlignCenter

	usernameEntry := widget.NewEntry()
	usernameEntry.SetPlaceHolder("Enter your username")
	usernameEntry.SetText(md.config.LastUsername)

	passwordEntry := widget.NewPasswordEntry()
	passwordEntry.SetPlaceHolder("Enter your password")

	errorLabel := widget.NewLabel("")
	errorLabel.Importance = widget.DangerImportance
	errorLabel.Alignment = fyne.TextAlignCenter
	errorLabel.Wrapping = fyne.TextWrapWord
	errorLabel.Hide()

	showError := func(message string) {
		errorLabel.SetText(message)
		errorLabel.Show()
	}

	var loginButton *widget.Button
	var registerButton *widget.Button

	setBusy := func(busy bool) {
		if busy {
			loginButton.Disable()
			registerButton.Disable()
		} else {
			loginButton.Enable()
			registerButton.Enable()
		}
	}

	submit := func() {
		errorLabel.Hide()
		username := usernameEntry.Text
		password := passwordEntry.Text

		loginButton.SetText("Logging in...")
		setBusy(true)

		go func() {
			err := md.gate.Login(context.Background(), username, password)
			fyne.Do(func() {
				loginButton.SetText("Log In")
				setBusy(false)

				if err != nil {
					if errors.Is(err, api.ErrInvalidCredentials) {
						showError("Invalid username or password.")
					} else {
						showError("An error occurred during login. Please try again.")
					}
					return
				}

				md.config.LastUsername = username
				saveConfig(md.app, md.config)
				md.navigator.Navigate(session.RouteMeetings)
			})
		}()
	}

	register := func() {
		username := usernameEntry.Text
		password := passwordEntry.Text
		if username == "" || password == "" {
			showError("Please enter username and password to register.")
			return
		}

		errorLabel.Hide()
		setBusy(true)

		go func() {
			err := md.client.Register(context.Background(), username, password)
			fyne.Do(func() {
				setBusy(false)

				if err != nil {
					var ve *api.ValidationError
					if errors.As(err, &ve) {
						showError("Registration failed: " + ve.Error())
					} else {
						showError("An error occurred during registration.")
					}
					return
				}

				dialog.ShowInformation("Registration",
					"Registration successful! Please log in.", md.window)
			})
		}()
	}

	loginButton = widget.NewButton("Log In", submit)
	loginButton.Importance = widget.HighImportance
	passwordEntry.OnSubmitted = func(string) { submit() }

	registerButton = widget.NewButton("Register here", register)

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Username"),
		usernameEntry,
		widget.NewLabel("Password"),
		passwordEntry,
	)

	registerHint := widget.NewLabel("Don't have an account?")
	registerHint.Alignment = fyne.TextAlignCenter

	card := container.NewVBox(
		title,
		subtitle,
		widget.NewSeparator(),
		form,
		errorLabel,
		loginButton,
		registerHint,
		registerButton,
	)

	wrapped := container.NewGridWrap(fyne.NewSize(380, card.MinSize().Height), card)
	return container.NewCenter(container.NewPadded(wrapped))
}
