package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/api"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/store"
)

type MeetingDashboard struct {
	app    fyne.App
	window fyne.Window
	config *Config

	session *session.Session
	gate    *session.Gate
	client  *api.Client
	store   *store.MeetingStore

	navigator *Navigator
	reminder  *ReminderChecker
}

func main() {
	md := &MeetingDashboard{
		app:     app.New(),
		session: session.NewSession(),
	}

	if err := md.initialize(); err != nil {
		log.Fatal(err)
	}

	md.run()
}

func (md *MeetingDashboard) initialize() error {
	md.config = loadConfig(md.app)

	// Sync autostart state with config on startup
	if err := setupAutostart(md.config.AutoStart); err != nil {
		log.Printf("Warning: failed to setup autostart: %v", err)
	}

	saveConfig(md.app, md.config)

	client, err := api.NewClient(md.config.ServerURL)
	if err != nil {
		return err
	}
	md.client = client

	md.gate = session.NewGate(md.session, md.client)
	md.store = store.NewMeetingStore(md.client)

	md.window = md.app.NewWindow("Meeting Dashboard")
	md.window.Resize(fyne.NewSize(1000, 680))
	md.window.CenterOnScreen()

	md.navigator = NewNavigator(md)
	md.navigator.Navigate(session.RouteLogin)

	md.reminder = NewReminderChecker(md.app, md.store, md.config.RemindBeforeMin)
	md.reminder.Start()

	return nil
}

func (md *MeetingDashboard) run() {
	md.window.SetOnClosed(func() {
		md.quit()
	})
	md.window.ShowAndRun()
}

// applyConfig rebuilds the pieces that depend on settings after the user
// saves them
func (md *MeetingDashboard) applyConfig(newConfig *Config) {
	oldURL := md.config.ServerURL
	md.config = newConfig
	saveConfig(md.app, md.config)
	md.reminder.SetLeadMinutes(newConfig.RemindBeforeMin)

	if newConfig.ServerURL != oldURL {
		// A new server means a new session; the old cookie jar is useless
		client, err := api.NewClient(newConfig.ServerURL)
		if err != nil {
			log.Printf("Invalid server URL %q, keeping previous client: %v", newConfig.ServerURL, err)
			return
		}
		md.client = client
		md.gate = session.NewGate(md.session, md.client)
		md.store = store.NewMeetingStore(md.client)
		md.reminder.SetStore(md.store)
		md.gate.HandleUnauthorized()
		md.navigator.Navigate(session.RouteLogin)
	}
}

// handleUnauthorized is the system-wide reaction to a 401/403 from any
// endpoint: drop the session and land back on the login route.
func (md *MeetingDashboard) handleUnauthorized() {
	log.Println("Authorization denied by server, returning to login")
	md.gate.HandleUnauthorized()
	fyne.Do(func() {
		md.navigator.Navigate(session.RouteLogin)
	})
}

func (md *MeetingDashboard) quit() {
	if md.reminder != nil {
		md.reminder.Stop()
	}
	if md.navigator != nil {
		md.navigator.CancelCurrentView()
	}
	md.app.Quit()
}
