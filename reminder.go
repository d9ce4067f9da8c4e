package main

import (
	"fmt"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/store"
)

// ReminderChecker watches the cached meeting list and fires a desktop
// notification shortly before each meeting starts.
type ReminderChecker struct {
	app fyne.App

	mu          sync.Mutex
	store       *store.MeetingStore
	leadMinutes int

	// notified dedupes alerts; rescheduling a meeting changes its key so
	// the new slot alerts again
	notified map[string]bool

	ticker *time.Ticker
	done   chan struct{}
}

func NewReminderChecker(app fyne.App, meetingStore *store.MeetingStore, leadMinutes int) *ReminderChecker {
	return &ReminderChecker{
		app:         app,
		store:       meetingStore,
		leadMinutes: leadMinutes,
		notified:    make(map[string]bool),
		done:        make(chan struct{}),
	}
}

func (rc *ReminderChecker) Start() {
	rc.ticker = time.NewTicker(1 * time.Minute)
	go func() {
		for {
			select {
			case <-rc.done:
				return
			case <-rc.ticker.C:
				rc.check()
			}
		}
	}()

	go func() {
		select {
		case <-rc.done:
		case <-time.After(5 * time.Second):
			rc.check()
		}
	}()
}

func (rc *ReminderChecker) Stop() {
	if rc.ticker != nil {
		rc.ticker.Stop()
	}
	close(rc.done)
}

func (rc *ReminderChecker) SetLeadMinutes(minutes int) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.leadMinutes = minutes
}

// SetStore swaps the watched store after the client is rebuilt for a new
// server
func (rc *ReminderChecker) SetStore(meetingStore *store.MeetingStore) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.store = meetingStore
	rc.notified = make(map[string]bool)
}

func (rc *ReminderChecker) check() {
	rc.mu.Lock()
	meetingStore := rc.store
	lead := rc.leadMinutes
	rc.mu.Unlock()

	if meetingStore == nil || lead <= 0 {
		return
	}

	now := time.Now()
	window := time.Duration(lead) * time.Minute

	for _, meeting := range meetingStore.Meetings() {
		if meeting.Status == models.StatusCancelled {
			continue
		}

		start, err := meeting.StartDateTime()
		if err != nil {
			continue
		}

		until := start.Sub(now)
		if until < 0 || until > window {
			continue
		}

		key := fmt.Sprintf("%d/%s/%s", meeting.ID, meeting.DateOfMeeting, meeting.StartTime)
		rc.mu.Lock()
		seen := rc.notified[key]
		rc.notified[key] = true
		rc.mu.Unlock()
		if seen {
			continue
		}

		log.Printf("Reminder: meeting %d (%s) starts at %s", meeting.ID, meeting.Agenda, meeting.FormatTime())
		rc.app.SendNotification(fyne.NewNotification(
			"Upcoming Meeting",
			fmt.Sprintf("%s starts at %s", meeting.Agenda, meeting.FormatTime()),
		))
		playChime()
	}
}
