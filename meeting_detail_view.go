package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/api"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

// newMeetingDetailView builds the read-only detail page for one meeting
func newMeetingDetailView(md *MeetingDashboard, ctx context.Context, meetingID int) fyne.CanvasObject {
	loading := widget.NewLabel("Loading meeting details...")
	loading.Alignment = fyne.TextAlignCenter
	body := container.NewStack(loading)

	go func() {
		meeting, err := md.store.Get(ctx, meetingID)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			if api.IsUnauthorized(err) {
				md.handleUnauthorized()
				return
			}

			message := "Failed to load meeting details."
			if api.IsNotFound(err) {
				message = "Meeting not found."
			}
			log.Printf("Error fetching meeting %d: %v", meetingID, err)
			fyne.Do(func() {
				failed := widget.NewLabel(message)
				failed.Importance = widget.DangerImportance
				failed.Alignment = fyne.TextAlignCenter
				body.Objects = []fyne.CanvasObject{container.NewCenter(failed)}
				body.Refresh()
			})
			return
		}

		fyne.Do(func() {
			body.Objects = []fyne.CanvasObject{buildMeetingCard(md, meeting)}
			body.Refresh()
		})
	}()

	backButton := widget.NewButton("Back to Meetings List", func() {
		md.navigator.Navigate(session.RouteMeetings)
	})

	header := container.NewBorder(nil, nil, nil, backButton)

	return container.NewPadded(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil,
		nil,
		nil,
		body,
	))
}

func buildMeetingCard(md *MeetingDashboard, meeting models.Meeting) fyne.CanvasObject {
	agenda := widget.NewLabel(meeting.Agenda)
	agenda.TextStyle.Bold = true
	agenda.Wrapping = fyne.TextWrapWord

	statusLabel := widget.NewLabel(meeting.Status.Label())

	link := widget.NewHyperlink(meeting.MeetingURL, nil)
	if err := link.SetURLFromString(meeting.MeetingURL); err != nil {
		log.Printf("Invalid meeting URL for meeting %d: %v", meeting.ID, err)
	}

	details := container.New(layout.NewFormLayout(),
		widget.NewLabel("Status"), statusLabel,
		widget.NewLabel("Date of Meeting"), widget.NewLabel(meeting.FormatDate()),
		widget.NewLabel("Start Time"), widget.NewLabel(meeting.FormatTime()),
		widget.NewLabel("Meeting URL"), link,
	)

	editButton := widget.NewButton("Edit Meeting", func() {
		md.navigator.Navigate(EditPath(meeting.ID))
	})
	editButton.Importance = widget.HighImportance

	card := container.NewVBox(
		agenda,
		widget.NewSeparator(),
		details,
		widget.NewSeparator(),
		container.NewHBox(layout.NewSpacer(), editButton),
	)

	return container.NewPadded(card)
}
