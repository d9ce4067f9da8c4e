package main

import (
	"context"
	"errors"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/api"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

type meetingFormView struct {
	md  *MeetingDashboard
	ctx context.Context

	// meetingID is zero in create mode
	meetingID int

	agendaEntry *widget.Entry
	statusSel   *widget.Select
	dateEntry   *widget.Entry
	timeEntry   *widget.Entry
	urlEntry    *widget.Entry

	errorLabel   *widget.Label
	submitButton *widget.Button

	body *fyne.Container
}

// newMeetingFormView builds the add/edit form. Create mode starts populated
// with empty defaults; edit mode loads the current record first so a save
// always sends fresh full values.
func newMeetingFormView(md *MeetingDashboard, ctx context.Context, meetingID int) fyne.CanvasObject {
	fv := &meetingFormView{md: md, ctx: ctx, meetingID: meetingID}

	fv.agendaEntry = widget.NewEntry()
	fv.agendaEntry.SetPlaceHolder("E.g., Weekly Team Sync")

	statusLabels := make([]string, 0, len(models.AllStatuses))
	for _, status := range models.AllStatuses {
		statusLabels = append(statusLabels, status.Label())
	}
	fv.statusSel = widget.NewSelect(statusLabels, nil)
	fv.statusSel.SetSelected(models.StatusUpcoming.Label())

	fv.dateEntry = widget.NewEntry()
	fv.dateEntry.SetPlaceHolder("YYYY-MM-DD")

	fv.timeEntry = widget.NewEntry()
	fv.timeEntry.SetPlaceHolder("HH:MM")

	fv.urlEntry = widget.NewEntry()
	fv.urlEntry.SetPlaceHolder("https://zoom.us/j/1234567890")

	fv.errorLabel = widget.NewLabel("")
	fv.errorLabel.Importance = widget.DangerImportance
	fv.errorLabel.Wrapping = fyne.TextWrapWord
	fv.errorLabel.Hide()

	pageTitle := "Add New Meeting"
	submitLabel := "Add Meeting"
	if fv.editMode() {
		pageTitle = "Edit Meeting"
		submitLabel = "Save Changes"
	}

	title := widget.NewLabel(pageTitle)
	title.TextStyle.Bold = true

	backButton := widget.NewButton("Back to Meetings", func() {
		md.navigator.Navigate(session.RouteMeetings)
	})

	fv.submitButton = widget.NewButton(submitLabel, fv.submit)
	fv.submitButton.Importance = widget.HighImportance

	cancelButton := widget.NewButton("Cancel", func() {
		md.navigator.Navigate(session.RouteMeetings)
	})

	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Agenda"), fv.agendaEntry,
		widget.NewLabel("Status"), fv.statusSel,
		widget.NewLabel("Date of Meeting"), fv.dateEntry,
		widget.NewLabel("Start Time"), fv.timeEntry,
		widget.NewLabel("Meeting URL"), fv.urlEntry,
	)

	buttons := container.NewHBox(layout.NewSpacer(), cancelButton, fv.submitButton)

	formCard := container.NewVBox(
		form,
		fv.errorLabel,
		buttons,
	)

	if fv.editMode() {
		loading := widget.NewLabel("Loading meeting details...")
		loading.Alignment = fyne.TextAlignCenter
		fv.body = container.NewStack(loading)
		fv.loadMeeting(formCard)
	} else {
		fv.body = container.NewStack(formCard)
	}

	header := container.NewBorder(nil, nil, title, backButton)

	return container.NewPadded(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator()),
		nil,
		nil,
		nil,
		container.NewVScroll(fv.body),
	))
}

func (fv *meetingFormView) editMode() bool {
	return fv.meetingID != 0
}

// loadMeeting fetches the current record so the edit form never saves a
// partially stale record
func (fv *meetingFormView) loadMeeting(formCard fyne.CanvasObject) {
	go func() {
		meeting, err := fv.md.store.Get(fv.ctx, fv.meetingID)
		if fv.ctx.Err() != nil {
			return
		}
		if err != nil {
			if api.IsUnauthorized(err) {
				fv.md.handleUnauthorized()
				return
			}

			message := "Failed to load meeting details. Please try again."
			if api.IsNotFound(err) {
				message = "Meeting not found."
			}
			log.Printf("Error fetching meeting %d: %v", fv.meetingID, err)
			fyne.Do(func() {
				failed := widget.NewLabel(message)
				failed.Importance = widget.DangerImportance
				failed.Alignment = fyne.TextAlignCenter
				fv.body.Objects = []fyne.CanvasObject{container.NewCenter(failed)}
				fv.body.Refresh()
			})
			return
		}

		fyne.Do(func() {
			draft := models.DraftFromMeeting(meeting)
			fv.agendaEntry.SetText(draft.Agenda)
			fv.statusSel.SetSelected(draft.Status.Label())
			fv.dateEntry.SetText(draft.DateOfMeeting)
			fv.timeEntry.SetText(draft.StartTime)
			fv.urlEntry.SetText(draft.MeetingURL)

			fv.body.Objects = []fyne.CanvasObject{formCard}
			fv.body.Refresh()
		})
	}()
}

func (fv *meetingFormView) draft() models.MeetingDraft {
	status := models.StatusUpcoming
	for _, s := range models.AllStatuses {
		if s.Label() == fv.statusSel.Selected {
			status = s
			break
		}
	}
	return models.MeetingDraft{
		Agenda:        fv.agendaEntry.Text,
		Status:        status,
		DateOfMeeting: fv.dateEntry.Text,
		StartTime:     fv.timeEntry.Text,
		MeetingURL:    fv.urlEntry.Text,
	}
}

func (fv *meetingFormView) submit() {
	fv.errorLabel.Hide()
	draft := fv.draft()

	// Local validation blocks submission before any network call
	if err := draft.Validate(); err != nil {
		fv.showError(err.Error())
		return
	}

	busyLabel := "Adding..."
	doneLabel := "Add Meeting"
	if fv.editMode() {
		busyLabel = "Saving..."
		doneLabel = "Save Changes"
	}
	fv.submitButton.SetText(busyLabel)
	fv.submitButton.Disable()

	go func() {
		var err error
		if fv.editMode() {
			_, err = fv.md.store.Update(fv.ctx, fv.meetingID, draft)
		} else {
			_, err = fv.md.store.Create(fv.ctx, draft)
		}
		if fv.ctx.Err() != nil {
			return
		}

		fyne.Do(func() {
			fv.submitButton.SetText(doneLabel)
			fv.submitButton.Enable()

			if err != nil {
				if api.IsUnauthorized(err) {
					fv.md.handleUnauthorized()
					return
				}

				var ve *api.ValidationError
				if errors.As(err, &ve) {
					fv.showError(ve.Error())
				} else {
					log.Printf("Error submitting meeting form: %v", err)
					fv.showError("Failed to save meeting. Please try again.")
				}
				return
			}

			fv.md.navigator.Navigate(session.RouteMeetings)
		})
	}()
}

func (fv *meetingFormView) showError(message string) {
	fv.errorLabel.SetText(message)
	fv.errorLabel.Show()
}
