package main

import (
	"context"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/api"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/calendar"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

type dashboardView struct {
	md  *MeetingDashboard
	ctx context.Context

	meetings []models.Meeting
	list     *widget.List

	errorLabel *widget.Label
	body       *fyne.Container
}

// newDashboardView builds the meetings list view and kicks off the initial
// fetch
func newDashboardView(md *MeetingDashboard, ctx context.Context) fyne.CanvasObject {
	dv := &dashboardView{md: md, ctx: ctx}

	title := widget.NewLabel("Meetings")
	title.TextStyle.Bold = true

	addButton := widget.NewButtonWithIcon("Add New", theme.ContentAddIcon(), func() {
		md.navigator.Navigate(session.RouteMeetingNew)
	})
	addButton.Importance = widget.HighImportance

	refreshButton := widget.NewButtonWithIcon("Refresh", theme.ViewRefreshIcon(), func() {
		dv.reload()
	})

	exportButton := widget.NewButtonWithIcon("Export", theme.DownloadIcon(), func() {
		dv.exportCalendar()
	})

	dv.errorLabel = widget.NewLabel("")
	dv.errorLabel.Importance = widget.DangerImportance
	dv.errorLabel.Wrapping = fyne.TextWrapWord
	dv.errorLabel.Hide()

	dv.list = dv.buildList()

	loading := widget.NewLabel("Loading meetings...")
	loading.Alignment = fyne.TextAlignCenter
	dv.body = container.NewStack(loading)

	header := container.NewBorder(nil, nil, title,
		container.NewHBox(refreshButton, exportButton, addButton))

	dv.reload()

	return container.NewPadded(container.NewBorder(
		container.NewVBox(header, widget.NewSeparator(), dv.buildColumnHeader(), dv.errorLabel),
		nil,
		nil,
		nil,
		dv.body,
	))
}

func (dv *dashboardView) buildColumnHeader() fyne.CanvasObject {
	headers := container.NewGridWithColumns(5,
		boldLabel("Agenda"),
		boldLabel("Status"),
		boldLabel("Date of Meeting"),
		boldLabel("Start Time"),
		boldLabel("Meeting URL"),
	)
	// The header checkbox mirrors the row layout; it selects nothing
	return container.NewBorder(nil, nil, widget.NewCheck("", nil),
		widget.NewLabel("Actions"), headers)
}

func boldLabel(text string) *widget.Label {
	label := widget.NewLabel(text)
	label.TextStyle.Bold = true
	return label
}

func (dv *dashboardView) buildList() *widget.List {
	list := widget.NewList(
		func() int {
			return len(dv.meetings)
		},
		func() fyne.CanvasObject {
			check := widget.NewCheck("", nil)

			agenda := widget.NewLabel("Agenda")
			agenda.TextStyle.Bold = true
			agenda.Truncation = fyne.TextTruncateEllipsis
			status := widget.NewLabel("Status")
			date := widget.NewLabel("Date")
			start := widget.NewLabel("Time")
			link := widget.NewHyperlink("URL", nil)
			link.Truncation = fyne.TextTruncateEllipsis

			viewButton := widget.NewButtonWithIcon("", theme.VisibilityIcon(), nil)
			editButton := widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), nil)
			deleteButton := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

			info := container.NewGridWithColumns(5, agenda, status, date, start, link)
			actions := container.NewHBox(viewButton, editButton, deleteButton)
			return container.NewBorder(nil, nil, check, actions, info)
		},
		func(i widget.ListItemID, o fyne.CanvasObject) {
			if i >= len(dv.meetings) {
				return
			}
			meeting := dv.meetings[i]

			row := o.(*fyne.Container)
			info := row.Objects[0].(*fyne.Container)
			check := row.Objects[1].(*widget.Check)
			actions := row.Objects[2].(*fyne.Container)

			// Detach the handler before syncing the checked state so the
			// rebind does not fire a toggle
			check.OnChanged = nil
			check.SetChecked(dv.md.store.Selected(meeting.ID))
			check.OnChanged = func(bool) {
				dv.md.store.ToggleSelected(meeting.ID)
			}

			info.Objects[0].(*widget.Label).SetText(meeting.Agenda)
			info.Objects[1].(*widget.Label).SetText(meeting.Status.Label())
			info.Objects[2].(*widget.Label).SetText(meeting.FormatDate())
			info.Objects[3].(*widget.Label).SetText(meeting.FormatTime())

			link := info.Objects[4].(*widget.Hyperlink)
			link.SetText(meeting.MeetingURL)
			if err := link.SetURLFromString(meeting.MeetingURL); err != nil {
				log.Printf("Invalid meeting URL for meeting %d: %v", meeting.ID, err)
			}

			actions.Objects[0].(*widget.Button).OnTapped = func() {
				dv.md.navigator.Navigate(ViewPath(meeting.ID))
			}
			actions.Objects[1].(*widget.Button).OnTapped = func() {
				dv.md.navigator.Navigate(EditPath(meeting.ID))
			}
			actions.Objects[2].(*widget.Button).OnTapped = func() {
				dv.confirmDelete(meeting)
			}
		},
	)

	// Row activation opens the detail view, like clicking a table row
	list.OnSelected = func(i widget.ListItemID) {
		list.UnselectAll()
		if i < len(dv.meetings) {
			dv.md.navigator.Navigate(ViewPath(dv.meetings[i].ID))
		}
	}

	return list
}

func (dv *dashboardView) reload() {
	dv.errorLabel.Hide()

	go func() {
		meetings, err := dv.md.store.Refresh(dv.ctx)
		if dv.ctx.Err() != nil {
			// View was navigated away from; discard the result
			return
		}
		if err != nil {
			if api.IsUnauthorized(err) {
				dv.md.handleUnauthorized()
				return
			}
			log.Printf("Error fetching meetings: %v", err)
			fyne.Do(func() {
				dv.showError("Failed to load meetings. Please try again.")
			})
			return
		}

		fyne.Do(func() {
			dv.meetings = meetings
			dv.refreshBody()
		})
	}()
}

// refreshBody swaps between the list and the empty state
func (dv *dashboardView) refreshBody() {
	if len(dv.meetings) == 0 {
		empty := widget.NewLabel("No meetings scheduled.\n\nGet started by creating a new meeting.")
		empty.Alignment = fyne.TextAlignCenter
		dv.body.Objects = []fyne.CanvasObject{container.NewCenter(empty)}
	} else {
		dv.body.Objects = []fyne.CanvasObject{dv.list}
		dv.list.Refresh()
	}
	dv.body.Refresh()
}

func (dv *dashboardView) showError(message string) {
	dv.errorLabel.SetText(message)
	dv.errorLabel.Show()
}

func (dv *dashboardView) confirmDelete(meeting models.Meeting) {
	dialog.ShowConfirm("Delete Meeting",
		"Are you sure you want to delete this meeting?",
		func(confirmed bool) {
			if !confirmed {
				return
			}
			dv.deleteMeeting(meeting.ID)
		}, dv.md.window)
}

func (dv *dashboardView) deleteMeeting(id int) {
	go func() {
		err := dv.md.store.Delete(dv.ctx, id)
		if dv.ctx.Err() != nil {
			return
		}
		if err != nil {
			if api.IsUnauthorized(err) {
				dv.md.handleUnauthorized()
				return
			}
			log.Printf("Error deleting meeting %d: %v", id, err)
			fyne.Do(func() {
				dv.showError("Failed to delete meeting. Please try again.")
			})
			return
		}

		// Optimistic removal: the store already dropped the row, no re-fetch
		fyne.Do(func() {
			dv.meetings = dv.md.store.Meetings()
			dv.refreshBody()
		})
	}()
}

func (dv *dashboardView) exportCalendar() {
	meetings := dv.md.store.Meetings()
	data, err := calendar.Export(meetings)
	if err != nil {
		dialog.ShowError(err, dv.md.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, dv.md.window)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(data); err != nil {
			log.Printf("Error writing calendar export: %v", err)
			dialog.ShowError(err, dv.md.window)
			return
		}
		log.Printf("Exported meetings to %s", writer.URI())
	}, dv.md.window)
	saveDialog.SetFileName("meetings.ics")
	saveDialog.Show()
}
