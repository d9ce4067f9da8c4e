package calendar

import (
	"bytes"
	"fmt"
	"log"
	"time"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/models"
	"github.com/emersion/go-ical"
)

// exportDuration is the block length written for each meeting; records
// carry a start time but no end time.
const exportDuration = time.Hour

// Export renders the given meetings as an iCalendar document, one VEVENT
// per meeting. Meetings whose date or start time cannot be parsed are
// skipped rather than failing the whole export.
func Export(meetings []models.Meeting) ([]byte, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, "-//Meeting Dashboard//meeting-dashboard//EN")

	exported := 0
	for _, meeting := range meetings {
		start, err := meeting.StartDateTime()
		if err != nil {
			log.Printf("Skipping meeting %d in export (bad date/time): %v", meeting.ID, err)
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, fmt.Sprintf("meeting-%d@meeting-dashboard", meeting.ID))
		event.Props.SetDateTime(ical.PropDateTimeStamp, time.Now())
		event.Props.SetDateTime(ical.PropDateTimeStart, start)
		event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(exportDuration))
		event.Props.SetText(ical.PropSummary, meeting.Agenda)
		event.Props.SetText(ical.PropStatus, icalStatus(meeting.Status))
		if meeting.MeetingURL != "" {
			event.Props.SetText(ical.PropURL, meeting.MeetingURL)
		}

		cal.Children = append(cal.Children, event.Component)
		exported++
	}

	if exported == 0 {
		return nil, fmt.Errorf("no exportable meetings")
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("failed to encode calendar: %w", err)
	}

	log.Printf("Exported %d of %d meetings to iCalendar", exported, len(meetings))
	return buf.Bytes(), nil
}

func icalStatus(status models.Status) string {
	switch status {
	case models.StatusCancelled:
		return "CANCELLED"
	case models.StatusInReview:
		return "TENTATIVE"
	default:
		return "CONFIRMED"
	}
}
