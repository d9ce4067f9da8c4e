package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the server-defined lifecycle state of a meeting
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusInReview  Status = "in_review"
	StatusCancelled Status = "cancelled"
	StatusOverdue   Status = "overdue"
	StatusPublished Status = "published"
)

// AllStatuses lists every valid status in display order
var AllStatuses = []Status{
	StatusUpcoming,
	StatusInReview,
	StatusCancelled,
	StatusOverdue,
	StatusPublished,
}

// Valid reports whether the status is one of the server's choices
func (s Status) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Label returns the human-readable form of the status ("in_review" -> "In Review")
func (s Status) Label() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// Meeting is a server-owned meeting record. Field names and formats match
// the REST API wire format: date_of_meeting is "YYYY-MM-DD" and start_time
// is "HH:MM:SS".
type Meeting struct {
	ID            int    `json:"id"`
	Agenda        string `json:"agenda"`
	Status        Status `json:"status"`
	DateOfMeeting string `json:"date_of_meeting"`
	StartTime     string `json:"start_time"`
	MeetingURL    string `json:"meeting_url"`
}

// FormatDate renders date_of_meeting for display ("Jun 1, 2024")
func (m *Meeting) FormatDate() string {
	t, err := time.Parse("2006-01-02", m.DateOfMeeting)
	if err != nil {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// FormatTime renders start_time for display in 12-hour form ("9:30 AM")
func (m *Meeting) FormatTime() string {
	t, err := time.Parse("15:04:05", NormalizeStartTime(m.StartTime))
	if err != nil {
		return "N/A"
	}
	return t.Format("3:04 PM")
}

// StartDateTime combines date_of_meeting and start_time into a local time,
// for reminder scheduling and calendar export
func (m *Meeting) StartDateTime() (time.Time, error) {
	return time.ParseInLocation("2006-01-02 15:04:05",
		m.DateOfMeeting+" "+NormalizeStartTime(m.StartTime), time.Local)
}

// MeetingDraft is the user-entered form state for creating or updating a
// meeting. It is validated locally before any network call.
type MeetingDraft struct {
	Agenda        string
	Status        Status
	DateOfMeeting string
	StartTime     string
	MeetingURL    string
}

// Validate checks that every required field is present, naming each missing
// field, and that the status is a known value. An unset status defaults to
// upcoming.
func (d *MeetingDraft) Validate() error {
	missing := []string{}
	if strings.TrimSpace(d.Agenda) == "" {
		missing = append(missing, "agenda")
	}
	if strings.TrimSpace(d.DateOfMeeting) == "" {
		missing = append(missing, "date_of_meeting")
	}
	if strings.TrimSpace(d.StartTime) == "" {
		missing = append(missing, "start_time")
	}
	if strings.TrimSpace(d.MeetingURL) == "" {
		missing = append(missing, "meeting_url")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%s is required", strings.Join(missing, ", "))
	}

	if d.Status == "" {
		d.Status = StatusUpcoming
	}
	if !d.Status.Valid() {
		return fmt.Errorf("status %q is not a valid status", d.Status)
	}

	return nil
}

// Record converts the draft into the wire-format record sent to the server.
// The start time is normalized and the status defaulted; the ID is left for
// the server to assign.
func (d *MeetingDraft) Record() Meeting {
	status := d.Status
	if status == "" {
		status = StatusUpcoming
	}
	return Meeting{
		Agenda:        d.Agenda,
		Status:        status,
		DateOfMeeting: d.DateOfMeeting,
		StartTime:     NormalizeStartTime(d.StartTime),
		MeetingURL:    d.MeetingURL,
	}
}

// DraftFromMeeting builds an editable draft from an existing record. The
// start time is trimmed to HH:MM the way the edit form presents it.
func DraftFromMeeting(m Meeting) MeetingDraft {
	startTime := m.StartTime
	if len(startTime) >= 5 {
		startTime = startTime[:5]
	}
	return MeetingDraft{
		Agenda:        m.Agenda,
		Status:        m.Status,
		DateOfMeeting: m.DateOfMeeting,
		StartTime:     startTime,
		MeetingURL:    m.MeetingURL,
	}
}

// NormalizeStartTime appends seconds to an HH:MM value ("09:30" ->
// "09:30:00"). Values already carrying seconds pass through unchanged.
func NormalizeStartTime(s string) string {
	if strings.Count(s, ":") == 1 {
		return s + ":00"
	}
	return s
}
