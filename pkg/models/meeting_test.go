package models

import (
	"strings"
	"testing"
	"time"
)

func TestNormalizeStartTime(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"09:30", "09:30:00"},
		{"14:00", "14:00:00"},
		{"09:30:00", "09:30:00"},
		{"09:30:45", "09:30:45"},
		{"", ""},
		{"0930", "0930"},
	}

	for _, tc := range cases {
		if got := NormalizeStartTime(tc.in); got != tc.want {
			t.Errorf("NormalizeStartTime(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestStatusValid(t *testing.T) {
	for _, status := range AllStatuses {
		if !status.Valid() {
			t.Errorf("status %q should be valid", status)
		}
	}

	for _, status := range []Status{"", "done", "Upcoming", "in review"} {
		if status.Valid() {
			t.Errorf("status %q should not be valid", status)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	cases := []struct {
		status Status
		want   string
	}{
		{StatusUpcoming, "Upcoming"},
		{StatusInReview, "In Review"},
		{StatusCancelled, "Cancelled"},
		{StatusOverdue, "Overdue"},
		{StatusPublished, "Published"},
	}

	for _, tc := range cases {
		if got := tc.status.Label(); got != tc.want {
			t.Errorf("Label(%q) = %q, want %q", tc.status, got, tc.want)
		}
	}
}

func validDraft() MeetingDraft {
	return MeetingDraft{
		Agenda:        "Weekly Sync",
		Status:        StatusUpcoming,
		DateOfMeeting: "2026-09-01",
		StartTime:     "09:30",
		MeetingURL:    "https://zoom.us/j/123",
	}
}

func TestDraftValidate(t *testing.T) {
	draft := validDraft()
	if err := draft.Validate(); err != nil {
		t.Fatalf("valid draft rejected: %v", err)
	}
}

func TestDraftValidateMissingFields(t *testing.T) {
	draft := MeetingDraft{Agenda: "Only agenda"}
	err := draft.Validate()
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	for _, field := range []string{"date_of_meeting", "start_time", "meeting_url"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q should name missing field %q", err, field)
		}
	}
	if strings.Contains(err.Error(), "agenda") {
		t.Errorf("error %q should not name the present field agenda", err)
	}
}

func TestDraftValidateDefaultsStatus(t *testing.T) {
	draft := validDraft()
	draft.Status = ""
	if err := draft.Validate(); err != nil {
		t.Fatalf("draft with empty status rejected: %v", err)
	}
	if draft.Status != StatusUpcoming {
		t.Errorf("empty status should default to %q, got %q", StatusUpcoming, draft.Status)
	}
}

func TestDraftValidateRejectsUnknownStatus(t *testing.T) {
	draft := validDraft()
	draft.Status = "done"
	if err := draft.Validate(); err == nil {
		t.Fatal("expected error for unknown status, got nil")
	}
}

func TestDraftRecordNormalizesTime(t *testing.T) {
	draft := validDraft()
	record := draft.Record()

	if record.StartTime != "09:30:00" {
		t.Errorf("Record start time = %q, want %q", record.StartTime, "09:30:00")
	}
	if record.ID != 0 {
		t.Errorf("Record should leave the id unset, got %d", record.ID)
	}
}

func TestDraftFromMeetingTrimsSeconds(t *testing.T) {
	meeting := Meeting{
		ID:            7,
		Agenda:        "Review",
		Status:        StatusInReview,
		DateOfMeeting: "2026-09-01",
		StartTime:     "14:15:00",
		MeetingURL:    "https://meet.example.com/abc",
	}

	draft := DraftFromMeeting(meeting)
	if draft.StartTime != "14:15" {
		t.Errorf("draft start time = %q, want %q", draft.StartTime, "14:15")
	}
	if draft.Agenda != meeting.Agenda || draft.Status != meeting.Status {
		t.Errorf("draft did not carry over meeting fields: %+v", draft)
	}
}

func TestMeetingFormatting(t *testing.T) {
	meeting := Meeting{DateOfMeeting: "2026-09-01", StartTime: "14:15:00"}

	if got := meeting.FormatDate(); got != "Sep 1, 2026" {
		t.Errorf("FormatDate = %q, want %q", got, "Sep 1, 2026")
	}
	if got := meeting.FormatTime(); got != "2:15 PM" {
		t.Errorf("FormatTime = %q, want %q", got, "2:15 PM")
	}

	bad := Meeting{DateOfMeeting: "not-a-date", StartTime: "25:99"}
	if got := bad.FormatDate(); got != "N/A" {
		t.Errorf("FormatDate on bad input = %q, want N/A", got)
	}
	if got := bad.FormatTime(); got != "N/A" {
		t.Errorf("FormatTime on bad input = %q, want N/A", got)
	}
}

func TestStartDateTime(t *testing.T) {
	meeting := Meeting{DateOfMeeting: "2026-09-01", StartTime: "09:30"}

	start, err := meeting.StartDateTime()
	if err != nil {
		t.Fatalf("StartDateTime failed: %v", err)
	}

	want := time.Date(2026, time.September, 1, 9, 30, 0, 0, time.Local)
	if !start.Equal(want) {
		t.Errorf("StartDateTime = %v, want %v", start, want)
	}

	bad := Meeting{DateOfMeeting: "2026-09-01", StartTime: "bad"}
	if _, err := bad.StartDateTime(); err == nil {
		t.Error("expected error for unparseable start time")
	}
}
