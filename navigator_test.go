package main

import (
	"testing"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

func TestMeetingIDFromPath(t *testing.T) {
	cases := []struct {
		path   string
		prefix string
		wantID int
		wantOK bool
	}{
		{"/meetings/edit/5", session.RouteMeetingEdit, 5, true},
		{"/meetings/view/12", session.RouteMeetingView, 12, true},
		{"/meetings/edit/", session.RouteMeetingEdit, 0, false},
		{"/meetings/edit/abc", session.RouteMeetingEdit, 0, false},
		{"/meetings/edit/0", session.RouteMeetingEdit, 0, false},
		{"/meetings/edit/-3", session.RouteMeetingEdit, 0, false},
	}

	for _, tc := range cases {
		id, ok := meetingIDFromPath(tc.path, tc.prefix)
		if id != tc.wantID || ok != tc.wantOK {
			t.Errorf("meetingIDFromPath(%q) = (%d, %v), want (%d, %v)",
				tc.path, id, ok, tc.wantID, tc.wantOK)
		}
	}
}

func TestPathBuilders(t *testing.T) {
	if got := EditPath(7); got != "/meetings/edit/7" {
		t.Errorf("EditPath(7) = %q", got)
	}
	if got := ViewPath(7); got != "/meetings/view/7" {
		t.Errorf("ViewPath(7) = %q", got)
	}

	// Built paths round-trip through the parser
	if id, ok := meetingIDFromPath(EditPath(42), session.RouteMeetingEdit); !ok || id != 42 {
		t.Errorf("EditPath round-trip = (%d, %v)", id, ok)
	}
}

func TestRemindLabelRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 5, 10, 15, 30} {
		if got := remindMinutes(remindLabel(minutes)); got != minutes {
			t.Errorf("remindMinutes(remindLabel(%d)) = %d", minutes, got)
		}
	}

	if got := remindLabel(0); got != "Disabled" {
		t.Errorf("remindLabel(0) = %q, want Disabled", got)
	}
	if got := remindMinutes("garbage"); got != 0 {
		t.Errorf("remindMinutes(garbage) = %d, want 0", got)
	}
}
