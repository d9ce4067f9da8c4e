package main

import (
	"context"
	"log"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"github.com/Jayesh-JainX/Meeting-Dashboard/pkg/session"
)

// Navigator swaps the window content between views. Every navigation runs
// through the session gate first, and cancels the outgoing view's context
// so an abandoned view's in-flight fetch is discarded instead of updating a
// view that is no longer mounted.
type Navigator struct {
	md          *MeetingDashboard
	currentPath string
	viewCancel  context.CancelFunc
}

func NewNavigator(md *MeetingDashboard) *Navigator {
	return &Navigator{md: md}
}

// EditPath builds the edit route for a meeting id
func EditPath(id int) string {
	return session.RouteMeetingEdit + strconv.Itoa(id)
}

// ViewPath builds the detail route for a meeting id
func ViewPath(id int) string {
	return session.RouteMeetingView + strconv.Itoa(id)
}

// Navigate moves to the given path, applying the gate's decision. Must be
// called on the UI thread (wrap with fyne.Do from goroutines).
func (n *Navigator) Navigate(path string) {
	authenticated := n.md.session.Authenticated()

	switch session.Guard(path, authenticated) {
	case session.RedirectToLogin:
		path = session.RouteLogin
	case session.RedirectToMeetings:
		path = session.RouteMeetings
	}

	n.CancelCurrentView()
	ctx, cancel := context.WithCancel(context.Background())
	n.viewCancel = cancel
	n.currentPath = path

	log.Printf("Navigating to %s", path)
	view := n.buildView(ctx, path)

	if authenticated && path != session.RouteLogin {
		sidebar := buildSidebar(n.md)
		n.md.window.SetContent(container.NewBorder(nil, nil, sidebar, nil, view))
	} else {
		n.md.window.SetContent(view)
	}
}

// CurrentPath returns the path of the mounted view
func (n *Navigator) CurrentPath() string {
	return n.currentPath
}

// CancelCurrentView cancels the mounted view's context
func (n *Navigator) CancelCurrentView() {
	if n.viewCancel != nil {
		n.viewCancel()
		n.viewCancel = nil
	}
}

func (n *Navigator) buildView(ctx context.Context, path string) fyne.CanvasObject {
	switch {
	case path == session.RouteLogin:
		return newLoginView(n.md)
	case path == session.RouteMeetings:
		return newDashboardView(n.md, ctx)
	case path == session.RouteMeetingNew:
		return newMeetingFormView(n.md, ctx, 0)
	case strings.HasPrefix(path, session.RouteMeetingEdit):
		if id, ok := meetingIDFromPath(path, session.RouteMeetingEdit); ok {
			return newMeetingFormView(n.md, ctx, id)
		}
	case strings.HasPrefix(path, session.RouteMeetingView):
		if id, ok := meetingIDFromPath(path, session.RouteMeetingView); ok {
			return newMeetingDetailView(n.md, ctx, id)
		}
	}

	// Unparseable id on a protected route falls back to the list
	log.Printf("Falling back to meetings list for path %s", path)
	n.currentPath = session.RouteMeetings
	return newDashboardView(n.md, ctx)
}

func meetingIDFromPath(path, prefix string) (int, bool) {
	id, err := strconv.Atoi(strings.TrimPrefix(path, prefix))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
