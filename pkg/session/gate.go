package session

import (
	"context"
	"log"
	"strings"
)

// Routes exposed by the client-side navigation surface
const (
	RouteLogin       = "/login"
	RouteMeetings    = "/meetings"
	RouteMeetingNew  = "/meetings/new"
	RouteMeetingEdit = "/meetings/edit/" // followed by the meeting id
	RouteMeetingView = "/meetings/view/" // followed by the meeting id
)

// Decision is the gate's answer for a requested route
type Decision int

const (
	Allow Decision = iota
	RedirectToLogin
	RedirectToMeetings
)

// Guard decides route access from the requested path and the current
// authentication state. Protected routes require authentication, the login
// route is hidden from an active session, and unmatched paths redirect by
// authentication state.
func Guard(path string, authenticated bool) Decision {
	if path == RouteLogin {
		if authenticated {
			return RedirectToMeetings
		}
		return Allow
	}

	if isProtected(path) {
		if authenticated {
			return Allow
		}
		return RedirectToLogin
	}

	if authenticated {
		return RedirectToMeetings
	}
	return RedirectToLogin
}

func isProtected(path string) bool {
	if path == RouteMeetings || path == RouteMeetingNew {
		return true
	}
	for _, prefix := range []string{RouteMeetingEdit, RouteMeetingView} {
		if strings.HasPrefix(path, prefix) && path != prefix {
			return true
		}
	}
	return false
}

// Authenticator is the transport the gate exchanges credentials through.
// Satisfied by the API client.
type Authenticator interface {
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
}

// Gate owns the transition between the unauthenticated and authenticated
// states of a Session.
type Gate struct {
	session *Session
	auth    Authenticator
}

// NewGate creates a gate guarding the given session
func NewGate(session *Session, auth Authenticator) *Gate {
	return &Gate{session: session, auth: auth}
}

// Login exchanges credentials with the authentication endpoint. The session
// flips to authenticated only on success; on failure it keeps its prior
// state and the error tells invalid credentials apart from transport
// failure.
func (g *Gate) Login(ctx context.Context, username, password string) error {
	if err := g.auth.Login(ctx, username, password); err != nil {
		return err
	}
	g.session.setAuthenticated(true)
	return nil
}

// Logout requests server-side session termination. The local flag is cleared
// unconditionally so a failed request can never leave a stuck authenticated
// UI; the transport error is still returned for reporting.
func (g *Gate) Logout(ctx context.Context) error {
	err := g.auth.Logout(ctx)
	g.session.setAuthenticated(false)
	if err != nil {
		log.Printf("Logout request failed (session cleared locally): %v", err)
	}
	return err
}

// HandleUnauthorized records an authorization-denied response from any
// endpoint: the session is no longer valid, so the next Guard call lands on
// the login route.
func (g *Gate) HandleUnauthorized() {
	g.session.setAuthenticated(false)
}
