package session

import (
	"context"
	"errors"
	"testing"
)

func TestGuard(t *testing.T) {
	cases := []struct {
		path          string
		authenticated bool
		want          Decision
	}{
		{RouteLogin, false, Allow},
		{RouteLogin, true, RedirectToMeetings},

		{RouteMeetings, true, Allow},
		{RouteMeetings, false, RedirectToLogin},
		{RouteMeetingNew, true, Allow},
		{RouteMeetingNew, false, RedirectToLogin},
		{"/meetings/edit/5", true, Allow},
		{"/meetings/edit/5", false, RedirectToLogin},
		{"/meetings/view/12", true, Allow},
		{"/meetings/view/12", false, RedirectToLogin},

		// A bare edit/view prefix with no id is not a protected route
		{RouteMeetingEdit, true, RedirectToMeetings},
		{RouteMeetingEdit, false, RedirectToLogin},

		// Unmatched paths redirect by authentication state
		{"/", true, RedirectToMeetings},
		{"/", false, RedirectToLogin},
		{"/nonsense", true, RedirectToMeetings},
		{"/nonsense", false, RedirectToLogin},
	}

	for _, tc := range cases {
		if got := Guard(tc.path, tc.authenticated); got != tc.want {
			t.Errorf("Guard(%q, %v) = %v, want %v", tc.path, tc.authenticated, got, tc.want)
		}
	}
}

// fakeAuthenticator scripts the transport's answers for gate tests
type fakeAuthenticator struct {
	loginErr  error
	logoutErr error

	loginCalls  int
	logoutCalls int
}

func (f *fakeAuthenticator) Login(ctx context.Context, username, password string) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeAuthenticator) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

func newTestGate(auth *fakeAuthenticator) (*Gate, *Session) {
	session := NewSession()
	return NewGate(session, auth), session
}

func TestGateLoginSuccess(t *testing.T) {
	auth := &fakeAuthenticator{}
	gate, session := newTestGate(auth)

	if session.Authenticated() {
		t.Fatal("session should start unauthenticated")
	}

	if err := gate.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if !session.Authenticated() {
		t.Error("session should be authenticated after successful login")
	}
	if auth.loginCalls != 1 {
		t.Errorf("expected 1 login call, got %d", auth.loginCalls)
	}
}

func TestGateLoginFailureKeepsState(t *testing.T) {
	wantErr := errors.New("invalid credentials")
	auth := &fakeAuthenticator{loginErr: wantErr}
	gate, session := newTestGate(auth)

	err := gate.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Login error = %v, want %v", err, wantErr)
	}
	if session.Authenticated() {
		t.Error("failed login must not authenticate the session")
	}

	// A retry with good credentials recovers
	auth.loginErr = nil
	if err := gate.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("retry login failed: %v", err)
	}
	if !session.Authenticated() {
		t.Error("session should be authenticated after retry")
	}
}

func TestGateLogoutClearsLocallyOnError(t *testing.T) {
	wantErr := errors.New("connection refused")
	auth := &fakeAuthenticator{logoutErr: wantErr}
	gate, session := newTestGate(auth)

	if err := gate.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	err := gate.Logout(context.Background())
	if !errors.Is(err, wantErr) {
		t.Fatalf("Logout error = %v, want %v", err, wantErr)
	}
	if session.Authenticated() {
		t.Error("session must be cleared locally even when the logout request fails")
	}
}

func TestGateHandleUnauthorized(t *testing.T) {
	auth := &fakeAuthenticator{}
	gate, session := newTestGate(auth)

	if err := gate.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	gate.HandleUnauthorized()
	if session.Authenticated() {
		t.Error("session should be unauthenticated after an authorization denial")
	}
	if Guard(RouteMeetings, session.Authenticated()) != RedirectToLogin {
		t.Error("guard should send the next navigation to the login route")
	}
}
