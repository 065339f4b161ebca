// Package session holds the per-browser session flags that drive screen
// selection, and the encrypted cookie codec that carries them between
// requests.
package session

import "github.com/google/uuid"

type (
	// Session is a pure flag holder; all business rules live in the screen
	// router and the credential store. Username is non-empty only while
	// Authenticated is true.
	Session struct {
		ID            uuid.UUID `json:"id"`
		Authenticated bool      `json:"authenticated"`
		Username      string    `json:"username,omitempty"`
		ShowLogin     bool      `json:"show_login"`
	}
)

// New returns a fresh anonymous session with default flags.
func New() *Session {
	s := &Session{}
	s.ResetToAnonymous()
	return s
}

// ResetToAnonymous restores the initial defaults. Used both on first view
// and on logout.
func (s *Session) ResetToAnonymous() {
	s.ID = uuid.Nil
	s.Authenticated = false
	s.Username = ""
	s.ShowLogin = true
}

// LogIn marks the session authenticated. The caller must have verified the
// credentials already.
func (s *Session) LogIn(username string) {
	s.ID = uuid.New()
	s.Authenticated = true
	s.Username = username
}

// ToggleToSignup switches the anonymous view to the sign-up screen.
func (s *Session) ToggleToSignup() {
	s.ShowLogin = false
}

// ToggleToLogin switches the anonymous view back to the login screen.
func (s *Session) ToggleToLogin() {
	s.ShowLogin = true
}
