package service

// Session is per-process sign-in state. It is never persisted; the
// remember flag on an account stands in for it across runs. The only
// transitions are LoggedOut -> LoggedIn on a successful authenticate or a
// remembered account found at startup, and LoggedIn -> LoggedOut on
// logout.
type Session struct {
	LoggedIn bool
	Username string
}

func (s *Session) Login(username string) {
	s.LoggedIn = true
	s.Username = username
}

func (s *Session) Logout() {
	s.LoggedIn = false
	s.Username = ""
}
