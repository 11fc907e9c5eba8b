// Package state persists the client's local context: the auth session and
// a handful of cosmetic UI preferences (selected competition, tab,
// collapsed rounds). None of it is authoritative; losing the file only
// costs a login and a couple of clicks.
package state

// Preference keys.
const (
	PrefSelectedCompetition = "selected_competition"
	PrefSelectedTab         = "selected_tab"
	PrefCollapsedRounds     = "collapsed_rounds"
)

// Session is the persisted login state.
type Session struct {
	Token  string
	UserID int
}

// Store is the local persistence boundary.
type Store interface {
	// Session returns the saved session; ok=false when logged out.
	Session() (Session, bool)
	// SaveSession replaces the saved session wholesale.
	SaveSession(s Session) error
	// ClearSession logs out locally.
	ClearSession() error

	// Pref returns a preference value; ok=false when unset.
	Pref(key string) (string, bool)
	SetPref(key, value string) error
	DeletePref(key string) error

	Close() error
}
