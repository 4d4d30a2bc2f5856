package client

// Priority mirrors aria-live politeness levels.
type Priority string

const (
	Polite    Priority = "polite"
	Assertive Priority = "assertive"
)

// Announcer receives user-facing notifications from the decision flow,
// the way a screen-reader live region would.
type Announcer interface {
	Announce(message string, priority Priority)
}

type NopAnnouncer struct{}

func (NopAnnouncer) Announce(string, Priority) {}
