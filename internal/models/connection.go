package models

// ConnectionStatus is the relationship state between the viewer and a
// target profile. Transitions only move forward: none -> pending -> accepted.
type ConnectionStatus string

const (
	ConnectionNone     ConnectionStatus = "none"
	ConnectionPending  ConnectionStatus = "pending"
	ConnectionAccepted ConnectionStatus = "accepted"
)

// CanRequest reports whether a new connection request is allowed from this
// state. A pending or accepted connection must disable the initiating
// action; this is the client-side guard against duplicate requests.
func (s ConnectionStatus) CanRequest() bool {
	return s == ConnectionNone || s == ""
}

// ParseConnectionStatus maps a raw value, defaulting to none.
func ParseConnectionStatus(raw string) ConnectionStatus {
	switch ConnectionStatus(raw) {
	case ConnectionPending:
		return ConnectionPending
	case ConnectionAccepted:
		return ConnectionAccepted
	default:
		return ConnectionNone
	}
}
