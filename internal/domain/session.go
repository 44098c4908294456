package domain

import "time"

// Session is the locally persisted login record. Its ID doubles as the
// bearer token in REST mode; this is the portal's demo-only auth posture,
// not a hardened credential scheme.
type Session struct {
	ID        string
	Name      string
	CreatedAt time.Time
}
