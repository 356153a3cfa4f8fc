package entity

import "time"

// AuthOutcome is the verdict of a single credential verification.
type AuthOutcome string

const (
	AuthOutcomeAuthenticated AuthOutcome = "authenticated"
	AuthOutcomeMismatch      AuthOutcome = "mismatch"
	AuthOutcomeNotFound      AuthOutcome = "not_found"
	// AuthOutcomeUnavailable is recorded when no verdict could be reached.
	AuthOutcomeUnavailable AuthOutcome = "unavailable"
)

// AuthEvent records one verification attempt. It never carries the password.
type AuthEvent struct {
	RequestID  string      `json:"request_id,omitempty"`
	Username   string      `json:"username"`
	Outcome    AuthOutcome `json:"outcome"`
	RemoteIP   string      `json:"remote_ip,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
