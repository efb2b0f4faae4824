package save

import "time"

// Meta is the plaintext, non-authenticated summary stored alongside the
// encrypted payloads. It exists for listing UIs only: it is never trusted
// for game logic and may go stale if both payloads are unreadable — the one
// case where a picker still renders a row for a slot that cannot load.
type Meta struct {
	SaveID        string    `json:"save_id"`
	DisplayName   string    `json:"display_name"`
	Day           int       `json:"day"`
	MilesTraveled int       `json:"miles_traveled"`
	PartySize     int       `json:"party_size"`
	SavedAt       time.Time `json:"saved_at"`
}
