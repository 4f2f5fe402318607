package domain

import "time"

// Competency is a skill dimension of the active specialty profile.
type Competency struct {
	ID        string
	Name      string
	Category  string
	Specialty string
	CreatedAt time.Time
}
