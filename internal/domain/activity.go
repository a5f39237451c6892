package domain

// Activity represents one extracurricular offering and its roster of
// registered participant emails. Activities are keyed by name in the roster
// store; the name itself never changes after seeding.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}
