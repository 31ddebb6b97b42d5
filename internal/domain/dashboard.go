package domain

type Dashboard struct {
	User    User     `json:"user"`
	Folders []Folder `json:"folders"`
}

// Overview is the dashboard enriched with client-side state.
type Overview struct {
	Dashboard
	XP     int
	Energy Energy
}
