package domain

import "time"

const (
	// RequiredInterests is the number of interests a user must pick before
	// the main app becomes reachable.
	RequiredInterests = 5

	xpPerPlayedGame = 10
)

type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          string     `json:"name"`
	Lastname      string     `json:"lastname"`
	BirthDate     string     `json:"birthDate,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Interests     []string   `json:"interests"`
	PlayedGameIDs []string   `json:"playedGameIds"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
}

// HasEnoughInterests reports whether onboarding is complete.
func (u *User) HasEnoughInterests() bool {
	return u != nil && len(u.Interests) >= RequiredInterests
}

// XP is derived from the number of played games.
func (u *User) XP() int {
	if u == nil {
		return 0
	}
	return len(u.PlayedGameIDs) * xpPerPlayedGame
}

func (u *User) HasPlayed(gameID string) bool {
	if u == nil {
		return false
	}
	for _, id := range u.PlayedGameIDs {
		if id == gameID {
			return true
		}
	}
	return false
}

func (u *User) FullName() string {
	if u == nil {
		return ""
	}
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}
