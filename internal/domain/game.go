package domain

import "time"

// Game is a single multiple-choice trivia question. It is immutable once generated.
type Game struct {
	ID            string    `json:"id"`
	Order         int       `json:"order"`
	Title         string    `json:"title"`
	Question      string    `json:"question"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
	Explanation   string    `json:"explanation"`
	FolderID      string    `json:"folderId"`
	Topic         string    `json:"topic,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
}

func (g Game) HasOption(option string) bool {
	for _, o := range g.Options {
		if o == option {
			return true
		}
	}
	return false
}

func (g Game) IsCorrect(option string) bool {
	return option == g.CorrectAnswer
}
