package domain

import "time"

// Folder is a named collection of generated quiz games, shown as a "course".
type Folder struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Prompt      string    `json:"prompt,omitempty"`
	CreatedBy   string    `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	GameIDs     []string  `json:"gameIds"`
}

type FolderWithGames struct {
	Folder Folder `json:"folder"`
	Games  []Game `json:"games"`
}

type Difficulty string

const (
	DifficultySame   Difficulty = "same"
	DifficultyEasier Difficulty = "easier"
	DifficultyHarder Difficulty = "harder"
)

const DefaultGenerationDuration = 5
