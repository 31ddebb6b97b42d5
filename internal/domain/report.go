package domain

import "time"

// Report is an issue raised by a user about a generated game or folder.
type Report struct {
	ID        string    `json:"id"`
	GameID    string    `json:"gameId,omitempty"`
	FolderID  string    `json:"folderId,omitempty"`
	Reason    string    `json:"reason"`
	Details   string    `json:"details,omitempty"`
	CreatedBy string    `json:"createdBy,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
