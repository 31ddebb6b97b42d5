package response

import "github.com/quizcourse/quizcourse/internal/domain"

type GenerateGamesResponse struct {
	FolderID string        `json:"folderId"`
	Games    []domain.Game `json:"games"`
}
