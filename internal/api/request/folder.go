package request

import (
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/quizcourse/quizcourse/internal/domain"
)

type CreateFolderRequest struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Prompt      string `json:"prompt,omitempty"`
}

func (req *CreateFolderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 120)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Prompt, validation.Length(0, 1000)),
	)
}

// UpdateFolderRequest only changes the fields that are set.
type UpdateFolderRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Prompt      *string `json:"prompt,omitempty"`
}

func (req *UpdateFolderRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.NilOrNotEmpty, validation.Length(1, 120)),
		validation.Field(&req.Description, validation.Length(0, 500)),
		validation.Field(&req.Prompt, validation.Length(0, 1000)),
	)
}

type GenerateGamesRequest struct {
	Duration   int               `json:"duration"`
	Difficulty domain.Difficulty `json:"difficulty"`
	Language   domain.Language   `json:"language"`
}

func (req *GenerateGamesRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Duration, validation.Required, validation.In(5, 10, 15)),
		validation.Field(&req.Difficulty, validation.Required,
			validation.In(domain.DifficultySame, domain.DifficultyEasier, domain.DifficultyHarder)),
		validation.Field(&req.Language, validation.Required,
			validation.In(domain.LanguageEnglish, domain.LanguageSpanish)),
	)
}
