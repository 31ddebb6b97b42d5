package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errReportTarget = errors.New("a report needs a game or a folder")

var reportReasons = []interface{}{"wrong_answer", "unclear_question", "offensive", "other"}

type ReportRequest struct {
	GameID   string `json:"gameId,omitempty"`
	FolderID string `json:"folderId,omitempty"`
	Reason   string `json:"reason"`
	Details  string `json:"details,omitempty"`
}

func (req *ReportRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Reason, validation.Required, validation.In(reportReasons...)),
		validation.Field(&req.Details, validation.Length(0, 1000)),
	)
	if err != nil {
		return err
	}
	if req.GameID == "" && req.FolderID == "" {
		return errReportTarget
	}

	return nil
}
