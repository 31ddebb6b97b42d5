package request

import (
	"errors"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/quizcourse/quizcourse/internal/domain"
)

var (
	ErrInterestCount     = fmt.Errorf("please select exactly %d interests", domain.RequiredInterests)
	errDuplicateInterest = errors.New("interests must be distinct")
	errBlankInterest     = errors.New("interests cannot be blank")
)

type UpdateInterestsRequest struct {
	Interests []string `json:"interests"`
}

func (req *UpdateInterestsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Interests, validation.By(checkInterests)),
	)
}

func checkInterests(value interface{}) error {
	interests, _ := value.([]string)
	if len(interests) != domain.RequiredInterests {
		return ErrInterestCount
	}

	seen := make(map[string]struct{}, len(interests))
	for _, interest := range interests {
		key := strings.ToLower(strings.TrimSpace(interest))
		if key == "" {
			return errBlankInterest
		}
		if _, ok := seen[key]; ok {
			return errDuplicateInterest
		}
		seen[key] = struct{}{}
	}

	return nil
}
