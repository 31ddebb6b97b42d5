package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

var (
	ErrInterestCount    = request.ErrInterestCount
	ErrInterestLimit    = fmt.Errorf("you can only choose %d interests", domain.RequiredInterests)
	ErrInvalidInterests = errors.New("invalid interests")
)

// StandardInterests is the catalogue offered during onboarding.
var StandardInterests = []string{
	"History", "Science", "Geography", "Art", "Music",
	"Literature", "Sports", "Technology", "Movies", "Nature",
	"Space", "Food", "Mathematics", "Languages", "Philosophy",
}

// InterestSelection is the onboarding picker state. It never holds more
// than domain.RequiredInterests items.
type InterestSelection struct {
	selected []string
}

func NewInterestSelection(initial ...string) *InterestSelection {
	sel := &InterestSelection{}
	for _, item := range initial {
		_, _ = sel.Toggle(item)
	}

	return sel
}

// Toggle removes an already selected item or adds a new one. It reports
// whether the item is selected afterwards.
func (s *InterestSelection) Toggle(item string) (bool, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return false, ErrInvalidInterests
	}

	for i, cur := range s.selected {
		if strings.EqualFold(cur, item) {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return false, nil
		}
	}
	if len(s.selected) >= domain.RequiredInterests {
		return false, ErrInterestLimit
	}
	s.selected = append(s.selected, item)

	return true, nil
}

func (s *InterestSelection) Selected() []string {
	return append([]string{}, s.selected...)
}

func (s *InterestSelection) Ready() bool {
	return len(s.selected) == domain.RequiredInterests
}

// SaveInterests stores exactly domain.RequiredInterests interests and
// re-hydrates the profile, which moves the route from interests to main.
// Every rejected selection matches ErrInterestCount; blank or duplicate
// items also match ErrInvalidInterests.
func (s *SessionService) SaveInterests(ctx context.Context, interests []string) (domain.User, error) {
	if len(interests) != domain.RequiredInterests {
		return domain.User{}, ErrInterestCount
	}
	req := request.UpdateInterestsRequest{Interests: interests}
	if err := req.Validate(); err != nil {
		return domain.User{}, fmt.Errorf("%w: %w: %v", ErrInterestCount, ErrInvalidInterests, err)
	}
	if !s.Snapshot().HasToken() {
		return domain.User{}, ErrNotAuthenticated
	}

	if _, err := s.api.UpdateInterests(ctx, interests); err != nil {
		return domain.User{}, fmt.Errorf("s.api.UpdateInterests -> %w", err)
	}

	user, err := s.RefreshProfile(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.RefreshProfile -> %w", err)
	}

	return user, nil
}
