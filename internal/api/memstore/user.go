package memstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/domain"
)

func (s *Store) CreateUser(_ context.Context, req request.RegisterRequest) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("bcrypt.GenerateFromPassword -> %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, ok := s.emails[email]; ok {
		return domain.User{}, ErrUserEmailExists
	}

	now := s.now()
	user := domain.User{
		ID:            uuid.NewString(),
		Email:         email,
		Name:          req.Name,
		Lastname:      req.Lastname,
		BirthDate:     req.BirthDate,
		Phone:         req.Phone,
		Interests:     append([]string{}, req.Interests...),
		PlayedGameIDs: []string{},
		CreatedAt:     &now,
	}
	s.accounts[user.ID] = &account{user: user, passwordHash: hash}
	s.emails[email] = user.ID

	return cloneUser(user), nil
}

func (s *Store) Authenticate(_ context.Context, email, password string) (domain.User, error) {
	s.mu.RLock()
	id, ok := s.emails[strings.ToLower(strings.TrimSpace(email))]
	var acc *account
	if ok {
		acc = s.accounts[id]
	}
	s.mu.RUnlock()

	if acc == nil {
		return domain.User{}, ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return domain.User{}, ErrWrongPassword
	}

	return cloneUser(acc.user), nil
}

func (s *Store) FindUser(_ context.Context, userID string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}

	return cloneUser(acc.user), nil
}

func (s *Store) SetInterests(_ context.Context, userID string, interests []string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	acc.user.Interests = append([]string{}, interests...)

	return cloneUser(acc.user), nil
}

// MarkPlayed is idempotent: a game is only counted once per user.
func (s *Store) MarkPlayed(_ context.Context, userID, gameID string) (domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	acc, ok := s.accounts[userID]
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	if _, ok := s.games[gameID]; !ok {
		return domain.User{}, ErrGameNotFound
	}
	if !acc.user.HasPlayed(gameID) {
		acc.user.PlayedGameIDs = append(acc.user.PlayedGameIDs, gameID)
	}

	return cloneUser(acc.user), nil
}

func (s *Store) Dashboard(ctx context.Context, userID string) (domain.Dashboard, error) {
	user, err := s.FindUser(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}
	folders, err := s.ListFolders(ctx, userID)
	if err != nil {
		return domain.Dashboard{}, err
	}

	return domain.Dashboard{User: user, Folders: folders}, nil
}
