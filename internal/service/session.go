package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/navigation"
	"github.com/quizcourse/quizcourse/internal/pkg/jwthelper"
	"github.com/quizcourse/quizcourse/internal/repository"
)

const tokenKey = "token"

var (
	ErrNotAuthenticated = errors.New("not logged in")
	ErrEmptyToken       = errors.New("backend returned an empty access token")
)

type SettingStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type AuthAPI interface {
	SetAuthToken(token string)
	Login(ctx context.Context, email, password string) (response.LoginResponse, error)
	Register(ctx context.Context, req request.RegisterRequest) (domain.User, error)
	Me(ctx context.Context) (domain.User, error)
	UpdateInterests(ctx context.Context, interests []string) (domain.User, error)
}

// SessionService holds the authentication token and the hydrated user. It
// is the only writer of session state and of the persisted token.
type SessionService struct {
	api      AuthAPI
	settings SettingStore

	mu    sync.RWMutex
	state domain.Session
}

func NewSessionService(api AuthAPI, settings SettingStore) *SessionService {
	return &SessionService{
		api:      api,
		settings: settings,
		state:    domain.Session{IsLoading: true},
	}
}

// Bootstrap restores a persisted token and hydrates the profile with a
// single fetch. Any failure of that fetch logs the user out. Only local
// storage errors are returned.
func (s *SessionService) Bootstrap(ctx context.Context) error {
	defer s.setLoading(false)

	token, err := s.settings.Get(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return nil
		}
		return fmt.Errorf("s.settings.Get -> %w", err)
	}
	if token == "" {
		return nil
	}

	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()
	s.api.SetAuthToken(token)

	user, err := s.api.Me(ctx)
	if err != nil {
		if response.IsUnauthorized(err) {
			zap.L().Info("stored session expired, logging out")
		} else {
			zap.L().Warn("could not restore session", zap.Error(err))
		}
		if err := s.Logout(ctx); err != nil {
			return fmt.Errorf("s.Logout -> %w", err)
		}
		return nil
	}

	s.SetUser(&user)
	zap.L().Debug("session restored", zap.String("user_id", user.ID))

	return nil
}

func (s *SessionService) Login(ctx context.Context, email, password string) error {
	resp, err := s.api.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("s.api.Login -> %w", err)
	}
	if resp.AccessToken == "" {
		return ErrEmptyToken
	}

	if err := s.SetToken(ctx, resp.AccessToken); err != nil {
		return fmt.Errorf("s.SetToken -> %w", err)
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		if logoutErr := s.Logout(ctx); logoutErr != nil {
			zap.L().Error("rollback after failed profile fetch", zap.Error(logoutErr))
		}
		return fmt.Errorf("s.api.Me -> %w", err)
	}
	s.SetUser(&user)

	return nil
}

// Register creates the account, logs in with the same credentials and
// flags the session as freshly registered.
func (s *SessionService) Register(ctx context.Context, req request.RegisterRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if _, err := s.api.Register(ctx, req); err != nil {
		return fmt.Errorf("s.api.Register -> %w", err)
	}

	if err := s.Login(ctx, req.Email, req.Password); err != nil {
		return fmt.Errorf("s.Login -> %w", err)
	}

	s.mu.Lock()
	s.state.JustRegistered = true
	s.mu.Unlock()

	return nil
}

// SetToken updates the in-memory token, the client's default header and
// the persisted copy. An empty token removes the persisted key.
func (s *SessionService) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.state.Token = token
	s.mu.Unlock()
	s.api.SetAuthToken(token)

	if token == "" {
		return s.settings.Delete(ctx, tokenKey)
	}

	return s.settings.Set(ctx, tokenKey, token)
}

func (s *SessionService) Logout(ctx context.Context) error {
	err := s.SetToken(ctx, "")

	s.mu.Lock()
	s.state.User = nil
	s.state.JustRegistered = false
	s.mu.Unlock()

	return err
}

func (s *SessionService) RefreshProfile(ctx context.Context) (domain.User, error) {
	if !s.Snapshot().HasToken() {
		return domain.User{}, ErrNotAuthenticated
	}

	user, err := s.api.Me(ctx)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.api.Me -> %w", err)
	}
	s.SetUser(&user)

	return user, nil
}

func (s *SessionService) SetUser(user *domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if user == nil {
		s.state.User = nil
		return
	}
	u := *user
	s.state.User = &u
}

func (s *SessionService) ClearJustRegistered() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.JustRegistered = false
}

func (s *SessionService) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.state
	if s.state.User != nil {
		u := *s.state.User
		snap.User = &u
	}

	return snap
}

func (s *SessionService) Route() navigation.Route {
	return navigation.ForSession(s.Snapshot())
}

// CurrentUserID prefers the hydrated profile and falls back to the token subject.
func (s *SessionService) CurrentUserID() string {
	snap := s.Snapshot()
	if snap.User != nil && snap.User.ID != "" {
		return snap.User.ID
	}
	if claims, err := s.Claims(); err == nil {
		return claims.UserID()
	}

	return ""
}

func (s *SessionService) Claims() (*jwthelper.Claims, error) {
	token := s.Snapshot().Token
	if token == "" {
		return nil, ErrNotAuthenticated
	}

	return jwthelper.DecodeUnverified(token)
}

func (s *SessionService) setLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.IsLoading = loading
}
