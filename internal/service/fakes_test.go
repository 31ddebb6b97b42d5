package service

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/quizcourse/quizcourse/internal/api/request"
	"github.com/quizcourse/quizcourse/internal/api/response"
	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/repository"
)

var errBoom = errors.New("boom")

type memSettings struct {
	mu      sync.Mutex
	values  map[string]string
	failGet error
}

func newMemSettings() *memSettings {
	return &memSettings{values: map[string]string{}}
}

func (m *memSettings) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failGet != nil {
		return "", m.failGet
	}
	v, ok := m.values[key]
	if !ok {
		return "", repository.ErrSettingNotFound
	}
	return v, nil
}

func (m *memSettings) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memSettings) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memSettings) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.values[key]
	return ok
}

type fakeAuthAPI struct {
	token string

	loginResp response.LoginResponse
	loginErr  error

	registerErr   error
	registerCalls int

	me      domain.User
	meErr   error
	meCalls int

	interestsCalls int
	interestsErr   error
}

func (f *fakeAuthAPI) SetAuthToken(token string) {
	f.token = token
}

func (f *fakeAuthAPI) Login(context.Context, string, string) (response.LoginResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthAPI) Register(_ context.Context, req request.RegisterRequest) (domain.User, error) {
	f.registerCalls++
	if f.registerErr != nil {
		return domain.User{}, f.registerErr
	}
	return domain.User{ID: "u1", Email: req.Email, Name: req.Name}, nil
}

func (f *fakeAuthAPI) Me(context.Context) (domain.User, error) {
	f.meCalls++
	if f.meErr != nil {
		return domain.User{}, f.meErr
	}
	return f.me, nil
}

func (f *fakeAuthAPI) UpdateInterests(_ context.Context, interests []string) (domain.User, error) {
	f.interestsCalls++
	if f.interestsErr != nil {
		return domain.User{}, f.interestsErr
	}
	f.me.Interests = append([]string{}, interests...)
	return f.me, nil
}

func unauthorized() error {
	return &response.Err{HTTPStatusCode: http.StatusUnauthorized, Detail: "Could not validate credentials"}
}

type fakeUser struct {
	id   string
	user *domain.User
}

func (f *fakeUser) CurrentUserID() string {
	return f.id
}

func (f *fakeUser) SetUser(u *domain.User) {
	f.user = u
}
