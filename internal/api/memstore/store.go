// Package memstore keeps the stub backend's state in memory. It implements
// the same behaviour the real backend exposes over REST, minus durability.
package memstore

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/quizcourse/quizcourse/internal/domain"
)

var (
	ErrUserEmailExists = errors.New("email already registered")
	ErrUserNotFound    = errors.New("user not found")
	ErrWrongPassword   = errors.New("wrong password")
	ErrFolderNotFound  = errors.New("folder not found")
	ErrGameNotFound    = errors.New("game not found")
	ErrNotOwner        = errors.New("folder belongs to another user")
	ErrGameNotInFolder = errors.New("game does not belong to folder")
)

type account struct {
	user         domain.User
	passwordHash []byte
}

type Store struct {
	mu sync.RWMutex

	accounts map[string]*account
	emails   map[string]string
	folders  map[string]*domain.Folder
	games    map[string]*domain.Game
	progress map[string]map[string]domain.Progress
	reports  []domain.Report

	now  func() time.Time
	rand *rand.Rand
}

func New() *Store {
	return &Store{
		accounts: make(map[string]*account),
		emails:   make(map[string]string),
		folders:  make(map[string]*domain.Folder),
		games:    make(map[string]*domain.Game),
		progress: make(map[string]map[string]domain.Progress),
		now:      func() time.Time { return time.Now().UTC() },
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func cloneUser(u domain.User) domain.User {
	u.Interests = append([]string{}, u.Interests...)
	u.PlayedGameIDs = append([]string{}, u.PlayedGameIDs...)
	return u
}

func cloneFolder(f domain.Folder) domain.Folder {
	f.GameIDs = append([]string{}, f.GameIDs...)
	return f
}
