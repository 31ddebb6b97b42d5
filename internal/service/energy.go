package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/quizcourse/quizcourse/internal/domain"
	"github.com/quizcourse/quizcourse/internal/repository"
)

const (
	energyKey          = "energy.current"
	energyUpdatedAtKey = "energy.updatedAt"
)

var ErrOutOfEnergy = errors.New("no energy left")

// EnergyService keeps the player's energy battery in local settings.
type EnergyService struct {
	settings SettingStore
	max      int
	now      func() time.Time

	mu sync.Mutex
}

func NewEnergyService(settings SettingStore, max int) *EnergyService {
	if max <= 0 {
		max = domain.DefaultMaxEnergy
	}

	return &EnergyService{
		settings: settings,
		max:      max,
		now:      time.Now,
	}
}

// Current returns a full battery when nothing has been stored yet.
func (s *EnergyService) Current(ctx context.Context) (domain.Energy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.load(ctx)
}

// Consume removes n units and never goes below zero.
func (s *EnergyService) Consume(ctx context.Context, n int) (domain.Energy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.load(ctx)
	if err != nil {
		return domain.Energy{}, err
	}

	e.Current -= n
	if e.Current < 0 {
		e.Current = 0
	}

	return s.store(ctx, e)
}

func (s *EnergyService) Refill(ctx context.Context) (domain.Energy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store(ctx, domain.Energy{Current: s.max, Max: s.max})
}

// StartPlay refuses to start a game session on an empty battery.
func (s *EnergyService) StartPlay(ctx context.Context) (domain.Energy, error) {
	e, err := s.Current(ctx)
	if err != nil {
		return domain.Energy{}, err
	}
	if e.Empty() {
		return e, ErrOutOfEnergy
	}

	return e, nil
}

func (s *EnergyService) load(ctx context.Context) (domain.Energy, error) {
	e := domain.Energy{Current: s.max, Max: s.max}

	raw, err := s.settings.Get(ctx, energyKey)
	if err != nil {
		if errors.Is(err, repository.ErrSettingNotFound) {
			return e, nil
		}
		return domain.Energy{}, fmt.Errorf("s.settings.Get -> %w", err)
	}

	current, err := strconv.Atoi(raw)
	if err != nil {
		return e, nil
	}
	e.Current = min(max(current, 0), s.max)

	if raw, err := s.settings.Get(ctx, energyUpdatedAtKey); err == nil {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			e.UpdatedAt = time.UnixMilli(ms)
		}
	}

	return e, nil
}

func (s *EnergyService) store(ctx context.Context, e domain.Energy) (domain.Energy, error) {
	e.UpdatedAt = s.now()

	if err := s.settings.Set(ctx, energyKey, strconv.Itoa(e.Current)); err != nil {
		return domain.Energy{}, fmt.Errorf("s.settings.Set -> %w", err)
	}
	if err := s.settings.Set(ctx, energyUpdatedAtKey, strconv.FormatInt(e.UpdatedAt.UnixMilli(), 10)); err != nil {
		return domain.Energy{}, fmt.Errorf("s.settings.Set -> %w", err)
	}

	return e, nil
}
