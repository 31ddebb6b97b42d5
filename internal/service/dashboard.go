package service

import (
	"context"
	"fmt"

	"github.com/quizcourse/quizcourse/internal/domain"
)

type DashboardAPI interface {
	Dashboard(ctx context.Context) (domain.Dashboard, error)
}

type EnergyReader interface {
	Current(ctx context.Context) (domain.Energy, error)
}

type UserSetter interface {
	SetUser(user *domain.User)
}

type DashboardService struct {
	api    DashboardAPI
	energy EnergyReader
	users  UserSetter
}

func NewDashboardService(api DashboardAPI, energy EnergyReader, users UserSetter) *DashboardService {
	return &DashboardService{
		api:    api,
		energy: energy,
		users:  users,
	}
}

// Overview also refreshes the session user with the dashboard's copy.
func (s *DashboardService) Overview(ctx context.Context) (domain.Overview, error) {
	dash, err := s.api.Dashboard(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("s.api.Dashboard -> %w", err)
	}
	s.users.SetUser(&dash.User)

	energy, err := s.energy.Current(ctx)
	if err != nil {
		return domain.Overview{}, fmt.Errorf("s.energy.Current -> %w", err)
	}

	return domain.Overview{
		Dashboard: dash,
		XP:        dash.User.XP(),
		Energy:    energy,
	}, nil
}
