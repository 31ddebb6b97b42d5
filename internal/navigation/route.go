// Package navigation picks which screen tree the client shows for a session.
package navigation

import "github.com/quizcourse/quizcourse/internal/domain"

type Route string

const (
	RouteLoading   Route = "loading"
	RouteAuth      Route = "auth"
	RouteInterests Route = "interests"
	RouteMain      Route = "main"
)

// Resolve is a pure function of the three session inputs.
func Resolve(hasToken, isLoading bool, interestCount int) Route {
	switch {
	case isLoading:
		return RouteLoading
	case !hasToken:
		return RouteAuth
	case interestCount < domain.RequiredInterests:
		return RouteInterests
	default:
		return RouteMain
	}
}

func ForSession(s domain.Session) Route {
	return Resolve(s.HasToken(), s.IsLoading, s.InterestCount())
}
