package service

import (
	"github.com/alexdoyle/rivals-team-builder/internal/broadcast"
	"github.com/alexdoyle/rivals-team-builder/internal/config"
	"github.com/alexdoyle/rivals-team-builder/internal/repository"
)

type Services struct {
	Auth *AuthService
	Hero *HeroService
	Team *TeamService
}

func NewServices(repos *repository.Repositories, layer broadcast.Layer, cfg *config.Config) *Services {
	heroService := NewHeroService(repos.Hero)
	return &Services{
		Auth: NewAuthService(repos.User, repos.Session, cfg),
		Hero: heroService,
		Team: NewTeamService(repos.Team, repos.Vote, repos.Comment, repos.User, heroService, layer),
	}
}
