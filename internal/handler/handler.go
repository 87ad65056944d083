package handler

import (
	"github.com/user/moviedex/internal/config"
	"github.com/user/moviedex/internal/repository"
	"github.com/user/moviedex/internal/service"
)

// Handler HTTP 处理器
type Handler struct {
	Repos  *repository.Repositories
	Config *config.Config
	TMDB   *service.TMDBService
	Auth   *service.AuthService
}

// NewHandler 创建处理器
func NewHandler(repos *repository.Repositories, cfg *config.Config) *Handler {
	return &Handler{
		Repos:  repos,
		Config: cfg,
		TMDB:   service.NewTMDBService(cfg),
		Auth:   service.NewAuthService(repos.User),
	}
}
