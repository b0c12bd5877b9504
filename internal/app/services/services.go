package services

import (
	"time"

	"github.com/rojgarhub/backend/internal/app/repositories"
	"github.com/rojgarhub/backend/internal/config"
	"github.com/rojgarhub/backend/internal/pkg/auth"
	"github.com/rojgarhub/backend/internal/pkg/helpers"
)

// Services bundles every service the HTTP layer depends on.
type Services struct {
	JobService         *JobService
	PreparationService *PreparationService
	SiteService        *SiteService
	AuthService        *AuthService
	JWTService         *auth.JWTService
}

// NewServices wires all services on top of the repositories
func NewServices(repos *repositories.Repositories, cfg *config.Config) *Services {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   cfg.Admin.JWTSecret,
		TokenExp:    helpers.ParseDuration(cfg.Admin.TokenExpiration, 12*time.Hour),
		TokenIssuer: cfg.Admin.Issuer,
	})

	return &Services{
		JobService:         NewJobService(repos.JobRepository),
		PreparationService: NewPreparationService(repos.BookRepository, repos.CourseRepository),
		SiteService: NewSiteService(
			repos.JobRepository,
			repos.BookRepository,
			repos.CourseRepository,
			repos.SiteRepository,
		),
		AuthService: NewAuthService(cfg.Admin.PasswordHash, jwtService),
		JWTService:  jwtService,
	}
}
