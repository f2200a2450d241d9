package setup

import (
	"github.com/goforum-dev/goforum/internal/config"
	"github.com/goforum-dev/goforum/internal/handler"
	"github.com/goforum-dev/goforum/internal/jwt"
	"github.com/goforum-dev/goforum/internal/password"
	"github.com/goforum-dev/goforum/internal/service"
	"github.com/goforum-dev/goforum/internal/storage/pg"
	"github.com/goforum-dev/goforum/internal/utils"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Jwt     *jwt.Manager
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg.Public.Pg, utils.NewId)
	if err != nil {
		return nil, err
	}

	hasher := password.NewBcryptHasher()
	tokens := jwt.New(cfg.AccessTokenKey(), cfg.RefreshTokenKey(), cfg.Public.AccessTokenTTL, cfg.Public.RefreshTokenTTL)

	users := service.NewUser(storage, hasher)
	auth := service.NewAuth(storage, tokens)
	threads := service.NewThread(storage, storage, storage)
	comments := service.NewComment(storage, storage)
	replies := service.NewReply(storage, storage, storage)

	h := handler.New(users, auth, threads, comments, replies)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Jwt:     tokens,
	}, nil
}
