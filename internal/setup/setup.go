package setup

import (
	"context"

	"github.com/tglkwon/api.board.aquaco.work/internal/config"
	"github.com/tglkwon/api.board.aquaco.work/internal/handler"
	"github.com/tglkwon/api.board.aquaco.work/internal/middleware"
	"github.com/tglkwon/api.board.aquaco.work/internal/service"
	"github.com/tglkwon/api.board.aquaco.work/internal/storage/pg"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils/jwt"
	"github.com/tglkwon/api.board.aquaco.work/internal/utils/password"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            jwt.JwtService
}

// SetupDependencies connects to the database and wires services, handlers and
// the token middleware. The caller owns Storage and must Cleanup it.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return Wire(cfg, storage), nil
}

// Wire builds everything above an already opened store.
func Wire(cfg *config.Config, storage *pg.Storage) *Dependencies {
	jwtService := jwt.New(cfg.JwtKey(), jwt.TokenTTL)
	hasher := password.New(password.DefaultCost)

	auth := service.NewAuth(storage, hasher, jwtService)
	post := service.NewPost(storage)
	reply := service.NewReply(storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        handler.New(auth, post, reply, storage),
		AuthMiddleware: middleware.NewAuth(jwtService),
		Jwt:            jwtService,
	}
}
