package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/fx"

	"github.com/LuckDucapa/spidey-ff-ig/internal/assembler"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram"
	"github.com/LuckDucapa/spidey-ff-ig/internal/instagram/instagramimpl"
	"github.com/LuckDucapa/spidey-ff-ig/internal/normalizer"
	"github.com/LuckDucapa/spidey-ff-ig/internal/server"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/config"
	"github.com/LuckDucapa/spidey-ff-ig/pkg/logger"
)

var App = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			instagramimpl.New,
			fx.As(new(instagram.Client)),
		),
		newNormalizer,
		assembler.New,
		server.New,
	),
	fx.Invoke(run),
)

func newNormalizer(cfg *config.Config) (*normalizer.Normalizer, error) {
	offset, err := normalizer.ParseOffset(cfg.Search.DateOffset)
	if err != nil {
		return nil, err
	}

	opts := normalizer.DefaultOptions()
	opts.DateOffset = offset
	if cfg.Search.ViewsPolicy == string(normalizer.ViewsZero) {
		opts.ViewsPolicy = normalizer.ViewsZero
	}
	if cfg.Search.CarouselWidth > 0 && cfg.Search.CarouselHeight > 0 {
		opts.CarouselWidth = cfg.Search.CarouselWidth
		opts.CarouselHeight = cfg.Search.CarouselHeight
	}

	return normalizer.New(opts), nil
}

func run(lc fx.Lifecycle, log logger.Logger, srv *server.Server) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				log.Info(fmt.Sprintf("Starting server on %s", srv.Addr()))
				if err := srv.Start(srv.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("Server failed to start", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
