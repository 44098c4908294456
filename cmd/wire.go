package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	localactor "github.com/arthanidhi/arthanidhi-cli/internal/adapters/actor/local"
	"github.com/arthanidhi/arthanidhi-cli/internal/adapters/render/statement"
	sessiontoml "github.com/arthanidhi/arthanidhi-cli/internal/adapters/session/toml"
	"github.com/arthanidhi/arthanidhi-cli/internal/application"
	"github.com/arthanidhi/arthanidhi-cli/internal/config"
	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

type app struct {
	service           *application.Service
	sessions          ports.SessionStore
	statementRenderer func([]domain.Transaction, statement.RenderOptions) (string, error)
	now               func() time.Time
}

func wireApp() (*app, error) {
	logger := newLogger()
	clock := ports.SystemClock{}

	sessions, err := sessiontoml.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire session store: %w", err)
	}

	// The local demo actor serves ic mode; a deployed canister would be
	// injected here instead.
	actor, err := localactor.NewActor(viper.New(), clock)
	if err != nil {
		return nil, fmt.Errorf("wire demo actor: %w", err)
	}

	resolver := config.NewResolver(logger)
	factory := application.NewFactory(resolver, sessions, http.DefaultClient, clock, logger)

	return &app{
		service:           application.NewService(factory, actor, sessions, clock),
		sessions:          sessions,
		statementRenderer: statement.Render,
		now:               time.Now,
	}, nil
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if os.Getenv("ARTHA_DEBUG") != "" {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
