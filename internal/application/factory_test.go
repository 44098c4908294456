package application

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthanidhi/arthanidhi-cli/internal/config"
	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

type stubActorHandle struct{}

func (stubActorHandle) GetCallerAccount(context.Context) (*domain.Account, error) {
	return nil, nil
}

func (stubActorHandle) SaveCallerAccount(context.Context, domain.Account) error {
	return nil
}

func (stubActorHandle) GetTransactionHistory(context.Context) ([]domain.TransactionRecord, error) {
	return nil, nil
}

func (stubActorHandle) Deposit(context.Context, string, int64) error {
	return nil
}

func (stubActorHandle) Transfer(context.Context, string, string, int64, string) error {
	return nil
}

func (stubActorHandle) GetCallerUserRole(context.Context) (domain.UserRole, error) {
	return domain.RoleUser, nil
}

func resolverFor(env map[string]string) *config.Resolver {
	return config.NewResolverWithLookup(func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}, zerolog.Nop())
}

func TestClientIsMemoized(t *testing.T) {
	factory := NewFactory(resolverFor(nil), nil, nil, nil, zerolog.Nop())

	first, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)

	second, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestResetDropsCachedClient(t *testing.T) {
	factory := NewFactory(resolverFor(nil), nil, nil, nil, zerolog.Nop())

	first, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)

	factory.Reset()

	second, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)

	assert.NotSame(t, first, second)
}

func TestModeDriftInvalidatesCache(t *testing.T) {
	env := map[string]string{config.EnvBackendMode: config.ModeIC}
	factory := NewFactory(resolverFor(env), nil, nil, nil, zerolog.Nop())

	icClient, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)

	env[config.EnvBackendMode] = config.ModeREST
	restClient, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)
	assert.NotSame(t, icClient, restClient)

	env[config.EnvBackendMode] = config.ModeIC
	icAgain, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)
	assert.NotSame(t, restClient, icAgain)
}

func TestICModeWithoutActorFails(t *testing.T) {
	factory := NewFactory(resolverFor(nil), nil, nil, nil, zerolog.Nop())

	_, err := factory.Client(nil)
	require.ErrorIs(t, err, domain.ErrActorRequired)
}

func TestRESTModeUsesResolvedBaseURL(t *testing.T) {
	env := map[string]string{
		config.EnvBackendMode: config.ModeREST,
		config.EnvRESTBaseURL: "http://bank.example/api",
	}
	factory := NewFactory(resolverFor(env), nil, nil, nil, zerolog.Nop())

	client, err := factory.Client(nil)
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestConstructionFailureLeavesCacheEmpty(t *testing.T) {
	factory := NewFactory(resolverFor(nil), nil, nil, nil, zerolog.Nop())

	_, err := factory.Client(nil)
	require.Error(t, err)

	client, err := factory.Client(stubActorHandle{})
	require.NoError(t, err)
	assert.NotNil(t, client)
}
