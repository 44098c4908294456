package application

import (
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	actorclient "github.com/arthanidhi/arthanidhi-cli/internal/adapters/backend/actor"
	"github.com/arthanidhi/arthanidhi-cli/internal/adapters/backend/rest"
	"github.com/arthanidhi/arthanidhi-cli/internal/config"
	"github.com/arthanidhi/arthanidhi-cli/internal/ports"
)

// Factory selects and caches the backend client for the resolved mode. At
// most one client is live at a time; the cache is dropped when the
// resolved mode drifts from the one the cached client was built for, and
// on explicit Reset (e.g. logout). The factory is constructed once at
// wiring time and passed down, never reached through a package global.
type Factory struct {
	resolver   *config.Resolver
	sessions   ports.SessionStore
	httpClient *http.Client
	clock      ports.Clock
	logger     zerolog.Logger

	mu     sync.Mutex
	client ports.BackendClient
	mode   string
}

func NewFactory(resolver *config.Resolver, sessions ports.SessionStore, httpClient *http.Client, clock ports.Clock, logger zerolog.Logger) *Factory {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Factory{
		resolver:   resolver,
		sessions:   sessions,
		httpClient: httpClient,
		clock:      clock,
		logger:     logger,
	}
}

// Client returns the client for the currently resolved mode, constructing
// one only when the cache is empty or stale. The actor handle is required
// in ic mode and ignored in rest mode.
func (f *Factory) Client(handle ports.Actor) (ports.BackendClient, error) {
	resolved := f.resolver.Resolve()

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.client != nil && f.mode != resolved.Mode {
		f.logger.Debug().
			Str("cached_mode", f.mode).
			Str("resolved_mode", resolved.Mode).
			Msg("backend mode changed, discarding cached client")
		f.client = nil
		f.mode = ""
	}

	if f.client != nil {
		return f.client, nil
	}

	if resolved.Mode == config.ModeREST {
		client, err := rest.NewClient(resolved.RESTBaseURL, f.httpClient, f.sessions)
		if err != nil {
			return nil, err
		}

		f.client = client
		f.mode = config.ModeREST
		f.logger.Debug().Str("base_url", resolved.RESTBaseURL).Msg("constructed rest backend client")
		return f.client, nil
	}

	client, err := actorclient.NewClient(handle, f.clock)
	if err != nil {
		return nil, err
	}

	f.client = client
	f.mode = config.ModeIC
	f.logger.Debug().Msg("constructed actor backend client")
	return f.client, nil
}

// Reset empties the cache so the next Client call reconstructs.
func (f *Factory) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.client = nil
	f.mode = ""
}
