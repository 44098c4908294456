// Package config resolves the backend selection from the environment.
//
// Resolution is deliberately lenient: an invalid or missing mode coerces to
// the ic default with a warning, never an error, so the portal always
// starts. The environment is re-read on every Resolve call; only the
// constructed client is cached (by the factory), never the config itself.
package config

import (
	"os"

	"github.com/rs/zerolog"
)

const (
	ModeIC   = "ic"
	ModeREST = "rest"

	EnvBackendMode = "ARTHA_BACKEND_MODE"
	EnvRESTBaseURL = "ARTHA_REST_BASE_URL"

	DefaultRESTBaseURL = "http://localhost:3001/api"
)

// Backend is an immutable snapshot of the resolved configuration.
type Backend struct {
	Mode        string
	RESTBaseURL string
}

// Resolver reads the backend configuration from an environment lookup.
type Resolver struct {
	lookup func(string) (string, bool)
	logger zerolog.Logger
}

func NewResolver(logger zerolog.Logger) *Resolver {
	return NewResolverWithLookup(os.LookupEnv, logger)
}

// NewResolverWithLookup allows tests to substitute the environment source.
func NewResolverWithLookup(lookup func(string) (string, bool), logger zerolog.Logger) *Resolver {
	return &Resolver{lookup: lookup, logger: logger}
}

// Resolve returns a fully populated Backend. It never fails.
func (r *Resolver) Resolve() Backend {
	mode, modeSet := r.lookup(EnvBackendMode)
	baseURL, baseURLSet := r.lookup(EnvRESTBaseURL)

	if !baseURLSet || baseURL == "" {
		baseURL = DefaultRESTBaseURL
	}

	if !modeSet || mode == "" {
		mode = ModeIC
	}

	if mode != ModeIC && mode != ModeREST {
		r.logger.Warn().
			Str("mode", mode).
			Msgf("invalid %s, defaulting to %q", EnvBackendMode, ModeIC)
		return Backend{Mode: ModeIC, RESTBaseURL: baseURL}
	}

	if mode == ModeREST && !baseURLSet {
		r.logger.Warn().
			Msgf("rest mode enabled but %s not set, using default %s", EnvRESTBaseURL, DefaultRESTBaseURL)
	}

	return Backend{Mode: mode, RESTBaseURL: baseURL}
}
