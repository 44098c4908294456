package toml

import (
	"fmt"
	"time"

	"github.com/arthanidhi/arthanidhi-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int            `toml:"version"`
	Session *sessionSchema `toml:"session,omitempty"`
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	ID        string `toml:"id"`
	Name      string `toml:"name"`
	CreatedAt string `toml:"created_at"`
}

func toSchema(session domain.Session) sessionSchema {
	createdAt := ""
	if !session.CreatedAt.IsZero() {
		createdAt = session.CreatedAt.UTC().Format(time.RFC3339)
	}

	return sessionSchema{
		ID:        session.ID,
		Name:      session.Name,
		CreatedAt: createdAt,
	}
}

func fromSchema(schema sessionSchema) domain.Session {
	session := domain.Session{
		ID:   schema.ID,
		Name: schema.Name,
	}

	if schema.CreatedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, schema.CreatedAt); err == nil {
			session.CreatedAt = parsed
		}
	}

	return session
}
