package storage

import (
	"context"

	"github.com/google/uuid"

	"github.com/oubliette-games/dungeon-escape/pkg/game"
)

// Store defines persistence for game sessions. Sessions are stored as
// JSON blobs keyed by UUID. LoadSession returns (nil, nil) when the
// session does not exist.
type Store interface {
	SaveSession(ctx context.Context, s *game.Session) error
	LoadSession(ctx context.Context, id uuid.UUID) (*game.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// AcquireActionLock takes a short-lived lock for a session so that
	// concurrent action requests are applied one at a time. Returns
	// false if another holder has the lock.
	AcquireActionLock(ctx context.Context, id uuid.UUID, owner string) (bool, error)
	ReleaseActionLock(ctx context.Context, id uuid.UUID, owner string)

	Ping(ctx context.Context) error
	Close() error
}
