package profile

import (
	"context"
	"errors"
)

var (
	// ErrNotFound indicates no progression record exists for the user.
	ErrNotFound = errors.New("progression not found")

	// ErrExists indicates a progression record was already provisioned.
	ErrExists = errors.New("progression already exists")

	// ErrVersionConflict indicates the snapshot being written is stale;
	// the caller must re-read and recompute.
	ErrVersionConflict = errors.New("progression version conflict")
)

// Repository persists progression snapshots. Update performs an
// optimistic version check: the stored record must carry the same version
// as the snapshot being written, and the returned record has the version
// incremented. This is the durable half of the per-user serialization
// discipline the engine requires.
type Repository interface {
	Create(ctx context.Context, p Progression) error
	Get(ctx context.Context, userID string) (Progression, error)
	Update(ctx context.Context, p Progression) (Progression, error)
}
