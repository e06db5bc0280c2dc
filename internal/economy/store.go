package economy

import "context"

// Store persists the append-only transaction log. Records are written at
// the moment of a balance mutation and never edited afterwards.
type Store interface {
	Append(ctx context.Context, tx Transaction) error
	ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error)
}
