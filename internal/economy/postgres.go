package economy

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists economy transactions in PostgreSQL.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore constructs a Postgres-backed transaction log.
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// Append inserts one immutable transaction record.
func (s *PostgresStore) Append(ctx context.Context, tx Transaction) error {
	txID, err := uuid.Parse(tx.ID)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `INSERT INTO economy_transactions
        (id, user_id, kind, currency, amount, source, description, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		txID, tx.UserID, tx.Kind, string(tx.Currency), tx.Amount, tx.Source, tx.Description, tx.CreatedAt.UTC())
	return err
}

// ListByUser returns the newest transactions for a user, newest first.
func (s *PostgresStore) ListByUser(ctx context.Context, userID string, limit int) ([]Transaction, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.Query(ctx, `SELECT id, user_id, kind, currency, amount, source, description, created_at
        FROM economy_transactions WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Transaction
	for rows.Next() {
		var tx Transaction
		var id uuid.UUID
		var currency string
		if err := rows.Scan(&id, &tx.UserID, &tx.Kind, &currency, &tx.Amount, &tx.Source, &tx.Description, &tx.CreatedAt); err != nil {
			return nil, err
		}
		tx.ID = id.String()
		tx.Currency = Currency(currency)
		tx.CreatedAt = tx.CreatedAt.UTC()
		out = append(out, tx)
	}
	return out, rows.Err()
}
