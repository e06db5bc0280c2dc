package profile

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Sebdysart/rork-hustlexp-gig-marketplace-app-796-sub008/internal/economy"
)

// PostgresRepository stores progression records in PostgreSQL. Updates use
// an optimistic version predicate so concurrent writers against the same
// snapshot fail with ErrVersionConflict instead of silently overwriting.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository builds a repository backed by PostgreSQL.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a fresh progression record.
func (r *PostgresRepository) Create(ctx context.Context, p Progression) error {
	_, err := r.db.Exec(ctx, `INSERT INTO user_progressions
        (user_id, level, xp, grit, task_credits, crowns,
         prestige_level, total_prestige, payout_boost_bp,
         badges, verification_badges,
         tasks_completed, streak_days, last_task_at,
         version, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		p.UserID, p.Level, p.XP,
		p.Wallet.Grit, p.Wallet.TaskCredits, p.Wallet.Crowns,
		p.Prestige.Level, p.Prestige.TotalPrestige, p.Prestige.PayoutBoostBP,
		p.Badges, p.VerificationBadges,
		p.TasksCompleted, p.StreakDays, p.LastTaskAt.UTC(),
		p.Version, p.CreatedAt.UTC(), p.UpdatedAt.UTC())
	return err
}

// Get fetches the progression record for a user.
func (r *PostgresRepository) Get(ctx context.Context, userID string) (Progression, error) {
	row := r.db.QueryRow(ctx, `SELECT user_id, level, xp, grit, task_credits, crowns,
        prestige_level, total_prestige, payout_boost_bp,
        badges, verification_badges,
        tasks_completed, streak_days, last_task_at,
        version, created_at, updated_at
        FROM user_progressions WHERE user_id = $1`, userID)
	return scanProgression(row)
}

// Update writes a new snapshot if the stored version still matches.
func (r *PostgresRepository) Update(ctx context.Context, p Progression) (Progression, error) {
	row := r.db.QueryRow(ctx, `UPDATE user_progressions SET
        level = $3, xp = $4, grit = $5, task_credits = $6, crowns = $7,
        prestige_level = $8, total_prestige = $9, payout_boost_bp = $10,
        badges = $11, verification_badges = $12,
        tasks_completed = $13, streak_days = $14, last_task_at = $15,
        version = version + 1, updated_at = $16
        WHERE user_id = $1 AND version = $2
        RETURNING user_id, level, xp, grit, task_credits, crowns,
            prestige_level, total_prestige, payout_boost_bp,
            badges, verification_badges,
            tasks_completed, streak_days, last_task_at,
            version, created_at, updated_at`,
		p.UserID, p.Version,
		p.Level, p.XP, p.Wallet.Grit, p.Wallet.TaskCredits, p.Wallet.Crowns,
		p.Prestige.Level, p.Prestige.TotalPrestige, p.Prestige.PayoutBoostBP,
		p.Badges, p.VerificationBadges,
		p.TasksCompleted, p.StreakDays, p.LastTaskAt.UTC(), time.Now().UTC())

	updated, err := scanProgression(row)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Row missing or version moved on; tell them apart for the caller.
			if _, getErr := r.Get(ctx, p.UserID); getErr == nil {
				return Progression{}, ErrVersionConflict
			}
			return Progression{}, ErrNotFound
		}
		return Progression{}, err
	}
	return updated, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProgression(row rowScanner) (Progression, error) {
	var p Progression
	var w economy.Wallet
	err := row.Scan(&p.UserID, &p.Level, &p.XP, &w.Grit, &w.TaskCredits, &w.Crowns,
		&p.Prestige.Level, &p.Prestige.TotalPrestige, &p.Prestige.PayoutBoostBP,
		&p.Badges, &p.VerificationBadges,
		&p.TasksCompleted, &p.StreakDays, &p.LastTaskAt,
		&p.Version, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Progression{}, ErrNotFound
		}
		return Progression{}, err
	}
	p.Wallet = w
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
	return p, nil
}
