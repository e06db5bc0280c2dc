package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestMemoryRepositoryLifecycle(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.NewString()

	p := New(userID)
	if err := repo.Create(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, p); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists on duplicate create, got %v", err)
	}

	fetched, err := repo.Get(ctx, userID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if fetched.Level != 1 || fetched.XP != 0 {
		t.Fatalf("unexpected fresh record: %+v", fetched)
	}

	fetched.XP = 250
	fetched.Level = 2
	updated, err := repo.Update(ctx, fetched)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Version != fetched.Version+1 {
		t.Fatalf("expected version bump, got %d", updated.Version)
	}
}

func TestMemoryRepositoryVersionConflict(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	userID := uuid.NewString()

	if err := repo.Create(ctx, New(userID)); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, _ := repo.Get(ctx, userID)
	second, _ := repo.Get(ctx, userID)

	first.XP = 100
	if _, err := repo.Update(ctx, first); err != nil {
		t.Fatalf("first update: %v", err)
	}

	second.XP = 200
	if _, err := repo.Update(ctx, second); !errors.Is(err, ErrVersionConflict) {
		t.Fatalf("expected version conflict on stale snapshot, got %v", err)
	}
}

func TestMemoryRepositoryGetUnknownUser(t *testing.T) {
	repo := NewMemoryRepository()
	if _, err := repo.Get(context.Background(), "ghost"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWithBadgeGrowsMonotonically(t *testing.T) {
	p := New(uuid.NewString())

	p = p.WithBadge("first_gig")
	p = p.WithBadge("first_gig")
	p = p.WithBadge("week_streak")

	if len(p.Badges) != 2 {
		t.Fatalf("expected 2 badges, got %v", p.Badges)
	}
	if !p.HasBadge("first_gig") || !p.HasBadge("week_streak") {
		t.Fatalf("badge membership broken: %v", p.Badges)
	}
}

func TestRecordTaskStreaks(t *testing.T) {
	p := New(uuid.NewString())
	day := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	p = p.RecordTask(day)
	if p.TasksCompleted != 1 || p.StreakDays != 1 {
		t.Fatalf("first task: %d tasks, %d streak", p.TasksCompleted, p.StreakDays)
	}

	// Second task the same day holds the streak.
	p = p.RecordTask(day.Add(5 * time.Hour))
	if p.TasksCompleted != 2 || p.StreakDays != 1 {
		t.Fatalf("same day: %d tasks, %d streak", p.TasksCompleted, p.StreakDays)
	}

	// Next-day task extends it.
	p = p.RecordTask(day.Add(24 * time.Hour))
	if p.StreakDays != 2 {
		t.Fatalf("next day streak = %d, want 2", p.StreakDays)
	}

	// A gap resets it.
	p = p.RecordTask(day.Add(5 * 24 * time.Hour))
	if p.StreakDays != 1 {
		t.Fatalf("post-gap streak = %d, want 1", p.StreakDays)
	}
	if p.TasksCompleted != 4 {
		t.Fatalf("tasks = %d, want 4", p.TasksCompleted)
	}
}
