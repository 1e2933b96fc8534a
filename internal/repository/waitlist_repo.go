package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/ValetTech/Valet/internal/db"
	_ "github.com/lib/pq"
)

// WaitlistRepository is an append-only log of waitlist sign-ups.
type WaitlistRepository interface {
	Append(ctx context.Context, entry *db.WaitlistEntry) error
}

type memoryWaitlistRepository struct {
	mu      sync.Mutex
	entries []db.WaitlistEntry
}

func NewMemoryWaitlistRepository() WaitlistRepository {
	return &memoryWaitlistRepository{}
}

func (r *memoryWaitlistRepository) Append(_ context.Context, entry *db.WaitlistEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry.ID = int64(len(r.entries) + 1)
	r.entries = append(r.entries, *entry)
	return nil
}

type postgresWaitlistRepository struct {
	db *sql.DB
}

func NewPostgresWaitlistRepository(conn *sql.DB) WaitlistRepository {
	return &postgresWaitlistRepository{db: conn}
}

// OpenPostgres opens and pings the database behind dsn and ensures the waitlist table exists.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS waitlist (
			id         SERIAL PRIMARY KEY,
			role       VARCHAR(32)  NOT NULL,
			email      VARCHAR(320) NOT NULL,
			answers    JSONB        NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ  NOT NULL
		)`); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create waitlist table: %w", err)
	}
	return conn, nil
}

func (r *postgresWaitlistRepository) Append(ctx context.Context, entry *db.WaitlistEntry) error {
	answers, err := json.Marshal(entry.Answers)
	if err != nil {
		return fmt.Errorf("error encoding waitlist answers: %w", err)
	}
	query := `INSERT INTO waitlist (role, email, answers, created_at) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, entry.Role, entry.Email, answers, entry.CreatedAt).Scan(&entry.ID); err != nil {
		return fmt.Errorf("error inserting waitlist entry: %w", err)
	}
	return nil
}
