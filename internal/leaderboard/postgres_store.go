package leaderboard

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq" // PostgreSQL driver
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS leaderboard (
	position INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	kills INTEGER NOT NULL,
	updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
);
`

// PostgresStore keeps the board in a PostgreSQL table, one row per rank.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to dsn and makes sure the table exists.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if _, err := db.Exec(postgresSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init leaderboard schema: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load returns the stored rows in rank order.
func (ps *PostgresStore) Load() ([]Entry, error) {
	rows, err := ps.db.Query(`SELECT name, kills FROM leaderboard ORDER BY position LIMIT $1`, MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.Name, &e.Kills); err != nil {
			return nil, fmt.Errorf("scan leaderboard: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	return entries, nil
}

// Save replaces the table contents in one transaction.
func (ps *PostgresStore) Save(entries []Entry) error {
	tx, err := ps.db.Begin()
	if err != nil {
		return fmt.Errorf("begin leaderboard save: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	for i, e := range entries {
		_, err := tx.Exec(`INSERT INTO leaderboard (position, name, kills) VALUES ($1, $2, $3)`,
			i, NormalizeName(e.Name), e.Kills)
		if err != nil {
			return fmt.Errorf("insert leaderboard row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit leaderboard: %w", err)
	}
	return nil
}

// Close closes the connection pool.
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
