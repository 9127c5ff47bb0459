package replay

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure Go driver, registers "sqlite"
)

// Store keeps recordings in a SQLite database.
type Store struct {
	db *sql.DB
}

// Summary is a recording without its input.
type Summary struct {
	ID        int64
	Name      string
	Level     string
	Seed      int64
	Ticks     int
	FinalHash uint64
	CreatedAt time.Time
}

// Open creates or opens the database at path, creating parent directories
// and the schema as needed. A leading ~ expands to the home directory.
func Open(path string) (*Store, error) {
	if path != "" && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("replay: expand home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("replay: create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("replay: open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: connect: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("replay: migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS recordings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			level TEXT NOT NULL,
			seed INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			final_hash INTEGER NOT NULL,
			tape BLOB NOT NULL,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_recordings_level ON recordings(level);
	`)
	return err
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Save stores a recording and sets its ID.
func (s *Store) Save(ctx context.Context, rec *Recording) (int64, error) {
	data, err := encodeTape(rec.Seed, rec.Inputs)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO recordings (name, level, seed, ticks, final_hash, tape, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Level, rec.Seed, rec.Ticks(), int64(rec.FinalHash), data, time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("replay: save %q: %w", rec.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("replay: inserted id: %w", err)
	}
	rec.ID = id
	return id, nil
}

func (s *Store) Load(ctx context.Context, id int64) (*Recording, error) {
	rec := &Recording{ID: id}
	var hash int64
	var data []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT name, level, final_hash, tape FROM recordings WHERE id = ?`, id,
	).Scan(&rec.Name, &rec.Level, &hash, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("replay: load %d: %w", id, err)
	}

	seed, inputs, err := decodeTape(data)
	if err != nil {
		return nil, fmt.Errorf("replay: load %d: %w", id, err)
	}
	rec.Seed = seed
	rec.Inputs = inputs
	rec.FinalHash = uint64(hash)
	return rec, nil
}

// List returns recordings newest first, optionally filtered by level.
func (s *Store) List(ctx context.Context, level string) ([]Summary, error) {
	query := `SELECT id, name, level, seed, ticks, final_hash, created_at FROM recordings`
	var args []any
	if level != "" {
		query += ` WHERE level = ?`
		args = append(args, level)
	}
	query += ` ORDER BY id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("replay: list: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		var hash, created int64
		if err := rows.Scan(&sum.ID, &sum.Name, &sum.Level, &sum.Seed, &sum.Ticks, &hash, &created); err != nil {
			return nil, fmt.Errorf("replay: scan: %w", err)
		}
		sum.FinalHash = uint64(hash)
		sum.CreatedAt = time.Unix(created, 0)
		out = append(out, sum)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replay: list: %w", err)
	}
	return out, nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM recordings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("replay: delete %d: %w", id, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return nil
}
