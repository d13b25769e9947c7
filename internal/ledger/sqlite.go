package ledger

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteClient stores the flat key/value namespace in a single-file SQLite
// database. Suited to local single-node deployments; the database file is
// the whole ledger.
type sqliteClient struct {
	db *sql.DB
}

// NewSQLite opens (and if needed initializes) the SQLite ledger at path.
// The returned client implements [ConditionalClient]: the swap relies on a
// conditional UPDATE so two writers cannot both win.
func NewSQLite(path string) (*sqliteClient, error) { //nolint:revive
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite ledger: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS ledger_kv (
		key   TEXT PRIMARY KEY,
		value BLOB NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("init sqlite ledger schema: %w", err)
	}

	return &sqliteClient{db: db}, nil
}

// Close releases the underlying database handle.
func (s *sqliteClient) Close() error {
	return s.db.Close()
}

func (s *sqliteClient) IsAvailable(ctx context.Context) (bool, error) {
	if err := s.db.PingContext(ctx); err != nil {
		return false, nil
	}
	return true, nil
}

func (s *sqliteClient) GetData(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM ledger_kv WHERE key = ?`, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: sqlite get %q: %w", ErrUnavailable, key, err)
	}
	return value, nil
}

func (s *sqliteClient) SetData(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ledger_kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("%w: sqlite set %q: %w", ErrUnavailable, key, err)
	}
	return nil
}

func (s *sqliteClient) CompareAndSwap(ctx context.Context, key string, expect, value []byte) (bool, error) {
	if expect == nil {
		res, err := s.db.ExecContext(ctx,
			`INSERT INTO ledger_kv (key, value) VALUES (?, ?)
			 ON CONFLICT(key) DO NOTHING`,
			key, value,
		)
		if err != nil {
			return false, fmt.Errorf("%w: sqlite cas insert %q: %w", ErrUnavailable, key, err)
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return false, fmt.Errorf("sqlite cas rows affected: %w", err)
		}
		return affected == 1, nil
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE ledger_kv SET value = ? WHERE key = ? AND value = ?`,
		value, key, expect,
	)
	if err != nil {
		return false, fmt.Errorf("%w: sqlite cas update %q: %w", ErrUnavailable, key, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("sqlite cas rows affected: %w", err)
	}
	// Zero affected rows means the key is absent or holds something other
	// than expect; BLOB equality in the WHERE clause is byte-exact.
	return affected == 1, nil
}
