package session

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteStore keeps the session in dir/session.db so a login survives restarts.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// OpenSQLite opens (or creates) the session database at dir/session.db and
// brings its schema up to date.
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating session dir %s: %w", dir, err)
	}

	dbPath := filepath.Join(dir, "session.db")
	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening session db: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func runMigrations(dbPath string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, "sqlite://"+dbPath)
	if err != nil {
		return fmt.Errorf("creating migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Load(ctx context.Context) (Session, error) {
	var (
		token, userJSON string
		savedAt         time.Time
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT token, user_json, saved_at FROM session WHERE id = 1`,
	).Scan(&token, &userJSON, &savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Session{}, ErrNoSession
	}
	if err != nil {
		return Session{}, fmt.Errorf("loading session: %w", err)
	}

	sess := Session{Token: token, SavedAt: savedAt.UTC()}
	if err := json.Unmarshal([]byte(userJSON), &sess.User); err != nil {
		return Session{}, fmt.Errorf("decoding stored user: %w", err)
	}
	return sess, nil
}

func (s *SQLiteStore) Save(ctx context.Context, sess Session) error {
	userJSON, err := json.Marshal(sess.User)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	if sess.SavedAt.IsZero() {
		sess.SavedAt = time.Now().UTC()
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO session (id, token, user_json, saved_at) VALUES (1, ?, ?, ?)`,
		sess.Token, string(userJSON), sess.SavedAt,
	)
	if err != nil {
		return fmt.Errorf("saving session: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
		return fmt.Errorf("clearing session: %w", err)
	}
	return nil
}

// Close closes the session database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
