// Package sqlite provides a SQLite-backed session store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	webstorage "github.com/arenahq/arena/internal/services/web/storage"
	"github.com/arenahq/arena/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web sessions.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ webstorage.Store = (*Store)(nil)

// Open opens and migrates a session store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=journal_mode(WAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := migrateUp(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

func migrateUp(sqlDB *sql.DB) error {
	source, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}
	driver, err := migratesqlite.WithInstance(sqlDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}
	// The migrate instance is not closed: closing it would close sqlDB.
	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PutSession upserts a session by id.
func (s *Store) PutSession(ctx context.Context, session webstorage.Session) error {
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = s.now().UTC()
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO web_sessions (id, user_id, username, email, role, access_token, created_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		    user_id = excluded.user_id,
		    username = excluded.username,
		    email = excluded.email,
		    role = excluded.role,
		    access_token = excluded.access_token,
		    expires_at = excluded.expires_at`,
		session.ID,
		session.UserID,
		session.Username,
		session.Email,
		session.Role,
		session.AccessToken,
		session.CreatedAt.UnixMilli(),
		timeToUnixMillis(session.ExpiresAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// GetSession loads a live session by id.
func (s *Store) GetSession(ctx context.Context, id string) (webstorage.Session, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, user_id, username, email, role, access_token, created_at, expires_at
		 FROM web_sessions WHERE id = ?`,
		strings.TrimSpace(id),
	)
	var session webstorage.Session
	var createdAt, expiresAt int64
	if err := row.Scan(
		&session.ID,
		&session.UserID,
		&session.Username,
		&session.Email,
		&session.Role,
		&session.AccessToken,
		&createdAt,
		&expiresAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return webstorage.Session{}, webstorage.ErrNotFound
		}
		return webstorage.Session{}, fmt.Errorf("get session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	session.ExpiresAt = unixMillisToTime(expiresAt)
	if session.Expired(s.now()) {
		return webstorage.Session{}, webstorage.ErrNotFound
	}
	return session, nil
}

// DeleteSession removes a session; slots cascade.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM web_sessions WHERE id = ?`, strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PutSlot upserts one slot payload for a session.
func (s *Store) PutSlot(ctx context.Context, sessionID, slot string, payload []byte) error {
	sessionID = strings.TrimSpace(sessionID)
	slot = strings.TrimSpace(slot)
	if sessionID == "" || slot == "" {
		return fmt.Errorf("session id and slot are required")
	}
	if payload == nil {
		payload = []byte{}
	}
	_, err := s.sqlDB.ExecContext(ctx,
		`INSERT INTO web_session_slots (session_id, slot, payload, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(session_id, slot) DO UPDATE SET
		    payload = excluded.payload,
		    updated_at = excluded.updated_at`,
		sessionID, slot, payload, s.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("put slot %s: %w", slot, err)
	}
	return nil
}

// GetSlot loads one slot payload.
func (s *Store) GetSlot(ctx context.Context, sessionID, slot string) ([]byte, bool, error) {
	var payload []byte
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT payload FROM web_session_slots WHERE session_id = ? AND slot = ?`,
		strings.TrimSpace(sessionID), strings.TrimSpace(slot),
	).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get slot %s: %w", slot, err)
	}
	return payload, true, nil
}

// DeleteSlot removes one slot.
func (s *Store) DeleteSlot(ctx context.Context, sessionID, slot string) error {
	_, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM web_session_slots WHERE session_id = ? AND slot = ?`,
		strings.TrimSpace(sessionID), strings.TrimSpace(slot),
	)
	if err != nil {
		return fmt.Errorf("delete slot %s: %w", slot, err)
	}
	return nil
}

// PurgeExpired deletes sessions whose expiry is at or before now.
func (s *Store) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM web_sessions WHERE expires_at > 0 AND expires_at <= ?`,
		now.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return int(affected), nil
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}
