// Package audit keeps a local trail of admin mutations. The upstream API owns
// entity state; this is the gateway's own record of who changed what, kept in
// an embedded sqlite database so it survives restarts without extra infra.
package audit

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/nutvale/admin-gateway/pkg/logger"
)

type Entry struct {
	ID     string    `db:"id" json:"id"`
	Actor  string    `db:"actor" json:"actor"`
	Method string    `db:"method" json:"method"`
	Path   string    `db:"path" json:"path"`
	Status int       `db:"status" json:"status"`
	At     time.Time `db:"at" json:"at"`
}

type Store struct {
	db     *sqlx.DB
	logger logger.ZapLogger
}

const schema = `
CREATE TABLE IF NOT EXISTS audit_entries (
    id     TEXT PRIMARY KEY,
    actor  TEXT NOT NULL,
    method TEXT NOT NULL,
    path   TEXT NOT NULL,
    status INTEGER NOT NULL,
    at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_audit_entries_at ON audit_entries (at);
`

func NewStore(db *sqlx.DB, log logger.ZapLogger) (*Store, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, err
	}
	return &Store{db: db, logger: log}, nil
}

// Record inserts an entry. Audit failures are logged, never surfaced: the
// mutation already succeeded upstream.
func (s *Store) Record(ctx context.Context, e Entry) {
	query := `
        INSERT INTO audit_entries (id, actor, method, path, status, at)
        VALUES (:id, :actor, :method, :path, :status, :at)
    `
	if _, err := s.db.NamedExecContext(ctx, query, e); err != nil {
		s.logger.Error("audit record failed", zap.Error(err))
	}
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	var entries []Entry
	query := `SELECT * FROM audit_entries ORDER BY at DESC LIMIT ?`
	if err := s.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, err
	}
	return entries, nil
}
