package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"gorm.io/gorm"
)

type sessionKey struct{}

// Session pins one pooled connection to a single request. The connection is
// taken on first use and handed back by Close.
type Session struct {
	root *gorm.DB

	mu   sync.Mutex
	conn *sql.Conn
	db   *gorm.DB
}

func NewSession(root *gorm.DB) *Session {
	return &Session{root: root}
}

func (s *Session) DB(ctx context.Context) (*gorm.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	sqlDB, err := s.root.DB()
	if err != nil {
		return nil, fmt.Errorf("db.DB(): %w", err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}

	tx := s.root.Session(&gorm.Session{NewDB: true, Context: ctx})
	tx.Statement.ConnPool = conn

	s.conn = conn
	s.db = tx
	return s.db, nil
}

// Opened reports whether DB has been called.
func (s *Session) Opened() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.db = nil
	return err
}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// Conn returns the request's connection when ctx carries a Session, otherwise
// the shared pool bound to ctx.
func Conn(ctx context.Context, fallback *gorm.DB) (*gorm.DB, error) {
	if s, ok := SessionFrom(ctx); ok {
		return s.DB(ctx)
	}
	return fallback.WithContext(ctx), nil
}
