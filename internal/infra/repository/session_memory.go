package repository

import (
	"context"
	"errors"
	"sync"

	"app/internal/domain/model"
)

var ErrSessionNotFound = errors.New("session not found")

// プロセス内のセッションレジストリ。
// ログアウトで消せば、期限内のトークンでも即時に失効する。
type SessionMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]model.Session
}

func NewSessionMemoryStore() *SessionMemoryStore {
	return &SessionMemoryStore{
		sessions: make(map[string]model.Session),
	}
}

func (s *SessionMemoryStore) Create(ctx context.Context, sess model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess.Cart = cloneLines(sess.Cart)
	s.sessions[sess.ID] = sess
	return nil
}

func (s *SessionMemoryStore) Find(ctx context.Context, sessionID string) (model.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return model.Session{}, false
	}

	//呼び出し側に内部スライスを触らせない
	sess.Cart = cloneLines(sess.Cart)
	return sess, true
}

func (s *SessionMemoryStore) ReplaceCart(ctx context.Context, sessionID string, lines []model.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}

	sess.Cart = cloneLines(lines)
	s.sessions[sessionID] = sess
	return nil
}

func (s *SessionMemoryStore) Delete(ctx context.Context, sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
}

func cloneLines(lines []model.CartLine) []model.CartLine {
	out := make([]model.CartLine, len(lines))
	copy(out, lines)
	return out
}
