package auth

import (
	"sync"

	"github.com/google/uuid"
)

// SessionStore 内存会话表
// 令牌是不透明的 uuid，不携带任何可验证信息，进程重启即失效
type SessionStore struct {
	mutex    sync.RWMutex
	sessions map[string]*User
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*User)}
}

func (s *SessionStore) Create(user *User) string {
	token := uuid.NewString()
	s.mutex.Lock()
	s.sessions[token] = user
	s.mutex.Unlock()
	return token
}

func (s *SessionStore) Get(token string) (*User, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	user, ok := s.sessions[token]
	return user, ok
}

func (s *SessionStore) Delete(token string) {
	s.mutex.Lock()
	delete(s.sessions, token)
	s.mutex.Unlock()
}
