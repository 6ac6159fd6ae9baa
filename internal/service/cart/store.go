package cart

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

type session struct {
	cart     *Cart
	lastSeen time.Time
}

// Store хранит корзины в памяти, по одной на сессию
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	pricing  Pricing
	idleTTL  time.Duration
	now      func() time.Time
}

// NewStore создает хранилище корзин. Корзины без обращений дольше idleTTL удаляются Sweep
func NewStore(pricing Pricing, idleTTL time.Duration) *Store {
	return &Store{
		sessions: make(map[string]*session),
		pricing:  pricing,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create открывает новую пустую корзину и возвращает ее ID
func (s *Store) Create() (string, State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.NewString()
	c := New(s.pricing)
	s.sessions[id] = &session{cart: c, lastSeen: s.now()}

	return id, c.State()
}

// Update выполняет fn над корзиной под блокировкой хранилища.
// Результат fn возвращается как есть.
func (s *Store) Update(id string, fn func(c *Cart) State) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return State{}, ErrCartNotFound
	}

	sess.lastSeen = s.now()
	return fn(sess.cart), nil
}

// Get возвращает состояние корзины
func (s *Store) Get(id string) (State, error) {
	return s.Update(id, func(c *Cart) State { return c.State() })
}

// Delete удаляет корзину
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return false
	}
	delete(s.sessions, id)
	return true
}

// Len количество активных корзин
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// Sweep удаляет корзины, к которым не обращались дольше idleTTL. Возвращает число удаленных
func (s *Store) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	deadline := s.now().Add(-s.idleTTL)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(deadline) {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper вызывает Sweep каждые interval до отмены ctx
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration, log Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.Sweep(); removed > 0 {
				log.Info("Cart sweeper: removed %d idle carts, %d active", removed, s.Len())
			}
		}
	}
}
