package intake

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemSessionRepository is a mutex-guarded in-memory SessionRepository.
type MemSessionRepository struct {
	mu   sync.RWMutex
	data map[uuid.UUID]*Session
}

func NewMemSessionRepository() *MemSessionRepository {
	return &MemSessionRepository{data: make(map[uuid.UUID]*Session)}
}

func (m *MemSessionRepository) Create(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[s.ID] = s
	return nil
}

func (m *MemSessionRepository) GetByID(_ context.Context, id uuid.UUID) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.data[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return s, nil
}

func (m *MemSessionRepository) Update(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[s.ID]; !ok {
		return ErrSessionNotFound
	}
	m.data[s.ID] = s
	return nil
}

func (m *MemSessionRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, id)
	return nil
}

func (m *MemSessionRepository) List(_ context.Context, limit, offset int) ([]*Session, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := make([]*Session, 0, len(m.data))
	for _, s := range m.data {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	total := len(all)
	if offset >= total {
		return []*Session{}, total, nil
	}
	end := offset + limit
	if end > total {
		end = total
	}
	return all[offset:end], total, nil
}

// SweepIdle removes sessions not touched within ttl and returns how many it
// dropped. Memory hygiene for abandoned conversations, not persistence.
func (m *MemSessionRepository) SweepIdle(ttl time.Duration) int {
	cutoff := time.Now().Add(-ttl)
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for id, s := range m.data {
		if s.UpdatedAt.Before(cutoff) {
			delete(m.data, id)
			removed++
		}
	}
	return removed
}

// StartSweeper runs SweepIdle on an interval until ctx is cancelled.
func (m *MemSessionRepository) StartSweeper(ctx context.Context, ttl, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				m.SweepIdle(ttl)
			}
		}
	}()
}
